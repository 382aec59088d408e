package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/arshansani/Planetary-Systems-Final-Project/internal/dataset"
	"github.com/arshansani/Planetary-Systems-Final-Project/internal/domain"
)

// RangeCount scans the dataset for planets whose host designation number
// falls within [start, end] and counts the matches per discovery method.
// Records whose name carries no designation number are skipped, not fatal.
// An empty dataset yields an empty mapping and a complete job.
func RangeCount(ctx context.Context, data *dataset.Service, job *domain.Job) ([]byte, error) {
	params := job.Range
	if params == nil {
		return nil, fmt.Errorf("%w: range_count job without range parameters", domain.ErrInvalidInput)
	}

	planets, err := data.Planets(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan dataset: %w", err)
	}

	counts := make(map[string]int)
	for i := range planets {
		n, ok := planets[i].HostNumber()
		if !ok {
			continue
		}
		if n < params.Start || n > params.End {
			continue
		}
		counts[planets[i].DiscoveryMethod]++
	}

	result, err := json.Marshal(counts)
	if err != nil {
		return nil, fmt.Errorf("encode counts: %w", err)
	}
	return result, nil
}
