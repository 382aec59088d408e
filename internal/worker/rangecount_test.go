package worker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arshansani/Planetary-Systems-Final-Project/internal/domain"
)

func TestRangeCountBoundsAreInclusive(t *testing.T) {
	f := newFixture(t)
	f.seed(t,
		domain.Planet{Name: "Kepler-1 b", DiscoveryMethod: "Transit"},
		domain.Planet{Name: "Kepler-10 b", DiscoveryMethod: "Transit"},
		domain.Planet{Name: "Kepler-11 b", DiscoveryMethod: "Transit"},
	)

	job := domain.Job{
		ID:    "direct",
		Type:  domain.TypeRangeCount,
		Range: &domain.RangeParams{Start: 1, End: 10},
	}
	raw, err := RangeCount(context.Background(), f.dataset, &job)
	require.NoError(t, err)

	var counts map[string]int
	require.NoError(t, json.Unmarshal(raw, &counts))
	assert.Equal(t, map[string]int{"Transit": 2}, counts, "1 and 10 in, 11 out")
}

func TestRangeCountSkipsMalformedKeys(t *testing.T) {
	f := newFixture(t)
	f.seed(t,
		domain.Planet{Name: "Kepler-5 b", DiscoveryMethod: "Transit"},
		domain.Planet{Name: "Proxima Centauri b", DiscoveryMethod: "Radial Velocity"},
	)

	job := domain.Job{
		ID:    "direct",
		Type:  domain.TypeRangeCount,
		Range: &domain.RangeParams{Start: 0, End: 1000},
	}
	raw, err := RangeCount(context.Background(), f.dataset, &job)
	require.NoError(t, err)

	var counts map[string]int
	require.NoError(t, json.Unmarshal(raw, &counts))
	assert.Equal(t, map[string]int{"Transit": 1}, counts, "keys without a designation number are skipped, not fatal")
}

func TestRangeCountInvertedRangeMatchesNothing(t *testing.T) {
	f := newFixture(t)
	f.seed(t, domain.Planet{Name: "Kepler-5 b", DiscoveryMethod: "Transit"})

	job := domain.Job{
		ID:    "direct",
		Type:  domain.TypeRangeCount,
		Range: &domain.RangeParams{Start: 10, End: 1},
	}
	raw, err := RangeCount(context.Background(), f.dataset, &job)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(raw))
}
