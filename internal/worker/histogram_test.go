package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arshansani/Planetary-Systems-Final-Project/internal/domain"
)

func TestBinValues(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		binSize float64
		want    []float64
	}{
		{
			name:    "unit bins",
			values:  []float64{0.5, 1.5, 1.7, 2.2},
			binSize: 1.0,
			want:    []float64{1, 2, 1},
		},
		{
			name:    "single value lands in its own bin",
			values:  []float64{3.0},
			binSize: 1.5,
			want:    []float64{0, 0, 1},
		},
		{
			name:    "zero goes in the first bin",
			values:  []float64{0},
			binSize: 2.0,
			want:    []float64{1},
		},
		{
			name:    "wide bin collapses everything",
			values:  []float64{0.1, 0.2, 0.9},
			binSize: 100,
			want:    []float64{3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, binValues(tt.values, tt.binSize))
		})
	}
}

func TestBinValuesCountsAreConserved(t *testing.T) {
	values := []float64{0.3, 1.1, 2.38, 2.61, 14.6, 1.03}
	counts := binValues(values, 1.5)

	total := 0.0
	for _, c := range counts {
		total += c
	}
	assert.EqualValues(t, len(values), total)
}

func TestHistogramRejectsBadBinSizeBeforeScan(t *testing.T) {
	f := newFixture(t)

	// Params bypass Create's validation on purpose: the computation must
	// re-check before touching the dataset.
	job := domain.Job{
		ID:        "direct",
		Type:      domain.TypeHistogram,
		Histogram: &domain.HistogramParams{BinSize: 0},
	}
	_, err := Histogram(context.Background(), f.dataset, &job)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	job.Histogram = nil
	_, err = Histogram(context.Background(), f.dataset, &job)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistogramIgnoresRecordsWithoutRadius(t *testing.T) {
	f := newFixture(t)
	f.seed(t,
		domain.Planet{Name: "Kepler-22 b", RadiusEarth: ptr(2.38)},
		domain.Planet{Name: "PSR B1257+12 c"},
	)

	job := domain.Job{
		ID:        "direct",
		Type:      domain.TypeHistogram,
		Histogram: &domain.HistogramParams{BinSize: 1.0},
	}
	png, err := Histogram(context.Background(), f.dataset, &job)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
