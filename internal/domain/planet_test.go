package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHostNumber(t *testing.T) {
	tests := []struct {
		name   string
		want   int
		wantOK bool
	}{
		{"Kepler-22 b", 22, true},
		{"Kepler-452 b", 452, true},
		{"HD 209458 b", 209458, true},
		{"TRAPPIST-1 e", 1, true},
		{"K2-18 b", 18, true},
		{"Proxima Centauri b", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Planet{Name: tt.name}
			n, ok := p.HostNumber()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, n)
			}
		})
	}
}

func TestJobValidate(t *testing.T) {
	valid := Job{Type: TypeRangeCount, Range: &RangeParams{Start: 1, End: 2}}
	assert.NoError(t, valid.Validate())

	valid = Job{Type: TypeHistogram, Histogram: &HistogramParams{BinSize: 0.5}}
	assert.NoError(t, valid.Validate())

	bad := []Job{
		{Type: TypeRangeCount},
		{Type: TypeHistogram},
		{Type: TypeHistogram, Histogram: &HistogramParams{BinSize: 0}},
		{Type: TypeHistogram, Histogram: &HistogramParams{BinSize: -2}},
		{Type: "mystery"},
	}
	for _, job := range bad {
		assert.ErrorIs(t, job.Validate(), ErrInvalidInput)
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusSubmitted.Terminal())
	assert.False(t, StatusInProgress.Terminal())
	assert.True(t, StatusComplete.Terminal())
	assert.True(t, StatusFailed.Terminal())
}
