package domain

import "fmt"

type JobStatus string

const (
	StatusSubmitted  JobStatus = "submitted"
	StatusInProgress JobStatus = "in progress"
	StatusComplete   JobStatus = "complete"
	StatusFailed     JobStatus = "failed"
)

// Terminal reports whether no further status transition may occur.
func (s JobStatus) Terminal() bool {
	return s == StatusComplete || s == StatusFailed
}

type JobType string

const (
	// TypeRangeCount counts planets per discovery method over a host
	// designation number range.
	TypeRangeCount JobType = "range_count"
	// TypeHistogram renders a PNG histogram of planet radii.
	TypeHistogram JobType = "histogram"
)

// RangeParams bounds a range_count job. Both bounds are inclusive; an
// inverted range matches nothing rather than being rejected.
type RangeParams struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// HistogramParams configures a histogram job. BinSize must be > 0.
type HistogramParams struct {
	BinSize float64 `json:"bin_size"`
}

// Job is a unit of asynchronous work. Exactly one of Range or Histogram is
// set, matching Type. Status is owned by the registry: nothing else writes it.
type Job struct {
	ID        string           `json:"id"`
	Type      JobType          `json:"type"`
	Status    JobStatus        `json:"status"`
	Range     *RangeParams     `json:"range,omitempty"`
	Histogram *HistogramParams `json:"histogram,omitempty"`
}

// Validate checks that the job's type and parameter payload agree.
func (j *Job) Validate() error {
	switch j.Type {
	case TypeRangeCount:
		if j.Range == nil {
			return fmt.Errorf("%w: range_count job without range parameters", ErrInvalidInput)
		}
	case TypeHistogram:
		if j.Histogram == nil {
			return fmt.Errorf("%w: histogram job without histogram parameters", ErrInvalidInput)
		}
		if j.Histogram.BinSize <= 0 {
			return fmt.Errorf("%w: bin_size must be > 0, got %v", ErrInvalidInput, j.Histogram.BinSize)
		}
	default:
		return fmt.Errorf("%w: unknown job type %q", ErrInvalidInput, j.Type)
	}
	return nil
}
