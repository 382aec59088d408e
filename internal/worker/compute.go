package worker

import (
	"context"
	"fmt"

	"github.com/arshansani/Planetary-Systems-Final-Project/internal/dataset"
	"github.com/arshansani/Planetary-Systems-Final-Project/internal/domain"
)

// Computation is the function signature every job computation implements.
// The returned bytes are stored verbatim in the result namespace.
type Computation func(ctx context.Context, data *dataset.Service, job *domain.Job) ([]byte, error)

// Computations maps job types to Computation functions.
type Computations struct {
	byType map[domain.JobType]Computation
}

func NewComputations() *Computations {
	return &Computations{byType: make(map[domain.JobType]Computation)}
}

func (c *Computations) Register(t domain.JobType, fn Computation) {
	c.byType[t] = fn
}

func (c *Computations) Lookup(t domain.JobType) (Computation, error) {
	fn, ok := c.byType[t]
	if !ok {
		return nil, fmt.Errorf("no computation registered for: %q", t)
	}
	return fn, nil
}

func (c *Computations) Types() []domain.JobType {
	types := make([]domain.JobType, 0, len(c.byType))
	for t := range c.byType {
		types = append(types, t)
	}
	return types
}

// Default returns the two production computations.
func Default() *Computations {
	c := NewComputations()
	c.Register(domain.TypeRangeCount, RangeCount)
	c.Register(domain.TypeHistogram, Histogram)
	return c
}
