// Package registry owns the job lifecycle. It is the only writer of a job's
// status field; the worker requests transitions through UpdateStatus rather
// than touching the job store directly.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/arshansani/Planetary-Systems-Final-Project/internal/domain"
	"github.com/arshansani/Planetary-Systems-Final-Project/internal/queue"
	"github.com/arshansani/Planetary-Systems-Final-Project/internal/store"
)

type Registry struct {
	jobs   store.KV
	queue  *queue.Queue
	logger *slog.Logger
}

func New(jobs store.KV, q *queue.Queue, logger *slog.Logger) *Registry {
	return &Registry{jobs: jobs, queue: q, logger: logger}
}

// Create validates the parameter payload, assigns a fresh id, persists the
// record with status submitted, and enqueues the id. Persist happens before
// enqueue, so a pulled id always has a record behind it.
func (r *Registry) Create(ctx context.Context, job domain.Job) (domain.Job, error) {
	if err := job.Validate(); err != nil {
		return domain.Job{}, err
	}

	job.ID = uuid.NewString()
	job.Status = domain.StatusSubmitted

	if err := r.save(ctx, &job); err != nil {
		return domain.Job{}, err
	}
	if err := r.queue.Put(ctx, job.ID); err != nil {
		return domain.Job{}, err
	}

	r.logger.Info("job created", "job_id", job.ID, "type", job.Type)
	return job, nil
}

// Get fetches and decodes the job record. domain.ErrNotFound when the id has
// no record, which is distinct from a job that exists without a result yet.
func (r *Registry) Get(ctx context.Context, id string) (domain.Job, error) {
	raw, err := r.jobs.Get(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	var job domain.Job
	if err := json.Unmarshal(raw, &job); err != nil {
		return domain.Job{}, fmt.Errorf("decode job %s: %w", id, err)
	}
	return job, nil
}

// UpdateStatus overwrites only the status field and re-persists the record.
// Read-modify-write over two store operations with no compare-and-swap:
// single-writer-per-job is a deployment contract, not mechanically enforced.
// Returns domain.ErrNotFound when the record vanished, which the worker
// treats as fatal to that job but never to its loop.
func (r *Registry) UpdateStatus(ctx context.Context, id string, status domain.JobStatus) error {
	job, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	job.Status = status
	if err := r.save(ctx, &job); err != nil {
		return err
	}
	r.logger.Info("job status updated", "job_id", id, "status", status)
	return nil
}

// ListIDs enumerates all known job ids in unspecified order.
func (r *Registry) ListIDs(ctx context.Context) ([]string, error) {
	return r.jobs.Keys(ctx)
}

func (r *Registry) save(ctx context.Context, job *domain.Job) error {
	raw, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("encode job %s: %w", job.ID, err)
	}
	return r.jobs.Set(ctx, job.ID, raw)
}
