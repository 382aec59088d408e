// Package worker runs the single-consumer processing loop: block on the
// queue, execute one job synchronously, record the outcome, pull again.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/arshansani/Planetary-Systems-Final-Project/internal/dataset"
	"github.com/arshansani/Planetary-Systems-Final-Project/internal/domain"
	"github.com/arshansani/Planetary-Systems-Final-Project/internal/queue"
	"github.com/arshansani/Planetary-Systems-Final-Project/internal/registry"
	"github.com/arshansani/Planetary-Systems-Final-Project/internal/store"
)

type Worker struct {
	Registry *registry.Registry
	Queue    *queue.Queue
	Results  store.KV
	Dataset  *dataset.Service
	Logger   *slog.Logger

	computations  *Computations
	startDone     chan struct{}
	startDoneOnce sync.Once
}

func New(
	reg *registry.Registry,
	q *queue.Queue,
	results store.KV,
	data *dataset.Service,
	comps *Computations,
	logger *slog.Logger,
) *Worker {
	return &Worker{
		Registry:     reg,
		Queue:        q,
		Results:      results,
		Dataset:      data,
		Logger:       logger,
		computations: comps,
		startDone:    make(chan struct{}),
	}
}

// Start runs the pull loop until ctx is canceled. Each job is executed
// synchronously to completion before the next pull; no outcome of one job
// can stop the loop.
func (w *Worker) Start(ctx context.Context) {
	defer w.startDoneOnce.Do(func() { close(w.startDone) })

	w.Logger.Info("worker starting", "computations", w.computations.Types())

	for {
		if ctx.Err() != nil {
			return
		}

		id, err := w.Queue.Pull(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			w.Logger.Error("pull error", "err", err)
			time.Sleep(500 * time.Millisecond)
			continue
		}

		w.Process(ctx, id)
	}
}

// DrainAndWait blocks until the pull loop exits (usually after ctx
// cancellation) or until the caller's timeout is reached.
func (w *Worker) DrainAndWait(ctx context.Context) error {
	select {
	case <-w.startDone:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Process drives one job through its lifecycle. Exactly one terminal
// transition happens per job: the result is persisted before complete, and
// every failure path funnels through fail. A job whose record vanished is
// logged and skipped; it is fatal to that job, never to the loop.
func (w *Worker) Process(ctx context.Context, id string) {
	log := w.Logger.With("job_id", id)

	job, err := w.Registry.Get(ctx, id)
	if err != nil {
		log.Error("dequeued job has no record", "err", err)
		return
	}

	if err := w.Registry.UpdateStatus(ctx, id, domain.StatusInProgress); err != nil {
		log.Error("mark in progress failed", "err", err)
		return
	}
	log.Info("job started", "type", job.Type)

	result, err := w.run(ctx, &job)
	if err != nil {
		log.Warn("job failed", "err", err)
		w.fail(ctx, id, log)
		return
	}

	if err := w.Results.Set(ctx, id, result); err != nil {
		log.Error("persist result failed", "err", err)
		w.fail(ctx, id, log)
		return
	}

	if err := w.Registry.UpdateStatus(ctx, id, domain.StatusComplete); err != nil {
		log.Error("mark complete failed", "err", err)
		return
	}
	log.Info("job complete", "result_bytes", len(result))
}

// run dispatches to the registered computation. Panics are converted to
// errors so the failed transition stays reachable no matter what the
// computation does.
func (w *Worker) run(ctx context.Context, job *domain.Job) (result []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("computation panic: %v", r)
		}
	}()

	comp, err := w.computations.Lookup(job.Type)
	if err != nil {
		return nil, err
	}
	return comp(ctx, w.Dataset, job)
}

// fail records the terminal failed status. No result is persisted on this
// path, so a failed job never has a partial result behind it.
func (w *Worker) fail(ctx context.Context, id string, log *slog.Logger) {
	if err := w.Registry.UpdateStatus(ctx, id, domain.StatusFailed); err != nil {
		log.Error("mark failed failed; abandoning job", "err", err)
	}
}
