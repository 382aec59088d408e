package registry

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arshansani/Planetary-Systems-Final-Project/internal/domain"
	"github.com/arshansani/Planetary-Systems-Final-Project/internal/queue"
	"github.com/arshansani/Planetary-Systems-Final-Project/internal/store"
)

func newTestRegistry(t *testing.T) (*Registry, *queue.Queue) {
	t.Helper()
	mr := miniredis.RunT(t)
	s, err := store.Open("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	q := queue.New(s.Queue)
	return New(s.Jobs, q, logger), q
}

func rangeJob(start, end int) domain.Job {
	return domain.Job{
		Type:  domain.TypeRangeCount,
		Range: &domain.RangeParams{Start: start, End: end},
	}
}

func TestCreatePersistsAndEnqueues(t *testing.T) {
	reg, q := newTestRegistry(t)
	ctx := context.Background()

	job, err := reg.Create(ctx, rangeJob(1, 10))
	require.NoError(t, err)

	_, err = uuid.Parse(job.ID)
	assert.NoError(t, err, "job id should be a uuid")
	assert.Equal(t, domain.StatusSubmitted, job.Status)

	// Persist happens before enqueue: the pulled id must have a record.
	pulled, err := q.Pull(ctx)
	require.NoError(t, err)
	assert.Equal(t, job.ID, pulled)

	stored, err := reg.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job, stored)
}

func TestCreateAssignsDistinctIDs(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := context.Background()

	a, err := reg.Create(ctx, rangeJob(1, 10))
	require.NoError(t, err)
	b, err := reg.Create(ctx, rangeJob(1, 10))
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestCreateRejectsInvalidParameters(t *testing.T) {
	reg, q := newTestRegistry(t)
	ctx := context.Background()

	_, err := reg.Create(ctx, domain.Job{
		Type:      domain.TypeHistogram,
		Histogram: &domain.HistogramParams{BinSize: -1},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = reg.Create(ctx, domain.Job{Type: "bogus"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Nothing was enqueued for rejected jobs.
	n, err := q.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestGetUnknownIDIsNotFound(t *testing.T) {
	reg, _ := newTestRegistry(t)

	_, err := reg.Get(context.Background(), "no-such-job")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStatus(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := context.Background()

	job, err := reg.Create(ctx, rangeJob(1, 10))
	require.NoError(t, err)

	require.NoError(t, reg.UpdateStatus(ctx, job.ID, domain.StatusInProgress))

	got, err := reg.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, got.Status)
	// Only the status field changed.
	assert.Equal(t, job.Range, got.Range)
	assert.Equal(t, job.Type, got.Type)
}

func TestUpdateStatusUnknownIDIsNotFound(t *testing.T) {
	reg, _ := newTestRegistry(t)

	err := reg.UpdateStatus(context.Background(), "vanished", domain.StatusFailed)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListIDs(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := context.Background()

	ids, err := reg.ListIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	a, err := reg.Create(ctx, rangeJob(1, 2))
	require.NoError(t, err)
	b, err := reg.Create(ctx, rangeJob(3, 4))
	require.NoError(t, err)

	ids, err = reg.ListIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a.ID, b.ID}, ids)
}
