package queue

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQueue(t *testing.T) *Queue {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return New(rdb)
}

func TestPutPullFIFO(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, q.Put(ctx, "first"))
	require.NoError(t, q.Put(ctx, "second"))
	require.NoError(t, q.Put(ctx, "third"))

	for _, want := range []string{"first", "second", "third"} {
		got, err := q.Pull(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestPullBlocksUntilPut(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()

	got := make(chan string, 1)
	go func() {
		id, err := q.Pull(ctx)
		if err == nil {
			got <- id
		}
	}()

	// The consumer parks; nothing should arrive yet.
	select {
	case id := <-got:
		t.Fatalf("pull returned %q before put", id)
	case <-time.After(100 * time.Millisecond):
	}

	require.NoError(t, q.Put(ctx, "late"))

	select {
	case id := <-got:
		assert.Equal(t, "late", id)
	case <-time.After(5 * time.Second):
		t.Fatal("pull never unblocked after put")
	}
}

func TestDuplicatePayloadsAreIndependentEntries(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, q.Put(ctx, "same"))
	require.NoError(t, q.Put(ctx, "same"))

	n, err := q.Len(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}
