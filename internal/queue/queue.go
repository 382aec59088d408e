// Package queue is the FIFO handoff between the API (producer) and the
// worker (consumer). It is a Redis list: RPUSH on submit, BLPOP on pull.
// BLPOP removes atomically, so multiple workers sharing one queue never
// observe the same id.
package queue

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const queueKey = "queue"

type Queue struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Queue {
	return &Queue{rdb: rdb}
}

// Put enqueues a job id. Unbounded: Put never blocks on a full queue.
func (q *Queue) Put(ctx context.Context, id string) error {
	if err := q.rdb.RPush(ctx, queueKey, id).Err(); err != nil {
		return fmt.Errorf("enqueue %s: %w", id, err)
	}
	return nil
}

// Pull blocks until an id is available or ctx is canceled. The zero BLPOP
// timeout parks server-side rather than busy-polling; cancellation surfaces
// as ctx.Err via the client.
func (q *Queue) Pull(ctx context.Context) (string, error) {
	vals, err := q.rdb.BLPop(ctx, 0, queueKey).Result()
	if err != nil {
		return "", fmt.Errorf("dequeue: %w", err)
	}
	// BLPOP returns [key, value].
	return vals[1], nil
}

// Len reports the number of ids waiting. Informational only; the count is
// stale the moment it returns.
func (q *Queue) Len(ctx context.Context) (int64, error) {
	n, err := q.rdb.LLen(ctx, queueKey).Result()
	if err != nil {
		return 0, fmt.Errorf("queue length: %w", err)
	}
	return n, nil
}
