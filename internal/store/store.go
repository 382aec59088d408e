// Package store provides the Redis-backed record store. Four logical
// namespaces live on one Redis server as separate databases: 0 holds the
// dataset cache, 1 the work queue, 2 job metadata, 3 job results.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/arshansani/Planetary-Systems-Final-Project/internal/domain"
)

const (
	dbDataset = 0
	dbQueue   = 1
	dbJobs    = 2
	dbResults = 3
)

// KV is a single-namespace key-value view. All operations are single-key;
// there are no cross-key transactions.
type KV struct {
	rdb *redis.Client
}

// Get fetches the value at key. A missing key is domain.ErrNotFound.
func (kv KV) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := kv.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: key %q", domain.ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	return val, nil
}

func (kv KV) Set(ctx context.Context, key string, val []byte) error {
	if err := kv.rdb.Set(ctx, key, val, 0).Err(); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Keys enumerates every key in the namespace, in unspecified order.
func (kv KV) Keys(ctx context.Context) ([]string, error) {
	keys, err := kv.rdb.Keys(ctx, "*").Result()
	if err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}
	return keys, nil
}

// Flush drops every key in this namespace only.
func (kv KV) Flush(ctx context.Context) error {
	if err := kv.rdb.FlushDB(ctx).Err(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// Store bundles the namespace views plus the raw client the work queue
// operates on. Constructed once per process and passed by reference; there
// is no ambient global connection.
type Store struct {
	Dataset KV
	Jobs    KV
	Results KV
	Queue   *redis.Client

	clients []*redis.Client
}

// Open connects to the Redis server at url and builds one client per
// logical database.
func Open(url string) (*Store, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := func(db int) *redis.Client {
		o := *opts
		o.DB = db
		return redis.NewClient(&o)
	}

	s := &Store{}
	dataset := client(dbDataset)
	queue := client(dbQueue)
	jobs := client(dbJobs)
	results := client(dbResults)
	s.Dataset = KV{rdb: dataset}
	s.Jobs = KV{rdb: jobs}
	s.Results = KV{rdb: results}
	s.Queue = queue
	s.clients = []*redis.Client{dataset, queue, jobs, results}
	return s, nil
}

// Ping verifies the server is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.clients[0].Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	var errs []error
	for _, c := range s.clients {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
