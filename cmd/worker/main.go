// cmd/worker/main.go — background worker process. Blocks on the queue and
// executes one job at a time; run more instances to scale out.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arshansani/Planetary-Systems-Final-Project/internal/config"
	"github.com/arshansani/Planetary-Systems-Final-Project/internal/dataset"
	"github.com/arshansani/Planetary-Systems-Final-Project/internal/queue"
	"github.com/arshansani/Planetary-Systems-Final-Project/internal/registry"
	"github.com/arshansani/Planetary-Systems-Final-Project/internal/store"
	"github.com/arshansani/Planetary-Systems-Final-Project/internal/worker"
)

func main() {
	cfg := config.Load()
	logger := cfg.Logger()

	if err := worker.EnableParentDeathSignal(); err != nil {
		logger.Warn("failed to enable parent-death signal", "err", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	logger.Info("connecting to redis", "url", cfg.RedisURL)
	st, err := store.Open(cfg.RedisURL)
	if err != nil {
		logger.Error("open store failed", "err", err)
		os.Exit(1)
	}
	defer st.Close()

	if err := st.Ping(ctx); err != nil {
		logger.Error("redis ping failed", "err", err)
		os.Exit(1)
	}
	logger.Info("redis connected")

	q := queue.New(st.Queue)
	reg := registry.New(st.Jobs, q, logger)
	data := dataset.New(st.Dataset, cfg.ArchiveURL, logger)

	w := worker.New(reg, q, st.Results, data, worker.Default(), logger)

	go w.Start(ctx)

	<-ctx.Done()

	drainCtx, drainCancel := context.WithTimeout(context.Background(), 25*time.Second)
	defer drainCancel()
	if err := w.DrainAndWait(drainCtx); err != nil {
		logger.Warn("shutdown drain timeout", "err", err)
	}

	logger.Info("shutdown complete")
}
