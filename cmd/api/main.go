// cmd/api/main.go — REST API process. Serves the dataset and job routes;
// job execution happens in the separate worker process.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/arshansani/Planetary-Systems-Final-Project/internal/config"
	"github.com/arshansani/Planetary-Systems-Final-Project/internal/dataset"
	"github.com/arshansani/Planetary-Systems-Final-Project/internal/httpapi"
	"github.com/arshansani/Planetary-Systems-Final-Project/internal/queue"
	"github.com/arshansani/Planetary-Systems-Final-Project/internal/registry"
	"github.com/arshansani/Planetary-Systems-Final-Project/internal/store"
)

func main() {
	loadDotEnv()
	cfg := config.Load()
	logger := cfg.Logger()

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

	srv := &http.Server{
		Addr: cfg.ListenAddr,
		Handler: (&httpapi.Server{
			Registry: reg,
			Dataset:  data,
			Results:  st.Results,
			Store:    st,
			Logger:   logger,
		}).Router(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("API listening", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

// loadDotEnv walks up from the working directory looking for a .env file.
// Absence is fine; the environment wins either way.
func loadDotEnv() {
	dir, err := os.Getwd()
	if err != nil {
		return
	}
	for i := 0; i < 5; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
