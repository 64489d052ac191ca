package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"job-hunt-agent/internal/app"
	"job-hunt-agent/internal/config"
	"job-hunt-agent/internal/fetcher"
	"job-hunt-agent/internal/source"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := log.Default()

	container, err := app.NewContainer(cfg, logger)
	if err != nil {
		log.Fatalf("failed to build container: %v", err)
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Printf("cleanup error: %v", err)
		}
	}()

	sources := []source.Source{
		source.NewRemotiveSource(cfg.Fetch.RemotiveSearch),
		source.NewWeWorkRemotelySource(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := fetcher.New(sources, container.Ingest, cfg.Fetch.IntervalHours, logger)
	if err := sched.Start(ctx); err != nil {
		log.Fatalf("failed to start fetch scheduler: %v", err)
	}
	defer sched.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logger.Printf("[Fetcher] shutting down")
}
