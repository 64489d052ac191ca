// Package fetcher runs the periodic feed pull. It sits outside the ingestion
// core: each cycle just fetches candidates from every configured source and
// pushes them through the Ingestion usecase as ordinary batches.
package fetcher

import (
	"context"
	"fmt"
	"log"

	"job-hunt-agent/internal/repository"
	"job-hunt-agent/internal/source"
	"job-hunt-agent/internal/usecase"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron    *cron.Cron
	sources []source.Source
	ingest  usecase.IngestUsecase
	logger  *log.Logger
	spec    string
}

func New(sources []source.Source, ingest usecase.IngestUsecase, intervalHours int, logger *log.Logger) *Scheduler {
	if intervalHours <= 0 {
		intervalHours = 6
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Scheduler{
		cron:    cron.New(cron.WithLogger(cron.DefaultLogger)),
		sources: sources,
		ingest:  ingest,
		logger:  logger,
		spec:    fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the cron entry and fires one cycle immediately so the
// repository is populated without waiting for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.RunOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	s.logger.Printf("[Fetcher] cron started, spec: %s", s.spec)

	go s.RunOnce(ctx)

	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Printf("[Fetcher] cron stopped")
}

// RunOnce pulls every source and ingests what it got. A failing source never
// blocks the others.
func (s *Scheduler) RunOnce(ctx context.Context) {
	for _, src := range s.sources {
		candidates, err := src.Fetch(ctx)
		if err != nil {
			s.logger.Printf("[Fetcher] %s fetch error: %v", src.Name(), err)
			continue
		}
		if len(candidates) == 0 {
			s.logger.Printf("[Fetcher] %s returned no candidates", src.Name())
			continue
		}

		results, err := s.ingest.IngestBatch(ctx, candidates)
		if err != nil {
			s.logger.Printf("[Fetcher] %s ingest error: %v", src.Name(), err)
			continue
		}

		var inserted, refreshed, duplicates, rejected int
		for _, res := range results {
			switch {
			case res.Status == usecase.ResultRejected:
				rejected++
			case res.Outcome == repository.OutcomeInserted:
				inserted++
			case res.Outcome == repository.OutcomeDuplicateRefreshed:
				refreshed++
			default:
				duplicates++
			}
		}
		s.logger.Printf("[Fetcher] %s: %d candidates, %d inserted, %d refreshed, %d duplicates, %d rejected",
			src.Name(), len(candidates), inserted, refreshed, duplicates, rejected)
	}
}
