package app

import (
	"context"
	"log"
	"time"

	"job-hunt-agent/internal/config"
	"job-hunt-agent/internal/database"
	dbpostgres "job-hunt-agent/internal/database/postgres"
	"job-hunt-agent/internal/database/schema"
	"job-hunt-agent/internal/infrastructure/cache"
	"job-hunt-agent/internal/repository"
	"job-hunt-agent/internal/usecase"
)

// Container wires storage, cache and usecases. Without DB settings it runs
// on in-memory repositories, which keeps local development and the fetcher
// usable without Postgres.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis

	Profiles usecase.ProfileUsecase
	Ingest   usecase.IngestUsecase
	Recs     usecase.RecommendationUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	c := &Container{Config: cfg}

	var postingRepo repository.PostingRepository
	var profileRepo repository.ProfileRepository

	if cfg.HasDatabase() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := schema.Ensure(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		c.DB = db
		postingRepo = repository.NewPostgresPostingRepository(db)
		profileRepo = repository.NewPostgresProfileRepository(db)
	} else {
		logger.Printf("[App] no DB_HOST configured, using in-memory repositories")
		postingRepo = repository.NewMemoryPostingRepository()
		profileRepo = repository.NewMemoryProfileRepository()
	}

	c.Cache = cache.NewRedis(cfg.Redis, logger)

	c.Profiles = usecase.NewProfileUsecase(profileRepo, c.Cache, logger)
	c.Ingest = usecase.NewIngestUsecase(postingRepo, profileRepo, c.Cache, logger)
	c.Recs = usecase.NewRecommendationUsecase(postingRepo, c.Cache, logger)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
