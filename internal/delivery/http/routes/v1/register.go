package v1

import (
	"job-hunt-agent/internal/delivery/http/handler"
	"job-hunt-agent/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Profile        usecase.ProfileUsecase
	Ingest         usecase.IngestUsecase
	Recommendation usecase.RecommendationUsecase
}

func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	profileHandler := handler.NewProfileHandler(deps.Profile)
	ingestHandler := handler.NewIngestHandler(deps.Ingest)
	recommendationHandler := handler.NewRecommendationHandler(deps.Recommendation)

	profileGroup := r.Group("/profile")
	profileHandler.RegisterRoutes(profileGroup)

	jobsGroup := r.Group("/jobs")
	ingestHandler.RegisterRoutes(jobsGroup)
	recommendationHandler.RegisterRoutes(jobsGroup)
}
