package routes

import (
	v1 "job-hunt-agent/internal/delivery/http/routes/v1"
	"job-hunt-agent/internal/pkg/response"
	"job-hunt-agent/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the usecases the HTTP layer exposes.
type Deps struct {
	Profile        usecase.ProfileUsecase
	Ingest         usecase.IngestUsecase
	Recommendation usecase.RecommendationUsecase
}

func Register(app *fiber.App, deps Deps) {
	if app == nil {
		return
	}

	app.Get("/health", func(c fiber.Ctx) error {
		return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
	})

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), v1.Deps{
		Profile:        deps.Profile,
		Ingest:         deps.Ingest,
		Recommendation: deps.Recommendation,
	})
}
