package app

import (
	"fmt"
	"log"
	"strings"

	"job-hunt-agent/internal/config"
	"job-hunt-agent/internal/delivery/http/middleware"
	"job-hunt-agent/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	errMw := middleware.NewErrorMiddleware()
	f.Use(errMw.Middleware())
	accessMw := middleware.NewAccessLogMiddleware(logger)
	f.Use(accessMw.Middleware())

	routes.Register(f, routes.Deps{
		Profile:        container.Profiles,
		Ingest:         container.Ingest,
		Recommendation: container.Recs,
	})

	app := &App{Fiber: f, Container: container}
	return app, container.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
