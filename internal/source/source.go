// Package source implements feed clients that turn external job boards into
// ingestion candidates. Sources live outside the scoring core: they only
// produce candidates and never touch storage themselves.
package source

import (
	"context"

	"job-hunt-agent/internal/usecase"
)

type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]usecase.Candidate, error)
}
