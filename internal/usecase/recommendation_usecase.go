package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"job-hunt-agent/internal/domain/scoring"
	"job-hunt-agent/internal/repository"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

// DefaultRecommendLimit bounds result payloads when the caller does not ask
// for an explicit limit.
const DefaultRecommendLimit = 50

type RecommendationParams struct {
	MinScore float64
	Limit    int
	Since    *time.Time
}

type RecommendationItem struct {
	ID          uuid.UUID         `json:"id"`
	CanonicalID string            `json:"canonical_id"`
	Source      string            `json:"source"`
	Title       string            `json:"title"`
	Company     string            `json:"company"`
	Location    string            `json:"location"`
	Description string            `json:"description"`
	ApplyURL    string            `json:"apply_url"`
	PostedAt    *time.Time        `json:"posted_at,omitempty"`
	IngestedAt  time.Time         `json:"ingested_at"`
	Score       float64           `json:"score"`
	Breakdown   scoring.Breakdown `json:"breakdown"`
}

type RecommendationUsecase interface {
	Recommend(ctx context.Context, params RecommendationParams) ([]RecommendationItem, error)
}

type Recommendation struct {
	postings repository.PostingRepository
	cache    RecommendCache
	logger   *log.Logger
}

func NewRecommendationUsecase(postings repository.PostingRepository, cache RecommendCache, logger *log.Logger) *Recommendation {
	return &Recommendation{postings: postings, cache: cache, logger: logger}
}

// Recommend returns scored postings filtered by min score and ingestion
// time, in the repository's deterministic order, truncated to the limit.
// It is a pure read; repeated calls without intervening writes return the
// same sequence.
func (u *Recommendation) Recommend(ctx context.Context, params RecommendationParams) ([]RecommendationItem, error) {
	if params.Limit < 0 {
		return nil, ErrInvalidInput
	}
	if params.Limit == 0 {
		params.Limit = DefaultRecommendLimit
	}
	if params.MinScore < 0 {
		params.MinScore = 0
	}

	cacheKey := RecommendCacheKey(params)
	if u.cache != nil {
		var cached []RecommendationItem
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Recommend] cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
	}

	postings, err := u.postings.List(ctx, repository.PostingFilter{
		MinScore: params.MinScore,
		Since:    params.Since,
		Limit:    params.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	out := make([]RecommendationItem, 0, len(postings))
	for _, p := range postings {
		out = append(out, RecommendationItem{
			ID:          p.ID,
			CanonicalID: p.CanonicalID,
			Source:      p.Source,
			Title:       p.Title,
			Company:     p.Company,
			Location:    p.Location,
			Description: p.Description,
			ApplyURL:    p.ApplyURL,
			PostedAt:    p.PostedAt,
			IngestedAt:  p.IngestedAt,
			Score:       p.Score,
			Breakdown:   p.Breakdown,
		})
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, out, 0)
	}

	return out, nil
}
