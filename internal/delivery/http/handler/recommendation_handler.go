package handler

import (
	"errors"
	"strconv"
	"time"

	"job-hunt-agent/internal/delivery/http/dto"
	"job-hunt-agent/internal/delivery/http/middleware"
	"job-hunt-agent/internal/pkg/response"
	"job-hunt-agent/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/recommendations", h.GetRecommendations)
}

func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	minScore, err := parseQueryFloat(c, "min_score", 0)
	if err != nil || minScore < 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid min_score", nil, err)
	}

	limit := usecase.DefaultRecommendLimit
	if s := c.Query("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
		}
		limit = v
	}

	var since *time.Time
	if s := c.Query("since"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid since timestamp", nil, err)
		}
		t = t.UTC()
		since = &t
	}

	items, err := h.uc.Recommend(c.Context(), usecase.RecommendationParams{
		MinScore: minScore,
		Limit:    limit,
		Since:    since,
	})
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}

	out := make([]dto.RecommendationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, recommendationToDTO(it))
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func recommendationToDTO(it usecase.RecommendationItem) dto.RecommendationResponse {
	categories := make(map[string]dto.BreakdownCategoryItem, len(it.Breakdown.Categories))
	for name, cb := range it.Breakdown.Categories {
		categories[name] = dto.BreakdownCategoryItem{
			Matched:      cb.Matched,
			Contribution: cb.Contribution,
		}
	}

	posted := ""
	if it.PostedAt != nil && !it.PostedAt.IsZero() {
		posted = it.PostedAt.UTC().Format(time.RFC3339)
	}

	return dto.RecommendationResponse{
		ID:          it.ID,
		Source:      it.Source,
		Title:       it.Title,
		Company:     it.Company,
		Location:    it.Location,
		Description: it.Description,
		ApplyURL:    it.ApplyURL,
		PostedAt:    posted,
		IngestedAt:  it.IngestedAt.UTC().Format(time.RFC3339),
		Score:       it.Score,
		Breakdown: dto.BreakdownResponse{
			Categories:  categories,
			BadKeywords: it.Breakdown.BadKeywords,
		},
	}
}

func parseQueryFloat(c fiber.Ctx, key string, defaultVal float64) (float64, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	return strconv.ParseFloat(s, 64)
}

func mapRecommendationUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrStorageUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
