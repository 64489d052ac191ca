package handler

import (
	"errors"
	"strings"
	"time"

	"job-hunt-agent/internal/delivery/http/dto"
	"job-hunt-agent/internal/delivery/http/middleware"
	"job-hunt-agent/internal/pkg/response"
	"job-hunt-agent/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type IngestHandler struct {
	uc usecase.IngestUsecase
}

type ingestCandidateRequest struct {
	Source      string `json:"source"`
	ExternalID  string `json:"external_id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	ApplyURL    string `json:"apply_url"`
	PostedAt    string `json:"posted_at"`
}

type ingestBatchRequest struct {
	Jobs []ingestCandidateRequest `json:"jobs"`
}

func NewIngestHandler(uc usecase.IngestUsecase) *IngestHandler {
	return &IngestHandler{uc: uc}
}

func (h *IngestHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/ingest/batch", h.IngestBatch)
}

func (h *IngestHandler) IngestBatch(c fiber.Ctx) error {
	var req ingestBatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	candidates := make([]usecase.Candidate, 0, len(req.Jobs))
	for _, j := range req.Jobs {
		candidates = append(candidates, usecase.Candidate{
			Source:      j.Source,
			ExternalID:  j.ExternalID,
			Title:       j.Title,
			Company:     j.Company,
			Location:    j.Location,
			Description: j.Description,
			ApplyURL:    j.ApplyURL,
			PostedAt:    parsePostedAt(j.PostedAt),
		})
	}

	results, err := h.uc.IngestBatch(c.Context(), candidates)
	if err != nil {
		return mapIngestUsecaseError(err)
	}

	out := dto.IngestBatchResponse{Results: make([]dto.IngestResultResponse, 0, len(results))}
	for _, res := range results {
		out.Results = append(out.Results, dto.IngestResultResponse{
			Status:      string(res.Status),
			Reason:      res.Reason,
			Score:       res.Score,
			Outcome:     string(res.Outcome),
			CanonicalID: res.CanonicalID,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

// parsePostedAt treats an unparseable origin timestamp as absent rather than
// failing the item; the timestamp is optional in the first place.
func parsePostedAt(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

func mapIngestUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrStorageUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
