package handler

import (
	"errors"

	"job-hunt-agent/internal/delivery/http/dto"
	"job-hunt-agent/internal/delivery/http/middleware"
	"job-hunt-agent/internal/domain/profile"
	"job-hunt-agent/internal/pkg/response"
	"job-hunt-agent/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type replaceProfileRequest struct {
	FullName    string              `json:"full_name"`
	Roles       []string            `json:"roles"`
	Skills      []string            `json:"skills"`
	Locations   []string            `json:"locations"`
	BadKeywords []string            `json:"bad_keywords"`
	RemoteOnly  bool                `json:"remote_only"`
	Weights     *dto.ProfileWeights `json:"weights"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("", h.GetProfile)
	r.Put("", h.ReplaceProfile)
}

func (h *ProfileHandler) GetProfile(c fiber.Ctx) error {
	prof, err := h.uc.GetProfile(c.Context())
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, profileToDTO(prof))
}

func (h *ProfileHandler) ReplaceProfile(c fiber.Ctx) error {
	var req replaceProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	in := profile.Profile{
		FullName:    req.FullName,
		Roles:       req.Roles,
		Skills:      req.Skills,
		Locations:   req.Locations,
		BadKeywords: req.BadKeywords,
		RemoteOnly:  req.RemoteOnly,
	}
	if req.Weights != nil {
		in.Weights = profile.Weights{
			Role:     req.Weights.Role,
			Skill:    req.Weights.Skill,
			Location: req.Weights.Location,
		}
	}

	prof, err := h.uc.ReplaceProfile(c.Context(), in)
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, profileToDTO(prof))
}

func profileToDTO(p profile.Profile) dto.ProfileResponse {
	out := dto.ProfileResponse{
		FullName:    p.FullName,
		Roles:       p.Roles,
		Skills:      p.Skills,
		Locations:   p.Locations,
		BadKeywords: p.BadKeywords,
		RemoteOnly:  p.RemoteOnly,
		Weights: dto.ProfileWeights{
			Role:     p.Weights.Role,
			Skill:    p.Weights.Skill,
			Location: p.Weights.Location,
		},
	}
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}

func mapProfileUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidProfile):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid profile", nil, err)
	case errors.Is(err, usecase.ErrStorageUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
