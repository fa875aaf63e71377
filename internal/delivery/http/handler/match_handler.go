package handler

import (
	"errors"

	"skillmatch-pro/internal/delivery/http/dto"
	"skillmatch-pro/internal/delivery/http/middleware"
	"skillmatch-pro/internal/domain/user"
	"skillmatch-pro/internal/pkg/response"
	"skillmatch-pro/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs", h.RecommendJobs, middleware.RequireRole(user.RoleCandidate))
}

func (h *MatchHandler) RecommendJobs(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	matches, cached, err := h.uc.RecommendJobs(c.Context(), userID)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobRecommendationsResponse(matches, cached))
}

// mapMatchingUsecaseError keeps the dependency-down case distinct: a 503
// tells the caller the scoring service is unreachable and worth retrying,
// while every other scoring failure collapses into a 500.
func mapMatchingUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrScoringUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Matching service unavailable", nil, err)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate profile not found", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
