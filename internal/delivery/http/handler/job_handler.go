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

type JobHandler struct {
	jobs     usecase.JobUsecase
	matching usecase.MatchingUsecase
}

func NewJobHandler(jobs usecase.JobUsecase, matching usecase.MatchingUsecase) *JobHandler {
	return &JobHandler{jobs: jobs, matching: matching}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Create, middleware.RequireRole(user.RoleRecruiter))
	r.Get("/:id", h.GetByID)
	r.Get("/:id/candidates", h.RankCandidates, middleware.RequireRole(user.RoleRecruiter))
}

func (h *JobHandler) List(c fiber.Ctx) error {
	items, err := h.jobs.List(c.Context(), c.Query("search"))
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	recruiterID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.CreateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.jobs.Create(c.Context(), recruiterID, usecase.CreateJobInput{
		Title:               req.Title,
		Description:         req.Description,
		RequiredSkills:      req.RequiredSkills,
		PreferredExperience: req.PreferredExperience,
	})
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, created)
}

func (h *JobHandler) GetByID(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	j, err := h.jobs.GetByID(c.Context(), id)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, j)
}

func (h *JobHandler) RankCandidates(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	matches, err := h.matching.RankCandidates(c.Context(), id)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateRankingResponse(matches))
}

func mapJobUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Title and description are required", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
