package handler

import (
	"errors"
	"strconv"

	"skillmatch-pro/internal/delivery/http/dto"
	"skillmatch-pro/internal/delivery/http/middleware"
	"skillmatch-pro/internal/domain/user"
	"skillmatch-pro/internal/pkg/response"
	"skillmatch-pro/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CandidateHandler struct {
	candidates usecase.CandidateUsecase
	reviews    usecase.ReviewUsecase
}

func NewCandidateHandler(candidates usecase.CandidateUsecase, reviews usecase.ReviewUsecase) *CandidateHandler {
	return &CandidateHandler{candidates: candidates, reviews: reviews}
}

func (h *CandidateHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/me", h.GetMe, middleware.RequireRole(user.RoleCandidate))
	r.Put("/me", h.UpdateMe, middleware.RequireRole(user.RoleCandidate))
	r.Get("/:id", h.GetByID)
	r.Post("/:id/reviews", h.CreateReview, middleware.RequireRole(user.RoleMentor))
}

func (h *CandidateHandler) List(c fiber.Ctx) error {
	items, err := h.candidates.List(c.Context(), c.Query("search"))
	if err != nil {
		return mapCandidateUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *CandidateHandler) GetMe(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	p, err := h.candidates.GetOwnProfile(c.Context(), userID)
	if err != nil {
		return mapCandidateUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, p)
}

func (h *CandidateHandler) UpdateMe(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.UpdateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.candidates.UpdateOwnProfile(c.Context(), userID, usecase.UpdateProfileInput{
		Skills:     req.Skills,
		Experience: req.Experience,
		Projects:   req.Projects,
	})
	if err != nil {
		return mapCandidateUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, p)
}

func (h *CandidateHandler) GetByID(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	detail, err := h.candidates.GetWithReviews(c.Context(), id)
	if err != nil {
		return mapCandidateUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.CandidateDetailResponse{
		Candidate: detail.Candidate,
		Reviews:   detail.Reviews,
	})
}

func (h *CandidateHandler) CreateReview(c fiber.Ctx) error {
	mentorID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	candidateUserID, err := parseIDParam(c, "id")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req dto.CreateReviewRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.reviews.Create(c.Context(), mentorID, candidateUserID, usecase.CreateReviewInput{
		Content: req.Content,
		Rating:  req.Rating,
	})
	if err != nil {
		return mapCandidateUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, created)
}

func parseIDParam(c fiber.Ctx, key string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(key), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

func mapCandidateUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Content and rating are required", nil, err)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate profile not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
