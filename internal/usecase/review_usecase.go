package usecase

import (
	"context"
	"errors"
	"strings"

	"skillmatch-pro/internal/domain/candidate"
	"skillmatch-pro/internal/domain/review"
)

type CreateReviewInput struct {
	Content string
	Rating  int
}

type ReviewUsecase interface {
	Create(ctx context.Context, mentorID, candidateUserID int64, in CreateReviewInput) (review.Review, error)
}

type Reviews struct {
	reviews    review.Repository
	candidates candidate.Repository
}

func NewReviewUsecase(reviews review.Repository, candidates candidate.Repository) *Reviews {
	return &Reviews{reviews: reviews, candidates: candidates}
}

func (u *Reviews) Create(ctx context.Context, mentorID, candidateUserID int64, in CreateReviewInput) (review.Review, error) {
	if mentorID <= 0 {
		return review.Review{}, ErrUnauthorized
	}
	content := strings.TrimSpace(in.Content)
	if content == "" || in.Rating < 1 || in.Rating > 5 {
		return review.Review{}, ErrInvalidInput
	}

	if _, err := u.candidates.GetByUserID(ctx, candidateUserID); err != nil {
		if errors.Is(err, candidate.ErrNotFound) {
			return review.Review{}, ErrCandidateNotFound
		}
		return review.Review{}, ErrInternal
	}

	created, err := u.reviews.Create(ctx, review.Review{
		MentorID:        mentorID,
		CandidateUserID: candidateUserID,
		Content:         content,
		Rating:          in.Rating,
	})
	if err != nil {
		return review.Review{}, ErrInternal
	}
	return created, nil
}
