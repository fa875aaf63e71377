package usecase

import (
	"context"
	"errors"
	"strings"

	"skillmatch-pro/internal/domain/candidate"
	"skillmatch-pro/internal/domain/review"
)

type UpdateProfileInput struct {
	Skills     string
	Experience string
	Projects   string
}

type CandidateWithReviews struct {
	Candidate candidate.Profile
	Reviews   []review.Review
}

type CandidateUsecase interface {
	GetOwnProfile(ctx context.Context, userID int64) (candidate.Profile, error)
	UpdateOwnProfile(ctx context.Context, userID int64, in UpdateProfileInput) (candidate.Profile, error)
	List(ctx context.Context, search string) ([]candidate.Profile, error)
	GetWithReviews(ctx context.Context, userID int64) (CandidateWithReviews, error)
}

type Candidate struct {
	candidates candidate.Repository
	reviews    review.Repository
}

func NewCandidateUsecase(candidates candidate.Repository, reviews review.Repository) *Candidate {
	return &Candidate{candidates: candidates, reviews: reviews}
}

func (u *Candidate) GetOwnProfile(ctx context.Context, userID int64) (candidate.Profile, error) {
	if userID <= 0 {
		return candidate.Profile{}, ErrUnauthorized
	}
	p, err := u.candidates.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, candidate.ErrNotFound) {
			return candidate.Profile{}, ErrCandidateNotFound
		}
		return candidate.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *Candidate) UpdateOwnProfile(ctx context.Context, userID int64, in UpdateProfileInput) (candidate.Profile, error) {
	if userID <= 0 {
		return candidate.Profile{}, ErrUnauthorized
	}
	p, err := u.candidates.Upsert(ctx, candidate.Profile{
		UserID:     userID,
		Skills:     in.Skills,
		Experience: in.Experience,
		Projects:   in.Projects,
	})
	if err != nil {
		return candidate.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *Candidate) List(ctx context.Context, search string) ([]candidate.Profile, error) {
	search = strings.TrimSpace(search)

	var (
		out []candidate.Profile
		err error
	)
	if search != "" {
		out, err = u.candidates.Search(ctx, search)
	} else {
		out, err = u.candidates.ListAll(ctx)
	}
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Candidate) GetWithReviews(ctx context.Context, userID int64) (CandidateWithReviews, error) {
	p, err := u.candidates.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, candidate.ErrNotFound) {
			return CandidateWithReviews{}, ErrCandidateNotFound
		}
		return CandidateWithReviews{}, ErrInternal
	}

	rs, err := u.reviews.ListForCandidate(ctx, userID)
	if err != nil {
		return CandidateWithReviews{}, ErrInternal
	}
	return CandidateWithReviews{Candidate: p, Reviews: rs}, nil
}
