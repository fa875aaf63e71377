package usecase

import (
	"context"
	"errors"
	"testing"

	"skillmatch-pro/internal/domain/candidate"
	"skillmatch-pro/internal/domain/review"
)

type stubReviewRepo struct {
	reviews []review.Review
	nextID  int64
}

func (s *stubReviewRepo) Create(_ context.Context, r review.Review) (review.Review, error) {
	s.nextID++
	r.ID = s.nextID
	s.reviews = append(s.reviews, r)
	return r, nil
}

func (s *stubReviewRepo) ListForCandidate(_ context.Context, candidateUserID int64) ([]review.Review, error) {
	var out []review.Review
	for _, r := range s.reviews {
		if r.CandidateUserID == candidateUserID {
			out = append(out, r)
		}
	}
	return out, nil
}

func TestCandidate_GetOwnProfile(t *testing.T) {
	repo := &stubCandidateRepo{profiles: map[int64]candidate.Profile{
		7: {UserID: 7, Skills: "Go"},
	}}
	u := NewCandidateUsecase(repo, &stubReviewRepo{})

	p, err := u.GetOwnProfile(context.Background(), 7)
	if err != nil || p.Skills != "Go" {
		t.Fatalf("got profile=%+v err=%v", p, err)
	}

	if _, err := u.GetOwnProfile(context.Background(), 999); !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("got %v, want ErrCandidateNotFound", err)
	}
	if _, err := u.GetOwnProfile(context.Background(), 0); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("got %v, want ErrUnauthorized", err)
	}
}

func TestCandidate_UpdateOwnProfile(t *testing.T) {
	repo := &stubCandidateRepo{profiles: map[int64]candidate.Profile{}}
	u := NewCandidateUsecase(repo, &stubReviewRepo{})

	p, err := u.UpdateOwnProfile(context.Background(), 7, UpdateProfileInput{
		Skills: "Go, Rust", Experience: "5y", Projects: "infra",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if p.UserID != 7 || p.Skills != "Go, Rust" {
		t.Fatalf("unexpected profile: %+v", p)
	}

	if _, err := u.UpdateOwnProfile(context.Background(), -1, UpdateProfileInput{}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("got %v, want ErrUnauthorized", err)
	}
}

func TestCandidate_GetWithReviews(t *testing.T) {
	candidates := &stubCandidateRepo{profiles: map[int64]candidate.Profile{
		7: {UserID: 7, Name: "Ana"},
	}}
	reviews := &stubReviewRepo{reviews: []review.Review{
		{ID: 1, CandidateUserID: 7, Content: "strong backend work", Rating: 5},
		{ID: 2, CandidateUserID: 8, Content: "other candidate", Rating: 3},
	}}
	u := NewCandidateUsecase(candidates, reviews)

	got, err := u.GetWithReviews(context.Background(), 7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Candidate.Name != "Ana" {
		t.Fatalf("unexpected candidate: %+v", got.Candidate)
	}
	if len(got.Reviews) != 1 || got.Reviews[0].ID != 1 {
		t.Fatalf("unexpected reviews: %+v", got.Reviews)
	}

	if _, err := u.GetWithReviews(context.Background(), 999); !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("got %v, want ErrCandidateNotFound", err)
	}
}

func TestReviews_Create(t *testing.T) {
	candidates := &stubCandidateRepo{profiles: map[int64]candidate.Profile{
		7: {UserID: 7},
	}}
	repo := &stubReviewRepo{}
	u := NewReviewUsecase(repo, candidates)

	r, err := u.Create(context.Background(), 3, 7, CreateReviewInput{Content: "  solid  ", Rating: 4})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if r.MentorID != 3 || r.CandidateUserID != 7 || r.Content != "solid" || r.Rating != 4 {
		t.Fatalf("unexpected review: %+v", r)
	}
}

func TestReviews_Create_Validation(t *testing.T) {
	candidates := &stubCandidateRepo{profiles: map[int64]candidate.Profile{7: {UserID: 7}}}
	u := NewReviewUsecase(&stubReviewRepo{}, candidates)

	if _, err := u.Create(context.Background(), 0, 7, CreateReviewInput{Content: "x", Rating: 3}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("got %v, want ErrUnauthorized", err)
	}
	if _, err := u.Create(context.Background(), 3, 7, CreateReviewInput{Content: "  ", Rating: 3}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput for blank content", err)
	}
	for _, rating := range []int{0, 6, -1} {
		if _, err := u.Create(context.Background(), 3, 7, CreateReviewInput{Content: "x", Rating: rating}); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("rating %d: got %v, want ErrInvalidInput", rating, err)
		}
	}
	if _, err := u.Create(context.Background(), 3, 999, CreateReviewInput{Content: "x", Rating: 3}); !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("got %v, want ErrCandidateNotFound for unknown candidate", err)
	}
}
