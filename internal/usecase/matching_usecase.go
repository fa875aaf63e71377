package usecase

import (
	"context"
	"errors"
	"log"

	"skillmatch-pro/internal/domain/candidate"
	"skillmatch-pro/internal/domain/job"
	"skillmatch-pro/internal/matching"
	"skillmatch-pro/internal/matching/scoring"
	"skillmatch-pro/internal/ws"
)

var (
	ErrCandidateNotFound  = errors.New("candidate profile not found")
	ErrJobNotFound        = errors.New("job not found")
	ErrScoringUnavailable = errors.New("scoring service unavailable")
	ErrScoringFailed      = errors.New("scoring service failed")
)

type MatchingUsecase interface {
	RecommendJobs(ctx context.Context, candidateUserID int64) ([]matching.JobMatch, bool, error)
	RankCandidates(ctx context.Context, jobID int64) ([]matching.CandidateMatch, error)
}

// Matching orchestrates the scoring pipeline: build a request from domain
// entities, delegate similarity to the external scoring service, join the
// ranked ids back onto full entities. Job recommendations are memoized
// per candidate; candidate ranking is recomputed on every call.
type Matching struct {
	candidates candidate.Repository
	jobs       job.Repository
	scorer     scoring.Client
	cache      *matching.RecommendationCache
	logger     *log.Logger
}

func NewMatchingUsecase(
	candidates candidate.Repository,
	jobs job.Repository,
	scorer scoring.Client,
	cache *matching.RecommendationCache,
	logger *log.Logger,
) *Matching {
	return &Matching{candidates: candidates, jobs: jobs, scorer: scorer, cache: cache, logger: logger}
}

func (u *Matching) RecommendJobs(ctx context.Context, candidateUserID int64) ([]matching.JobMatch, bool, error) {
	if candidateUserID <= 0 {
		return nil, false, ErrUnauthorized
	}

	// The refresh outlives any single caller: waiters coalesced onto it
	// still need the result after the first caller disconnects.
	refreshCtx := context.WithoutCancel(ctx)

	matches, cached, err := u.cache.GetOrRefresh(candidateUserID, func() ([]matching.JobMatch, error) {
		return u.refreshRecommendations(refreshCtx, candidateUserID)
	})
	if err != nil {
		return nil, false, u.mapScoringError(err, "RecommendJobs", candidateUserID)
	}

	if !cached {
		ws.NotifyRecommendationsRefreshed(candidateUserID)
	}
	return matches, cached, nil
}

func (u *Matching) refreshRecommendations(ctx context.Context, candidateUserID int64) ([]matching.JobMatch, error) {
	profile, err := u.candidates.GetByUserID(ctx, candidateUserID)
	if err != nil {
		return nil, err
	}

	jobs, err := u.jobs.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	pairs, err := u.scorer.Score(ctx, matching.BuildJobRequest(profile, jobs))
	if err != nil {
		return nil, err
	}

	return matching.EnrichJobs(pairs, jobs), nil
}

func (u *Matching) RankCandidates(ctx context.Context, jobID int64) ([]matching.CandidateMatch, error) {
	posting, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, ErrInternal
	}

	pool, err := u.candidates.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	pairs, err := u.scorer.Score(ctx, matching.BuildCandidateRequest(posting, pool))
	if err != nil {
		return nil, u.mapScoringError(err, "RankCandidates", jobID)
	}

	return matching.EnrichCandidates(pairs, pool), nil
}

func (u *Matching) mapScoringError(err error, op string, id int64) error {
	switch {
	case errors.Is(err, scoring.ErrUnavailable):
		if u.logger != nil {
			u.logger.Printf("[Matching] scoring unreachable op=%s id=%d err=%v", op, id, err)
		}
		return ErrScoringUnavailable
	case errors.Is(err, scoring.ErrService):
		if u.logger != nil {
			u.logger.Printf("[Matching] scoring failed op=%s id=%d err=%v", op, id, err)
		}
		return ErrScoringFailed
	case errors.Is(err, candidate.ErrNotFound):
		return ErrCandidateNotFound
	case errors.Is(err, job.ErrNotFound):
		return ErrJobNotFound
	default:
		if u.logger != nil {
			u.logger.Printf("[Matching] op=%s id=%d err=%v", op, id, err)
		}
		return ErrInternal
	}
}
