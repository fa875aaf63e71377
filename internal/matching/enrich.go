package matching

import (
	"skillmatch-pro/internal/domain/candidate"
	"skillmatch-pro/internal/domain/job"
	"skillmatch-pro/internal/matching/scoring"
)

type JobMatch struct {
	Job   *job.Job `json:"job"`
	Score float64  `json:"score"`
}

type CandidateMatch struct {
	Candidate *candidate.Profile `json:"candidate"`
	Score     float64            `json:"score"`
}

// EnrichJobs joins scored pairs back onto full job entities, keeping the
// scoring service's rank order. A pair whose id is missing from the pool
// is kept with a nil job rather than dropped.
func EnrichJobs(pairs []scoring.Pair, pool []job.Job) []JobMatch {
	byID := make(map[int64]*job.Job, len(pool))
	for i := range pool {
		if _, ok := byID[pool[i].ID]; !ok {
			byID[pool[i].ID] = &pool[i]
		}
	}

	out := make([]JobMatch, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, JobMatch{Job: byID[p.ID], Score: p.Score})
	}
	return out
}

// EnrichCandidates is the candidate-pool counterpart of EnrichJobs.
func EnrichCandidates(pairs []scoring.Pair, pool []candidate.Profile) []CandidateMatch {
	byID := make(map[int64]*candidate.Profile, len(pool))
	for i := range pool {
		if _, ok := byID[pool[i].UserID]; !ok {
			byID[pool[i].UserID] = &pool[i]
		}
	}

	out := make([]CandidateMatch, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, CandidateMatch{Candidate: byID[p.ID], Score: p.Score})
	}
	return out
}
