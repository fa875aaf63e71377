package matching

import (
	"skillmatch-pro/internal/domain/candidate"
	"skillmatch-pro/internal/domain/job"
	"skillmatch-pro/internal/matching/scoring"
)

// BuildJobRequest composes a scoring request with the candidate as query
// and the job pool as ranked items. Pool order is preserved; duplicate job
// ids are dropped, first occurrence wins.
func BuildJobRequest(query candidate.Profile, pool []job.Job) scoring.Request {
	items := make([]scoring.Item, 0, len(pool))
	seen := make(map[int64]struct{}, len(pool))
	for _, j := range pool {
		if _, ok := seen[j.ID]; ok {
			continue
		}
		seen[j.ID] = struct{}{}
		items = append(items, scoring.Item{ID: j.ID, Text: ProjectJob(j)})
	}
	return scoring.Request{QueryText: ProjectCandidate(query), Items: items}
}

// BuildCandidateRequest composes the reverse direction: the job is the
// query and candidate profiles are the pool, keyed by their user ids.
func BuildCandidateRequest(query job.Job, pool []candidate.Profile) scoring.Request {
	items := make([]scoring.Item, 0, len(pool))
	seen := make(map[int64]struct{}, len(pool))
	for _, c := range pool {
		if _, ok := seen[c.UserID]; ok {
			continue
		}
		seen[c.UserID] = struct{}{}
		items = append(items, scoring.Item{ID: c.UserID, Text: ProjectCandidate(c)})
	}
	return scoring.Request{QueryText: ProjectJob(query), Items: items}
}
