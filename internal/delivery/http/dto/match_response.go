package dto

import (
	"skillmatch-pro/internal/domain/candidate"
	"skillmatch-pro/internal/domain/job"
	"skillmatch-pro/internal/matching"
)

type JobMatchItem struct {
	Job   *job.Job `json:"job"`
	Score float64  `json:"score"`
}

type JobRecommendationsResponse struct {
	Matches []JobMatchItem `json:"matches"`
	Cached  bool           `json:"cached"`
}

type CandidateMatchItem struct {
	Candidate *candidate.Profile `json:"candidate"`
	Score     float64            `json:"score"`
}

type CandidateRankingResponse struct {
	Matches []CandidateMatchItem `json:"matches"`
}

func NewJobRecommendationsResponse(matches []matching.JobMatch, cached bool) JobRecommendationsResponse {
	out := make([]JobMatchItem, 0, len(matches))
	for _, m := range matches {
		out = append(out, JobMatchItem{Job: m.Job, Score: m.Score})
	}
	return JobRecommendationsResponse{Matches: out, Cached: cached}
}

func NewCandidateRankingResponse(matches []matching.CandidateMatch) CandidateRankingResponse {
	out := make([]CandidateMatchItem, 0, len(matches))
	for _, m := range matches {
		out = append(out, CandidateMatchItem{Candidate: m.Candidate, Score: m.Score})
	}
	return CandidateRankingResponse{Matches: out}
}
