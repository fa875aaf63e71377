package dto

import (
	"skillmatch-pro/internal/domain/candidate"
	"skillmatch-pro/internal/domain/review"
)

type CandidateDetailResponse struct {
	Candidate candidate.Profile `json:"candidate"`
	Reviews   []review.Review   `json:"reviews"`
}
