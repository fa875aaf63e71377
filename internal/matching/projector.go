package matching

import (
	"strings"

	"skillmatch-pro/internal/domain/candidate"
	"skillmatch-pro/internal/domain/job"
)

// ProjectCandidate flattens a candidate profile into the text the scoring
// service scores against. Field order is fixed; empty attributes still
// contribute their separator so the projection stays deterministic.
func ProjectCandidate(p candidate.Profile) string {
	return strings.Join([]string{p.Skills, p.Experience, p.Projects}, " ")
}

// ProjectJob flattens a job posting the same way.
func ProjectJob(j job.Job) string {
	return strings.Join([]string{j.Title, j.Description, j.RequiredSkills, j.PreferredExperience}, " ")
}
