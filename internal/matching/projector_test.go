package matching

import (
	"testing"

	"skillmatch-pro/internal/domain/candidate"
	"skillmatch-pro/internal/domain/job"
)

func TestProjectCandidate_FixedFieldOrder(t *testing.T) {
	p := candidate.Profile{
		UserID:     7,
		Skills:     "Go, Rust",
		Experience: "5 years backend",
		Projects:   "payments gateway",
	}

	got := ProjectCandidate(p)
	want := "Go, Rust 5 years backend payments gateway"
	if got != want {
		t.Fatalf("projection mismatch: got %q want %q", got, want)
	}
}

func TestProjectCandidate_EmptyFieldsKeepSeparators(t *testing.T) {
	p := candidate.Profile{UserID: 1, Skills: "Go"}

	got := ProjectCandidate(p)
	want := "Go  "
	if got != want {
		t.Fatalf("projection mismatch: got %q want %q", got, want)
	}
}

func TestProjectCandidate_Deterministic(t *testing.T) {
	p := candidate.Profile{Skills: "Go", Experience: "x", Projects: "y"}
	if ProjectCandidate(p) != ProjectCandidate(p) {
		t.Fatalf("projection not deterministic")
	}
}

func TestProjectJob_FixedFieldOrder(t *testing.T) {
	j := job.Job{
		ID:                  1,
		Title:               "Backend Engineer",
		Description:         "Build APIs",
		RequiredSkills:      "Go",
		PreferredExperience: "3 years",
	}

	got := ProjectJob(j)
	want := "Backend Engineer Build APIs Go 3 years"
	if got != want {
		t.Fatalf("projection mismatch: got %q want %q", got, want)
	}
}

func TestProjectJob_AllEmpty(t *testing.T) {
	got := ProjectJob(job.Job{ID: 1})
	want := "   "
	if got != want {
		t.Fatalf("projection mismatch: got %q want %q", got, want)
	}
}
