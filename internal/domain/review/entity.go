package review

import "time"

// Review is mentor feedback on a candidate, keyed by the candidate's user id.
type Review struct {
	ID              int64     `json:"id"`
	MentorID        int64     `json:"mentor_id"`
	CandidateUserID int64     `json:"candidate_user_id"`
	Content         string    `json:"content"`
	Rating          int       `json:"rating"`
	MentorName      string    `json:"mentor_name"`
	MentorEmail     string    `json:"mentor_email"`
	CreatedAt       time.Time `json:"created_at"`
}
