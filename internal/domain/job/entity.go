package job

import "time"

type Job struct {
	ID                  int64     `json:"id"`
	RecruiterID         int64     `json:"recruiter_id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	RequiredSkills      string    `json:"required_skills"`
	PreferredExperience string    `json:"preferred_experience"`
	RecruiterName       string    `json:"recruiter_name"`
	RecruiterEmail      string    `json:"recruiter_email"`
	CreatedAt           time.Time `json:"created_at"`
}
