package candidate

import "time"

// Profile is the candidate's free-text profile keyed by the owning user id.
// Skills, experience and projects are unstructured text; the matching layer
// flattens them for the scoring service.
type Profile struct {
	UserID     int64     `json:"user_id"`
	Skills     string    `json:"skills"`
	Experience string    `json:"experience"`
	Projects   string    `json:"projects"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
