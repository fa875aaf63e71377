package dto

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
	Projects   string `json:"projects"`
}

type CreateJobRequest struct {
	Title               string `json:"title"`
	Description         string `json:"description"`
	RequiredSkills      string `json:"required_skills"`
	PreferredExperience string `json:"preferred_experience"`
}

type CreateReviewRequest struct {
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}
