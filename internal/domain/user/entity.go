package user

import "time"

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleRecruiter Role = "recruiter"
	RoleMentor    Role = "mentor"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCandidate, RoleRecruiter, RoleMentor:
		return Role(s), true
	}
	return "", false
}

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
