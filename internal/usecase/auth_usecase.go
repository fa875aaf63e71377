package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"skillmatch-pro/internal/domain/candidate"
	"skillmatch-pro/internal/domain/user"
	"skillmatch-pro/internal/pkg/jwt"
)

var (
	ErrUnauthorized           = errors.New("unauthorized")
	ErrInvalidInput           = errors.New("invalid input")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidRefreshToken    = errors.New("invalid refresh token")
	ErrRefreshTokenExpired    = errors.New("refresh token expired")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type LoginInput struct {
	Email    string
	Password string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, TokenPair, error)
	Login(ctx context.Context, in LoginInput) (user.User, TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}

type Auth struct {
	users      user.Repository
	candidates candidate.Repository
	jwt        jwt.Service
	logger     *log.Logger
}

func NewAuthUsecase(users user.Repository, candidates candidate.Repository, jwtSvc jwt.Service, logger *log.Logger) *Auth {
	return &Auth{users: users, candidates: candidates, jwt: jwtSvc, logger: logger}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (user.User, TokenPair, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	role, roleOK := user.ParseRole(strings.TrimSpace(in.Role))
	if name == "" || email == "" || !roleOK || !isValidPassword(in.Password) {
		return user.User{}, TokenPair{}, ErrInvalidInput
	}

	exists, err := u.users.ExistsByEmail(ctx, email)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}
	if exists {
		return user.User{}, TokenPair{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}

	created, err := u.users.Create(ctx, user.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}

	// Candidates start with an empty profile so matching has a row to
	// project even before they fill anything in.
	if role == user.RoleCandidate {
		if _, err := u.candidates.Create(ctx, candidate.Profile{UserID: created.ID}); err != nil {
			if u.logger != nil {
				u.logger.Printf("[Auth] empty profile create failed user_id=%d err=%v", created.ID, err)
			}
			return user.User{}, TokenPair{}, ErrInternal
		}
	}

	tokens, err := u.issueTokens(created)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}
	return sanitizeUser(created), tokens, nil
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (user.User, TokenPair, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, TokenPair{}, ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, TokenPair{}, ErrInvalidCredentials
		}
		return user.User{}, TokenPair{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, TokenPair{}, ErrInvalidCredentials
	}

	tokens, err := u.issueTokens(usr)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}
	return sanitizeUser(usr), tokens, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	if refreshToken == "" {
		return TokenPair{}, ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenPair{}, ErrRefreshTokenExpired
		}
		return TokenPair{}, ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return TokenPair{}, ErrInvalidRefreshToken
	}

	usr, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	return u.issueTokens(usr)
}

func (u *Auth) issueTokens(usr user.User) (TokenPair, error) {
	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Role)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID, usr.Role)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= 8
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
