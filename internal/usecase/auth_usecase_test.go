package usecase

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"skillmatch-pro/internal/domain/candidate"
	"skillmatch-pro/internal/domain/user"
	"skillmatch-pro/internal/pkg/jwt"
)

type stubUserRepo struct {
	byEmail   map[string]user.User
	byID      map[int64]user.User
	nextID    int64
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byEmail: make(map[string]user.User),
		byID:    make(map[int64]user.User),
		nextID:  1,
	}
}

func (s *stubUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	if s.createErr != nil {
		return user.User{}, s.createErr
	}
	u.ID = s.nextID
	s.nextID++
	s.byEmail[u.Email] = u
	s.byID[u.ID] = u
	return u, nil
}

func (s *stubUserRepo) GetByID(_ context.Context, id int64) (user.User, error) {
	u, ok := s.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (s *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := s.byEmail[email]
	return ok, nil
}

type recordingCandidateRepo struct {
	stubCandidateRepo
	created []candidate.Profile
}

func (r *recordingCandidateRepo) Create(_ context.Context, p candidate.Profile) (candidate.Profile, error) {
	r.created = append(r.created, p)
	return p, nil
}

type stubJWT struct {
	claims      jwt.Claims
	validateErr error
}

func (s *stubJWT) GenerateAccessToken(userID int64, role user.Role) (string, error) {
	return "access", nil
}

func (s *stubJWT) GenerateRefreshToken(userID int64, role user.Role) (string, error) {
	return "refresh", nil
}

func (s *stubJWT) ValidateToken(_ string) (jwt.Claims, error) {
	return s.claims, s.validateErr
}

func (s *stubJWT) IsRefreshToken(claims jwt.Claims) bool {
	return claims.TokenType == jwt.TokenTypeRefresh
}

func TestAuth_Register_Candidate(t *testing.T) {
	users := newStubUserRepo()
	candidates := &recordingCandidateRepo{}
	u := NewAuthUsecase(users, candidates, &stubJWT{}, nil)

	usr, tokens, err := u.Register(context.Background(), RegisterInput{
		Name:     "Ana",
		Email:    "  Ana@Example.COM ",
		Password: "longenough",
		Role:     "candidate",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if usr.Email != "ana@example.com" {
		t.Fatalf("email not normalized: %q", usr.Email)
	}
	if usr.Role != user.RoleCandidate {
		t.Fatalf("unexpected role: %q", usr.Role)
	}
	if usr.PasswordHash != "" {
		t.Fatalf("password hash leaked in response")
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatalf("tokens not issued: %+v", tokens)
	}
	if len(candidates.created) != 1 || candidates.created[0].UserID != usr.ID {
		t.Fatalf("empty candidate profile not created: %+v", candidates.created)
	}

	// Stored hash must verify against the original password.
	stored := users.byEmail["ana@example.com"]
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("longenough")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuth_Register_RecruiterSkipsProfile(t *testing.T) {
	candidates := &recordingCandidateRepo{}
	u := NewAuthUsecase(newStubUserRepo(), candidates, &stubJWT{}, nil)

	if _, _, err := u.Register(context.Background(), RegisterInput{
		Name: "Rex", Email: "rex@co.com", Password: "longenough", Role: "recruiter",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if len(candidates.created) != 0 {
		t.Fatalf("recruiter should not get a candidate profile: %+v", candidates.created)
	}
}

func TestAuth_Register_Validation(t *testing.T) {
	cases := []struct {
		name string
		in   RegisterInput
	}{
		{"blank name", RegisterInput{Email: "a@b.com", Password: "longenough", Role: "candidate"}},
		{"blank email", RegisterInput{Name: "A", Password: "longenough", Role: "candidate"}},
		{"short password", RegisterInput{Name: "A", Email: "a@b.com", Password: "short", Role: "candidate"}},
		{"unknown role", RegisterInput{Name: "A", Email: "a@b.com", Password: "longenough", Role: "admin"}},
	}

	u := NewAuthUsecase(newStubUserRepo(), &recordingCandidateRepo{}, &stubJWT{}, nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := u.Register(context.Background(), tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("got %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestAuth_Register_DuplicateEmail(t *testing.T) {
	u := NewAuthUsecase(newStubUserRepo(), &recordingCandidateRepo{}, &stubJWT{}, nil)

	in := RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "longenough", Role: "mentor"}
	if _, _, err := u.Register(context.Background(), in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, _, err := u.Register(context.Background(), in); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("got %v, want ErrEmailAlreadyRegistered", err)
	}
}

func TestAuth_Login(t *testing.T) {
	users := newStubUserRepo()
	u := NewAuthUsecase(users, &recordingCandidateRepo{}, &stubJWT{}, nil)

	if _, _, err := u.Register(context.Background(), RegisterInput{
		Name: "Ana", Email: "ana@example.com", Password: "longenough", Role: "candidate",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	usr, tokens, err := u.Login(context.Background(), LoginInput{Email: "ANA@example.com", Password: "longenough"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if usr.PasswordHash != "" || tokens.AccessToken == "" {
		t.Fatalf("unexpected login result: user=%+v tokens=%+v", usr, tokens)
	}

	if _, _, err := u.Login(context.Background(), LoginInput{Email: "ana@example.com", Password: "wrongpass"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("got %v, want ErrInvalidCredentials for bad password", err)
	}
	if _, _, err := u.Login(context.Background(), LoginInput{Email: "ghost@example.com", Password: "longenough"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("got %v, want ErrInvalidCredentials for unknown email", err)
	}
}

func TestAuth_Refresh(t *testing.T) {
	users := newStubUserRepo()
	seeded, err := users.Create(context.Background(), user.User{Email: "ana@example.com", Role: user.RoleCandidate})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	t.Run("valid refresh token", func(t *testing.T) {
		svc := &stubJWT{claims: jwt.Claims{UserID: seeded.ID, Role: seeded.Role, TokenType: jwt.TokenTypeRefresh}}
		u := NewAuthUsecase(users, &recordingCandidateRepo{}, svc, nil)

		tokens, err := u.Refresh(context.Background(), "refresh-token")
		if err != nil {
			t.Fatalf("refresh: %v", err)
		}
		if tokens.AccessToken == "" || tokens.RefreshToken == "" {
			t.Fatalf("tokens not reissued: %+v", tokens)
		}
	})

	t.Run("access token rejected", func(t *testing.T) {
		svc := &stubJWT{claims: jwt.Claims{UserID: seeded.ID, TokenType: jwt.TokenTypeAccess}}
		u := NewAuthUsecase(users, &recordingCandidateRepo{}, svc, nil)

		if _, err := u.Refresh(context.Background(), "access-token"); !errors.Is(err, ErrInvalidRefreshToken) {
			t.Fatalf("got %v, want ErrInvalidRefreshToken", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		svc := &stubJWT{validateErr: jwt.ErrTokenExpired}
		u := NewAuthUsecase(users, &recordingCandidateRepo{}, svc, nil)

		if _, err := u.Refresh(context.Background(), "stale"); !errors.Is(err, ErrRefreshTokenExpired) {
			t.Fatalf("got %v, want ErrRefreshTokenExpired", err)
		}
	})

	t.Run("empty token", func(t *testing.T) {
		u := NewAuthUsecase(users, &recordingCandidateRepo{}, &stubJWT{}, nil)
		if _, err := u.Refresh(context.Background(), ""); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("got %v, want ErrUnauthorized", err)
		}
	})
}
