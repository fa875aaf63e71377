package jwt

import (
	"errors"
	"testing"
	"time"

	"skillmatch-pro/internal/domain/user"
)

func newTestService() *HMACService {
	return NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
}

func TestHMACService_AccessTokenRoundTrip(t *testing.T) {
	svc := newTestService()

	tok, err := svc.GenerateAccessToken(7, user.RoleCandidate)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 7 || claims.Role != user.RoleCandidate {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if svc.IsRefreshToken(claims) {
		t.Fatalf("access token classified as refresh")
	}
}

func TestHMACService_RefreshTokenRoundTrip(t *testing.T) {
	svc := newTestService()

	tok, err := svc.GenerateRefreshToken(7, user.RoleRecruiter)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !svc.IsRefreshToken(claims) {
		t.Fatalf("refresh token not classified as refresh")
	}
	if claims.Role != user.RoleRecruiter {
		t.Fatalf("unexpected role: %q", claims.Role)
	}
}

func TestHMACService_WrongSecretRejected(t *testing.T) {
	tok, err := newTestService().GenerateAccessToken(7, user.RoleCandidate)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	other := NewHMACService("different", "secrets", 15*time.Minute, 24*time.Hour)
	if _, err := other.ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("got %v, want ErrTokenInvalid", err)
	}
}

func TestHMACService_ExpiredToken(t *testing.T) {
	svc := newTestService()
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	tok, err := svc.GenerateAccessToken(7, user.RoleCandidate)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("got %v, want ErrTokenExpired", err)
	}
}

func TestHMACService_GarbageToken(t *testing.T) {
	if _, err := newTestService().ValidateToken("not.a.jwt"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("got %v, want ErrTokenInvalid", err)
	}
}
