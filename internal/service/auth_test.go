package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/deliciosaph/deliciosa/internal/config"
	"github.com/deliciosaph/deliciosa/internal/domain"
)

type mockUserRepo struct {
	user domain.User
}

func (m *mockUserRepo) GetAdminByEmail(ctx context.Context, email string) (domain.User, error) {
	if email != m.user.Email {
		return domain.User{}, domain.NotFoundError{Resource: "user"}
	}
	return m.user, nil
}

type mockSessionRepo struct {
	live map[string]bool
}

func (m *mockSessionRepo) Store(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	m.live[sessionID] = true
	return nil
}

func (m *mockSessionRepo) Revoke(ctx context.Context, sessionID string) error {
	delete(m.live, sessionID)
	return nil
}

func (m *mockSessionRepo) IsLive(ctx context.Context, sessionID string) (bool, error) {
	return m.live[sessionID], nil
}

func newAuth(t *testing.T) (*AuthService, *mockSessionRepo) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	users := &mockUserRepo{user: domain.User{
		ID:           "user-1",
		Email:        "admin@deliciosaph.com",
		PasswordHash: string(hash),
		Role:         domain.UserRoleAdmin,
	}}
	sessions := &mockSessionRepo{live: map[string]bool{}}

	auth := NewAuthService(config.Auth{JWTSecret: "test-secret", SessionTTL: 60}, users, sessions)
	return auth, sessions
}

func TestLoginVerifyLogout(t *testing.T) {
	auth, _ := newAuth(t)
	ctx := context.Background()

	result, err := auth.Login(ctx, "admin@deliciosaph.com", "correct horse")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected a token")
	}

	verified, err := auth.Verify(ctx, result.Token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if verified.UserID != "user-1" || verified.Email != "admin@deliciosaph.com" {
		t.Fatalf("unexpected auth result %+v", verified)
	}

	if err := auth.Logout(ctx, verified.SessionID); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	if _, err := auth.Verify(ctx, result.Token); err == nil {
		t.Fatalf("expected verification to fail after logout")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	auth, _ := newAuth(t)

	_, err := auth.Login(context.Background(), "admin@deliciosaph.com", "wrong")
	if err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownAccount(t *testing.T) {
	auth, _ := newAuth(t)

	_, err := auth.Login(context.Background(), "nobody@deliciosaph.com", "correct horse")
	if err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestVerifyRejectsForeignToken(t *testing.T) {
	auth, sessions := newAuth(t)

	result, err := auth.Login(context.Background(), "admin@deliciosaph.com", "correct horse")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// A service holding a different secret must reject the token even
	// though the session store would say it is live.
	foreign := NewAuthService(
		config.Auth{JWTSecret: "another-secret", SessionTTL: 60},
		&mockUserRepo{}, sessions,
	)
	if _, err := foreign.Verify(context.Background(), result.Token); err == nil {
		t.Fatalf("expected verification to fail under a different secret")
	}
}
