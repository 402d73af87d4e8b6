package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"golang.org/x/crypto/bcrypt"

	"github.com/deliciosaph/deliciosa/internal/config"
	"github.com/deliciosaph/deliciosa/internal/domain"
)

var tracer = otel.Tracer("auth")

// ErrInvalidCredentials is returned for both unknown accounts and wrong
// passwords, so login failures don't leak which one it was.
var ErrInvalidCredentials = fmt.Errorf("invalid credentials")

type UserRepository interface {
	GetAdminByEmail(ctx context.Context, email string) (domain.User, error)
}

type SessionRepository interface {
	Store(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	Revoke(ctx context.Context, sessionID string) error
	IsLive(ctx context.Context, sessionID string) (bool, error)
}

type AuthService struct {
	users    UserRepository
	sessions SessionRepository
	secret   []byte
	ttl      time.Duration
}

func NewAuthService(conf config.Auth, users UserRepository, sessions SessionRepository) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		secret:   []byte(conf.JWTSecret),
		ttl:      time.Duration(conf.SessionTTL) * time.Minute,
	}
}

type LoginResult struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Login verifies the password against the stored bcrypt hash and mints a
// session-bound JWT. The session lives in redis so logout can revoke it
// before expiry.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.Login")
	defer span.End()

	user, err := s.users.GetAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		span.RecordError(errors.Wrap(err, "user lookup failed"))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	sessionID := uuid.NewString()
	now := time.Now()

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Email: user.Email,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		span.RecordError(errors.Wrap(err, "token signing failed"))
		return nil, err
	}

	if err := s.sessions.Store(ctx, sessionID, user.ID, s.ttl); err != nil {
		span.RecordError(errors.Wrap(err, "session store failed"))
		return nil, err
	}

	return &LoginResult{Token: token, User: user}, nil
}

type AuthResult struct {
	UserID    string
	Email     string
	SessionID string
}

// Verify validates a bearer token and checks the session is still live.
func (s *AuthService) Verify(ctx context.Context, tokenString string) (*AuthResult, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.Verify")
	defer span.End()

	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		span.RecordError(errors.Wrap(err, "jwt validation failed"))
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	live, err := s.sessions.IsLive(ctx, claims.ID)
	if err != nil {
		span.RecordError(errors.Wrap(err, "session lookup failed"))
		return nil, err
	}
	if !live {
		return nil, fmt.Errorf("session revoked")
	}

	return &AuthResult{
		UserID:    claims.Subject,
		Email:     claims.Email,
		SessionID: claims.ID,
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Revoke(ctx, sessionID)
}
