package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/deliciosaph/deliciosa/internal/domain"
	"github.com/deliciosaph/deliciosa/internal/present/rest/presenter"
	"github.com/deliciosaph/deliciosa/internal/service"
)

var tracer = otel.Tracer("auth")

type AuthMiddleware struct {
	auth *service.AuthService
}

func NewAuthMiddleware(auth *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// RequireAdmin rejects requests without a live admin session. The token is
// taken from the Authorization header, or from the `token` query parameter
// for websocket upgrades that cannot set headers.
func (s *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.RequireAdmin")
		defer span.End()

		token := bearerToken(c)
		if token == "" {
			return presenter.Unauthorized(c, "missing credentials")
		}

		result, err := s.auth.Verify(ctx, token)
		if err != nil {
			span.RecordError(errors.Wrap(err, "AuthMiddleware.RequireAdmin: token verification failed"))
			return presenter.Unauthorized(c, "invalid or expired session")
		}

		ctx = context.WithValue(ctx, domain.RequesterIDCtxKey, result.UserID)
		ctx = context.WithValue(ctx, domain.RequesterEmailCtxKey, result.Email)
		ctx = context.WithValue(ctx, domain.SessionIDCtxKey, result.SessionID)
		span.SetAttributes(attribute.String("RequesterId", result.UserID))

		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("authorization")
	if authHeader != "" {
		split := strings.Split(authHeader, " ")
		if len(split) == 2 && split[0] == "Bearer" {
			return split[1]
		}
		return ""
	}
	return c.QueryParam("token")
}
