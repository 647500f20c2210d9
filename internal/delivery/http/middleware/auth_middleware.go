package middleware

import (
	"log/slog"
	"strings"

	"pizzeria/internal/delivery/http/response"
	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/domain/repository"
	"pizzeria/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// currentUserContextKey is the echo context key the resolved caller is stored under.
const currentUserContextKey = "currentUser"

// AuthMiddleware validates bearer tokens and resolves the calling user.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo, logger: logger}
}

// Authenticate validates the Authorization header and loads the token's
// subject from the database. Every failure mode (missing header, malformed
// token, bad signature, expiry, deleted subject) produces the same 401 so
// the response never reveals which check failed.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := extractBearerToken(c.Request().Header.Get("Authorization"))
		if !ok {
			return m.unauthorized(c)
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return m.unauthorized(c)
		}

		user, err := m.userRepo.FindByUsername(c.Request().Context(), claims.Subject)
		if err != nil {
			return m.unauthorized(c)
		}

		c.Set(currentUserContextKey, user)

		return next(c)
	}
}

// RequireStaff rejects non-staff callers. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return m.unauthorized(c)
		}

		if !user.IsStaff {
			return response.Forbidden(c, domainerrors.ErrStaffOnly.ErrorCode(), domainerrors.ErrStaffOnly.Message())
		}

		return next(c)
	}
}

func (m *AuthMiddleware) unauthorized(c echo.Context) error {
	return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), domainerrors.ErrUnauthenticated.Message())
}

// CurrentUser returns the caller resolved by Authenticate.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(currentUserContextKey).(*entity.User)

	return user, ok
}

// extractBearerToken pulls the raw token out of an Authorization header.
func extractBearerToken(authHeader string) (string, bool) {
	if authHeader == "" {
		return "", false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", false
	}

	return tokenString, true
}
