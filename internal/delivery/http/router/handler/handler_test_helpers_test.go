package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	"pizzeria/internal/delivery/http/middleware"
	"pizzeria/internal/delivery/http/validator"
	"pizzeria/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

// newJSONContext builds an echo context with a JSON request body.
func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// newFormContext builds an echo context with a form-encoded request body.
func newFormContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// setCurrentUser mimics what the auth middleware does after token validation.
func setCurrentUser(c echo.Context, user *entity.User) {
	c.Set("currentUser", user)
}

func newHandlerTestUser(username string, isStaff bool) *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Username: username,
		Email:    username + "@example.com",
		IsActive: true,
		IsStaff:  isStaff,
	}
}

// renderError routes a handler error through the same error handler the
// server installs, so tests observe the HTTP status clients would see.
func renderError(err error, c echo.Context) {
	middleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(err, c)
}
