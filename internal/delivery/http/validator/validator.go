// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "pizzeria/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator instance used by the Echo server.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a CustomValidator with struct tag validation enabled.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Validation failures are surfaced as
// application errors so the error handler renders them as 400 responses.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
