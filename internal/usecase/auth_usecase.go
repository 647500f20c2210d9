// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"pizzeria/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to create a new user account.
type SignupInput struct {
	Username string
	Email    string
	Password string
	IsActive bool
	IsStaff  bool
}

// LoginInput defines the credentials required to obtain an access token.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// SignupOutput returns the newly created user's basic information.
type SignupOutput struct {
	User *entity.User
}

// TokenOutput returns an issued bearer token.
type TokenOutput struct {
	AccessToken string
	TokenType   string
}

// AuthUsecase defines the interface for authentication-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Signup creates a new user account. Fails with a conflict error when the
	// username or email is already taken.
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)

	// Login verifies credentials and issues an access token. Unknown username
	// and wrong password are reported with one uniform error.
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)

	// Refresh issues a brand-new access token for an already-authenticated
	// user. The previous token stays valid until its own expiry.
	Refresh(ctx context.Context, user *entity.User) (*TokenOutput, error)
}
