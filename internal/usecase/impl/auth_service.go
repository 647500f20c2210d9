// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/domain/repository"
	"pizzeria/internal/domain/service"
	"pizzeria/internal/usecase"

	"github.com/pkg/errors"
)

// tokenTypeBearer is the token_type reported alongside every issued token.
const tokenTypeBearer = "bearer"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Signup orchestrates the account creation process.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	srv.logger.Info("Starting signup", slog.String("username", input.Username))

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "signup failed")
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		IsActive:     input.IsActive,
		IsStaff:      input.IsStaff,
	}

	// The duplicate check and the insert run in one transaction so a
	// concurrent signup with the same username or email cannot slip between them.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		taken, err := userRepo.ExistsByUsernameOrEmail(ctx, input.Username, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check existing users")
		}
		if taken {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("signup failed")
		}

		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		srv.logger.Warn("Signup failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.logger.Debug("User signed up successfully", slog.Any("userID", newUser.ID))

	return &usecase.SignupOutput{User: newUser}, nil
}

// Login verifies credentials and issues a fresh access token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	srv.logger.Debug("Starting login", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same error as a wrong password, so usernames cannot be enumerated.
			srv.logger.Warn("Login failed", slog.String("username", input.Username))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user during login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, err := srv.tokenService.Issue(user.Username)
	if err != nil {
		srv.logger.Error("Failed to issue token during login", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, "login failed")
	}

	srv.logger.Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.TokenOutput{AccessToken: accessToken, TokenType: tokenTypeBearer}, nil
}

// Refresh issues a new access token for the current subject.
// The old token stays valid until its natural expiry; there is no revocation.
func (srv *authService) Refresh(_ context.Context, user *entity.User) (*usecase.TokenOutput, error) {
	accessToken, err := srv.tokenService.Issue(user.Username)
	if err != nil {
		srv.logger.Error("Failed to issue token during refresh", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, "refresh failed")
	}

	srv.logger.Debug("Token refreshed", slog.Any("userID", user.ID))

	return &usecase.TokenOutput{AccessToken: accessToken, TokenType: tokenTypeBearer}, nil
}
