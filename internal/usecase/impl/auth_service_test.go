package impl

import (
	"context"
	"testing"

	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/domain/repository"
	"pizzeria/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Username: "mario",
		Email:    "mario@example.com",
		Password: "Password123!",
		IsActive: true,
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := newTestRepositoryFactory(t)

			mockFactory.userRepo.EXPECT().
				ExistsByUsernameOrEmail(ctx, input.Username, input.Email).
				Return(false, nil)

			mockFactory.userRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(nil)

			return fn(mockFactory.factory)
		})

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Username, output.User.Username)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.True(t, output.User.IsActive)
	assert.False(t, output.User.IsStaff)
}

func TestAuthService_Signup_UsernameOrEmailTaken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Username: "mario",
		Email:    "mario@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := newTestRepositoryFactory(t)

			mockFactory.userRepo.EXPECT().
				ExistsByUsernameOrEmail(ctx, input.Username, input.Email).
				Return(true, nil)

			return fn(mockFactory.factory)
		})

	output, err := fx.service.Signup(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Signup_HashError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Username: "mario",
		Email:    "mario@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt error"))

	output, err := fx.service.Signup(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAuthService_Signup_TransactionError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Username: "mario",
		Email:    "mario@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("database error"))

	output, err := fx.service.Signup(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := newTestUser("mario", false)
	input := &usecase.LoginInput{Username: "mario", Password: "Password123!"}

	fx.userRepo.EXPECT().FindByUsername(ctx, "mario").Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().Issue(user.Username).Return("signed-token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Username: "nobody", Password: "Password123!"}

	fx.userRepo.EXPECT().FindByUsername(ctx, "nobody").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := newTestUser("mario", false)
	input := &usecase.LoginInput{Username: "mario", Password: "wrong-password"}

	fx.userRepo.EXPECT().FindByUsername(ctx, "mario").Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	// A wrong password and an unknown username yield the same error so the
	// response can't be used to enumerate accounts.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_TokenIssueError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := newTestUser("mario", false)
	input := &usecase.LoginInput{Username: "mario", Password: "Password123!"}

	fx.userRepo.EXPECT().FindByUsername(ctx, "mario").Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().Issue(user.Username).Return("", errors.New("signing error"))

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenIssueFailed))
}

func TestAuthService_Refresh_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := newTestUser("mario", false)

	fx.tokenService.EXPECT().Issue(user.Username).Return("fresh-token", nil)

	output, err := fx.service.Refresh(ctx, user)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "fresh-token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
}

func TestAuthService_Refresh_IssueError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := newTestUser("mario", false)

	fx.tokenService.EXPECT().Issue(user.Username).Return("", errors.New("signing error"))

	output, err := fx.service.Refresh(ctx, user)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenIssueFailed))
}
