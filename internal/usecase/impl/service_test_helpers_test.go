package impl

import (
	"io"
	"log/slog"
	"testing"

	"pizzeria/internal/domain/entity"
	mockRepo "pizzeria/internal/mocks/repository"
	mockSvc "pizzeria/internal/mocks/service"
	"pizzeria/internal/usecase"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestUser(username string, isStaff bool) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hashed_password",
		IsActive:     true,
		IsStaff:      isStaff,
	}
}

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(
		txManager,
		userRepo,
		hasher,
		tokenService,
		newDiscardLogger(),
	)

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// testRepositoryFactory bundles a mock factory with the transaction-scoped
// repositories it hands out.
type testRepositoryFactory struct {
	factory   *mockRepo.MockRepositoryFactory
	userRepo  *mockRepo.MockUserRepository
	orderRepo *mockRepo.MockOrderRepository
}

func newTestRepositoryFactory(t *testing.T) testRepositoryFactory {
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)

	factory.EXPECT().NewUserRepository().Return(userRepo).Maybe()
	factory.EXPECT().NewOrderRepository().Return(orderRepo).Maybe()

	return testRepositoryFactory{
		factory:   factory,
		userRepo:  userRepo,
		orderRepo: orderRepo,
	}
}

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	orderRepo *mockRepo.MockOrderRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewOrderService(orderRepo, newDiscardLogger())

	return orderServiceFixtures{
		service:   service,
		orderRepo: orderRepo,
	}
}
