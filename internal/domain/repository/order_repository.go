// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"pizzeria/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
// Owner-scoped lookups also return it for orders that belong to someone else,
// so callers cannot probe for the existence of other users' orders.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// Create persists a new order entity to the storage.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order by its unique ID, regardless of owner.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDAndUserID retrieves a single order owned by the given user.
	// Returns ErrOrderNotFound when the order does not exist or is owned by another user.
	FindByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*entity.Order, error)

	// FindAll retrieves every order in the system, newest first.
	FindAll(ctx context.Context) ([]*entity.Order, error)

	// FindByUserID retrieves all orders owned by the given user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// Update modifies an existing order entity in the storage.
	Update(ctx context.Context, order *entity.Order) error

	// Delete removes an order by its unique ID.
	// Returns ErrOrderNotFound when no row was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
