// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"pizzeria/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaceOrderInput defines the data required to place a new order.
type PlaceOrderInput struct {
	Quantity  int
	PizzaSize entity.PizzaSize
}

// UpdateOrderInput defines the owner-editable fields of an order.
type UpdateOrderInput struct {
	Quantity  int
	PizzaSize entity.PizzaSize
}

// UpdateOrderStatusInput defines the staff-editable status of an order.
type UpdateOrderStatusInput struct {
	Status entity.OrderStatus
}

// OrderUsecase defines the interface for order-related business operations.
// Every method receives the resolved caller so the authorization policy can
// be applied next to the data it protects.
type OrderUsecase interface {
	// PlaceOrder creates a new order owned by the caller, with status PENDING.
	PlaceOrder(ctx context.Context, user *entity.User, input *PlaceOrderInput) (*entity.Order, error)

	// ListAllOrders returns every order in the system. Staff only.
	ListAllOrders(ctx context.Context, user *entity.User) ([]*entity.Order, error)

	// GetOrder returns any order by its raw ID. Staff only.
	GetOrder(ctx context.Context, user *entity.User, orderID uuid.UUID) (*entity.Order, error)

	// ListMyOrders returns the caller's own orders.
	ListMyOrders(ctx context.Context, user *entity.User) ([]*entity.Order, error)

	// GetMyOrder returns one of the caller's own orders. Orders owned by other
	// users are reported as not found.
	GetMyOrder(ctx context.Context, user *entity.User, orderID uuid.UUID) (*entity.Order, error)

	// UpdateOrder changes quantity and size. Permitted for the owner or staff.
	UpdateOrder(ctx context.Context, user *entity.User, orderID uuid.UUID, input *UpdateOrderInput) (*entity.Order, error)

	// UpdateOrderStatus changes the fulfillment status. Staff only.
	UpdateOrderStatus(ctx context.Context, user *entity.User, orderID uuid.UUID, input *UpdateOrderStatusInput) (*entity.Order, error)

	// DeleteOrder removes an order. Permitted for the owner or staff.
	DeleteOrder(ctx context.Context, user *entity.User, orderID uuid.UUID) error
}
