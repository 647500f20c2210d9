// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order represents a single pizza order placed by a user.
// Ownership is fixed at creation time and never transfers.
type Order struct {
	ID        uuid.UUID   // The unique identifier for the order.
	UserID    uuid.UUID   // Links the order to the User that owns it.
	Quantity  int         // Number of pizzas, always positive.
	PizzaSize PizzaSize   // Size of the pizzas in this order.
	Status    OrderStatus // Current fulfillment status, starts at PENDING.
	CreatedAt time.Time   // Timestamp of when the order was placed.
	UpdatedAt time.Time   // Timestamp of the last modification to the order.
}
