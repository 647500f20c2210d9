// Package entity contains the core business objects of the project.
package entity

// OrderStatus represents the fulfillment state of an order.
// Only staff users may move an order between statuses.
type OrderStatus string

const (
	// StatusPending is the initial status of every new order.
	StatusPending OrderStatus = "PENDING"
	// StatusInTransit indicates the order has left the kitchen.
	StatusInTransit OrderStatus = "IN-TRANSIT"
	// StatusDelivered indicates the order reached the customer.
	StatusDelivered OrderStatus = "DELIVERED"
	// StatusCancelled indicates the order was cancelled.
	StatusCancelled OrderStatus = "CANCELLED"
)

// DefaultOrderStatus is applied when an order is placed.
const DefaultOrderStatus = StatusPending

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInTransit, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}
