// Package entity contains the core business objects of the project.
package entity

// PizzaSize represents the size of the pizzas in an order.
type PizzaSize string

const (
	// SizeSmall is the default size when none is specified.
	SizeSmall PizzaSize = "SMALL"
	// SizeMedium indicates a medium pizza.
	SizeMedium PizzaSize = "MEDIUM"
	// SizeLarge indicates a large pizza.
	SizeLarge PizzaSize = "LARGE"
	// SizeExtraLarge indicates an extra-large pizza.
	SizeExtraLarge PizzaSize = "EXTRA-LARGE"
)

// DefaultPizzaSize is applied when an order is placed without a size.
const DefaultPizzaSize = SizeSmall

// String returns the string representation of the PizzaSize.
func (s PizzaSize) String() string {
	return string(s)
}

// IsValid checks if the PizzaSize is a valid value.
func (s PizzaSize) IsValid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge:
		return true
	default:
		return false
	}
}
