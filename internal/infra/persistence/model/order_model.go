package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Each row is owned by exactly one user.
type OrderModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity  int       `gorm:"not null"`
	PizzaSize string    `gorm:"type:varchar(20);not null;default:'SMALL'"`
	Status    string    `gorm:"type:varchar(20);not null;default:'PENDING';column:order_status"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName maps the model to the 'orders' table.
func (OrderModel) TableName() string {
	return "orders"
}
