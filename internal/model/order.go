package model

import "time"

// OrderStatus is the order lifecycle state.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the three known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a ledger record. TotalPrice is frozen at creation
// (product price x quantity) and never recomputed, so later product price
// changes or deletion leave existing orders untouched.
type Order struct {
	ID          int64
	ProductID   int64       // Soft reference into the catalog
	ProductName string      // Resolved at read time; empty if the product is gone
	Quantity    int64       // Always > 0
	TotalPrice  float64     // Frozen at creation
	Status      OrderStatus // pending on creation
	CreatedAt   time.Time
}
