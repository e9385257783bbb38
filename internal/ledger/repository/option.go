package repository

import "storefront-assistant/internal/model"

// CreateOrderOptions holds the parameters for placing an order. The total is
// computed inside the repository from the product's current price.
type CreateOrderOptions struct {
	ProductID int64
	Quantity  int64
}

// ListOrdersOptions filters the order listing.
type ListOrdersOptions struct {
	Status model.OrderStatus // Empty means all
}

// OrderAggregate is the raw aggregate for order statistics.
type OrderAggregate struct {
	TotalOrders     int
	PendingOrders   int
	CompletedOrders int
	CancelledOrders int
	TotalRevenue    float64 // Sum over completed orders only
}
