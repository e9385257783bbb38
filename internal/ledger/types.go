package ledger

import "storefront-assistant/internal/model"

// CreateInput holds the fields for placing an order.
type CreateInput struct {
	ProductID int64
	Quantity  int64
}

// ListInput filters the order listing.
type ListInput struct {
	Status model.OrderStatus // Empty means no filter
}

// StatisticsOutput aggregates the ledger. Revenue counts completed orders
// only.
type StatisticsOutput struct {
	TotalOrders     int
	PendingOrders   int
	CompletedOrders int
	CancelledOrders int
	TotalRevenue    float64
}
