package ledger

import (
	"context"

	"storefront-assistant/internal/model"
)

// UseCase defines the business logic interface for the ledger (order) domain.
// All lifecycle rules live here or below; callers never decide what a status
// transition is allowed to do.
type UseCase interface {
	// Create places an order. The product must exist and be in stock and
	// quantity must be positive. TotalPrice is frozen at creation.
	Create(ctx context.Context, input CreateInput) (model.Order, error)

	// Get returns a single order by ID.
	Get(ctx context.Context, id int64) (model.Order, error)

	// List returns orders newest-first, optionally filtered by status.
	List(ctx context.Context, input ListInput) ([]model.Order, error)

	// UpdateStatus sets the order status. Any of the three statuses is
	// reachable from any other.
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (model.Order, error)

	// Cancel sets status to cancelled. Completed orders cannot be cancelled
	// and cancelling twice is an error.
	Cancel(ctx context.Context, id int64) (model.Order, error)

	// Statistics aggregates over all orders.
	Statistics(ctx context.Context) (StatisticsOutput, error)
}
