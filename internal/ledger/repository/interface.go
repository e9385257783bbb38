package repository

import (
	"context"

	"storefront-assistant/internal/model"
)

// OrderRepository is the interface for order data access. CreateOrder must
// execute its product check and the insert as one atomic unit so concurrent
// creations against the same product serialize in the store. Cancel carries
// the same rule: the status guard and the write must not interleave with a
// concurrent status update.
type OrderRepository interface {
	CreateOrder(ctx context.Context, opt CreateOrderOptions) (model.Order, error)
	Get(ctx context.Context, id int64) (model.Order, error)
	List(ctx context.Context, opt ListOrdersOptions) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (model.Order, error)
	Cancel(ctx context.Context, id int64) (model.Order, error)
	Aggregate(ctx context.Context) (OrderAggregate, error)
}
