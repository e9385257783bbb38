package catalog

import (
	"context"

	"storefront-assistant/internal/model"
)

// UseCase defines the business logic interface for the catalog domain.
// It owns product records; the ledger domain consults it but never writes
// through it.
type UseCase interface {
	// List returns products, optionally filtered by exact category, in
	// insertion order.
	List(ctx context.Context, input ListInput) ([]model.Product, error)

	// Get returns a single product by ID.
	Get(ctx context.Context, id int64) (model.Product, error)

	// Add creates a product and assigns its ID.
	Add(ctx context.Context, input AddInput) (model.Product, error)

	// Update applies a partial update; nil fields are left untouched.
	Update(ctx context.Context, input UpdateInput) (model.Product, error)

	// Delete removes a product and returns the deleted record. Orders
	// referencing it are not touched.
	Delete(ctx context.Context, id int64) (model.Product, error)

	// Search returns products whose name contains term, case-insensitively.
	Search(ctx context.Context, term string) ([]model.Product, error)

	// Statistics aggregates over the whole catalog.
	Statistics(ctx context.Context) (StatisticsOutput, error)
}
