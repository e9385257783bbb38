package repository

import (
	"context"

	"storefront-assistant/internal/model"
)

// ProductRepository is the interface for product data access.
type ProductRepository interface {
	Create(ctx context.Context, opt CreateProductOptions) (model.Product, error)
	Get(ctx context.Context, id int64) (model.Product, error)
	List(ctx context.Context, opt ListProductsOptions) ([]model.Product, error)
	Update(ctx context.Context, opt UpdateProductOptions) (model.Product, error)
	Delete(ctx context.Context, id int64) error
	SearchByName(ctx context.Context, term string) ([]model.Product, error)
	Aggregate(ctx context.Context) (ProductAggregate, error)
}
