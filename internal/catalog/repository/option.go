package repository

// CreateProductOptions holds the parameters for inserting a product.
type CreateProductOptions struct {
	Name     string
	Price    float64
	Category string
	InStock  bool
}

// ListProductsOptions holds the parameters for listing products.
type ListProductsOptions struct {
	Category string // Exact match; empty means all
}

// UpdateProductOptions is a partial update; nil fields are not written.
type UpdateProductOptions struct {
	ID       int64
	Name     *string
	Price    *float64
	Category *string
	InStock  *bool
}

// ProductAggregate is the raw aggregate the statistics operation is built on.
type ProductAggregate struct {
	TotalCount   int
	AveragePrice float64 // 0 when the table is empty
	Categories   []string
	InStockCount int
}
