package catalog

// ListInput filters the product listing.
type ListInput struct {
	Category string // Exact category match; empty means no filter
}

// AddInput holds the fields for creating a product.
type AddInput struct {
	Name     string
	Price    float64
	Category string
	InStock  bool
}

// UpdateInput is a partial product update. Nil pointers mean "leave as is".
type UpdateInput struct {
	ID       int64
	Name     *string
	Price    *float64
	Category *string
	InStock  *bool
}

// StatisticsOutput aggregates the catalog. AveragePrice is 0 (not NaN) for an
// empty catalog.
type StatisticsOutput struct {
	TotalCount   int
	AveragePrice float64
	Categories   []string
	InStockCount int
}
