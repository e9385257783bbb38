package catalog

import "errors"

// Domain-specific errors for the catalog package.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyName       = errors.New("product name must not be empty")
	ErrInvalidPrice    = errors.New("price must be greater than 0")
	ErrNoUpdateFields  = errors.New("no fields to update")
	ErrEmptySearchTerm = errors.New("search term is empty")
)
