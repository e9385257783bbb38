package repository

import "errors"

var (
	// ErrNotFound is returned when a requested order does not exist.
	ErrNotFound = errors.New("order not found")

	// ErrProductNotFound is returned by CreateOrder when the referenced
	// product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductUnavailable is returned by CreateOrder when the product is
	// out of stock.
	ErrProductUnavailable = errors.New("product is not in stock")

	// ErrOrderCompleted is returned by Cancel when the order has already
	// been completed.
	ErrOrderCompleted = errors.New("order is completed")

	// ErrOrderCancelled is returned by Cancel when the order has already
	// been cancelled.
	ErrOrderCancelled = errors.New("order is cancelled")
)
