package ledger

import "errors"

// Domain-specific errors for the ledger package.
var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrProductOutOfStock = errors.New("product is not in stock")
	ErrInvalidQuantity   = errors.New("quantity must be greater than 0")
	ErrInvalidStatus     = errors.New("status must be one of: pending, completed, cancelled")
	ErrCancelCompleted   = errors.New("cannot cancel a completed order")
	ErrAlreadyCancelled  = errors.New("order is already cancelled")
)
