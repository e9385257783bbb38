package repository

import "errors"

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")
