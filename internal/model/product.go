package model

import "time"

// Product is a catalog record. Orders reference products by ID but never own
// them; a product may be deleted while orders still point at it.
type Product struct {
	ID        int64     // Assigned by the store on creation
	Name      string    // Non-empty display name
	Price     float64   // Unit price, must be > 0 at creation
	Category  string    // Free-text category (e.g. "Electronics")
	InStock   bool      // Availability flag checked at order time
	CreatedAt time.Time // Immutable creation timestamp
}
