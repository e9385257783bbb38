package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type seedProduct struct {
	name     string
	price    float64
	category string
	inStock  bool
}

var seedProducts = []seedProduct{
	{"Gaming Laptop", 1299.99, "Electronics", true},
	{"Wireless Mouse", 49.99, "Electronics", true},
	{"Mechanical Keyboard", 129.99, "Electronics", true},
	{"4K Monitor", 399.99, "Electronics", true},
	{"USB-C Hub", 69.99, "Accessories", false},
}

// Seed inserts the initial catalog. It is a no-op when the products table
// already has rows, so restarts never duplicate data.
func Seed(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("failed to check existing products: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}

	now := time.Now().UTC()
	for _, p := range seedProducts {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO products (name, price, category, in_stock, created_at) VALUES (?, ?, ?, ?, ?)`,
			p.name, p.price, p.category, p.inStock, now,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to seed product %q: %w", p.name, err)
		}
	}

	return tx.Commit()
}
