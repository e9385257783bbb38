package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront-assistant/internal/catalog/repository"
	"storefront-assistant/internal/model"
)

const productColumns = "id, name, price, category, in_stock, created_at"

func scanProduct(row interface{ Scan(...any) error }) (model.Product, error) {
	var p model.Product
	var inStock int
	var createdAt time.Time
	if err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &inStock, &createdAt); err != nil {
		return model.Product{}, err
	}
	p.InStock = inStock != 0
	p.CreatedAt = createdAt
	return p, nil
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateProductOptions) (model.Product, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO products (name, price, category, in_stock, created_at) VALUES (?, ?, ?, ?, ?)`,
		opt.Name, opt.Price, opt.Category, opt.InStock, time.Now().UTC(),
	)
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to insert product: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to read inserted product id: %w", err)
	}

	return r.Get(ctx, id)
}

func (r *implRepository) Get(ctx context.Context, id int64) (model.Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = ?`, id)

	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Product{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return p, nil
}

// List returns products in insertion order (ascending id).
func (r *implRepository) List(ctx context.Context, opt repository.ListProductsOptions) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	var args []any
	if opt.Category != "" {
		query += ` WHERE category = ?`
		args = append(args, opt.Category)
	}
	query += ` ORDER BY id`

	return r.queryProducts(ctx, query, args...)
}

func (r *implRepository) Update(ctx context.Context, opt repository.UpdateProductOptions) (model.Product, error) {
	var sets []string
	var args []any

	if opt.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *opt.Name)
	}
	if opt.Price != nil {
		sets = append(sets, "price = ?")
		args = append(args, *opt.Price)
	}
	if opt.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *opt.Category)
	}
	if opt.InStock != nil {
		sets = append(sets, "in_stock = ?")
		args = append(args, *opt.InStock)
	}

	if len(sets) == 0 {
		return r.Get(ctx, opt.ID)
	}

	args = append(args, opt.ID)
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to update product %d: %w", opt.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return model.Product{}, repository.ErrNotFound
	}

	return r.Get(ctx, opt.ID)
}

func (r *implRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// SearchByName matches case-insensitively on a substring of the name.
func (r *implRepository) SearchByName(ctx context.Context, term string) ([]model.Product, error) {
	return r.queryProducts(ctx,
		`SELECT `+productColumns+` FROM products WHERE name LIKE ? ORDER BY id`,
		"%"+term+"%",
	)
}

func (r *implRepository) Aggregate(ctx context.Context) (repository.ProductAggregate, error) {
	var agg repository.ProductAggregate

	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(AVG(price), 0),
		       COALESCE(SUM(CASE WHEN in_stock != 0 THEN 1 ELSE 0 END), 0)
		FROM products`)
	if err := row.Scan(&agg.TotalCount, &agg.AveragePrice, &agg.InStockCount); err != nil {
		return repository.ProductAggregate{}, fmt.Errorf("failed to aggregate products: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT category FROM products ORDER BY category`)
	if err != nil {
		return repository.ProductAggregate{}, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cat string
		if err := rows.Scan(&cat); err != nil {
			return repository.ProductAggregate{}, fmt.Errorf("failed to scan category: %w", err)
		}
		agg.Categories = append(agg.Categories, cat)
	}
	if err := rows.Err(); err != nil {
		return repository.ProductAggregate{}, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return agg, nil
}

func (r *implRepository) queryProducts(ctx context.Context, query string, args ...any) ([]model.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}
