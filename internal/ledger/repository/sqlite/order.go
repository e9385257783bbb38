package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"storefront-assistant/internal/ledger/repository"
	"storefront-assistant/internal/model"
)

// orderQuery joins products so reads can show the product name. The LEFT
// JOIN keeps orders whose product has since been deleted.
const orderQuery = `
	SELECT o.id, o.product_id, COALESCE(p.name, ''), o.quantity, o.total_price, o.status, o.created_at
	FROM orders o
	LEFT JOIN products p ON p.id = o.product_id`

func scanOrder(row interface{ Scan(...any) error }) (model.Order, error) {
	var o model.Order
	var status string
	var createdAt time.Time
	if err := row.Scan(&o.ID, &o.ProductID, &o.ProductName, &o.Quantity, &o.TotalPrice, &status, &createdAt); err != nil {
		return model.Order{}, err
	}
	o.Status = model.OrderStatus(status)
	o.CreatedAt = createdAt
	return o, nil
}

// CreateOrder reads the product and inserts the order in one transaction, so
// the in-stock check cannot interleave with a concurrent product write.
func (r *implRepository) CreateOrder(ctx context.Context, opt repository.CreateOrderOptions) (model.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Order{}, fmt.Errorf("failed to begin order transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var name string
	var price float64
	var inStock int
	err = tx.QueryRowContext(ctx,
		`SELECT name, price, in_stock FROM products WHERE id = ?`, opt.ProductID,
	).Scan(&name, &price, &inStock)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Order{}, repository.ErrProductNotFound
	}
	if err != nil {
		return model.Order{}, fmt.Errorf("failed to read product %d: %w", opt.ProductID, err)
	}
	if inStock == 0 {
		return model.Order{}, repository.ErrProductUnavailable
	}

	total := price * float64(opt.Quantity)
	createdAt := time.Now().UTC()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO orders (product_id, quantity, total_price, status, created_at) VALUES (?, ?, ?, ?, ?)`,
		opt.ProductID, opt.Quantity, total, string(model.OrderStatusPending), createdAt,
	)
	if err != nil {
		return model.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Order{}, fmt.Errorf("failed to read inserted order id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return model.Order{}, fmt.Errorf("failed to commit order: %w", err)
	}

	return model.Order{
		ID:          id,
		ProductID:   opt.ProductID,
		ProductName: name,
		Quantity:    opt.Quantity,
		TotalPrice:  total,
		Status:      model.OrderStatusPending,
		CreatedAt:   createdAt,
	}, nil
}

func (r *implRepository) Get(ctx context.Context, id int64) (model.Order, error) {
	row := r.db.QueryRowContext(ctx, orderQuery+` WHERE o.id = ?`, id)

	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Order{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Order{}, fmt.Errorf("failed to get order %d: %w", id, err)
	}
	return order, nil
}

// List returns orders newest-first.
func (r *implRepository) List(ctx context.Context, opt repository.ListOrdersOptions) ([]model.Order, error) {
	query := orderQuery
	var args []any
	if opt.Status != "" {
		query += ` WHERE o.status = ?`
		args = append(args, string(opt.Status))
	}
	query += ` ORDER BY o.created_at DESC, o.id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}

	return orders, nil
}

func (r *implRepository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (model.Order, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return model.Order{}, fmt.Errorf("failed to update order %d status: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return model.Order{}, fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return model.Order{}, repository.ErrNotFound
	}

	return r.Get(ctx, id)
}

// Cancel checks the status guard and flips the order to cancelled in one
// transaction, so a concurrent status write cannot slip between the read and
// the update.
func (r *implRepository) Cancel(ctx context.Context, id int64) (model.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Order{}, fmt.Errorf("failed to begin cancel transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var status string
	err = tx.QueryRowContext(ctx, `SELECT status FROM orders WHERE id = ?`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Order{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Order{}, fmt.Errorf("failed to read order %d status: %w", id, err)
	}

	switch model.OrderStatus(status) {
	case model.OrderStatusCompleted:
		return model.Order{}, repository.ErrOrderCompleted
	case model.OrderStatusCancelled:
		return model.Order{}, repository.ErrOrderCancelled
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE orders SET status = ? WHERE id = ?`, string(model.OrderStatusCancelled), id); err != nil {
		return model.Order{}, fmt.Errorf("failed to cancel order %d: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return model.Order{}, fmt.Errorf("failed to commit cancel: %w", err)
	}

	return r.Get(ctx, id)
}

func (r *implRepository) Aggregate(ctx context.Context) (repository.OrderAggregate, error) {
	var agg repository.OrderAggregate

	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN status = 'cancelled' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN status = 'completed' THEN total_price ELSE 0 END), 0)
		FROM orders`)
	if err := row.Scan(&agg.TotalOrders, &agg.PendingOrders, &agg.CompletedOrders, &agg.CancelledOrders, &agg.TotalRevenue); err != nil {
		return repository.OrderAggregate{}, fmt.Errorf("failed to aggregate orders: %w", err)
	}

	return agg, nil
}
