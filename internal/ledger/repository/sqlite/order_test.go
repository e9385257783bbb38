package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogRepo "storefront-assistant/internal/catalog/repository"
	catalogSqlite "storefront-assistant/internal/catalog/repository/sqlite"
	"storefront-assistant/internal/ledger/repository"
	"storefront-assistant/internal/model"
	"storefront-assistant/internal/storage"
	pkgLog "storefront-assistant/pkg/log"
)

// The ledger repository shares its database with the catalog, so tests set
// up both repositories over one file.
func newTestRepos(t *testing.T) (*implRepository, catalogRepo.ProductRepository) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ledger_test.db")
	db, err := storage.Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return New(db, pkgLog.NewNop()), catalogSqlite.New(db, pkgLog.NewNop())
}

func mustCreateProduct(t *testing.T, products catalogRepo.ProductRepository, opt catalogRepo.CreateProductOptions) model.Product {
	t.Helper()
	p, err := products.Create(context.Background(), opt)
	require.NoError(t, err)
	return p
}

func TestOrderRepository_CreateOrder(t *testing.T) {
	orders, products := newTestRepos(t)
	ctx := context.Background()

	laptop := mustCreateProduct(t, products, catalogRepo.CreateProductOptions{
		Name: "Gaming Laptop", Price: 1299.99, Category: "Electronics", InStock: true,
	})

	t.Run("freezes total at current price", func(t *testing.T) {
		order, err := orders.CreateOrder(ctx, repository.CreateOrderOptions{ProductID: laptop.ID, Quantity: 2})
		require.NoError(t, err)
		assert.Equal(t, laptop.ID, order.ProductID)
		assert.Equal(t, "Gaming Laptop", order.ProductName)
		assert.Equal(t, int64(2), order.Quantity)
		assert.Equal(t, 2599.98, order.TotalPrice)
		assert.Equal(t, model.OrderStatusPending, order.Status)
	})

	t.Run("missing product", func(t *testing.T) {
		_, err := orders.CreateOrder(ctx, repository.CreateOrderOptions{ProductID: 99, Quantity: 1})
		assert.ErrorIs(t, err, repository.ErrProductNotFound)
	})

	t.Run("out of stock product", func(t *testing.T) {
		hub := mustCreateProduct(t, products, catalogRepo.CreateProductOptions{
			Name: "USB-C Hub", Price: 69.99, Category: "Accessories", InStock: false,
		})
		_, err := orders.CreateOrder(ctx, repository.CreateOrderOptions{ProductID: hub.ID, Quantity: 1})
		assert.ErrorIs(t, err, repository.ErrProductUnavailable)
	})
}

// A later price change must not touch totals already written.
func TestOrderRepository_TotalSurvivesPriceChange(t *testing.T) {
	orders, products := newTestRepos(t)
	ctx := context.Background()

	mouse := mustCreateProduct(t, products, catalogRepo.CreateProductOptions{
		Name: "Wireless Mouse", Price: 49.99, Category: "Electronics", InStock: true,
	})

	order, err := orders.CreateOrder(ctx, repository.CreateOrderOptions{ProductID: mouse.ID, Quantity: 1})
	require.NoError(t, err)

	newPrice := 59.99
	_, err = products.Update(ctx, catalogRepo.UpdateProductOptions{ID: mouse.ID, Price: &newPrice})
	require.NoError(t, err)

	got, err := orders.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 49.99, got.TotalPrice)
}

// Deleting a product leaves its orders readable; the name just resolves
// empty through the LEFT JOIN.
func TestOrderRepository_ProductDeletionKeepsOrder(t *testing.T) {
	orders, products := newTestRepos(t)
	ctx := context.Background()

	monitor := mustCreateProduct(t, products, catalogRepo.CreateProductOptions{
		Name: "4K Monitor", Price: 399.99, Category: "Electronics", InStock: true,
	})

	order, err := orders.CreateOrder(ctx, repository.CreateOrderOptions{ProductID: monitor.ID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, products.Delete(ctx, monitor.ID))

	got, err := orders.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, monitor.ID, got.ProductID)
	assert.Equal(t, "", got.ProductName)
	assert.Equal(t, 399.99, got.TotalPrice)
}

func TestOrderRepository_ListAndFilter(t *testing.T) {
	orders, products := newTestRepos(t)
	ctx := context.Background()

	keyboard := mustCreateProduct(t, products, catalogRepo.CreateProductOptions{
		Name: "Mechanical Keyboard", Price: 129.99, Category: "Electronics", InStock: true,
	})

	first, err := orders.CreateOrder(ctx, repository.CreateOrderOptions{ProductID: keyboard.ID, Quantity: 1})
	require.NoError(t, err)
	second, err := orders.CreateOrder(ctx, repository.CreateOrderOptions{ProductID: keyboard.ID, Quantity: 2})
	require.NoError(t, err)

	_, err = orders.UpdateStatus(ctx, first.ID, model.OrderStatusCompleted)
	require.NoError(t, err)

	t.Run("newest first", func(t *testing.T) {
		all, err := orders.List(ctx, repository.ListOrdersOptions{})
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, second.ID, all[0].ID)
	})

	t.Run("status filter", func(t *testing.T) {
		completed, err := orders.List(ctx, repository.ListOrdersOptions{Status: model.OrderStatusCompleted})
		require.NoError(t, err)
		require.Len(t, completed, 1)
		assert.Equal(t, first.ID, completed[0].ID)
	})
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	orders, _ := newTestRepos(t)

	_, err := orders.UpdateStatus(context.Background(), 42, model.OrderStatusCompleted)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestOrderRepository_Cancel(t *testing.T) {
	orders, products := newTestRepos(t)
	ctx := context.Background()

	mouse := mustCreateProduct(t, products, catalogRepo.CreateProductOptions{
		Name: "Wireless Mouse", Price: 49.99, Category: "Electronics", InStock: true,
	})
	newOrder := func(t *testing.T) model.Order {
		t.Helper()
		order, err := orders.CreateOrder(ctx, repository.CreateOrderOptions{ProductID: mouse.ID, Quantity: 1})
		require.NoError(t, err)
		return order
	}

	t.Run("pending order cancels", func(t *testing.T) {
		order := newOrder(t)
		got, err := orders.Cancel(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, model.OrderStatusCancelled, got.Status)
	})

	t.Run("completed order survives a cancel attempt", func(t *testing.T) {
		order := newOrder(t)
		_, err := orders.UpdateStatus(ctx, order.ID, model.OrderStatusCompleted)
		require.NoError(t, err)

		_, err = orders.Cancel(ctx, order.ID)
		assert.ErrorIs(t, err, repository.ErrOrderCompleted)

		got, err := orders.Get(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, model.OrderStatusCompleted, got.Status)
	})

	t.Run("cancelling twice refuses", func(t *testing.T) {
		order := newOrder(t)
		_, err := orders.Cancel(ctx, order.ID)
		require.NoError(t, err)

		_, err = orders.Cancel(ctx, order.ID)
		assert.ErrorIs(t, err, repository.ErrOrderCancelled)
	})

	t.Run("missing order", func(t *testing.T) {
		_, err := orders.Cancel(ctx, 404)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestOrderRepository_Aggregate(t *testing.T) {
	orders, products := newTestRepos(t)
	ctx := context.Background()

	t.Run("zero state", func(t *testing.T) {
		agg, err := orders.Aggregate(ctx)
		require.NoError(t, err)
		assert.Equal(t, repository.OrderAggregate{}, agg)
	})

	mouse := mustCreateProduct(t, products, catalogRepo.CreateProductOptions{
		Name: "Wireless Mouse", Price: 50, Category: "Electronics", InStock: true,
	})

	completed, err := orders.CreateOrder(ctx, repository.CreateOrderOptions{ProductID: mouse.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = orders.UpdateStatus(ctx, completed.ID, model.OrderStatusCompleted)
	require.NoError(t, err)

	cancelled, err := orders.CreateOrder(ctx, repository.CreateOrderOptions{ProductID: mouse.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = orders.UpdateStatus(ctx, cancelled.ID, model.OrderStatusCancelled)
	require.NoError(t, err)

	_, err = orders.CreateOrder(ctx, repository.CreateOrderOptions{ProductID: mouse.ID, Quantity: 1})
	require.NoError(t, err)

	agg, err := orders.Aggregate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, agg.TotalOrders)
	assert.Equal(t, 1, agg.PendingOrders)
	assert.Equal(t, 1, agg.CompletedOrders)
	assert.Equal(t, 1, agg.CancelledOrders)
	// Revenue only counts the completed order (2 x $50).
	assert.Equal(t, 100.0, agg.TotalRevenue)
}
