// Package tools holds the dispatchable operations, one per intent. Each tool
// is a thin adapter from a validated argument bag to a usecase call; business
// rules stay in the usecases and rendering stays in the formatter.
package tools

import (
	"storefront-assistant/internal/agent"
	"storefront-assistant/internal/catalog"
	"storefront-assistant/internal/ledger"
)

// Register wires every tool into the registry.
func Register(registry *agent.ToolRegistry, catalogUC catalog.UseCase, ledgerUC ledger.UseCase) {
	registry.Register(NewListProducts(catalogUC))
	registry.Register(NewGetProduct(catalogUC))
	registry.Register(NewAddProduct(catalogUC))
	registry.Register(NewUpdateProduct(catalogUC))
	registry.Register(NewDeleteProduct(catalogUC))
	registry.Register(NewSearchProducts(catalogUC))
	registry.Register(NewProductStatistics(catalogUC))

	registry.Register(NewCreateOrder(ledgerUC))
	registry.Register(NewGetOrder(ledgerUC))
	registry.Register(NewListOrders(ledgerUC))
	registry.Register(NewUpdateOrderStatus(ledgerUC))
	registry.Register(NewCancelOrder(ledgerUC))
	registry.Register(NewOrderStatistics(ledgerUC))

	registry.Register(NewCalculate())
	registry.Register(NewApplyDiscount())
}
