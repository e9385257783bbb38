// Package formatter renders envelopes as user-facing text. Every intent has
// a fixed template; the formatter never consults storage and never fails.
package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"storefront-assistant/internal/agent"
	"storefront-assistant/internal/agent/tools"
	"storefront-assistant/internal/catalog"
	"storefront-assistant/internal/ledger"
	"storefront-assistant/internal/model"
	"storefront-assistant/pkg/calc"
)

const helpText = "Could not parse intent. Try: 'list products', " +
	"'add product: Name, price: X, category: Y', 'order product 1 quantity 2', " +
	"'update product 1 price 999', 'delete product 1', 'get statistics'"

type Formatter struct{}

func New() *Formatter {
	return &Formatter{}
}

// Format renders an envelope. Unknown result shapes fall back to a generic
// line rather than panicking; that indicates a tool/formatter mismatch and
// is caught by tests.
func (f *Formatter) Format(env agent.Envelope) string {
	if !env.OK() {
		if env.Err.Kind == agent.KindUnrecognizedIntent {
			return helpText
		}
		return env.Err.Message
	}

	switch env.Intent {
	case agent.IntentListProducts:
		return formatProductList(env.Result, "No products found.", "Found %d products:")
	case agent.IntentSearchProducts:
		return formatProductList(env.Result, "No products found matching your search.", "Found %d matching products:")
	case agent.IntentGetProduct:
		return formatProduct(env.Result)
	case agent.IntentAddProduct:
		return formatProductAdded(env.Result)
	case agent.IntentUpdateProduct:
		return formatProductUpdated(env.Result)
	case agent.IntentDeleteProduct:
		return formatProductDeleted(env.Result)
	case agent.IntentGetProductStatistics:
		return formatProductStatistics(env.Result)
	case agent.IntentCreateOrder:
		return formatOrderCreated(env.Result)
	case agent.IntentGetOrder:
		return formatOrder(env.Result)
	case agent.IntentListOrders:
		return formatOrderList(env.Result)
	case agent.IntentUpdateOrderStatus:
		return formatOrderStatusUpdated(env.Result)
	case agent.IntentCancelOrder:
		return formatOrderCancelled(env.Result)
	case agent.IntentGetOrderStatistics:
		return formatOrderStatistics(env.Result)
	case agent.IntentCalculate:
		return formatCalculation(env.Result)
	case agent.IntentApplyDiscount:
		return formatDiscount(env.Result)
	}
	return fmt.Sprintf("%v", env.Result)
}

func formatProductList(result any, empty, header string) string {
	products, ok := result.([]model.Product)
	if !ok {
		return fmt.Sprintf("%v", result)
	}
	if len(products) == 0 {
		return empty
	}

	lines := make([]string, 0, len(products)+1)
	lines = append(lines, fmt.Sprintf(header, len(products)))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("  - ID %d: %s - %s (%s) - %s",
			p.ID, p.Name, price(p.Price), p.Category, stockLabel(p.InStock)))
	}
	return strings.Join(lines, "\n")
}

func formatProduct(result any) string {
	p, ok := result.(model.Product)
	if !ok {
		return fmt.Sprintf("%v", result)
	}
	return fmt.Sprintf("Product:\n  - ID: %d\n  - Name: %s\n  - Price: %s\n  - Category: %s\n  - Status: %s",
		p.ID, p.Name, price(p.Price), p.Category, stockLabel(p.InStock))
}

func formatProductAdded(result any) string {
	p, ok := result.(model.Product)
	if !ok {
		return fmt.Sprintf("%v", result)
	}
	return fmt.Sprintf("Product added:\n  - ID: %d\n  - Name: %s\n  - Price: %s\n  - Category: %s",
		p.ID, p.Name, price(p.Price), p.Category)
}

func formatProductUpdated(result any) string {
	p, ok := result.(model.Product)
	if !ok {
		return fmt.Sprintf("%v", result)
	}
	return fmt.Sprintf("Product updated:\n  - ID: %d\n  - Name: %s\n  - Price: %s\n  - Category: %s\n  - In Stock: %t",
		p.ID, p.Name, price(p.Price), p.Category, p.InStock)
}

func formatProductDeleted(result any) string {
	p, ok := result.(model.Product)
	if !ok {
		return fmt.Sprintf("%v", result)
	}
	return fmt.Sprintf("Deleted product: %s (ID: %d)", p.Name, p.ID)
}

func formatProductStatistics(result any) string {
	s, ok := result.(catalog.StatisticsOutput)
	if !ok {
		return fmt.Sprintf("%v", result)
	}
	return fmt.Sprintf("Product Statistics:\n  - Total Products: %d\n  - Average Price: %s\n  - Categories: %s\n  - In Stock: %d",
		s.TotalCount, price(s.AveragePrice), strings.Join(s.Categories, ", "), s.InStockCount)
}

func formatOrderCreated(result any) string {
	o, ok := result.(model.Order)
	if !ok {
		return fmt.Sprintf("%v", result)
	}
	return fmt.Sprintf("Order created:\n  - Order ID: %d\n  - Product: %s\n  - Quantity: %d\n  - Total: %s",
		o.ID, productLabel(o), o.Quantity, price(o.TotalPrice))
}

func formatOrder(result any) string {
	o, ok := result.(model.Order)
	if !ok {
		return fmt.Sprintf("%v", result)
	}
	return fmt.Sprintf("Order Details:\n  - Order ID: %d\n  - Product: %s\n  - Quantity: %d\n  - Total: %s\n  - Status: %s",
		o.ID, productLabel(o), o.Quantity, price(o.TotalPrice), o.Status)
}

func formatOrderList(result any) string {
	orders, ok := result.([]model.Order)
	if !ok {
		return fmt.Sprintf("%v", result)
	}
	if len(orders) == 0 {
		return "No orders found."
	}

	lines := make([]string, 0, len(orders)+1)
	lines = append(lines, fmt.Sprintf("Found %d orders:", len(orders)))
	for _, o := range orders {
		lines = append(lines, fmt.Sprintf("  - Order #%d: %s x%d = %s (%s)",
			o.ID, productLabel(o), o.Quantity, price(o.TotalPrice), o.Status))
	}
	return strings.Join(lines, "\n")
}

func formatOrderStatusUpdated(result any) string {
	o, ok := result.(model.Order)
	if !ok {
		return fmt.Sprintf("%v", result)
	}
	return fmt.Sprintf("Order status updated:\n  - Order ID: %d\n  - Product: %s\n  - New Status: %s",
		o.ID, productLabel(o), o.Status)
}

func formatOrderCancelled(result any) string {
	o, ok := result.(model.Order)
	if !ok {
		return fmt.Sprintf("%v", result)
	}
	return fmt.Sprintf("Order %d has been cancelled", o.ID)
}

func formatOrderStatistics(result any) string {
	s, ok := result.(ledger.StatisticsOutput)
	if !ok {
		return fmt.Sprintf("%v", result)
	}
	return fmt.Sprintf("Order Statistics:\n  - Total Orders: %d\n  - Pending: %d\n  - Completed: %d\n  - Cancelled: %d\n  - Total Revenue: %s",
		s.TotalOrders, s.PendingOrders, s.CompletedOrders, s.CancelledOrders, price(s.TotalRevenue))
}

func formatCalculation(result any) string {
	c, ok := result.(tools.Calculation)
	if !ok {
		return fmt.Sprintf("%v", result)
	}
	return fmt.Sprintf("%s = %s", c.Expression, number(c.Value))
}

func formatDiscount(result any) string {
	d, ok := result.(calc.DiscountResult)
	if !ok {
		return fmt.Sprintf("%v", result)
	}
	text := fmt.Sprintf("A %s%% discount on %s saves %s. Final price: %s",
		number(d.Percent), price(d.BasePrice), price(d.Amount), price(d.FinalPrice))
	if d.Unusual {
		text += fmt.Sprintf("\nNote: %s%% is an unusual discount percent.", number(d.Percent))
	}
	return text
}

// productLabel names an order's product, falling back to the soft reference
// when the product has since been deleted.
func productLabel(o model.Order) string {
	if o.ProductName != "" {
		return o.ProductName
	}
	return fmt.Sprintf("product #%d", o.ProductID)
}

func stockLabel(inStock bool) string {
	if inStock {
		return "In Stock"
	}
	return "Out of Stock"
}

func price(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// number renders a float without a fixed precision, so 4 stays "4" and 2.5
// stays "2.5".
func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
