package classifier

import (
	"testing"

	"storefront-assistant/internal/agent"
)

func TestClassify_Intents(t *testing.T) {
	c := New(DefaultCacheSize)

	tests := []struct {
		name string
		text string
		want agent.Intent
	}{
		{name: "list products", text: "list all products", want: agent.IntentListProducts},
		{name: "show products", text: "show products", want: agent.IntentListProducts},
		{name: "display products", text: "display all products", want: agent.IntentListProducts},
		{name: "list orders", text: "list all orders", want: agent.IntentListOrders},
		{name: "show orders", text: "show orders", want: agent.IntentListOrders},
		{name: "display orders", text: "display orders", want: agent.IntentListOrders},
		{name: "search", text: "search for laptop", want: agent.IntentSearchProducts},
		{name: "find product by name", text: "find products called mouse", want: agent.IntentSearchProducts},
		{name: "add product", text: "add product: Webcam, price: 89.99, category: Electronics", want: agent.IntentAddProduct},
		{name: "create order", text: "order product 2 quantity 3", want: agent.IntentCreateOrder},
		{name: "buy", text: "buy product 1", want: agent.IntentCreateOrder},
		{name: "get product", text: "get product 3", want: agent.IntentGetProduct},
		{name: "update product", text: "update product 2 price 59.99", want: agent.IntentUpdateProduct},
		{name: "delete product", text: "delete product 4", want: agent.IntentDeleteProduct},
		{name: "product statistics", text: "get statistics", want: agent.IntentGetProductStatistics},
		{name: "order statistics", text: "order statistics", want: agent.IntentGetOrderStatistics},
		{name: "get order", text: "get order 7", want: agent.IntentGetOrder},
		{name: "update order status", text: "update order 3 status completed", want: agent.IntentUpdateOrderStatus},
		{name: "complete order", text: "complete order 5", want: agent.IntentUpdateOrderStatus},
		{name: "cancel order", text: "cancel order 2", want: agent.IntentCancelOrder},
		{name: "discount", text: "calculate 20% discount on 100", want: agent.IntentApplyDiscount},
		{name: "calculate", text: "calculate 2+2*3", want: agent.IntentCalculate},
		{name: "what is", text: "what is 10/4", want: agent.IntentCalculate},
		{name: "unrecognized", text: "sing me a song", want: agent.IntentUnrecognized},
		{name: "empty", text: "", want: agent.IntentUnrecognized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := c.Classify(tc.text)
			if got != tc.want {
				t.Errorf("Classify(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

// Overlapping keywords must resolve the same way every time. These inputs
// each match several rule patterns; the expectation pins the winner.
func TestClassify_Priority(t *testing.T) {
	c := New(DefaultCacheSize)

	tests := []struct {
		name string
		text string
		want agent.Intent
	}{
		{name: "list beats get for orders", text: "get all orders", want: agent.IntentListOrders},
		{name: "list beats get for products", text: "get all products", want: agent.IntentListProducts},
		{name: "bare show lists orders", text: "show order 7", want: agent.IntentListOrders},
		{name: "bare show lists products", text: "show product 5", want: agent.IntentListProducts},
		{name: "search beats get product", text: "find products matching usb", want: agent.IntentSearchProducts},
		{name: "order product beats get product", text: "order product 2", want: agent.IntentCreateOrder},
		{name: "statistics beats get order", text: "get order statistics", want: agent.IntentGetOrderStatistics},
		{name: "discount beats calculate", text: "calculate a 15% discount on 80", want: agent.IntentApplyDiscount},
		{name: "add product beats create order", text: "create product: Desk, $150, Furniture", want: agent.IntentAddProduct},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := c.Classify(tc.text)
			if got != tc.want {
				t.Errorf("Classify(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestClassify_Extraction(t *testing.T) {
	c := New(DefaultCacheSize)

	t.Run("add product labeled form", func(t *testing.T) {
		_, args := c.Classify("add product: Webcam, price: 89.99, category: Electronics")
		if got, _ := args.String("name"); got != "Webcam" {
			t.Errorf("name = %q, want Webcam", got)
		}
		if got, _ := args.Number("price"); got != 89.99 {
			t.Errorf("price = %v, want 89.99", got)
		}
		if got, _ := args.String("category"); got != "Electronics" {
			t.Errorf("category = %q, want Electronics", got)
		}
		if got, _ := args.Bool("in_stock"); !got {
			t.Error("in_stock = false, want true")
		}
	})

	t.Run("add product short form out of stock", func(t *testing.T) {
		_, args := c.Classify("add product: Desk Lamp, $24.50, Furniture out of stock")
		if got, _ := args.String("name"); got != "Desk Lamp" {
			t.Errorf("name = %q, want Desk Lamp", got)
		}
		if got, _ := args.Bool("in_stock"); got {
			t.Error("in_stock = true, want false")
		}
	})

	t.Run("create order quantity", func(t *testing.T) {
		_, args := c.Classify("order product 2 quantity 3")
		if got, _ := args.Int("product_id"); got != 2 {
			t.Errorf("product_id = %d, want 2", got)
		}
		if got, _ := args.Int("quantity"); got != 3 {
			t.Errorf("quantity = %d, want 3", got)
		}
	})

	t.Run("create order bad quantity records field error", func(t *testing.T) {
		_, args := c.Classify("order product 2 quantity lots")
		if _, ok := args.Errors["quantity"]; !ok {
			t.Error("expected an extraction error for quantity")
		}
	})

	t.Run("update product fields", func(t *testing.T) {
		_, args := c.Classify("update product 2 price 59.99 category Accessories")
		if got, _ := args.Int("product_id"); got != 2 {
			t.Errorf("product_id = %d, want 2", got)
		}
		if got, _ := args.Number("price"); got != 59.99 {
			t.Errorf("price = %v, want 59.99", got)
		}
		if got, _ := args.String("category"); got != "Accessories" {
			t.Errorf("category = %q, want Accessories", got)
		}
	})

	t.Run("update product out of stock", func(t *testing.T) {
		_, args := c.Classify("update product 5 out of stock")
		got, ok := args.Bool("in_stock")
		if !ok || got {
			t.Errorf("in_stock = %v (present=%v), want false", got, ok)
		}
	})

	t.Run("search term strips filler", func(t *testing.T) {
		_, args := c.Classify("search for laptop")
		if got, _ := args.String("term"); got != "laptop" {
			t.Errorf("term = %q, want laptop", got)
		}
	})

	t.Run("discount percent and price", func(t *testing.T) {
		_, args := c.Classify("calculate 20% discount on 100")
		if got, _ := args.Number("percent"); got != 20 {
			t.Errorf("percent = %v, want 20", got)
		}
		if got, _ := args.Number("price"); got != 100 {
			t.Errorf("price = %v, want 100", got)
		}
	})

	t.Run("calculate expression", func(t *testing.T) {
		_, args := c.Classify("what is 2+2*3?")
		if got, _ := args.String("expression"); got != "2+2*3" {
			t.Errorf("expression = %q, want 2+2*3", got)
		}
	})

	t.Run("list orders with status filter", func(t *testing.T) {
		_, args := c.Classify("list all pending orders")
		if got, _ := args.String("status"); got != "pending" {
			t.Errorf("status = %q, want pending", got)
		}
	})

	t.Run("list products by category label", func(t *testing.T) {
		_, args := c.Classify("list electronics products")
		if got, _ := args.String("category"); got != "Electronics" {
			t.Errorf("category = %q, want Electronics", got)
		}
	})
}

func TestClassify_CacheReturnsSameResult(t *testing.T) {
	c := New(2)

	first, firstArgs := c.Classify("get product 3")
	second, secondArgs := c.Classify("get product 3")
	if first != second {
		t.Fatalf("cached intent %q differs from first %q", second, first)
	}
	a, _ := firstArgs.Int("product_id")
	b, _ := secondArgs.Int("product_id")
	if a != b {
		t.Errorf("cached product_id %d differs from first %d", b, a)
	}
}
