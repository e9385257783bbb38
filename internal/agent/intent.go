package agent

// Intent is the classified purpose of a query, drawn from a closed set.
// Classification never fails; unmatched text maps to IntentUnrecognized.
type Intent string

const (
	IntentListProducts         Intent = "list_products"
	IntentGetProduct           Intent = "get_product"
	IntentAddProduct           Intent = "add_product"
	IntentUpdateProduct        Intent = "update_product"
	IntentDeleteProduct        Intent = "delete_product"
	IntentGetProductStatistics Intent = "get_product_statistics"
	IntentCreateOrder          Intent = "create_order"
	IntentGetOrder             Intent = "get_order"
	IntentListOrders           Intent = "list_orders"
	IntentUpdateOrderStatus    Intent = "update_order_status"
	IntentCancelOrder          Intent = "cancel_order"
	IntentGetOrderStatistics   Intent = "get_order_statistics"
	IntentSearchProducts       Intent = "search_products"
	IntentCalculate            Intent = "calculate"
	IntentApplyDiscount        Intent = "apply_discount"
	IntentUnrecognized         Intent = "unrecognized"
)

// AllIntents enumerates the closed set, useful for exhaustiveness checks in
// tests and for registry wiring.
var AllIntents = []Intent{
	IntentListProducts,
	IntentGetProduct,
	IntentAddProduct,
	IntentUpdateProduct,
	IntentDeleteProduct,
	IntentGetProductStatistics,
	IntentCreateOrder,
	IntentGetOrder,
	IntentListOrders,
	IntentUpdateOrderStatus,
	IntentCancelOrder,
	IntentGetOrderStatistics,
	IntentSearchProducts,
	IntentCalculate,
	IntentApplyDiscount,
	IntentUnrecognized,
}
