package classifier

var (
	listKeywords = []string{"list", "show", "display", "get all", "all products", "all orders"}

	searchKeywords = []string{"search", "find", "look for", "looking for"}

	addProductKeywords = []string{"add product", "create product", "new product"}

	createOrderKeywords = []string{"order product", "buy", "purchase", "create order", "place order", "place an order"}

	getProductKeywords = []string{"get product", "find product", "show product", "product details", "details of product"}

	updateProductKeywords = []string{"update product", "change product", "edit product", "modify product"}

	deleteProductKeywords = []string{"delete product", "remove product"}

	statisticsKeywords = []string{"statistics", "stats", "summary"}

	getOrderKeywords = []string{"get order", "show order", "find order", "order details", "details of order"}

	updateOrderKeywords = []string{"update order", "change order", "complete order", "mark order"}

	calculateKeywords = []string{"calculate", "compute", "what is", "what's"}
)
