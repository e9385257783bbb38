package classifier

import (
	"strings"

	"storefront-assistant/internal/agent"
)

// rule is one (pattern, intent) entry. Rules are evaluated top to bottom and
// the first match wins, so every rule documents why it sits where it does.
type rule struct {
	intent agent.Intent

	// priority records why this rule outranks the rules below it whenever
	// their keywords overlap.
	priority string

	match   func(lower string) bool
	extract func(text, lower string, args agent.Args)
}

// Classify maps text to exactly one intent from the closed set plus the
// extracted argument bag. It never fails: unmatched text yields
// IntentUnrecognized with an empty bag.
func (c *Classifier) Classify(text string) (agent.Intent, agent.Args) {
	if hit, ok := c.cache.Get(text); ok {
		return hit.intent, hit.args
	}

	lower := strings.ToLower(text)

	intent := agent.IntentUnrecognized
	args := agent.NewArgs()
	for _, r := range c.rules {
		if r.match(lower) {
			intent = r.intent
			if r.extract != nil {
				r.extract(text, lower, args)
			}
			break
		}
	}

	c.cache.Add(text, cached{intent: intent, args: args})
	return intent, args
}

func defaultRules() []rule {
	return []rule{
		{
			intent:   agent.IntentListOrders,
			priority: "listing keywords are the most generic, bare 'show'/'display' included, so 'show orders' lists rather than looking one up; the order variant must be tested before the product one or 'list all orders' would list products",
			match:    func(lower string) bool { return containsAny(lower, listKeywords) && strings.Contains(lower, "order") },
			extract: func(_, lower string, args agent.Args) {
				extractOrderStatus(lower, args)
			},
		},
		{
			intent:   agent.IntentListProducts,
			priority: "catch-all for listing phrasings without 'order'",
			match:    func(lower string) bool { return containsAny(lower, listKeywords) },
			extract: func(text, lower string, args agent.Args) {
				extractCategory(text, lower, args)
			},
		},
		{
			intent:   agent.IntentSearchProducts,
			priority: "search keywords include 'find', which also opens 'find product <id>'; search is tested first so free-text lookups win and id lookups fall through via get product keywords",
			match: func(lower string) bool {
				return (containsAny(lower, searchKeywords) && strings.Contains(lower, "product")) ||
					strings.HasPrefix(lower, "search ")
			},
			extract: func(text, _ string, args agent.Args) {
				extractSearchTerm(text, args)
			},
		},
		{
			intent:   agent.IntentAddProduct,
			priority: "'add product'/'create product' are specific two-word phrases; checked before create order so 'create product' never reads as a purchase",
			match:    func(lower string) bool { return containsAny(lower, addProductKeywords) },
			extract: func(text, lower string, args agent.Args) {
				extractAddProduct(text, lower, args)
			},
		},
		{
			intent:   agent.IntentCreateOrder,
			priority: "'order product N' must outrank 'get product N'; purchase verbs (buy, purchase) are unambiguous",
			match:    func(lower string) bool { return containsAny(lower, createOrderKeywords) },
			extract: func(_, lower string, args agent.Args) {
				extractProductID(lower, args)
				extractQuantity(lower, args)
			},
		},
		{
			intent:   agent.IntentGetProduct,
			priority: "single-product lookup; sits after search and create order which share the 'product' keyword. Its 'show product' keyword is shadowed by the list rules, so lookups reach it through 'get product'",
			match:    func(lower string) bool { return containsAny(lower, getProductKeywords) },
			extract: func(_, lower string, args agent.Args) {
				extractProductID(lower, args)
			},
		},
		{
			intent:   agent.IntentUpdateProduct,
			priority: "'update product' is specific; must sit above the order-status rule whose 'update order' keyword cannot collide",
			match:    func(lower string) bool { return containsAny(lower, updateProductKeywords) },
			extract: func(text, lower string, args agent.Args) {
				extractProductID(lower, args)
				extractProductUpdates(text, lower, args)
			},
		},
		{
			intent:   agent.IntentDeleteProduct,
			priority: "'delete product'/'remove product' collide with nothing above",
			match:    func(lower string) bool { return containsAny(lower, deleteProductKeywords) },
			extract: func(_, lower string, args agent.Args) {
				extractProductID(lower, args)
			},
		},
		{
			intent:   agent.IntentGetOrderStatistics,
			priority: "statistics keywords are shared between the two aggregate intents; the order variant needs the word 'order'",
			match:    func(lower string) bool { return containsAny(lower, statisticsKeywords) && strings.Contains(lower, "order") },
		},
		{
			intent:   agent.IntentGetProductStatistics,
			priority: "bare 'get statistics' defaults to the catalog aggregate",
			match:    func(lower string) bool { return containsAny(lower, statisticsKeywords) },
		},
		{
			intent:   agent.IntentGetOrder,
			priority: "order lookup by id; after statistics so 'order statistics' is not read as a lookup",
			match:    func(lower string) bool { return containsAny(lower, getOrderKeywords) },
			extract: func(_, lower string, args agent.Args) {
				extractOrderID(lower, args)
			},
		},
		{
			intent:   agent.IntentUpdateOrderStatus,
			priority: "'update order'/'complete order' are status transitions; follows get order so 'get order' stays a lookup",
			match:    func(lower string) bool { return containsAny(lower, updateOrderKeywords) },
			extract: func(_, lower string, args agent.Args) {
				extractOrderID(lower, args)
				extractTargetStatus(lower, args)
			},
		},
		{
			intent:   agent.IntentCancelOrder,
			priority: "exact phrase 'cancel order'; kept below update order status so 'update order 3 status cancelled' is a transition, not a cancellation",
			match:    func(lower string) bool { return strings.Contains(lower, "cancel order") },
			extract: func(_, lower string, args agent.Args) {
				extractOrderID(lower, args)
			},
		},
		{
			intent:   agent.IntentApplyDiscount,
			priority: "'discount' outranks calculate so 'calculate 20% discount on 50' prices a discount instead of failing expression validation on the % sign",
			match:    func(lower string) bool { return strings.Contains(lower, "discount") },
			extract: func(_, lower string, args agent.Args) {
				extractDiscount(lower, args)
			},
		},
		{
			intent:   agent.IntentCalculate,
			priority: "generic arithmetic triggers; last because 'calculate' may appear inside more specific requests handled above",
			match:    func(lower string) bool { return containsAny(lower, calculateKeywords) },
			extract: func(text, lower string, args agent.Args) {
				extractExpression(text, lower, args)
			},
		},
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
