package classifier

import (
	"regexp"
	"strconv"
	"strings"

	"storefront-assistant/internal/agent"
)

// Argument extraction is shallow on purpose: regexes capture loose spans and
// the numeric parses record a per-field error instead of failing the whole
// classification, so the dispatcher can name the offending field.

var (
	productIDRe  = regexp.MustCompile(`product\s+(?:id\s+)?(\d+)`)
	orderIDRe    = regexp.MustCompile(`order\s+(?:id\s+)?(\d+)`)
	bareNumberRe = regexp.MustCompile(`(?:#|\b)(\d+)\b`)
	quantityRe   = regexp.MustCompile(`quantity\s+([^\s,]+)`)
	priceFieldRe = regexp.MustCompile(`price\s+(?:to\s+)?\$?([^\s,]+)`)
	nameFieldRe  = regexp.MustCompile(`(?i)name\s+(?:to\s+)?(.+?)(?:\s+(?:price|category|in_stock|in stock|out of stock)\b|$)`)
	categoryRe   = regexp.MustCompile(`(?i)category\s+(?:to\s+)?(\w+)`)
	percentRe    = regexp.MustCompile(`(-?\d+(?:\.\d+)?)\s*%`)
	discPriceRe  = regexp.MustCompile(`(?:on|off|from|of|price)\s+\$?(\d+(?:\.\d+)?)`)
	searchRe     = regexp.MustCompile(`(?i)(?:search|find|look(?:ing)? for)\s+(?:for\s+)?(?:products?\s+)?(?:named\s+|called\s+|matching\s+)?(.+)$`)

	// "add product: Name, price: 10, category: X" and the short
	// "add product: Name, $10, X" form.
	addProductLabeledRe = regexp.MustCompile(`(?i)add product:?\s*(.+?),\s*price:?\s*\$?([^,]+?),\s*category:?\s*(\w+)`)
	addProductShortRe   = regexp.MustCompile(`(?i)(?:add|create|new) product:?\s*(.+?),\s*\$?([0-9.]+),\s*(.+?)\s*$`)
)

func extractProductID(lower string, args agent.Args) {
	if m := productIDRe.FindStringSubmatch(lower); m != nil {
		setIntField(args, "product_id", m[1])
		return
	}
	if m := bareNumberRe.FindStringSubmatch(lower); m != nil {
		setIntField(args, "product_id", m[1])
	}
}

func extractOrderID(lower string, args agent.Args) {
	if m := orderIDRe.FindStringSubmatch(lower); m != nil {
		setIntField(args, "order_id", m[1])
		return
	}
	if m := bareNumberRe.FindStringSubmatch(lower); m != nil {
		setIntField(args, "order_id", m[1])
	}
}

func extractQuantity(lower string, args agent.Args) {
	m := quantityRe.FindStringSubmatch(lower)
	if m == nil {
		return
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		args.SetError("quantity", "quantity must be a whole number")
		return
	}
	args.Set("quantity", n)
}

func extractAddProduct(text, lower string, args agent.Args) {
	var name, price, category string
	if m := addProductLabeledRe.FindStringSubmatch(text); m != nil {
		name, price, category = m[1], m[2], m[3]
	} else if m := addProductShortRe.FindStringSubmatch(text); m != nil {
		name, price, category = m[1], m[2], m[3]
	} else {
		return
	}

	// Stock phrasing rides after the category in the short form.
	category = strings.TrimSpace(category)
	for _, suffix := range []string{" out of stock", " in stock"} {
		if idx := strings.Index(strings.ToLower(category), suffix); idx >= 0 {
			category = strings.TrimSpace(category[:idx])
		}
	}

	args.Set("name", strings.TrimSpace(name))
	args.Set("category", category)
	setNumberField(args, "price", strings.TrimSpace(price))
	args.Set("in_stock", !strings.Contains(lower, "out of stock"))
}

func extractProductUpdates(text, lower string, args agent.Args) {
	if m := priceFieldRe.FindStringSubmatch(lower); m != nil {
		setNumberField(args, "price", m[1])
	}
	if m := nameFieldRe.FindStringSubmatch(text); m != nil {
		args.Set("name", strings.TrimSpace(m[1]))
	}
	if m := categoryRe.FindStringSubmatch(text); m != nil {
		args.Set("category", m[1])
	}
	switch {
	case strings.Contains(lower, "out of stock"):
		args.Set("in_stock", false)
	case strings.Contains(lower, "in stock"), strings.Contains(lower, "back in stock"):
		args.Set("in_stock", true)
	}
}

func extractTargetStatus(lower string, args agent.Args) {
	// "complete"/"completed" checked before "cancel" so the ordering never
	// matters for texts carrying both; "complete order 3" implies the target.
	switch {
	case strings.Contains(lower, "completed"), strings.Contains(lower, "complete"):
		args.Set("status", "completed")
	case strings.Contains(lower, "cancelled"), strings.Contains(lower, "cancel"):
		args.Set("status", "cancelled")
	case strings.Contains(lower, "pending"):
		args.Set("status", "pending")
	}
}

func extractOrderStatus(lower string, args agent.Args) {
	switch {
	case strings.Contains(lower, "completed"):
		args.Set("status", "completed")
	case strings.Contains(lower, "cancelled"):
		args.Set("status", "cancelled")
	case strings.Contains(lower, "pending"):
		args.Set("status", "pending")
	}
}

func extractCategory(text, lower string, args agent.Args) {
	for label, canonical := range categoryLabels {
		if strings.Contains(lower, label) {
			args.Set("category", canonical)
			return
		}
	}
	if m := categoryRe.FindStringSubmatch(text); m != nil {
		args.Set("category", m[1])
	}
}

// categoryLabels maps bare category mentions to their stored spelling so
// "list electronics products" filters without a "category" label.
var categoryLabels = map[string]string{
	"electronics": "Electronics",
	"accessories": "Accessories",
	"furniture":   "Furniture",
}

func extractSearchTerm(text string, args agent.Args) {
	m := searchRe.FindStringSubmatch(text)
	if m == nil {
		return
	}
	term := strings.TrimSpace(m[1])
	term = strings.TrimSuffix(term, ".")
	if term != "" {
		args.Set("term", term)
	}
}

func extractDiscount(lower string, args agent.Args) {
	if m := percentRe.FindStringSubmatch(lower); m != nil {
		setNumberField(args, "percent", m[1])
	}
	if m := discPriceRe.FindStringSubmatch(lower); m != nil {
		setNumberField(args, "price", m[1])
	}
}

func extractExpression(text, lower string, args agent.Args) {
	for _, kw := range calculateKeywords {
		if idx := strings.Index(lower, kw); idx >= 0 {
			expr := strings.TrimSpace(text[idx+len(kw):])
			expr = strings.TrimSuffix(expr, "?")
			if expr != "" {
				args.Set("expression", expr)
			}
			return
		}
	}
}

func setIntField(args agent.Args, field, raw string) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		args.SetError(field, field+" must be a whole number")
		return
	}
	args.Set(field, n)
}

func setNumberField(args agent.Args, field, raw string) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		args.SetError(field, field+" must be a number")
		return
	}
	args.Set(field, f)
}
