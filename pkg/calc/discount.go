package calc

// DiscountResult holds the outcome of applying a percentage discount.
type DiscountResult struct {
	Percent    float64
	BasePrice  float64
	Amount     float64
	FinalPrice float64
	// Unusual flags percents outside [0,100]. Such values are still applied;
	// callers decide how to present them.
	Unusual bool
}

// Discount applies percent to basePrice. Percent is deliberately unbounded:
// values outside [0,100] are accepted and only flagged.
func Discount(percent, basePrice float64) DiscountResult {
	amount := basePrice * percent / 100
	return DiscountResult{
		Percent:    percent,
		BasePrice:  basePrice,
		Amount:     amount,
		FinalPrice: basePrice - amount,
		Unusual:    percent < 0 || percent > 100,
	}
}
