package pricing

import (
	"sort"

	"github.com/shopspring/decimal"

	"mbs/inventory/internal/domain"
)

// RegularPrice is the implicit tier for unknown categories and for
// quantities below a category's smallest tier.
var RegularPrice = domain.BulkPricingTier{MinQty: 1, Discount: 0, Label: "Regular Price"}

// DefaultTiers are the volume discounts offered out of the box.
func DefaultTiers() map[string][]domain.BulkPricingTier {
	return map[string][]domain.BulkPricingTier{
		"shingles": {
			{MinQty: 1, Discount: 0, Label: "Regular Price"},
			{MinQty: 10, Discount: 0.05, Label: "5% off 10+ bundles"},
			{MinQty: 25, Discount: 0.10, Label: "10% off 25+ bundles"},
			{MinQty: 50, Discount: 0.15, Label: "15% off 50+ bundles"},
		},
		"underlayment": {
			{MinQty: 1, Discount: 0, Label: "Regular Price"},
			{MinQty: 5, Discount: 0.05, Label: "5% off 5+ rolls"},
			{MinQty: 15, Discount: 0.10, Label: "10% off 15+ rolls"},
		},
		"ice-and-water": {
			{MinQty: 1, Discount: 0, Label: "Regular Price"},
			{MinQty: 10, Discount: 0.08, Label: "8% off 10+ rolls"},
			{MinQty: 20, Discount: 0.12, Label: "12% off 20+ rolls"},
		},
	}
}

type Engine struct {
	tiers map[string][]domain.BulkPricingTier
}

// NewEngine copies tiers and orders each category ascending by MinQty.
func NewEngine(tiers map[string][]domain.BulkPricingTier) *Engine {
	sorted := make(map[string][]domain.BulkPricingTier, len(tiers))
	for category, list := range tiers {
		list = append([]domain.BulkPricingTier(nil), list...)
		sort.SliceStable(list, func(i, j int) bool { return list[i].MinQty < list[j].MinQty })
		sorted[category] = list
	}
	return &Engine{tiers: sorted}
}

// GetTier returns the tier with the largest MinQty not above quantity.
func (e *Engine) GetTier(category string, quantity int) domain.BulkPricingTier {
	best := RegularPrice
	for _, tier := range e.tiers[category] {
		if tier.MinQty > quantity {
			break
		}
		best = tier
	}
	return best
}

// Price applies the tier discount. The result is not rounded.
func (e *Engine) Price(basePrice float64, category string, quantity int) float64 {
	return basePrice * (1 - e.GetTier(category, quantity).Discount)
}

// Tiers returns the ordered tiers of a category, nil when it has none.
func (e *Engine) Tiers(category string) []domain.BulkPricingTier {
	list := e.tiers[category]
	if list == nil {
		return nil
	}
	return append([]domain.BulkPricingTier(nil), list...)
}

// FormatPrice renders a price with two decimals, rounding half away from
// zero.
func FormatPrice(price float64) string {
	return decimal.NewFromFloat(price).StringFixed(2)
}

// LineTotal is unit price times quantity, rounded to cents.
func LineTotal(unitPrice float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(unitPrice).Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}
