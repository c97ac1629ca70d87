package forecast

import "github.com/dayanaadylkhanova/seller-forecast/internal/entity"

const Uncategorized = "Uncategorized"

// CategoryDistribution returns each category's share of the total revenue
// of products, in order of first appearance. Products missing from
// revenueByProduct contribute 0. When the total is 0 every share is 0.
func CategoryDistribution(products []entity.ProductRecord, revenueByProduct map[string]float64) []entity.CategorySlice {
	return distribute(products, func(p entity.ProductRecord) float64 {
		return revenueByProduct[p.Key()]
	})
}

// CategoryShareByCount weights every product equally.
func CategoryShareByCount(products []entity.ProductRecord) []entity.CategorySlice {
	return distribute(products, func(entity.ProductRecord) float64 { return 1 })
}

func distribute(products []entity.ProductRecord, weight func(entity.ProductRecord) float64) []entity.CategorySlice {
	if len(products) == 0 {
		return []entity.CategorySlice{{Category: NoData, Percentage: 100}}
	}

	var (
		order  []string
		totals = make(map[string]float64, len(products))
		total  float64
	)
	for _, p := range products {
		c := categoryOf(p)
		if _, seen := totals[c]; !seen {
			order = append(order, c)
		}
		w := weight(p)
		totals[c] += w
		total += w
	}

	out := make([]entity.CategorySlice, 0, len(order))
	for _, c := range order {
		pct := 0.0
		if total > 0 {
			pct = 100 * totals[c] / total
		}
		out = append(out, entity.CategorySlice{Category: c, Percentage: pct})
	}
	return out
}

func categoryOf(p entity.ProductRecord) string {
	if p.Category == nil || *p.Category == "" {
		return Uncategorized
	}
	return *p.Category
}
