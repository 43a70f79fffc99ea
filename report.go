package inventory

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// TopSellersLimit is the maximum number of products listed as top sellers.
const TopSellersLimit = 5

// Report summarizes the state of the inventory at a given time.
type Report struct {
	GeneratedAt   time.Time
	TotalProducts int
	// TotalValue is the sum of price times quantity over all products.
	TotalValue Money
	LowStock   []Product
	// TopSellers are the products that have been sold at least once, best
	// sellers first, at most TopSellersLimit.
	TopSellers   []Product
	TotalSold    int
	AverageSales decimal.Decimal
	// BelowAverage are all the products whose units sold are at or below
	// AverageSales. Products never sold are part of it.
	BelowAverage []Product
}

// NewReport computes the report of products at time now. Money values are
// expressed in currency.
//
// It does not modify products.
func NewReport(products []Product, now time.Time, currency string) *Report {
	r := &Report{
		GeneratedAt:   now,
		TotalProducts: len(products),
		TotalValue:    M(0, currency),
		LowStock:      lowStock(products),
		TopSellers:    make([]Product, 0, TopSellersLimit),
		AverageSales:  decimal.Zero,
		BelowAverage:  make([]Product, 0),
	}

	for _, p := range products {
		r.TotalValue = r.TotalValue.Add(M(p.Value(), currency))
		r.TotalSold += p.UnitsSold
	}

	// Sort a copy, the stable sort keeps registry order among ties.
	sorted := slices.Clone(products)
	slices.SortStableFunc(sorted, func(a, b Product) int { return b.UnitsSold - a.UnitsSold })
	for _, p := range sorted {
		if p.UnitsSold > 0 && len(r.TopSellers) < TopSellersLimit {
			r.TopSellers = append(r.TopSellers, p)
		}
	}

	if r.TotalProducts > 0 {
		r.AverageSales = newDecimal(r.TotalSold).Div(newDecimal(r.TotalProducts))
	}
	// unitsSold <= TotalSold/TotalProducts, compared without division.
	for _, p := range products {
		if p.UnitsSold*r.TotalProducts <= r.TotalSold {
			r.BelowAverage = append(r.BelowAverage, p)
		}
	}
	return r
}
