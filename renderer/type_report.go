package renderer

import (
	"os"
	"time"

	"github.com/etnz/inventory"
)

// Now is the current time used in reports.
// Tests can freeze it with the INVENTORY_TESTING_NOW environment variable.
func Now() time.Time {
	if os.Getenv("INVENTORY_TESTING_NOW") != "" {
		t, err := time.Parse(time.DateTime, os.Getenv("INVENTORY_TESTING_NOW"))
		if err != nil {
			panic(err)
		}
		return t
	}
	return time.Now()
}

// RestockStatus is the status of a product at or below its minimum stock.
const RestockStatus = "Restock"

// Report is a struct to represent the inventory report for rendering.
type Report struct {
	GeneratedAt   string       `json:"generatedAt"`
	TotalProducts int          `json:"totalProducts"`
	TotalValue    string       `json:"totalValue"`
	LowStock      []ProductRow `json:"lowStock"`
	TopSellers    []ProductRow `json:"topSellers"`
	TotalSold     int          `json:"totalSold"`
	AverageSales  string       `json:"averageSales"`
	BelowAverage  []ProductRow `json:"belowAverage"`
}

// ProductRow is a product as displayed in report tables.
type ProductRow struct {
	Code      int    `json:"code"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	MinStock  int    `json:"minStock"`
	UnitsSold int    `json:"unitsSold"`
	Status    string `json:"status,omitempty"`
}

// NewReport converts an inventory report into its display form.
func NewReport(r *inventory.Report) *Report {
	return &Report{
		GeneratedAt:   r.GeneratedAt.Format(time.DateTime),
		TotalProducts: r.TotalProducts,
		TotalValue:    r.TotalValue.String(),
		LowStock:      newProductRows(r.LowStock),
		TopSellers:    newProductRows(r.TopSellers),
		TotalSold:     r.TotalSold,
		AverageSales:  r.AverageSales.StringFixed(2),
		BelowAverage:  newProductRows(r.BelowAverage),
	}
}

func newProductRows(products []inventory.Product) []ProductRow {
	rows := make([]ProductRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, newProductRow(p))
	}
	return rows
}

func newProductRow(p inventory.Product) ProductRow {
	row := ProductRow{
		Code:      p.Code,
		Name:      p.Name,
		Price:     p.Price.StringFixed(2),
		Quantity:  p.Quantity,
		MinStock:  p.MinStock,
		UnitsSold: p.UnitsSold,
	}
	if p.IsLowStock() {
		row.Status = RestockStatus
	}
	return row
}
