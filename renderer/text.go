package renderer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/inventory"
	"github.com/mattn/go-runewidth"
)

// Layout of the plain text report.
const (
	lineWidth   = 76
	alertWidth  = 70
	summaryCell = 38
	nameWidth   = 28
)

var (
	summaryColumns = []int{summaryCell, summaryCell}
	tableColumns   = []int{10, 30, 12, 12, 12}
	alertColumns   = []int{10, 30, 15, 15}
)

// width measures text in terminal columns. East Asian ambiguous runes, like
// accented latin letters, count for one column whatever the locale.
var width = newWidthCondition()

func newWidthCondition() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}

// textRenderer lays out fixed-width plain text.
type textRenderer struct {
	*strings.Builder
}

func newTextRenderer() *textRenderer { return &textRenderer{Builder: &strings.Builder{}} }

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *textRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// rule prints a line made of n times c.
func (r *textRenderer) rule(c string, n int) { r.Printf("%s\n", strings.Repeat(c, n)) }

// centered prints s centered in a line of n columns.
func (r *textRenderer) centered(s string, n int) {
	r.Printf("%s\n", strings.TrimRight(center(s, n), " "))
}

// row prints cells left aligned in columns of the given widths. Trailing
// blanks are dropped.
func (r *textRenderer) row(columns []int, cells ...string) {
	var b strings.Builder
	for i, c := range cells {
		b.WriteString(width.FillRight(c, columns[i]))
	}
	r.Printf("%s\n", strings.TrimRight(b.String(), " "))
}

// section prints a centered title underlined by a double rule.
func (r *textRenderer) section(title string) {
	r.Printf("\n")
	r.centered(title, lineWidth)
	r.rule("=", lineWidth)
}

func center(s string, n int) string {
	w := width.StringWidth(s)
	if w >= n {
		return s
	}
	left := (n - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", n-w-left)
}

// truncateName cuts long names so that they never reach the next column.
func truncateName(name string) string { return width.Truncate(name, nameWidth, "") }

// RenderReportText renders the Report struct as fixed-width plain text.
func RenderReportText(rep *Report) string {
	r := newTextRenderer()
	r.Printf("\n")
	r.centered(fmt.Sprintf("INVENTORY REPORT (%s)", rep.GeneratedAt), lineWidth)
	r.rule("=", lineWidth)
	r.centered("INVENTORY SUMMARY", lineWidth)
	r.rule("=", lineWidth)
	r.row(summaryColumns, center("Total Products", summaryCell), center("Inventory Value", summaryCell))
	r.rule("-", lineWidth)
	r.row(summaryColumns, center(strconv.Itoa(rep.TotalProducts), summaryCell), center(rep.TotalValue, summaryCell))

	r.section("LOW STOCK PRODUCTS")
	r.row(tableColumns, "Code", "Name", "Quantity", "Minimum", "Status")
	r.rule("-", lineWidth)
	for _, p := range rep.LowStock {
		r.row(tableColumns, strconv.Itoa(p.Code), truncateName(p.Name), strconv.Itoa(p.Quantity), strconv.Itoa(p.MinStock), p.Status)
	}
	if len(rep.LowStock) == 0 {
		r.row(tableColumns, "N/A", "No products", "0", "0", "N/A")
	}

	r.section("TOP SELLING PRODUCTS")
	r.salesTable(rep.TopSellers)

	r.section(fmt.Sprintf("LEAST SELLING PRODUCTS (average %s units sold)", rep.AverageSales))
	r.salesTable(rep.BelowAverage)
	return r.String()
}

func (r *textRenderer) salesTable(rows []ProductRow) {
	r.row(tableColumns, "Code", "Name", "Price", "Stock", "Sold")
	r.rule("-", lineWidth)
	for _, p := range rows {
		r.row(tableColumns, strconv.Itoa(p.Code), truncateName(p.Name), p.Price, strconv.Itoa(p.Quantity), strconv.Itoa(p.UnitsSold))
	}
	if len(rows) == 0 {
		r.row(tableColumns, "N/A", "No products", "0.00", "0", "0")
	}
}

// RenderProducts renders one line per product, or a notice when there is none.
func RenderProducts(products []inventory.Product) string {
	r := newTextRenderer()
	if len(products) == 0 {
		r.Printf("The inventory is empty.\n")
		return r.String()
	}
	for _, p := range products {
		r.Printf("%s\n", p)
	}
	return r.String()
}

// RenderLowStockAlert renders the alert shown when some products need to be
// restocked. It is empty when low is empty.
func RenderLowStockAlert(low []inventory.Product) string {
	if len(low) == 0 {
		return ""
	}
	r := newTextRenderer()
	r.Printf("\nALERT! The following products are at or below their minimum stock:\n")
	r.rule("=", alertWidth)
	r.row(alertColumns, "Code", "Name", "Current Stock", "Minimum Stock")
	r.rule("-", alertWidth)
	for _, p := range low {
		r.row(alertColumns, strconv.Itoa(p.Code), truncateName(p.Name), strconv.Itoa(p.Quantity), strconv.Itoa(p.MinStock))
	}
	r.rule("=", alertWidth)
	r.Printf("Restocking as soon as possible is recommended.\n")
	return r.String()
}
