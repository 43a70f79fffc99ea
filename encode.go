package inventory

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// MarshalJSON writes the product as a JSON object with a fixed key order.
func (p Product) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("code", p.Code)
	w.Append("name", p.Name)
	w.Append("price", p.Price)
	w.Append("quantity", p.Quantity)
	w.Append("minStock", p.MinStock)
	w.Append("unitsSold", p.UnitsSold)
	return w.MarshalJSON()
}

// UnmarshalJSON reads a product. Missing "unitsSold" means that the product
// was never sold, a missing "minStock" means DefaultMinStock.
func (p *Product) UnmarshalJSON(data []byte) error {
	var temp struct {
		Code      int             `json:"code"`
		Name      string          `json:"name"`
		Price     decimal.Decimal `json:"price"`
		Quantity  int             `json:"quantity"`
		MinStock  *int            `json:"minStock"`
		UnitsSold int             `json:"unitsSold"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*p = Product{
		Code:      temp.Code,
		Name:      temp.Name,
		Price:     temp.Price,
		Quantity:  temp.Quantity,
		MinStock:  DefaultMinStock,
		UnitsSold: temp.UnitsSold,
	}
	if temp.MinStock != nil {
		p.MinStock = *temp.MinStock
	}
	return nil
}

// EncodeProducts writes products as a JSON array, one product per line, in
// the given order.
func EncodeProducts(w io.Writer, products []Product) error {
	bw := bufio.NewWriter(w)
	if len(products) == 0 {
		bw.WriteString("[]\n")
		return bw.Flush()
	}
	bw.WriteString("[\n")
	for i, p := range products {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to marshal product %d: %w", p.Code, err)
		}
		bw.WriteString("  ")
		bw.Write(data)
		if i != len(products)-1 { // not last
			bw.WriteString(",")
		}
		bw.WriteString("\n")
	}
	bw.WriteString("]\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write products: %w", err)
	}
	return nil
}

// DecodeProducts reads a JSON array of products. An empty input is an empty
// inventory.
func DecodeProducts(r io.Reader) ([]Product, error) {
	products := make([]Product, 0)
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		if errors.Is(err, io.EOF) {
			return make([]Product, 0), nil
		}
		return nil, fmt.Errorf("format error: %w", err)
	}
	return products, nil
}
