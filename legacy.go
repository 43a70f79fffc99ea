package inventory

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Keys of the inventory file written by the first, Spanish speaking, version
// of the tool.
const (
	legacyCode      = "$.codigo"
	legacyName      = "$.nombre"
	legacyPrice     = "$.precio"
	legacyQuantity  = "$.cantidad"
	legacyMinStock  = "$.stock_minimo"
	legacyUnitsSold = "$.ventas"
)

// DecodeLegacy reads products from the legacy inventory file format: a JSON
// array of objects with the keys "codigo", "nombre", "precio", "cantidad",
// "stock_minimo" and an optional "ventas".
//
// Products are returned as read, they are not validated.
func DecodeLegacy(r io.Reader) ([]Product, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("format error: %w", err)
	}
	items, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("format error: the legacy file must contain a JSON array")
	}

	products := make([]Product, 0, len(items))
	for i, item := range items {
		p, err := decodeLegacyItem(item)
		if err != nil {
			return nil, fmt.Errorf("format error in item #%d: %w", i+1, err)
		}
		products = append(products, p)
	}
	return products, nil
}

func decodeLegacyItem(item any) (p Product, err error) {
	if p.Code, err = legacyInt(item, legacyCode); err != nil {
		return p, err
	}
	name, err := jsonpath.Get(legacyName, item)
	if err != nil {
		return p, fmt.Errorf("missing %s: %w", legacyName, err)
	}
	var ok bool
	if p.Name, ok = name.(string); !ok {
		return p, fmt.Errorf("%s must be a string, got %v", legacyName, name)
	}
	if p.Price, err = legacyDecimal(item, legacyPrice); err != nil {
		return p, err
	}
	if p.Quantity, err = legacyInt(item, legacyQuantity); err != nil {
		return p, err
	}
	if p.MinStock, err = legacyInt(item, legacyMinStock); err != nil {
		return p, err
	}
	// Old files may not have the units sold at all.
	if _, err := jsonpath.Get(legacyUnitsSold, item); err == nil {
		if p.UnitsSold, err = legacyInt(item, legacyUnitsSold); err != nil {
			return p, err
		}
	}
	return p, nil
}

func legacyDecimal(item any, path string) (decimal.Decimal, error) {
	v, err := jsonpath.Get(path, item)
	if err != nil {
		return decimal.Zero, fmt.Errorf("missing %s: %w", path, err)
	}
	n, ok := v.(json.Number)
	if !ok {
		return decimal.Zero, fmt.Errorf("%s must be a number, got %v", path, v)
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s must be a number, got %v: %w", path, v, err)
	}
	return d, nil
}

func legacyInt(item any, path string) (int, error) {
	d, err := legacyDecimal(item, path)
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("%s must be an integer, got %v", path, d)
	}
	return int(d.IntPart()), nil
}
