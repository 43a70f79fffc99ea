package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseCode parses an operator provided product code. It must be a positive
// integer.
func ParseCode(s string) (int, error) {
	code, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: the code must be an integer, got %q", ErrInvalidInput, s)
	}
	if code <= 0 {
		return 0, fmt.Errorf("%w: the code must be a positive number, got %d", ErrInvalidInput, code)
	}
	return code, nil
}

// CodeAvailable parses s as a product code that is not yet used in the registry.
func (r *Registry) CodeAvailable(s string) (int, error) {
	code, err := ParseCode(s)
	if err != nil {
		return 0, err
	}
	if _, exists := r.index[code]; exists {
		return 0, fmt.Errorf("%w: %d", ErrDuplicateCode, code)
	}
	return code, nil
}

// CodeExists parses s as the code of a product already in the registry.
func (r *Registry) CodeExists(s string) (int, error) {
	code, err := ParseCode(s)
	if err != nil {
		return 0, err
	}
	if _, exists := r.index[code]; !exists {
		return 0, fmt.Errorf("%w: %d", ErrNotFound, code)
	}
	return code, nil
}

// NameAvailable checks that name is not blank and that no product in the
// registry has the same name, ignoring case.
func (r *Registry) NameAvailable(name string) error {
	return nameAvailable(r.products, name, 0)
}

// nameAvailable checks name against products, skipping the product 'self'
// (0 to skip none) so that a product can be renamed to a different casing of
// its own name.
func nameAvailable(products []Product, name string, self int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: the name cannot be empty", ErrInvalidInput)
	}
	for _, p := range products {
		if p.Code != self && strings.EqualFold(p.Name, name) {
			return fmt.Errorf("%w: %q is already used by product %d", ErrDuplicateName, name, p.Code)
		}
	}
	return nil
}

// ParsePrice parses an operator provided price, it must be a positive decimal.
func ParsePrice(s string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: the price must be a number, got %q", ErrInvalidInput, s)
	}
	if !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: the price must be greater than 0, got %s", ErrInvalidInput, price)
	}
	return price, nil
}

// ParseQuantity parses a quantity of units that cannot be negative.
func ParseQuantity(s string) (int, error) {
	q, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: the quantity must be an integer, got %q", ErrInvalidInput, s)
	}
	if q < 0 {
		return 0, fmt.Errorf("%w: the quantity cannot be negative, got %d", ErrInvalidInput, q)
	}
	return q, nil
}

// ParseMinStock parses a minimum stock threshold. An empty text means
// DefaultMinStock.
func ParseMinStock(s string) (int, error) {
	if strings.TrimSpace(s) == "" {
		return DefaultMinStock, nil
	}
	q, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: the minimum stock must be an integer, got %q", ErrInvalidInput, s)
	}
	if q <= 0 {
		return 0, fmt.Errorf("%w: the minimum stock must be greater than 0, got %d", ErrInvalidInput, q)
	}
	return q, nil
}

// ParseSaleQuantity parses the number of units sold, it must be positive.
func ParseSaleQuantity(s string) (int, error) {
	q, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: the quantity must be an integer, got %q", ErrInvalidInput, s)
	}
	if q <= 0 {
		return 0, fmt.Errorf("%w: the quantity must be greater than 0, got %d", ErrInvalidInput, q)
	}
	return q, nil
}
