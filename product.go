package inventory

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DefaultMinStock is the minimum stock threshold used when none is given.
const DefaultMinStock = 5

// Product is one item of the inventory.
//
// Code is the identity of the product and never changes once the product is
// registered.
type Product struct {
	Code      int             `validate:"gt=0"`
	Name      string          `validate:"required"`
	Price     decimal.Decimal `validate:"gt=0"`
	Quantity  int             `validate:"gte=0"`
	MinStock  int             `validate:"gt=0"`
	UnitsSold int             `validate:"gte=0"`
}

// NewProduct creates a product that has not been sold yet.
func NewProduct(code int, name string, price decimal.Decimal, quantity, minStock int) Product {
	return Product{
		Code:     code,
		Name:     name,
		Price:    price,
		Quantity: quantity,
		MinStock: minStock,
	}
}

// IsLowStock returns true if the quantity on hand is at or below the minimum stock.
func (p Product) IsLowStock() bool { return p.Quantity <= p.MinStock }

// Value returns the value of the stock on hand, price times quantity.
func (p Product) Value() decimal.Decimal { return p.Price.Mul(newDecimal(p.Quantity)) }

// String returns the single line representation of the product.
func (p Product) String() string {
	return fmt.Sprintf("Code: %04d | Name: %s | Price: %s | Quantity: %d", p.Code, p.Name, p.Price.StringFixed(2), p.Quantity)
}

// productValidator checks Product fields against their struct tags.
var productValidator = newProductValidator()

func newProductValidator() *validator.Validate {
	v := validator.New()
	// validator knows nothing about decimals, compare them as floats, it is
	// only used for sign checks.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// Validate checks the product fields, it does not check uniqueness rules
// that depend on the registry.
func (p Product) Validate() error {
	if err := productValidator.Struct(p); err != nil {
		return fmt.Errorf("%w: product %d: %v", ErrInvalidInput, p.Code, err)
	}
	return nil
}
