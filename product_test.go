package inventory

import (
	"errors"
	"testing"
)

func TestProduct_String(t *testing.T) {
	tests := []struct {
		name     string
		p        Product
		expected string
	}{
		{
			name:     "regular",
			p:        NewProduct(1001, "Mug", D("9.99"), 20, 5),
			expected: "Code: 1001 | Name: Mug | Price: 9.99 | Quantity: 20",
		},
		{
			name:     "short code and round price",
			p:        NewProduct(7, "Fork", D("2"), 0, 5),
			expected: "Code: 0007 | Name: Fork | Price: 2.00 | Quantity: 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.String(); got != tt.expected {
				t.Errorf("Product.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestProduct_IsLowStock(t *testing.T) {
	tests := []struct {
		quantity int
		expected bool
	}{
		{quantity: 0, expected: true},
		{quantity: 4, expected: true},
		{quantity: 5, expected: true},
		{quantity: 6, expected: false},
	}

	for _, tt := range tests {
		p := NewProduct(1, "Pen", D("1"), tt.quantity, 5)
		if got := p.IsLowStock(); got != tt.expected {
			t.Errorf("IsLowStock() with quantity %d = %v, want %v", tt.quantity, got, tt.expected)
		}
	}
}

func TestProduct_Value(t *testing.T) {
	p := NewProduct(1, "Pen", D("1.20"), 3, 5)
	if got := p.Value(); !got.Equal(D("3.6")) {
		t.Errorf("Value() = %v, want 3.6", got)
	}
}

func TestProduct_Validate(t *testing.T) {
	tests := []struct {
		name  string
		p     Product
		valid bool
	}{
		{name: "valid", p: NewProduct(1, "Pen", D("1.20"), 0, 1), valid: true},
		{name: "sold", p: Product{Code: 1, Name: "Pen", Price: D("0.01"), Quantity: 2, MinStock: 5, UnitsSold: 10}, valid: true},
		{name: "no code", p: NewProduct(0, "Pen", D("1.20"), 0, 1)},
		{name: "negative code", p: NewProduct(-3, "Pen", D("1.20"), 0, 1)},
		{name: "no name", p: NewProduct(1, "", D("1.20"), 0, 1)},
		{name: "free", p: NewProduct(1, "Pen", D("0"), 0, 1)},
		{name: "negative price", p: NewProduct(1, "Pen", D("-1"), 0, 1)},
		{name: "negative quantity", p: NewProduct(1, "Pen", D("1"), -1, 1)},
		{name: "no minimum", p: NewProduct(1, "Pen", D("1"), 1, 0)},
		{name: "negative sales", p: Product{Code: 1, Name: "Pen", Price: D("1"), MinStock: 5, UnitsSold: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Validate() = %v, want ErrInvalidInput", err)
			}
		})
	}
}
