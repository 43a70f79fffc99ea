package inventory

import (
	"errors"
	"testing"
)

func TestParseCode(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr error
	}{
		{input: "1001", want: 1001},
		{input: " 42 ", want: 42},
		{input: "0", wantErr: ErrInvalidInput},
		{input: "-1", wantErr: ErrInvalidInput},
		{input: "abc", wantErr: ErrInvalidInput},
		{input: "", wantErr: ErrInvalidInput},
		{input: "1.5", wantErr: ErrInvalidInput},
	}
	for _, tt := range tests {
		got, err := ParseCode(tt.input)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("ParseCode(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCode(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestRegistry_CodeChecks(t *testing.T) {
	r, _ := newTestRegistry(t, NewProduct(2, "Cup", D("5.0"), 10, 5))

	if _, err := r.CodeAvailable("2"); !errors.Is(err, ErrDuplicateCode) {
		t.Errorf("CodeAvailable(2) = %v, want ErrDuplicateCode", err)
	}
	if code, err := r.CodeAvailable("3"); err != nil || code != 3 {
		t.Errorf("CodeAvailable(3) = %d, %v, want 3, nil", code, err)
	}
	if _, err := r.CodeAvailable("x"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("CodeAvailable(x) = %v, want ErrInvalidInput", err)
	}
	if code, err := r.CodeExists("2"); err != nil || code != 2 {
		t.Errorf("CodeExists(2) = %d, %v, want 2, nil", code, err)
	}
	if _, err := r.CodeExists("3"); !errors.Is(err, ErrNotFound) {
		t.Errorf("CodeExists(3) = %v, want ErrNotFound", err)
	}
}

func TestRegistry_NameAvailable(t *testing.T) {
	r, _ := newTestRegistry(t, NewProduct(2, "Cup", D("5.0"), 10, 5))

	tests := []struct {
		name    string
		wantErr error
	}{
		{name: "Plate"},
		{name: "Cup", wantErr: ErrDuplicateName},
		{name: "cup", wantErr: ErrDuplicateName},
		{name: "cUP", wantErr: ErrDuplicateName},
		{name: "Cups"},
		{name: "", wantErr: ErrInvalidInput},
		{name: "   ", wantErr: ErrInvalidInput},
	}
	for _, tt := range tests {
		if err := r.NameAvailable(tt.name); !errors.Is(err, tt.wantErr) {
			t.Errorf("NameAvailable(%q) = %v, want %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "9.99", want: "9.99"},
		{input: " 0.01", want: "0.01"},
		{input: "10", want: "10"},
		{input: "0", wantErr: true},
		{input: "-2.5", wantErr: true},
		{input: "ten", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParsePrice(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("ParsePrice(%q) error = %v, want ErrInvalidInput", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePrice(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if !got.Equal(D(tt.want)) {
			t.Errorf("ParsePrice(%q) = %v, want %s", tt.input, got, tt.want)
		}
	}
}

func TestParseQuantities(t *testing.T) {
	tests := []struct {
		name    string
		parse   func(string) (int, error)
		input   string
		want    int
		wantErr bool
	}{
		{name: "quantity", parse: ParseQuantity, input: "0", want: 0},
		{name: "quantity", parse: ParseQuantity, input: "20", want: 20},
		{name: "quantity", parse: ParseQuantity, input: "-1", wantErr: true},
		{name: "quantity", parse: ParseQuantity, input: "two", wantErr: true},
		{name: "min stock", parse: ParseMinStock, input: "", want: DefaultMinStock},
		{name: "min stock", parse: ParseMinStock, input: "  ", want: DefaultMinStock},
		{name: "min stock", parse: ParseMinStock, input: "3", want: 3},
		{name: "min stock", parse: ParseMinStock, input: "0", wantErr: true},
		{name: "min stock", parse: ParseMinStock, input: "x", wantErr: true},
		{name: "sale", parse: ParseSaleQuantity, input: "1", want: 1},
		{name: "sale", parse: ParseSaleQuantity, input: "0", wantErr: true},
		{name: "sale", parse: ParseSaleQuantity, input: "-4", wantErr: true},
	}
	for _, tt := range tests {
		got, err := tt.parse(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("%s(%q) error = %v, want ErrInvalidInput", tt.name, tt.input, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("%s(%q) = %d, %v, want %d", tt.name, tt.input, got, err, tt.want)
		}
	}
}
