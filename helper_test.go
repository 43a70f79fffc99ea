package inventory

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// D is a helper for test to create a decimal from a literal.
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ptr is a helper for test to build optional values.
func ptr[T any](v T) *T { return &v }

// memStore is a Store that keeps the last saved products, and can be told to
// fail.
type memStore struct {
	saved []Product
	saves int
	fail  bool
}

func (s *memStore) Load() ([]Product, error) { return s.saved, nil }
func (s *memStore) Save(products []Product) error {
	if s.fail {
		return errors.New("disk full")
	}
	s.saves++
	s.saved = products
	return nil
}

// testingT is implemented by *testing.T and *rapid.T.
type testingT interface {
	require.TestingT
	Helper()
}

// newTestRegistry creates a registry backed by a memStore, with some products.
func newTestRegistry(t testingT, products ...Product) (*Registry, *memStore) {
	t.Helper()
	store := &memStore{}
	r := NewRegistry(store)
	for _, p := range products {
		require.NoError(t, r.Import(p))
	}
	return r, store
}
