package inventory

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeProducts(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, EncodeProducts(&buf, nil))
		require.Equal(t, "[]\n", buf.String())
	})

	t.Run("one product per line", func(t *testing.T) {
		var buf bytes.Buffer
		products := []Product{
			NewProduct(1001, "Mug", D("9.99"), 20, 5),
			{Code: 7, Name: "Fork", Price: D("2.5"), Quantity: 3, MinStock: 4, UnitsSold: 12},
		}
		require.NoError(t, EncodeProducts(&buf, products))
		want := `[
  {"code":1001,"name":"Mug","price":9.99,"quantity":20,"minStock":5,"unitsSold":0},
  {"code":7,"name":"Fork","price":2.5,"quantity":3,"minStock":4,"unitsSold":12}
]
`
		require.Equal(t, want, buf.String())
	})
}

func TestDecodeProducts(t *testing.T) {
	t.Run("round trip keeps order", func(t *testing.T) {
		products := []Product{
			{Code: 7, Name: "Fork", Price: D("2.5"), Quantity: 3, MinStock: 4, UnitsSold: 12},
			NewProduct(1001, "Mug", D("9.99"), 20, 5),
		}
		var buf bytes.Buffer
		require.NoError(t, EncodeProducts(&buf, products))

		got, err := DecodeProducts(&buf)
		require.NoError(t, err)
		require.Len(t, got, 2)
		for i := range products {
			requireProduct(t, products[i], got[i])
		}
	})

	t.Run("empty input", func(t *testing.T) {
		got, err := DecodeProducts(strings.NewReader(""))
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("missing optional fields", func(t *testing.T) {
		got, err := DecodeProducts(strings.NewReader(`[{"code":3,"name":"Plate","price":"3.10","quantity":1}]`))
		require.NoError(t, err)
		require.Len(t, got, 1)
		requireProduct(t, Product{Code: 3, Name: "Plate", Price: D("3.1"), Quantity: 1, MinStock: DefaultMinStock}, got[0])
	})

	t.Run("not an array", func(t *testing.T) {
		_, err := DecodeProducts(strings.NewReader(`{"code":3}`))
		require.ErrorContains(t, err, "format error")
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := DecodeProducts(strings.NewReader(`[{"code":3,`))
		require.ErrorContains(t, err, "format error")
	})
}
