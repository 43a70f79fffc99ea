package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/require"
)

// newTestShell runs a shell over a fresh inventory with the given operator
// input, one answer per line.
func newTestShell(t *testing.T, lines ...string) (*Shell, *bytes.Buffer) {
	t.Helper()
	r, err := inventory.Open(inventory.NewJSONFile(filepath.Join(t.TempDir(), "inventory.json")))
	require.NoError(t, err)
	out := &bytes.Buffer{}
	return NewShell(strings.NewReader(strings.Join(lines, "\n")+"\n"), out, r), out
}

func TestShell_Scenario(t *testing.T) {
	s, out := newTestShell(t,
		"1", "1001", "Mug", "9.99", "20", "", // add with the default minimum stock
		"6", "1001", "17", // sell
		"4", // list
		"8",
	)
	require.NoError(t, s.Run())

	p, ok := s.registry.Get(1001)
	require.True(t, ok)
	require.Equal(t, 3, p.Quantity)
	require.Equal(t, 17, p.UnitsSold)
	require.Equal(t, inventory.DefaultMinStock, p.MinStock)

	got := out.String()
	require.Contains(t, got, "=== INVENTORY SYSTEM ===")
	require.Contains(t, got, "Product added successfully!")
	require.Contains(t, got, "Sale recorded successfully!")
	require.Contains(t, got, "=== Current inventory ===\nCode: 1001 | Name: Mug | Price: 9.99 | Quantity: 3\n")
	require.Contains(t, got, "ALERT!")
	require.True(t, strings.HasSuffix(got, "Thank you for using the inventory system!\n"))
}

func TestShell_AsksAgainOnInvalidInput(t *testing.T) {
	s, out := newTestShell(t,
		"1", "2", "Cup", "5", "10", "3",
		"1", "abc", "0", "2", "3", // code
		"", "cup", "Bowl", // name
		"free", "-1", "0", "4.50", // price
		"many", "-2", "7", // quantity
		"0", "2", // minimum stock
		"8",
	)
	require.NoError(t, s.Run())

	p, ok := s.registry.Get(3)
	require.True(t, ok)
	require.Equal(t, "Bowl", p.Name)
	require.Equal(t, "4.50", p.Price.StringFixed(2))
	require.Equal(t, 7, p.Quantity)
	require.Equal(t, 2, p.MinStock)

	got := out.String()
	for _, want := range []string{
		"the code must be an integer",
		"the code must be a positive number",
		"product code already exists: 2",
		"the name cannot be empty",
		"product name already exists",
		"the price must be a number",
		"the price must be greater than 0",
		"the quantity must be an integer",
		"the quantity cannot be negative",
		"the minimum stock must be greater than 0",
	} {
		require.Contains(t, got, want)
	}
}

func TestShell_Update(t *testing.T) {
	s, out := newTestShell(t,
		"1", "1001", "Mug", "9.99", "20", "",
		"2", "42", "1001", "", "abc", "5", // unknown code, then keep name, invalid price
		"2", "1001", "Big Mug", "10.50", "", // rename and reprice
		"8",
	)
	require.NoError(t, s.Run())

	p, _ := s.registry.Get(1001)
	require.Equal(t, "Big Mug", p.Name)
	require.Equal(t, "10.50", p.Price.StringFixed(2))
	require.Equal(t, 25, p.Quantity)

	got := out.String()
	require.Contains(t, got, "product not found: 42")
	require.Contains(t, got, "Current product information:\nName: Mug\nPrice: 9.99\nCurrent quantity: 20\n")
	require.Contains(t, got, "Invalid price, the current value is kept")
	require.Equal(t, 2, strings.Count(got, "Product updated successfully!"))
}

func TestShell_DeleteSearchAndSell(t *testing.T) {
	s, out := newTestShell(t,
		"1", "1001", "Mug", "9.99", "20", "",
		"1", "2", "Cup", "5", "10", "",
		"6", "2", "11", // more than the stock
		"5", "MU",
		"3", "1001",
		"5", "mug",
		"8",
	)
	require.NoError(t, s.Run())

	require.Equal(t, 1, s.registry.Len())
	p, _ := s.registry.Get(2)
	require.Equal(t, 10, p.Quantity)

	got := out.String()
	require.Contains(t, got, "\nError! insufficient stock")
	require.Contains(t, got, "=== SEARCH RESULTS ===\nCode: 1001 | Name: Mug | Price: 9.99 | Quantity: 20\n")
	require.Contains(t, got, "Product deleted successfully!")
	require.Contains(t, got, "=== SEARCH RESULTS ===\nNo products found.\n")
}

func TestShell_Report(t *testing.T) {
	t.Setenv("INVENTORY_TESTING_NOW", "2025-03-14 09:30:00")
	s, out := newTestShell(t,
		"1", "1001", "Mug", "9.99", "20", "",
		"7",
		"8",
	)
	require.NoError(t, s.Run())
	require.Contains(t, out.String(), "INVENTORY REPORT (2025-03-14 09:30:00)")
	require.Contains(t, out.String(), "$199.80")
}

func TestShell_Exit(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "end of input at the menu", input: "", want: "Select an option: "},
		{name: "end of input while adding", input: "1\n1001\nMu", want: "Enter the product price: "},
		{name: "invalid option", input: "9\n\n8\n", want: "Thank you for using the inventory system!\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := inventory.Open(nil)
			require.NoError(t, err)
			out := &bytes.Buffer{}
			s := NewShell(strings.NewReader(tc.input), out, r)
			s.Pause = true
			require.NoError(t, s.Run())
			require.True(t, strings.HasSuffix(out.String(), tc.want), out.String())
			require.Equal(t, 0, r.Len())
		})
	}
}

func TestShellCmd_CorruptFile(t *testing.T) {
	data := filepath.Join(t.TempDir(), "inventory.json")
	app := withTestApp(t, data)
	require.NoError(t, os.WriteFile(data, []byte("not json"), 0644))
	stdin = strings.NewReader("4\n\n8\n")

	require.Equal(t, subcommands.ExitSuccess, run(t, &shellCmd{}))
	require.Contains(t, app.stdout.String(), "Starting with an empty inventory.")
	require.Contains(t, app.stdout.String(), "The inventory is empty.")
}
