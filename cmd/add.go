package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
)

type addCmd struct {
	code     int
	name     string
	price    string
	quantity int
	minStock int
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new product to the inventory" }
func (*addCmd) Usage() string {
	return `inv add -code <code> -name <name> -price <price> [-qty <quantity>] [-min <minimum stock>]

  Adds a new product. The code must be a positive number not used yet, and the
  name must not be used by another product, whatever the case.

Usage Examples:
$ inv add -code 1001 -name Mug -price 9.99 -qty 20
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.code, "code", 0, "Product code, a positive number")
	f.StringVar(&c.name, "name", "", "Product name")
	f.StringVar(&c.price, "price", "", "Unit price, greater than 0")
	f.IntVar(&c.quantity, "qty", 0, "Initial quantity on hand")
	f.IntVar(&c.minStock, "min", 0, "Minimum stock threshold. Defaults to stock.minimum from the configuration")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == 0 || c.name == "" || c.price == "" {
		fmt.Fprintln(stderr, "Error: -code, -name and -price are required")
		return subcommands.ExitUsageError
	}
	price, err := inventory.ParsePrice(c.price)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg, r, status := setup()
	if status != subcommands.ExitSuccess {
		return status
	}
	minStock := c.minStock
	if minStock == 0 {
		minStock = cfg.Stock.Minimum
	}

	if err := r.Add(c.code, c.name, price, c.quantity, minStock); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Product %d added.\n", c.code)
	return subcommands.ExitSuccess
}
