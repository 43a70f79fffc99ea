package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
)

type updateCmd struct {
	code  int
	name  string
	price string
	add   string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "rename, reprice or restock a product" }
func (*updateCmd) Usage() string {
	return `inv update -code <code> [-name <name>] [-price <price>] [-add <quantity>]

  Updates a product. Only the given values change: -name renames the product,
  -price replaces its price, and -add adds received units to its quantity.

Usage Examples:
# 12 mugs received at a new price
$ inv update -code 1001 -price 10.50 -add 12
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.code, "code", 0, "Code of the product to update")
	f.StringVar(&c.name, "name", "", "New name")
	f.StringVar(&c.price, "price", "", "New unit price")
	f.StringVar(&c.add, "add", "", "Quantity received, added to the current quantity")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == 0 {
		fmt.Fprintln(stderr, "Error: -code is required")
		return subcommands.ExitUsageError
	}

	var changes inventory.Changes
	if c.name != "" {
		changes.Name = &c.name
	}
	if c.price != "" {
		price, err := inventory.ParsePrice(c.price)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		changes.Price = &price
	}
	if c.add != "" {
		delta, err := inventory.ParseQuantity(c.add)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		changes.QuantityDelta = &delta
	}

	_, r, status := setup()
	if status != subcommands.ExitSuccess {
		return status
	}
	if err := r.Update(c.code, changes); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	p, _ := r.Get(c.code)
	fmt.Fprintf(stdout, "%s\n", p)
	return subcommands.ExitSuccess
}
