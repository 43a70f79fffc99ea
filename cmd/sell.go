package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type sellCmd struct {
	code     int
	quantity int
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record the sale of some units of a product" }
func (*sellCmd) Usage() string {
	return `inv sell -code <code> -qty <quantity>

  Records a sale: the quantity is taken out of the stock and added to the units
  sold. A sale larger than the stock on hand is refused.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.code, "code", 0, "Code of the product sold")
	f.IntVar(&c.quantity, "qty", 0, "Number of units sold")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == 0 || c.quantity == 0 {
		fmt.Fprintln(stderr, "Error: -code and -qty are required")
		return subcommands.ExitUsageError
	}
	_, r, status := setup()
	if status != subcommands.ExitSuccess {
		return status
	}
	if err := r.RecordSale(c.code, c.quantity); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	p, _ := r.Get(c.code)
	fmt.Fprintf(stdout, "%s\n", p)
	if p.IsLowStock() {
		fmt.Fprintf(stdout, "Warning: %d units left, the minimum stock is %d.\n", p.Quantity, p.MinStock)
	}
	return subcommands.ExitSuccess
}
