package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	code int
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove a product from the inventory" }
func (*deleteCmd) Usage() string {
	return `inv delete -code <code>

  Removes a product and its sales counter from the inventory.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.code, "code", 0, "Code of the product to remove")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == 0 {
		fmt.Fprintln(stderr, "Error: -code is required")
		return subcommands.ExitUsageError
	}
	_, r, status := setup()
	if status != subcommands.ExitSuccess {
		return status
	}
	if err := r.Remove(c.code); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Product %d deleted.\n", c.code)
	return subcommands.ExitSuccess
}
