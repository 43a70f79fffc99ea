package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/inventory/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all the products" }
func (*listCmd) Usage() string {
	return `inv list

  Lists all the products in the inventory order, followed by an alert for the
  products at or below their minimum stock.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, r, status := setup()
	if status != subcommands.ExitSuccess {
		return status
	}
	fmt.Fprint(stdout, renderer.RenderProducts(r.Products()))
	fmt.Fprint(stdout, renderer.RenderLowStockAlert(r.LowStock()))
	return subcommands.ExitSuccess
}

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "find products by code or name" }
func (*searchCmd) Usage() string {
	return `inv search <term>

  Lists the products whose code is exactly <term>, or whose name contains
  <term>, ignoring case.

Usage Examples:
$ inv search mug
$ inv search 1001
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(stderr, "Error: a search term is required")
		return subcommands.ExitUsageError
	}
	_, r, status := setup()
	if status != subcommands.ExitSuccess {
		return status
	}
	found := r.Search(strings.Join(f.Args(), " "))
	if len(found) == 0 {
		fmt.Fprintln(stdout, "No products found.")
		return subcommands.ExitSuccess
	}
	fmt.Fprint(stdout, renderer.RenderProducts(found))
	return subcommands.ExitSuccess
}
