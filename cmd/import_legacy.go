package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type importLegacyCmd struct {
	from string
}

func (*importLegacyCmd) Name() string { return "import-legacy" }
func (*importLegacyCmd) Synopsis() string {
	return "import the products of a legacy inventario.json file"
}
func (*importLegacyCmd) Usage() string {
	return `inv import-legacy -from <file>

  Imports the products of a file written by the first version of the tool,
  with the keys "codigo", "nombre", "precio", "cantidad", "stock_minimo" and
  "ventas". Products follow the same rules as 'inv add', and keep their units
  sold. Products whose code or name is already used are skipped and reported.

Usage Examples:
$ inv import-legacy -from inventario.json
`
}

func (c *importLegacyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "inventario.json", "Legacy file to import")
}

func (c *importLegacyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, r, status := setup()
	if status != subcommands.ExitSuccess {
		return status
	}

	file, err := os.Open(c.from)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	products, err := inventory.DecodeLegacy(file)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading %q: %v\n", c.from, err)
		return subcommands.ExitFailure
	}

	imported, skipped := 0, 0
	for _, p := range products {
		if err := r.Import(p); err != nil {
			zap.S().Infof("skip-legacy-product code=%d error=%v", p.Code, err)
			fmt.Fprintf(stderr, "Skipped product %d: %v\n", p.Code, err)
			skipped++
			continue
		}
		imported++
	}
	fmt.Fprintf(stdout, "Imported %d products, skipped %d.\n", imported, skipped)
	if skipped > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
