package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type reportCmd struct {
	format string
	output string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "generate the inventory report" }
func (*reportCmd) Usage() string {
	return `inv report [-format text|markdown|html] [-o <file>]

  Generates the inventory report: number of products and inventory value, the
  products to restock, the top sellers and the products selling at or below
  the average.

  The default format comes from report.format in the configuration.

Usage Examples:
$ inv report
$ inv report -format html -o report.html
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "", "Output format: text, markdown or html")
	f.StringVar(&c.output, "o", "", "Write the report to this file instead of stdout")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, r, status := setup()
	if status != subcommands.ExitSuccess {
		return status
	}
	format := c.format
	if format == "" {
		format = cfg.Report.Format
	}

	report := renderer.NewReport(inventory.NewReport(r.Products(), renderer.Now(), cfg.Currency))
	var out string
	switch format {
	case "text":
		out = renderer.RenderReportText(report)
	case "markdown":
		out = renderer.RenderReportMarkdown(report)
	case "html":
		var err error
		if out, err = renderer.RenderReportHTML(report); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	default:
		fmt.Fprintf(stderr, "Error: unknown format %q, use text, markdown or html\n", format)
		return subcommands.ExitUsageError
	}

	if c.output != "" {
		if err := os.WriteFile(c.output, []byte(out), 0644); err != nil {
			fmt.Fprintf(stderr, "Error writing report: %v\n", err)
			return subcommands.ExitFailure
		}
		zap.S().Debugf("write-report name=%q format=%s", c.output, format)
		return subcommands.ExitSuccess
	}
	if format == "markdown" {
		printMarkdown(out)
		return subcommands.ExitSuccess
	}
	fmt.Fprint(stdout, out)
	return subcommands.ExitSuccess
}
