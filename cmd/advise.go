package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/inventory/advisor"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// adviseCmd is the subcommand for the restock advisor.
type adviseCmd struct{}

func (*adviseCmd) Name() string { return "advise" }
func (*adviseCmd) Synopsis() string {
	return "chat with an AI storekeeper about what to restock"
}
func (*adviseCmd) Usage() string {
	return `inv advise [question...]

  Starts an interactive session with an AI storekeeper that can read the
  inventory. The question given on the command line is asked first.

  It requires a Gemini API key, in advisor.apikey or GEMINI_API_KEY.

Usage Examples:
$ inv advise what should I order this week?
`
}

func (*adviseCmd) SetFlags(_ *flag.FlagSet) {}

func (c *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, r, status := setup()
	if status != subcommands.ExitSuccess {
		return status
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey(),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	storekeeper := advisor.NewStorekeeper(cfg.Advisor.Model, r, cfg.Currency)
	a := advisor.New(stdout, stdin, storekeeper)
	a.Render = renderMarkdown

	if err := a.Run(ctx, client, strings.Join(f.Args(), " ")); err != nil {
		fmt.Fprintln(stderr, "Advisor failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
