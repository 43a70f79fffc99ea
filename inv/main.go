// Command inv manages the inventory of a small shop.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/inventory/cmd"
	"github.com/google/subcommands"
)

func main() {
	// Answers the shell completion requests, and exits.
	cmd.Completion().Complete("inv")

	commander := subcommands.NewCommander(flag.CommandLine, "inv")
	cmd.Register(commander)
	flag.Parse()

	// The interactive shell is the default command.
	if flag.NArg() == 0 {
		flag.CommandLine.Parse(append(os.Args[1:], "shell"))
	}

	if name := flag.Arg(0); !cmd.IsCommand(name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
