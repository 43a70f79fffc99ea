// Package cmd implements the CLI application to manage an inventory.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/config"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", config.DefaultFile, "Path to the YAML configuration file")
var envFile = flag.String("env-file", config.DefaultEnvFile, "Path to the .env file")
var dataFile = flag.String("data", "", "Path to the inventory file. Overrides data.file from the configuration")
var Verbose = flag.Bool("v", false, "Log debug messages on stderr")

// Standard streams of the commands, tests replace them.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Commands lists all the subcommands of the application.
var Commands = []subcommands.Command{
	&shellCmd{},
	&addCmd{},
	&updateCmd{},
	&deleteCmd{},
	&listCmd{},
	&searchCmd{},
	&sellCmd{},
	&reportCmd{},
	&importLegacyCmd{},
	&adviseCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// LoadConfig reads the configuration selected by the global flags and sets
// up the global logger accordingly.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFile, *envFile)
	if err != nil {
		return nil, err
	}
	if *dataFile != "" {
		cfg.Data.File = *dataFile
	}
	if *Verbose {
		cfg.Log.Level = "debug"
	}
	initLogger(cfg.Log)
	zap.S().Debugf("configuration loaded: %s", cfg)
	return cfg, nil
}

// OpenRegistry opens the registry saved in the configured data file.
//
// A file that cannot be read is an error, so that one-shot commands never
// overwrite it with an empty inventory.
func OpenRegistry(cfg *config.Config) (*inventory.Registry, error) {
	r, err := inventory.Open(inventory.NewJSONFile(cfg.Data.File))
	if err != nil {
		return nil, fmt.Errorf("could not load inventory file %q: %w", cfg.Data.File, err)
	}
	zap.S().Debugf("open-inventory name=%q products=%d", cfg.Data.File, r.Len())
	return r, nil
}

// setup loads the configuration and the registry for a command. Errors are
// printed, and the exit status to return is given.
func setup() (*config.Config, *inventory.Registry, subcommands.ExitStatus) {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error: could not load configuration: %v\n", err)
		return nil, nil, subcommands.ExitFailure
	}
	r, err := OpenRegistry(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return nil, nil, subcommands.ExitFailure
	}
	return cfg, r, subcommands.ExitSuccess
}
