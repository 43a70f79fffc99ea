package cmd

import (
	"flag"
	"slices"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// helpCommands are registered by the commander itself.
var helpCommands = []string{"help", "flags", "commands"}

// IsCommand reports whether name is a command of the application, so that
// other names can be looked up as extensions.
func IsCommand(name string) bool {
	if slices.Contains(helpCommands, name) {
		return true
	}
	for _, c := range Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// filePredictors complete the flags that take a file.
var filePredictors = map[string]complete.Predictor{
	"config":   predict.Files("*.yaml"),
	"env-file": predict.Files("*"),
	"data":     predict.Files("*.json"),
	"from":     predict.Files("*.json"),
	"o":        predict.Files("*"),
	"format":   predict.Set{"text", "markdown", "html"},
}

// Completion describes the commands and their flags for shell completion.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, name := range helpCommands {
		root.Sub[name] = &complete.Command{}
	}
	for _, c := range Commands {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		root.Sub[c.Name()] = &complete.Command{Flags: flagPredictors(f)}
	}
	return root
}

func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		if p, ok := filePredictors[fl.Name]; ok {
			flags[fl.Name] = p
			return
		}
		flags[fl.Name] = predict.Nothing
	})
	return flags
}
