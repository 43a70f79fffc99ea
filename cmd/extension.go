package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"go.uber.org/zap"
)

// Environment variables passed to extensions, they are read by config.Load.
const (
	EnvDataFile = "INVENTORY_DATA_FILE"
	EnvCurrency = "INVENTORY_CURRENCY"
	EnvLogLevel = "INVENTORY_LOG_LEVEL"
)

// RunExtension attempts to find and execute an external inv-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The effective configuration is passed to the extension as environment
// variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "inv-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		zap.S().Debugf("extension-not-found name=%q error=%v", externalCmdName, err)
		return false, 0
	}

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error: could not load configuration: %v\n", err)
		return true, 1
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvDataFile+"="+cfg.Data.File)
	cmd.Env = append(cmd.Env, EnvCurrency+"="+cfg.Currency)
	cmd.Env = append(cmd.Env, EnvLogLevel+"="+cfg.Log.Level)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
