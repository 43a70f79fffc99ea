package cmd

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/require"
)

// testApp captures the standard streams of the commands.
type testApp struct {
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// withTestApp points the global flags to dataPath, without configuration
// files, and captures the standard streams until the end of the test.
func withTestApp(t *testing.T, dataPath string) *testApp {
	t.Helper()
	oldConfig, oldEnv, oldData, oldVerbose := *configFile, *envFile, *dataFile, *Verbose
	oldIn, oldOut, oldErr := stdin, stdout, stderr
	t.Cleanup(func() {
		*configFile, *envFile, *dataFile, *Verbose = oldConfig, oldEnv, oldData, oldVerbose
		stdin, stdout, stderr = oldIn, oldOut, oldErr
	})

	app := &testApp{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	*configFile, *envFile, *dataFile, *Verbose = "", "", dataPath, false
	stdin, stdout, stderr = strings.NewReader(""), app.stdout, app.stderr
	return app
}

// run parses args for a fresh command and executes it.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	require.NoError(t, f.Parse(args))
	return c.Execute(context.Background(), f)
}
