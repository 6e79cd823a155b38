package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// App wraps the permgroupctl command tree with injectable output, so the
// same binary logic can be driven from tests without touching the real
// stdout/stderr.
type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer
}

// New builds the permgroupctl command tree.
func New() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	app.root = &cobra.Command{
		Use:           "permgroupctl",
		Short:         "Drive HCGT permutation-group algorithms from the command line",
		Long:          `permgroupctl builds generating sets from presets or literal cycle notation and runs orbit computation, Schreier-Sims, block decomposition, product-replacement sampling, and full-group enumeration against them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	app.root.AddCommand(
		app.newSimsCmd(),
		app.newStripCmd(),
		app.newOrbitCmd(),
		app.newBlocksCmd(),
		app.newRandomCmd(),
		app.newElementsCmd(),
	)

	return app
}

// WithOutput redirects stdout/stderr, used by tests.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)

	return a
}

// Execute runs the command tree under a context cancelled on SIGINT/SIGTERM.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the command tree against explicit args, for tests.
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)

	return a.Execute(ctx)
}
