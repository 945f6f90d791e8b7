// Package cli wires the amphipod commands onto cobra.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Overridden with -ldflags "-X" in release builds.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// App is the amphipod command tree bound to its I/O streams.
type App struct {
	root   *cobra.Command
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// New builds the command tree on the process streams.
func New() *App {
	app := &App{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	app.root = &cobra.Command{
		Use:   "amphipod",
		Short: "Minimum-energy solver for the amphipod burrow puzzle",
		Long: `amphipod reads a burrow diagram and prints the least total energy needed
to move every amphipod into its home room.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	app.root.AddCommand(app.newSolveCmd(), app.newVersionCmd())

	return app
}

// WithOutput redirects the answer stream and the diagnostic stream.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout, a.stderr = stdout, stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// WithInput sets the reader used when no input file is given.
func (a *App) WithInput(stdin io.Reader) *App {
	a.stdin = stdin
	a.root.SetIn(stdin)
	return a
}

// Execute runs the command line. SIGINT and SIGTERM cancel ctx,
// which aborts a running search.
func (a *App) Execute(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs is Execute with an explicit argument list.
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(a.stdout, "amphipod %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
			return err
		},
	}
}
