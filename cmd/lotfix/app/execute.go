package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/lotworks/lotfix/pkg/logging"
)

// Execute runs the lotfix CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "lotfix",
		Short:   "Dealership inventory maintenance CLI",
		Version: a.version,
		Long: `Lotfix maintains a dealership inventory file containing new and used cars.

Its core operation renumbers the IDs of new cars to match their position in
the list, starting at 1, while leaving the used-car collection untouched.
The inventory file is rewritten atomically so a failed run never corrupts it.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.lotfix.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().BoolVar(&a.config.NoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&a.config.LogLevel, "log-level", a.config.LogLevel, "log level: trace, debug, info, warn, error (overrides -v/-q)")

	// Add commands
	rootCmd.AddCommand(a.NewRenumberCommand())
	rootCmd.AddCommand(a.NewCheckCommand())
	rootCmd.AddCommand(a.NewVersionCommand())

	return rootCmd
}

// setupCommand reconfigures the logger after cobra has parsed flags, so the
// flag-driven log level takes effect for the command about to run. The logger
// is also attached to the command context for retrieval via logging.FromContext.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	logger := NewLogger(a.config)
	a.logger = &logger
	cmd.SetContext(logging.WithLogger(cmd.Context(), a.logger))
	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
