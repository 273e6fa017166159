package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/lotworks/lotfix/pkg/inventory"
	"github.com/lotworks/lotfix/pkg/logging"
)

// NewRenumberCommand creates the renumber command, the core operation of the
// tool: rewrite new-car IDs to their 1-based list positions and save the file.
func (a *App) NewRenumberCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "renumber [file]",
		Short: "Renumber new-car IDs to their list positions",
		Long: `Renumber rewrites the id field of every entry in the "cars" collection to
its 1-based position in the list, in order, then saves the file in place.
The "usedCars" collection is left entirely untouched.

The file is written to a temporary location and renamed over the original,
so an interrupted or failed run leaves the previous content intact.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.config.DataFile
			if len(args) == 1 {
				path = args[0]
			}

			doc, err := inventory.Load(path)
			if err != nil {
				return err
			}

			result := inventory.Renumber(doc)

			if dryRun {
				logging.Ctx(cmd.Context()).Info().Str("path", path).Msg("Dry run, file not written")
			} else if err := inventory.Save(doc, path); err != nil {
				return err
			}

			for _, line := range result.Lines() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "renumber in memory and report without writing the file")
	return cmd
}

// NewCheckCommand creates the check command, a read-only inspection that
// reports whether the inventory is already sequential and whether any
// used-car ID would collide with the renumbered range. It never writes.
func (a *App) NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Inspect the inventory without modifying it",
		Long: `Check loads the inventory and reports whether the new-car IDs already match
their list positions, and whether any used-car ID falls inside the range a
renumbering run would assign. Collisions are reported as warnings only; the
new and used ranges are disjoint by convention, not enforcement.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.config.DataFile
			if len(args) == 1 {
				path = args[0]
			}

			doc, err := inventory.Load(path)
			if err != nil {
				return err
			}

			report := inventory.Check(doc)

			out := cmd.OutOrStdout()
			if report.Sequential {
				fmt.Fprintf(out, "New cars already numbered 1-%d\n", len(doc.Cars))
			} else {
				fmt.Fprintf(out, "New cars need renumbering (%d entries)\n", len(doc.Cars))
			}
			for _, id := range report.Collisions {
				logging.Ctx(cmd.Context()).Warn().Int("id", id).Msg("Used car ID collides with the new-car range")
			}
			return nil
		},
	}

	return cmd
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "lotfix version %s\n", a.version)
			fmt.Fprintf(out, "commit: %s\n", a.commit)
			fmt.Fprintf(out, "built: %s\n", a.date)
			fmt.Fprintf(out, "built by: %s\n", a.builtBy)
			fmt.Fprintf(out, "go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
