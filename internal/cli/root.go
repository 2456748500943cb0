package cli

import (
	"github.com/boppreh/workspace/internal/config"
	"github.com/boppreh/workspace/internal/log"
	"github.com/boppreh/workspace/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Scans     service.ScanService
	Projects  service.ProjectService
	Status    service.StatusService
	Freshness service.FreshnessService
	Export    service.ExportService
	Watch     service.WatchService

	Config config.Config

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "workspace" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "workspace",
		Short: "Inspect the repositories in your projects directory",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.Configure(log.Config{Level: "debug"})
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newScanCmd(app),
		newListCmd(app),
		newInspectCmd(app),
		newStatusCmd(app),
		newOutdatedCmd(app),
		newExportCmd(app),
		newWatchCmd(app),
		newInitCmd(app),
		newRemoveCmd(app),
	)

	return root
}
