package cli

import (
	"context"
	"fmt"

	"github.com/boppreh/workspace/internal/cli/formatter"
	"github.com/boppreh/workspace/internal/contract"
	"github.com/spf13/cobra"
)

func newScanCmd(app *App) *cobra.Command {
	var root string
	var jobs int

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the workspace root and refresh all project snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewScanRequest(app.Config.Root)
			if cmd.Flags().Changed("root") {
				req.Root = root
			}
			req.Jobs = app.Config.Jobs
			if cmd.Flags().Changed("jobs") {
				req.Jobs = jobs
			}

			resp, err := app.Scans.ScanAll(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatScanSummary(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "Workspace root to scan (overrides config)")
	cmd.Flags().IntVar(&jobs, "jobs", 0, "Number of projects to scan concurrently")

	return cmd
}
