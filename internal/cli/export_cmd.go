package cli

import (
	"context"
	"fmt"

	"github.com/boppreh/workspace/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write cached snapshots to a JSON report",
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := app.Export.Export(context.Background(), out)
			if err != nil {
				return err
			}
			fmt.Printf("Exported %d %s to %s\n", count, formatter.Plural(count, "project", "projects"), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "workspace.json", "Output file path")

	return cmd
}
