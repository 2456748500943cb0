package cli

import (
	"context"
	"fmt"

	"github.com/boppreh/workspace/internal/cli/formatter"
	"github.com/boppreh/workspace/internal/contract"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show version-control status across all projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Status.GetStatus(context.Background(), contract.StatusRequest{
				Refresh: refresh,
			})
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatStatus(resp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Re-read git state instead of using the cached snapshot")

	return cmd
}
