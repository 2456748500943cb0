package cli

import (
	"context"
	"fmt"

	"github.com/boppreh/workspace/internal/cli/formatter"
	"github.com/boppreh/workspace/internal/contract"
	"github.com/spf13/cobra"
)

func newOutdatedCmd(app *App) *cobra.Command {
	var manager string

	cmd := &cobra.Command{
		Use:   "outdated",
		Short: "Check cached package manifests against their registries",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Freshness.Report(context.Background(), contract.FreshnessRequest{
				Manager: manager,
			})
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatFreshness(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&manager, "manager", "", "Only check one package manager (go|npm|pypi|cargo)")

	return cmd
}
