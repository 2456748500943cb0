package cli

import (
	"context"
	"fmt"

	"github.com/boppreh/workspace/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newInspectCmd(app *App) *cobra.Command {
	var rescan bool

	cmd := &cobra.Command{
		Use:   "inspect NAME",
		Short: "Show project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}

			if rescan {
				p, err = app.Scans.ScanProject(ctx, p.Path)
				if err != nil {
					return err
				}
			}

			fmt.Println(formatter.FormatProjectInspect(p))
			return nil
		},
	}

	cmd.Flags().BoolVar(&rescan, "rescan", false, "Re-analyze the project before showing it")

	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a project from the cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Remove(ctx, p.Name); err != nil {
				return err
			}
			fmt.Printf("Removed %s from the cache\n", p.Name)
			return nil
		},
	}
}
