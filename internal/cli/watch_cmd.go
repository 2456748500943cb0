package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/boppreh/workspace/internal/cli/formatter"
	"github.com/boppreh/workspace/internal/contract"
	"github.com/boppreh/workspace/internal/service"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *App) *cobra.Command {
	var root string
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the workspace root and rescan projects on change",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := app.Config.Root
			if cmd.Flags().Changed("root") {
				dir = root
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			events := make(chan service.WatchEvent, 8)
			errCh := make(chan error, 1)
			go func() {
				errCh <- app.Watch.Watch(ctx, contract.WatchRequest{Root: dir, Debounce: debounce}, events)
			}()

			fmt.Printf("Watching %s (Ctrl-C to stop)\n", dir)
			for {
				select {
				case ev := <-events:
					if ev.Err != nil {
						fmt.Println(formatter.StyleYellow.Render("! " + ev.Err.Error()))
						continue
					}
					fmt.Printf("Rescanned %s: %s, %d files, %d SLOC (%s)\n",
						formatter.Bold(ev.Project.Name), ev.Project.Language,
						ev.Project.FileCount, ev.Project.TotalSLOC,
						formatter.HumanDuration(ev.Project.ScanDuration))
				case err := <-errCh:
					if err != nil && !errors.Is(err, context.Canceled) {
						return err
					}
					return nil
				}
			}
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "Workspace root to watch (overrides config)")
	cmd.Flags().DurationVar(&debounce, "debounce", 2*time.Second, "Quiet period before rescanning a changed project")

	return cmd
}
