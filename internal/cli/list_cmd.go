package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/boppreh/workspace/internal/cli/formatter"
	"github.com/boppreh/workspace/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var sortKey, language string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cached projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(context.Background())
			if err != nil {
				return err
			}

			if language != "" {
				projects = filterByLanguage(projects, language)
			}
			if err := sortProjects(projects, sortKey); err != nil {
				return err
			}

			if len(projects) == 0 {
				fmt.Println("No projects cached. Run 'workspace scan' first.")
				return nil
			}

			if interactive {
				if app.IsInteractive != nil && !app.IsInteractive() {
					return fmt.Errorf("--interactive requires a terminal")
				}
				model := newBrowseModel(projects)
				_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
				return err
			}

			fmt.Print(formatter.FormatProjectList(projects))
			return nil
		},
	}

	cmd.Flags().StringVar(&sortKey, "sort", "name", "Sort order (name|language|sloc|files)")
	cmd.Flags().StringVar(&language, "language", "", "Only show projects with this dominant language")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse projects in an interactive view")

	return cmd
}

func filterByLanguage(projects []*domain.Project, language string) []*domain.Project {
	var out []*domain.Project
	for _, p := range projects {
		if strings.EqualFold(p.Language, language) {
			out = append(out, p)
		}
	}
	return out
}

func sortProjects(projects []*domain.Project, key string) error {
	switch key {
	case "name", "":
		sort.Slice(projects, func(i, j int) bool { return projects[i].Name < projects[j].Name })
	case "language":
		sort.Slice(projects, func(i, j int) bool {
			if projects[i].Language != projects[j].Language {
				return projects[i].Language < projects[j].Language
			}
			return projects[i].Name < projects[j].Name
		})
	case "sloc":
		sort.Slice(projects, func(i, j int) bool { return projects[i].TotalSLOC > projects[j].TotalSLOC })
	case "files":
		sort.Slice(projects, func(i, j int) bool { return projects[i].FileCount > projects[j].FileCount })
	default:
		return fmt.Errorf("unknown sort key %q (expected name|language|sloc|files)", key)
	}
	return nil
}
