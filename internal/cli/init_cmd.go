package cli

import (
	"fmt"
	"strconv"

	"github.com/boppreh/workspace/internal/cli/formatter"
	"github.com/boppreh/workspace/internal/config"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Interactively write the workspace config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("init requires a terminal; edit the config file directly instead")
			}

			cfg := app.Config
			root := cfg.Root
			jobs := strconv.Itoa(cfg.Jobs)
			registries := enabledManagers(cfg.Registries)

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Workspace root").
						Description("Directory that holds your project repositories").
						Placeholder(cfg.Root).
						Value(&root).
						Validate(func(s string) error {
							if s == "" {
								return fmt.Errorf("workspace root is required")
							}
							return nil
						}),
					huh.NewInput().
						Title("Parallel scan jobs").
						Placeholder(jobs).
						Value(&jobs).
						Validate(validatePositiveInt),
					huh.NewMultiSelect[string]().
						Title("Package registries").
						Description("Registries consulted by 'workspace outdated'").
						Options(
							huh.NewOption("Go module proxy", "go"),
							huh.NewOption("npm", "npm"),
							huh.NewOption("PyPI", "pypi"),
							huh.NewOption("crates.io", "cargo"),
						).
						Value(&registries),
				),
			).WithTheme(workspaceHuhTheme()).WithShowHelp(false)

			if err := form.Run(); err != nil {
				return err
			}

			cfg.Root = root
			cfg.Jobs = parsePositiveInt(jobs, cfg.Jobs)
			cfg.Registries = registryConfigFrom(registries)

			if err := config.Save(cfg); err != nil {
				return err
			}

			path, err := config.Path()
			if err != nil {
				return err
			}
			fmt.Println(formatter.Bold("Config written") + " " + formatter.Dim(path))
			return nil
		},
	}
}

func enabledManagers(r config.RegistryConfig) []string {
	var managers []string
	if r.Go {
		managers = append(managers, "go")
	}
	if r.Npm {
		managers = append(managers, "npm")
	}
	if r.PyPI {
		managers = append(managers, "pypi")
	}
	if r.Cargo {
		managers = append(managers, "cargo")
	}
	return managers
}

func registryConfigFrom(managers []string) config.RegistryConfig {
	var r config.RegistryConfig
	for _, m := range managers {
		switch m {
		case "go":
			r.Go = true
		case "npm":
			r.Npm = true
		case "pypi":
			r.PyPI = true
		case "cargo":
			r.Cargo = true
		}
	}
	return r
}

// workspaceHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func workspaceHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[✓] ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// parsePositiveInt parses s as a positive integer, returning fallback if s is
// empty, non-numeric, or non-positive.
func parsePositiveInt(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// validatePositiveInt accepts empty or a positive integer.
func validatePositiveInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}
