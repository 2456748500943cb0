package cli

import (
	"fmt"
	"strings"

	"github.com/boppreh/workspace/internal/cli/formatter"
	"github.com/boppreh/workspace/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// browseModel shows an interactive, navigable list of cached projects with
// a detail view for the selected one.
type browseModel struct {
	projects []*domain.Project
	cursor   int

	// Filtering
	filtering bool
	filter    string

	// Detail view for the selected project; nil means list view.
	selected *domain.Project
}

func newBrowseModel(projects []*domain.Project) *browseModel {
	return &browseModel{projects: projects}
}

func (m *browseModel) shortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "inspect")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (m *browseModel) Init() tea.Cmd { return nil }

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.selected != nil {
		return m.updateDetail(keyMsg)
	}
	if m.filtering {
		return m.updateFilter(keyMsg)
	}
	return m.updateNormal(keyMsg)
}

func (m *browseModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleProjects()

	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(visible) {
			m.selected = visible[m.cursor]
		}
	case "/":
		m.filtering = true
		m.filter = ""
	}
	return m, nil
}

func (m *browseModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "enter", "backspace":
		m.selected = nil
	}
	return m, nil
}

func (m *browseModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter = ""
		m.cursor = 0
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		return m, nil
	case tea.KeyBackspace:
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.cursor = 0
		}
	default:
		if len(msg.String()) == 1 {
			m.filter += msg.String()
			m.cursor = 0
		}
	}
	return m, nil
}

func (m *browseModel) visibleProjects() []*domain.Project {
	if m.filter == "" {
		return m.projects
	}
	lf := strings.ToLower(m.filter)
	var filtered []*domain.Project
	for _, p := range m.projects {
		if strings.Contains(strings.ToLower(p.Name), lf) ||
			strings.Contains(strings.ToLower(p.Language), lf) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func (m *browseModel) View() string {
	if m.selected != nil {
		return m.detailView()
	}
	return m.listView()
}

func (m *browseModel) listView() string {
	visible := m.visibleProjects()

	var b strings.Builder
	b.WriteString("\n")

	if m.filtering {
		b.WriteString("  " + formatter.StyleYellow.Render("/") + " " + m.filter + "█\n\n")
	}

	if len(visible) == 0 {
		b.WriteString("  " + formatter.Dim("No projects match.") + "\n")
		return b.String()
	}

	for i, p := range visible {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}

		sync := formatter.Dim("—")
		if p.VCS != nil {
			sync = formatter.SyncIndicator(p.VCS.State())
		}

		b.WriteString(fmt.Sprintf("%s%s %s %8d  %s\n",
			cursor,
			nameStyle.Render(padRight(p.Name, 24)),
			formatter.StyleBlue.Render(padRight(p.Language, 12)),
			p.TotalSLOC,
			sync,
		))
	}

	b.WriteString("\n  " + m.helpLine() + "\n")
	return b.String()
}

func (m *browseModel) detailView() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.FormatProjectInspect(m.selected))
	b.WriteString("\n  " + formatter.Dim("esc back · q quit") + "\n")
	return b.String()
}

func (m *browseModel) helpLine() string {
	parts := make([]string, 0, 3)
	for _, binding := range m.shortHelp() {
		h := binding.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return formatter.Dim(strings.Join(parts, " · "))
}

// padRight pads a string to a minimum width, truncating if needed. Widths
// count runes so that non-ASCII names are never cut mid-character.
func padRight(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}
