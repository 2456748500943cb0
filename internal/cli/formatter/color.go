package formatter

import (
	"fmt"
	"strings"

	"github.com/boppreh/workspace/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SyncColor returns the lipgloss style for the given sync state.
func SyncColor(state domain.SyncState) lipgloss.Style {
	switch state {
	case domain.SyncClean:
		return StyleGreen
	case domain.SyncDirty, domain.SyncDiverged:
		return StyleRed
	case domain.SyncAhead, domain.SyncBehind:
		return StyleYellow
	case domain.SyncNoUpstream, domain.SyncDetached:
		return StylePurple
	default:
		return StyleDim
	}
}

// SyncIndicator returns a colored sync indicator string such as "● dirty".
func SyncIndicator(state domain.SyncState) string {
	label := strings.ReplaceAll(string(state), "_", " ")
	return SyncColor(state).Render("● " + label)
}

// FreshnessIndicator returns a colored freshness marker.
func FreshnessIndicator(f domain.Freshness) string {
	switch f {
	case domain.FreshnessCurrent:
		return StyleGreen.Render("✓ current")
	case domain.FreshnessStale:
		return StyleYellow.Render("↑ stale")
	default:
		return StyleDim.Render("? unknown")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
