package formatter

import (
	"fmt"
	"strings"

	"github.com/boppreh/workspace/internal/contract"
	"github.com/boppreh/workspace/internal/domain"
)

// FormatFreshness renders the package freshness report.
func FormatFreshness(resp *contract.FreshnessResponse) string {
	var b strings.Builder

	if len(resp.Reports) == 0 {
		b.WriteString("No package manifests cached. Run 'workspace scan' first.\n")
	} else {
		rows := make([][]string, 0, len(resp.Reports))
		stale := 0
		for _, r := range resp.Reports {
			declared := r.Manifest.Version
			if declared == "" {
				declared = Dim("—")
			}
			latest := r.LatestVersion
			if latest == "" {
				latest = Dim("—")
			}
			if r.Freshness == domain.FreshnessStale {
				stale++
			}
			rows = append(rows, []string{
				Bold(r.ProjectName),
				string(r.Manifest.Manager),
				r.Manifest.Name,
				declared,
				latest,
				FreshnessIndicator(r.Freshness),
			})
		}
		b.WriteString(RenderTable(
			[]string{"PROJECT", "MANAGER", "PACKAGE", "DECLARED", "LATEST", "STATE"}, rows))
		b.WriteString("\n")
		if stale == 0 {
			b.WriteString(StyleGreen.Render("All packages current.") + "\n")
		} else {
			b.WriteString(StyleYellow.Render(fmt.Sprintf(
				"%d %s behind the registry.", stale, Plural(stale, "package", "packages"))) + "\n")
		}
	}

	for _, w := range resp.Warnings {
		b.WriteString(StyleYellow.Render("! " + w))
		b.WriteString("\n")
	}
	return b.String()
}
