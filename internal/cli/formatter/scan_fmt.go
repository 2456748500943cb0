package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/boppreh/workspace/internal/contract"
)

// FormatScanSummary renders the per-project results of a scan, one row per
// project plus a closing total line.
func FormatScanSummary(resp *contract.ScanResponse) string {
	var b strings.Builder

	if len(resp.Projects) == 0 {
		b.WriteString("No projects found (a project is a directory containing .git).\n")
	} else {
		rows := make([][]string, 0, len(resp.Projects))
		totalFiles, totalSLOC := 0, 0
		for _, p := range resp.Projects {
			rows = append(rows, []string{
				Bold(p.Name),
				p.Language,
				strconv.Itoa(p.FileCount),
				strconv.Itoa(p.TotalSLOC),
				Dim(HumanDuration(p.ScanDuration)),
			})
			totalFiles += p.FileCount
			totalSLOC += p.TotalSLOC
		}
		b.WriteString(RenderTable([]string{"NAME", "LANGUAGE", "FILES", "SLOC", "TIME"}, rows))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Scanned %d %s (%d files, %d SLOC) in %s\n",
			len(resp.Projects), Plural(len(resp.Projects), "project", "projects"),
			totalFiles, totalSLOC, HumanDuration(resp.Duration)))
	}

	for _, w := range resp.Warnings {
		b.WriteString(StyleYellow.Render("! " + w))
		b.WriteString("\n")
	}
	return b.String()
}
