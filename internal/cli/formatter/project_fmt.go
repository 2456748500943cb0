package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/boppreh/workspace/internal/domain"
)

// FormatProjectList renders the cached projects as a table.
func FormatProjectList(projects []*domain.Project) string {
	headers := []string{"NAME", "LANGUAGE", "FILES", "SLOC", "SIZE", "SYNC", "SCANNED"}
	now := time.Now().UTC()

	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		sync := Dim("—")
		if p.VCS != nil {
			sync = SyncIndicator(p.VCS.State())
		}
		rows = append(rows, []string{
			Bold(p.Name),
			p.Language,
			strconv.Itoa(p.FileCount),
			strconv.Itoa(p.TotalSLOC),
			HumanBytes(p.SizeBytes),
			sync,
			Dim(HumanAge(p.ScannedAt, now)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatProjectInspect renders the detail view for a single project.
func FormatProjectInspect(p *domain.Project) string {
	var b strings.Builder
	now := time.Now().UTC()

	b.WriteString(Header(p.Name))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Path:"), p.Path))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Language:"), Bold(p.Language)))
	b.WriteString(fmt.Sprintf("%s %d %s, %d SLOC, %s\n",
		Dim("Code:"), p.FileCount, Plural(p.FileCount, "file", "files"),
		p.TotalSLOC, HumanBytes(p.SizeBytes)))
	b.WriteString(fmt.Sprintf("%s %s (%s)\n",
		Dim("Scanned:"), HumanAge(p.ScannedAt, now), HumanDuration(p.ScanDuration)))

	if p.VCS != nil {
		b.WriteString("\n")
		b.WriteString(Header("version control"))
		b.WriteString("\n")
		branch := p.VCS.Branch
		if branch == "" {
			branch = "(detached)"
		}
		b.WriteString(fmt.Sprintf("%s %s  %s\n", Dim("Branch:"), branch, SyncIndicator(p.VCS.State())))
		if p.VCS.HasUpstream {
			b.WriteString(fmt.Sprintf("%s +%d / -%d\n", Dim("Ahead/Behind:"), p.VCS.Ahead, p.VCS.Behind))
		}
		if p.VCS.LastCommitAt != nil {
			b.WriteString(fmt.Sprintf("%s %s\n", Dim("Last commit:"), HumanAge(*p.VCS.LastCommitAt, now)))
		}
	}

	if len(p.Languages) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("languages"))
		b.WriteString("\n")
		rows := make([][]string, 0, len(p.Languages))
		for _, stat := range p.Languages {
			rows = append(rows, []string{
				stat.Language,
				strconv.Itoa(stat.FileCount),
				strconv.Itoa(stat.SLOC),
			})
		}
		b.WriteString(RenderTable([]string{"LANGUAGE", "FILES", "SLOC"}, rows))
	}

	if len(p.Manifests) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("packages"))
		b.WriteString("\n")
		rows := make([][]string, 0, len(p.Manifests))
		for _, m := range p.Manifests {
			version := m.Version
			if version == "" {
				version = Dim("—")
			}
			rows = append(rows, []string{string(m.Manager), m.Name, version, Dim(m.Path)})
		}
		b.WriteString(RenderTable([]string{"MANAGER", "PACKAGE", "VERSION", "MANIFEST"}, rows))
	}

	return b.String()
}
