package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/boppreh/workspace/internal/contract"
)

// FormatStatus renders the VCS status overview.
func FormatStatus(resp *contract.StatusResponse) string {
	var b strings.Builder
	now := time.Now().UTC()

	if len(resp.Projects) == 0 {
		b.WriteString("No VCS data cached. Run 'workspace scan' first.\n")
	} else {
		rows := make([][]string, 0, len(resp.Projects))
		for _, v := range resp.Projects {
			branch := v.Branch
			if branch == "" {
				branch = "(detached)"
			}
			ab := Dim("—")
			if v.Ahead > 0 || v.Behind > 0 {
				ab = fmt.Sprintf("+%d/-%d", v.Ahead, v.Behind)
			}
			last := Dim("—")
			if v.LastCommitAt != nil {
				last = HumanAge(*v.LastCommitAt, now)
			}
			rows = append(rows, []string{
				Bold(v.Name),
				branch,
				SyncIndicator(v.State),
				ab,
				last,
			})
		}
		b.WriteString(RenderTable([]string{"NAME", "BRANCH", "STATE", "AHEAD/BEHIND", "LAST COMMIT"}, rows))

		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			StyleGreen.Render(fmt.Sprintf("%d clean", resp.Summary.CountsClean)),
			StyleRed.Render(fmt.Sprintf("%d dirty", resp.Summary.CountsDirty)),
			StyleYellow.Render(fmt.Sprintf("%d unpushed", resp.Summary.CountsUnpushed)),
		))
	}

	for _, w := range resp.Warnings {
		b.WriteString(StyleYellow.Render("! " + w))
		b.WriteString("\n")
	}
	return b.String()
}
