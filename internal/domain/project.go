package domain

import (
	"sort"
	"time"
)

// Project is a single inspected repository inside the workspace root.
// A directory qualifies as a project when it contains a .git directory.
type Project struct {
	ID           string
	Name         string
	Path         string
	Language     string
	FileCount    int
	TotalSLOC    int
	SizeBytes    int64
	ScanDuration time.Duration
	ScannedAt    time.Time

	Languages []LanguageStat
	VCS       *VCSStatus
	Manifests []Manifest
}

// LanguageStat aggregates code metrics for one language within a project.
type LanguageStat struct {
	Language  string
	FileCount int
	SLOC      int
}

// LanguageUnknown is assigned to projects with no recognized source files.
const LanguageUnknown = "Unknown"

// DominantLanguage returns the language with the most files, breaking ties
// by SLOC and finally by name for stable output. Returns LanguageUnknown
// when no recognized source files were found.
func DominantLanguage(stats []LanguageStat) string {
	if len(stats) == 0 {
		return LanguageUnknown
	}
	sorted := make([]LanguageStat, len(stats))
	copy(sorted, stats)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].FileCount != sorted[j].FileCount {
			return sorted[i].FileCount > sorted[j].FileCount
		}
		if sorted[i].SLOC != sorted[j].SLOC {
			return sorted[i].SLOC > sorted[j].SLOC
		}
		return sorted[i].Language < sorted[j].Language
	})
	return sorted[0].Language
}
