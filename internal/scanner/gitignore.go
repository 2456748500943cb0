package scanner

import (
	"bufio"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// IgnoreList holds the patterns from a project's .gitignore. Matching is a
// deliberate simplification of git semantics: patterns match against the
// entry's base name and its repo-relative path via path.Match. Negation
// patterns ("!...") are skipped.
type IgnoreList struct {
	patterns []string
}

// LoadIgnore reads .gitignore from the given project directory. A missing
// file yields an empty list, not an error.
func LoadIgnore(projectDir string) (*IgnoreList, error) {
	f, err := os.Open(filepath.Join(projectDir, ".gitignore"))
	if err != nil {
		if os.IsNotExist(err) {
			return &IgnoreList{}, nil
		}
		return nil, err
	}
	defer f.Close()

	il := &IgnoreList{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}
		il.patterns = append(il.patterns, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return il, nil
}

// Match reports whether a repo-relative path should be ignored.
func (il *IgnoreList) Match(relPath string) bool {
	if il == nil || len(il.patterns) == 0 {
		return false
	}
	relPath = filepath.ToSlash(relPath)
	base := path.Base(relPath)

	for _, p := range il.patterns {
		trimmed := strings.TrimSuffix(p, "/")
		trimmed = strings.TrimPrefix(trimmed, "/")
		if trimmed == "" {
			continue
		}
		if ok, _ := path.Match(trimmed, base); ok {
			return true
		}
		if ok, _ := path.Match(trimmed, relPath); ok {
			return true
		}
		// Directory patterns ignore everything beneath them.
		if strings.HasPrefix(relPath, trimmed+"/") {
			return true
		}
	}
	return false
}
