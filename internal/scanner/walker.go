package scanner

import (
	"os"
	"path/filepath"
	"strings"
)

// FileVisit describes one recognized source file found during a walk.
type FileVisit struct {
	RelPath  string // repo-relative, forward slashes
	Language string
	SLOC     int
	Size     int64
}

// walkProject recursively visits a project directory, honoring the ignore
// list and skipping dot-entries, and calls visit for every recognized
// source file. Unreadable entries are reported via onSkip and do not abort
// the walk.
func walkProject(projectDir string, ignore *IgnoreList, visit func(FileVisit), onSkip func(path string, err error)) error {
	var walk func(dir, rel string) error
	walk = func(dir, rel string) error {
		entries, err := os.ReadDir(dir)
		if err != nil {
			onSkip(dir, err)
			return nil
		}
		for _, entry := range entries {
			name := entry.Name()
			if strings.HasPrefix(name, ".") {
				continue
			}
			entryRel := name
			if rel != "" {
				entryRel = rel + "/" + name
			}
			if ignore.Match(entryRel) {
				continue
			}
			full := filepath.Join(dir, name)
			if entry.IsDir() {
				if err := walk(full, entryRel); err != nil {
					return err
				}
				continue
			}
			lang := LanguageForExtension(filepath.Ext(name))
			if lang == "" {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				onSkip(full, err)
				continue
			}
			f, err := os.Open(full)
			if err != nil {
				onSkip(full, err)
				continue
			}
			sloc, err := CountSLOC(f, lang)
			f.Close()
			if err != nil {
				onSkip(full, err)
				continue
			}
			visit(FileVisit{
				RelPath:  entryRel,
				Language: lang,
				SLOC:     sloc,
				Size:     info.Size(),
			})
		}
		return nil
	}
	return walk(projectDir, "")
}
