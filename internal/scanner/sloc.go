package scanner

import (
	"bufio"
	"io"
	"strings"
)

// CountSLOC counts source lines: blank lines and lines holding only a
// single-line comment for the given language are excluded. Block comments
// are not tracked; this is a size metric, not a parser.
func CountSLOC(r io.Reader, language string) (int, error) {
	marker := lineCommentByLanguage[language]

	count := 0
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if marker != "" && strings.HasPrefix(line, marker) {
			continue
		}
		count++
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	return count, nil
}
