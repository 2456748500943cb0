package scanner

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/boppreh/workspace/internal/domain"
)

// DetectManifests looks for known package manifests in the project root.
// Only the top-level directory is checked; nested manifests belong to
// vendored code more often than to the project itself.
func DetectManifests(projectDir string) []domain.Manifest {
	var manifests []domain.Manifest

	checks := []struct {
		file  string
		parse func(path string) (name, version string, ok bool)
		mgr   domain.PackageManager
	}{
		{"go.mod", parseGoMod, domain.ManagerGo},
		{"package.json", parsePackageJSON, domain.ManagerNpm},
		{"pyproject.toml", parsePyProject, domain.ManagerPyPI},
		{"setup.py", parseSetupPy, domain.ManagerPyPI},
		{"Cargo.toml", parseCargoToml, domain.ManagerCargo},
	}

	seen := make(map[domain.PackageManager]bool)
	for _, c := range checks {
		if seen[c.mgr] {
			continue
		}
		path := filepath.Join(projectDir, c.file)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		name, version, ok := c.parse(path)
		if !ok {
			continue
		}
		manifests = append(manifests, domain.Manifest{
			Manager: c.mgr,
			Path:    c.file,
			Name:    name,
			Version: version,
		})
		seen[c.mgr] = true
	}
	return manifests
}

func parseGoMod(path string) (string, string, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", false
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if rest, ok := strings.CutPrefix(line, "module "); ok {
			return strings.TrimSpace(rest), "", true
		}
	}
	return "", "", false
}

func parsePackageJSON(path string) (string, string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", false
	}
	var pkg struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil || pkg.Name == "" {
		return "", "", false
	}
	return pkg.Name, pkg.Version, true
}

// parsePyProject pulls name/version out of the [project] (PEP 621) or
// [tool.poetry] table with a line scan; a full TOML parser is overkill for
// two well-known keys.
func parsePyProject(path string) (string, string, bool) {
	name, version := scanTOMLTable(path, map[string]bool{"project": true, "tool.poetry": true})
	if name == "" {
		return "", "", false
	}
	return name, version, true
}

func parseCargoToml(path string) (string, string, bool) {
	name, version := scanTOMLTable(path, map[string]bool{"package": true})
	if name == "" {
		return "", "", false
	}
	return name, version, true
}

func scanTOMLTable(path string, tables map[string]bool) (name, version string) {
	f, err := os.Open(path)
	if err != nil {
		return "", ""
	}
	defer f.Close()

	inTable := false
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			table := strings.Trim(line, "[]")
			inTable = tables[table]
			continue
		}
		if !inTable {
			continue
		}
		if v, ok := tomlStringValue(line, "name"); ok && name == "" {
			name = v
		}
		if v, ok := tomlStringValue(line, "version"); ok && version == "" {
			version = v
		}
	}
	return name, version
}

func tomlStringValue(line, key string) (string, bool) {
	rest, ok := strings.CutPrefix(line, key)
	if !ok {
		return "", false
	}
	rest = strings.TrimSpace(rest)
	rest, ok = strings.CutPrefix(rest, "=")
	if !ok {
		return "", false
	}
	rest = strings.TrimSpace(rest)
	rest = strings.Trim(rest, `"'`)
	if rest == "" {
		return "", false
	}
	return rest, true
}

// parseSetupPy extracts name/version from simple setup(name="...", ...) calls.
// Dynamic setup scripts yield a manifest with just the file recorded.
func parseSetupPy(path string) (string, string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", false
	}
	text := string(data)
	name := pyKwarg(text, "name")
	if name == "" {
		// Still worth recording: the project packages for PyPI even if we
		// cannot read the name statically.
		return filepath.Base(filepath.Dir(path)), "", true
	}
	return name, pyKwarg(text, "version"), true
}

func pyKwarg(text, key string) string {
	for start := 0; ; {
		idx := strings.Index(text[start:], key+"=")
		if idx < 0 {
			return ""
		}
		idx += start
		start = idx + len(key) + 1
		// Skip matches that are the tail of a longer keyword, such as
		// author_name= when looking for name=.
		if idx > 0 && isPyIdentByte(text[idx-1]) {
			continue
		}
		rest := text[start:]
		if rest == "" {
			return ""
		}
		quote := rest[0]
		if quote != '"' && quote != '\'' {
			continue
		}
		end := strings.IndexByte(rest[1:], quote)
		if end < 0 {
			return ""
		}
		return rest[1 : 1+end]
	}
}

func isPyIdentByte(c byte) bool {
	return c == '_' ||
		c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9'
}
