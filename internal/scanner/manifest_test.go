package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/boppreh/workspace/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, filepath.Dir(name)), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestDetectManifests_GoMod(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module github.com/acme/rocket\n\ngo 1.25\n")

	manifests := DetectManifests(dir)
	require.Len(t, manifests, 1)
	assert.Equal(t, domain.ManagerGo, manifests[0].Manager)
	assert.Equal(t, "go.mod", manifests[0].Path)
	assert.Equal(t, "github.com/acme/rocket", manifests[0].Name)
	assert.Empty(t, manifests[0].Version)
}

func TestDetectManifests_PackageJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"name": "rocket", "version": "2.1.0"}`)

	manifests := DetectManifests(dir)
	require.Len(t, manifests, 1)
	assert.Equal(t, domain.ManagerNpm, manifests[0].Manager)
	assert.Equal(t, "rocket", manifests[0].Name)
	assert.Equal(t, "2.1.0", manifests[0].Version)
}

func TestDetectManifests_PyProjectPEP621(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pyproject.toml", "[build-system]\nrequires = [\"setuptools\"]\n\n[project]\nname = \"rocket\"\nversion = \"0.4.2\"\n")

	manifests := DetectManifests(dir)
	require.Len(t, manifests, 1)
	assert.Equal(t, domain.ManagerPyPI, manifests[0].Manager)
	assert.Equal(t, "rocket", manifests[0].Name)
	assert.Equal(t, "0.4.2", manifests[0].Version)
}

func TestDetectManifests_PyProjectPoetry(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pyproject.toml", "[tool.poetry]\nname = \"rocket\"\nversion = \"1.0.0\"\n")

	manifests := DetectManifests(dir)
	require.Len(t, manifests, 1)
	assert.Equal(t, "rocket", manifests[0].Name)
	assert.Equal(t, "1.0.0", manifests[0].Version)
}

func TestDetectManifests_SetupPy(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "setup.py", "from setuptools import setup\nsetup(name='rocket', version='3.0')\n")

	manifests := DetectManifests(dir)
	require.Len(t, manifests, 1)
	assert.Equal(t, domain.ManagerPyPI, manifests[0].Manager)
	assert.Equal(t, "rocket", manifests[0].Name)
	assert.Equal(t, "3.0", manifests[0].Version)
}

func TestDetectManifests_SetupPySkipsLongerKwargs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "setup.py", "setup(author_name='Alice', name='realpkg', version='1.0')\n")

	manifests := DetectManifests(dir)
	require.Len(t, manifests, 1)
	assert.Equal(t, "realpkg", manifests[0].Name)
	assert.Equal(t, "1.0", manifests[0].Version)
}

func TestDetectManifests_PyProjectWinsOverSetupPy(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pyproject.toml", "[project]\nname = \"modern\"\nversion = \"1.0\"\n")
	writeFile(t, dir, "setup.py", "setup(name='legacy')\n")

	manifests := DetectManifests(dir)
	require.Len(t, manifests, 1)
	assert.Equal(t, "modern", manifests[0].Name)
}

func TestDetectManifests_CargoToml(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Cargo.toml", "[package]\nname = \"rocket\"\nversion = \"0.5.1\"\nedition = \"2021\"\n\n[dependencies]\nserde = \"1\"\n")

	manifests := DetectManifests(dir)
	require.Len(t, manifests, 1)
	assert.Equal(t, domain.ManagerCargo, manifests[0].Manager)
	assert.Equal(t, "rocket", manifests[0].Name)
	assert.Equal(t, "0.5.1", manifests[0].Version)
}

func TestDetectManifests_MultipleManagers(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/mixed\n")
	writeFile(t, dir, "package.json", `{"name": "mixed", "version": "1.0.0"}`)

	manifests := DetectManifests(dir)
	assert.Len(t, manifests, 2)
}

func TestDetectManifests_IgnoresNestedManifests(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "vendor/dep/go.mod", "module example.com/dep\n")

	assert.Empty(t, DetectManifests(dir))
}
