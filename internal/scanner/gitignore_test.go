package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeIgnore(t *testing.T, content string) *IgnoreList {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(content), 0644))
	il, err := LoadIgnore(dir)
	require.NoError(t, err)
	return il
}

func TestLoadIgnore_MissingFileIsEmpty(t *testing.T) {
	il, err := LoadIgnore(t.TempDir())
	require.NoError(t, err)
	assert.False(t, il.Match("anything.go"))
}

func TestIgnoreList_BaseNameAndGlob(t *testing.T) {
	il := writeIgnore(t, "*.log\nbuild\n")

	assert.True(t, il.Match("debug.log"))
	assert.True(t, il.Match("sub/dir/trace.log"))
	assert.True(t, il.Match("build"))
	assert.False(t, il.Match("main.go"))
}

func TestIgnoreList_DirectoryPatternCoversContents(t *testing.T) {
	il := writeIgnore(t, "node_modules/\n/dist\n")

	assert.True(t, il.Match("node_modules"))
	assert.True(t, il.Match("node_modules/react/index.js"))
	assert.True(t, il.Match("dist/bundle.js"))
	assert.False(t, il.Match("distance.py"))
}

func TestIgnoreList_SkipsCommentsBlanksAndNegation(t *testing.T) {
	il := writeIgnore(t, "# generated\n\n!keep.log\n*.tmp\n")

	assert.True(t, il.Match("scratch.tmp"))
	// Negation is a documented simplification: the pattern is dropped, so
	// keep.log is not matched by it either.
	assert.False(t, il.Match("keep.log"))
	assert.False(t, il.Match("generated"))
}

func TestIgnoreList_NilReceiver(t *testing.T) {
	var il *IgnoreList
	assert.False(t, il.Match("main.go"))
}
