package vcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePorcelain_CleanWithUpstream(t *testing.T) {
	out := "# branch.oid 4f2a9c1\n" +
		"# branch.head main\n" +
		"# branch.upstream origin/main\n" +
		"# branch.ab +0 -0\n"

	status := parsePorcelain(out)
	assert.Equal(t, "main", status.Branch)
	assert.True(t, status.HasUpstream)
	assert.False(t, status.Dirty)
	assert.Zero(t, status.Ahead)
	assert.Zero(t, status.Behind)
}

func TestParsePorcelain_DirtyEntries(t *testing.T) {
	out := "# branch.head main\n" +
		"1 .M N... 100644 100644 100644 abc def main.go\n" +
		"? scratch.txt\n"

	status := parsePorcelain(out)
	assert.True(t, status.Dirty)
}

func TestParsePorcelain_AheadBehind(t *testing.T) {
	out := "# branch.head feature\n" +
		"# branch.upstream origin/feature\n" +
		"# branch.ab +3 -2\n"

	status := parsePorcelain(out)
	assert.Equal(t, 3, status.Ahead)
	assert.Equal(t, 2, status.Behind)
}

func TestParsePorcelain_DetachedHead(t *testing.T) {
	out := "# branch.oid 4f2a9c1\n# branch.head (detached)\n"

	status := parsePorcelain(out)
	assert.Empty(t, status.Branch)
	assert.False(t, status.HasUpstream)
}

func TestParsePorcelain_NoUpstream(t *testing.T) {
	out := "# branch.head local-only\n"

	status := parsePorcelain(out)
	assert.Equal(t, "local-only", status.Branch)
	assert.False(t, status.HasUpstream)
}

func TestParsePorcelain_UnmergedEntryIsDirty(t *testing.T) {
	out := "# branch.head main\nu UU N... 100644 100644 100644 100644 a b c conflicted.go\n"

	assert.True(t, parsePorcelain(out).Dirty)
}

func TestParsePorcelain_EmptyOutput(t *testing.T) {
	status := parsePorcelain("")
	assert.Empty(t, status.Branch)
	assert.False(t, status.Dirty)
}
