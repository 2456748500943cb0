package scanner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountSLOC_SkipsBlankAndCommentLines(t *testing.T) {
	src := `package main

// main is the entrypoint.
func main() {
	// say hello
	println("hi")
}
`
	n, err := CountSLOC(strings.NewReader(src), "Go")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestCountSLOC_HashComments(t *testing.T) {
	src := "# header\n\nx = 1\ny = 2  # trailing comments still count\n"
	n, err := CountSLOC(strings.NewReader(src), "Python")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCountSLOC_UnknownLanguageCountsNonBlank(t *testing.T) {
	src := "// not a known marker\ncode\n"
	n, err := CountSLOC(strings.NewReader(src), "Brainfuck")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCountSLOC_EmptyInput(t *testing.T) {
	n, err := CountSLOC(strings.NewReader(""), "Go")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestCountSLOC_LongLines(t *testing.T) {
	long := strings.Repeat("a", 200_000)
	n, err := CountSLOC(strings.NewReader(long+"\n"+long), "Go")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
