package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The logger is a process-wide singleton, so one test exercises the whole
// lifecycle: initial configuration, component annotation, and the verbose
// flag raising the level after the fact.
func TestLoggerLifecycle(t *testing.T) {
	t.Setenv("WORKSPACE_LOG", "")

	var buf bytes.Buffer
	Configure(Config{Output: &buf})

	logger := WithComponent("scanner")
	logger.Debug().Msg("hidden")
	assert.Empty(t, buf.String(), "debug is below the default warn level")

	Configure(Config{Level: "debug"})
	logger = WithComponent("scanner")
	logger.Debug().Msg("walking")

	out := buf.String()
	assert.Contains(t, out, `"component":"scanner"`)
	assert.Contains(t, out, "walking")
}
