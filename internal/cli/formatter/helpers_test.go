package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanBytes(t *testing.T) {
	assert.Equal(t, "512 B", HumanBytes(512))
	assert.Equal(t, "1.0 KiB", HumanBytes(1024))
	assert.Equal(t, "1.5 MiB", HumanBytes(1536*1024))
	assert.Equal(t, "2.0 GiB", HumanBytes(2*1024*1024*1024))
}

func TestHumanDuration(t *testing.T) {
	assert.Equal(t, "<1ms", HumanDuration(500*time.Microsecond))
	assert.Equal(t, "250ms", HumanDuration(250*time.Millisecond))
	assert.Equal(t, "1.5s", HumanDuration(1500*time.Millisecond))
}

func TestHumanAge(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "just now", HumanAge(now.Add(-30*time.Second), now))
	assert.Equal(t, "5m ago", HumanAge(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h ago", HumanAge(now.Add(-3*time.Hour), now))
	assert.Equal(t, "4d ago", HumanAge(now.Add(-4*24*time.Hour), now))
	assert.Equal(t, "2026-02-01", HumanAge(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), now))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "file", Plural(1, "file", "files"))
	assert.Equal(t, "files", Plural(0, "file", "files"))
	assert.Equal(t, "files", Plural(7, "file", "files"))
}
