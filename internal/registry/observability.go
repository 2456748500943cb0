package registry

import (
	"github.com/boppreh/workspace/internal/domain"
	"github.com/rs/zerolog"
)

// LookupEvent records metadata about a single registry lookup.
type LookupEvent struct {
	Manager   domain.PackageManager
	Package   string
	LatencyMs int64
	CacheHit  bool
	Success   bool
	ErrorCode string
}

// Observer receives events about registry lookups for logging and metrics.
type Observer interface {
	OnLookupComplete(event LookupEvent)
}

// LogObserver writes lookup events to a zerolog logger at debug level.
type LogObserver struct {
	logger zerolog.Logger
}

// NewLogObserver creates an Observer that logs events through the given logger.
func NewLogObserver(logger zerolog.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnLookupComplete(event LookupEvent) {
	evt := o.logger.Debug().
		Str("manager", string(event.Manager)).
		Str("package", event.Package).
		Int64("latency_ms", event.LatencyMs).
		Bool("cache_hit", event.CacheHit).
		Bool("success", event.Success)
	if event.ErrorCode != "" {
		evt = evt.Str("error", event.ErrorCode)
	}
	evt.Msg("registry lookup")
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnLookupComplete(LookupEvent) {}
