package domain

type SyncState string

const (
	SyncClean      SyncState = "clean"
	SyncDirty      SyncState = "dirty"
	SyncAhead      SyncState = "ahead"
	SyncBehind     SyncState = "behind"
	SyncDiverged   SyncState = "diverged"
	SyncDetached   SyncState = "detached"
	SyncNoUpstream SyncState = "no_upstream"
)

type Freshness string

const (
	FreshnessCurrent Freshness = "current"
	FreshnessStale   Freshness = "stale"
	FreshnessUnknown Freshness = "unknown"
)

type PackageManager string

const (
	ManagerGo    PackageManager = "go"
	ManagerNpm   PackageManager = "npm"
	ManagerPyPI  PackageManager = "pypi"
	ManagerCargo PackageManager = "cargo"
)

// ValidManagers is the canonical set of accepted package manager strings.
var ValidManagers = map[string]bool{
	"go": true, "npm": true, "pypi": true, "cargo": true,
}
