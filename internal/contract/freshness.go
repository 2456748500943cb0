package contract

import "github.com/boppreh/workspace/internal/domain"

// FreshnessRequest configures a package freshness report.
type FreshnessRequest struct {
	// Manager restricts the report to one package manager; empty means all.
	Manager string
}

// FreshnessResponse lists the outcome of registry lookups for every cached
// manifest.
type FreshnessResponse struct {
	Reports  []domain.PackageReport
	Warnings []string
}
