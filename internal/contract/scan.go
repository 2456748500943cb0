// Package contract defines the request and response types exchanged
// between the CLI layer and the services.
package contract

import (
	"time"

	"github.com/boppreh/workspace/internal/domain"
)

// ScanRequest configures a workspace scan.
type ScanRequest struct {
	Root string
	Jobs int
}

// NewScanRequest returns a ScanRequest with defaults applied.
func NewScanRequest(root string) ScanRequest {
	return ScanRequest{Root: root, Jobs: 4}
}

// ScanResponse summarizes a completed workspace scan.
type ScanResponse struct {
	Projects []*domain.Project
	Duration time.Duration
	Warnings []string
}

// WatchRequest configures watch mode.
type WatchRequest struct {
	Root     string
	Debounce time.Duration
}
