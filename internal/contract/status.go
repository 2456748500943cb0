package contract

import (
	"time"

	"github.com/boppreh/workspace/internal/domain"
)

// StatusRequest configures a VCS status overview.
type StatusRequest struct {
	// Refresh re-reads git state from disk instead of the cached snapshot.
	Refresh bool
}

// ProjectSyncView is one row of the status overview.
type ProjectSyncView struct {
	Name         string
	Branch       string
	State        domain.SyncState
	Dirty        bool
	Ahead        int
	Behind       int
	LastCommitAt *time.Time
}

// StatusSummary aggregates sync states across the workspace.
type StatusSummary struct {
	CountsClean    int
	CountsDirty    int
	CountsUnpushed int // ahead or diverged
}

// StatusResponse is the full VCS overview.
type StatusResponse struct {
	Summary  StatusSummary
	Projects []ProjectSyncView
	Warnings []string
}
