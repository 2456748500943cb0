package domain

import "time"

// VCSStatus captures the git state of a project at scan time.
type VCSStatus struct {
	Branch       string
	Dirty        bool
	Ahead        int
	Behind       int
	HasUpstream  bool
	LastCommitAt *time.Time
}

// State derives the sync state for display. A dirty worktree dominates
// ahead/behind; ahead and behind together mean the branch has diverged.
func (s *VCSStatus) State() SyncState {
	switch {
	case s.Branch == "":
		return SyncDetached
	case s.Dirty:
		return SyncDirty
	case !s.HasUpstream:
		return SyncNoUpstream
	case s.Ahead > 0 && s.Behind > 0:
		return SyncDiverged
	case s.Ahead > 0:
		return SyncAhead
	case s.Behind > 0:
		return SyncBehind
	default:
		return SyncClean
	}
}
