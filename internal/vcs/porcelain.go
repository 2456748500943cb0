package vcs

import (
	"strconv"
	"strings"

	"github.com/boppreh/workspace/internal/domain"
)

// parsePorcelain interprets the output of
// `git status --porcelain=v2 --branch`. Header lines carry branch and
// upstream info; any non-header line means the worktree is dirty.
func parsePorcelain(out string) *domain.VCSStatus {
	status := &domain.VCSStatus{}

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(line, "# "); ok {
			parseBranchHeader(rest, status)
			continue
		}
		// Entry lines: changed (1/2), unmerged (u), untracked (?).
		status.Dirty = true
	}
	return status
}

func parseBranchHeader(rest string, status *domain.VCSStatus) {
	switch {
	case strings.HasPrefix(rest, "branch.head "):
		head := strings.TrimPrefix(rest, "branch.head ")
		if head != "(detached)" {
			status.Branch = head
		}
	case strings.HasPrefix(rest, "branch.upstream "):
		status.HasUpstream = true
	case strings.HasPrefix(rest, "branch.ab "):
		// Format: "branch.ab +<ahead> -<behind>"
		fields := strings.Fields(strings.TrimPrefix(rest, "branch.ab "))
		for _, f := range fields {
			if n, err := strconv.Atoi(strings.TrimPrefix(f, "+")); err == nil && strings.HasPrefix(f, "+") {
				status.Ahead = n
			}
			if n, err := strconv.Atoi(strings.TrimPrefix(f, "-")); err == nil && strings.HasPrefix(f, "-") {
				status.Behind = n
			}
		}
	}
}
