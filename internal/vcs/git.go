// Package vcs reads version-control status from project directories by
// shelling out to git. Output parsing is kept in pure functions so it can
// be tested without a git binary.
package vcs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/boppreh/workspace/internal/domain"
)

var (
	// ErrGitNotFound indicates no git binary is available on PATH.
	ErrGitNotFound = errors.New("git binary not found")

	// ErrNotARepository indicates the directory is not a git worktree.
	ErrNotARepository = errors.New("not a git repository")
)

// Runner executes a git command in a directory and returns its stdout.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", ErrGitNotFound
		}
		msg := strings.TrimSpace(stderr.String())
		if strings.Contains(msg, "not a git repository") {
			return "", ErrNotARepository
		}
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, msg)
	}
	return stdout.String(), nil
}

// Git inspects repositories through a Runner.
type Git struct {
	runner Runner
}

// NewGit creates a Git backed by the real git binary.
func NewGit() *Git {
	return &Git{runner: execRunner{}}
}

// NewGitWithRunner creates a Git with a custom Runner, for tests.
func NewGitWithRunner(r Runner) *Git {
	return &Git{runner: r}
}

// Status returns the current VCS state of the project directory: branch,
// dirty flag, ahead/behind counts, and last commit time.
func (g *Git) Status(ctx context.Context, dir string) (*domain.VCSStatus, error) {
	out, err := g.runner.Run(ctx, dir, "status", "--porcelain=v2", "--branch")
	if err != nil {
		return nil, err
	}
	status := parsePorcelain(out)

	if ts, err := g.lastCommit(ctx, dir); err == nil {
		status.LastCommitAt = ts
	}
	return status, nil
}

// lastCommit returns the committer time of HEAD, or nil for an empty repo.
func (g *Git) lastCommit(ctx context.Context, dir string) (*time.Time, error) {
	out, err := g.runner.Run(ctx, dir, "log", "-1", "--format=%ct")
	if err != nil {
		return nil, err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return nil, nil
	}
	epoch, err := strconv.ParseInt(out, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing commit timestamp %q: %w", out, err)
	}
	t := time.Unix(epoch, 0).UTC()
	return &t, nil
}
