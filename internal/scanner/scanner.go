// Package scanner walks a workspace root, discovers git projects, and
// derives per-project code metrics: language breakdown, SLOC, file counts,
// and package manifests.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/boppreh/workspace/internal/domain"
	"github.com/boppreh/workspace/internal/log"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ErrNotADirectory indicates the workspace root exists but is not a directory.
var ErrNotADirectory = errors.New("workspace root is not a directory")

type Scanner struct {
	jobs   int
	logger zerolog.Logger
}

// New creates a Scanner that analyzes up to jobs projects concurrently.
func New(jobs int) *Scanner {
	if jobs < 1 {
		jobs = 1
	}
	return &Scanner{
		jobs:   jobs,
		logger: log.WithComponent("scanner"),
	}
}

// DiscoverProjects returns the absolute paths of all direct children of
// root that contain a .git directory, sorted by name.
func DiscoverProjects(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("reading workspace root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("listing workspace root: %w", err)
	}

	var dirs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		if gi, err := os.Stat(filepath.Join(dir, ".git")); err == nil && gi.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

// ScanProject analyzes a single project directory and returns its metrics.
// The returned project has no ID, VCS status, or scan timestamp; the caller
// owns those.
func (s *Scanner) ScanProject(ctx context.Context, projectDir string) (*domain.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	ignore, err := LoadIgnore(projectDir)
	if err != nil {
		return nil, fmt.Errorf("reading .gitignore in %s: %w", projectDir, err)
	}

	byLanguage := make(map[string]*domain.LanguageStat)
	var totalFiles, totalSLOC int
	var totalSize int64

	onSkip := func(path string, err error) {
		s.logger.Debug().Err(err).Str("path", path).Msg("skipping unreadable entry")
	}
	err = walkProject(projectDir, ignore, func(fv FileVisit) {
		stat, ok := byLanguage[fv.Language]
		if !ok {
			stat = &domain.LanguageStat{Language: fv.Language}
			byLanguage[fv.Language] = stat
		}
		stat.FileCount++
		stat.SLOC += fv.SLOC
		totalFiles++
		totalSLOC += fv.SLOC
		totalSize += fv.Size
	}, onSkip)
	if err != nil {
		return nil, err
	}

	stats := make([]domain.LanguageStat, 0, len(byLanguage))
	for _, stat := range byLanguage {
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].FileCount != stats[j].FileCount {
			return stats[i].FileCount > stats[j].FileCount
		}
		return stats[i].Language < stats[j].Language
	})

	return &domain.Project{
		Name:         filepath.Base(projectDir),
		Path:         projectDir,
		Language:     domain.DominantLanguage(stats),
		FileCount:    totalFiles,
		TotalSLOC:    totalSLOC,
		SizeBytes:    totalSize,
		ScanDuration: time.Since(start),
		Languages:    stats,
		Manifests:    DetectManifests(projectDir),
	}, nil
}

// ScanAll discovers and analyzes every project under root concurrently.
// Results come back sorted by project name.
func (s *Scanner) ScanAll(ctx context.Context, root string) ([]*domain.Project, error) {
	dirs, err := DiscoverProjects(root)
	if err != nil {
		return nil, err
	}

	projects := make([]*domain.Project, len(dirs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.jobs)
	for i, dir := range dirs {
		g.Go(func() error {
			p, err := s.ScanProject(ctx, dir)
			if err != nil {
				return fmt.Errorf("scanning %s: %w", filepath.Base(dir), err)
			}
			projects[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return projects, nil
}
