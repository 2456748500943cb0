package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/boppreh/workspace/internal/contract"
	"github.com/boppreh/workspace/internal/log"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

type watchService struct {
	scans  ScanService
	logger zerolog.Logger
}

// NewWatchService creates a WatchService that rescans a project after its
// files have been quiet for the configured debounce interval.
func NewWatchService(scans ScanService) WatchService {
	return &watchService{
		scans:  scans,
		logger: log.WithComponent("watch"),
	}
}

func (s *watchService) Watch(ctx context.Context, req contract.WatchRequest, events chan<- WatchEvent) error {
	root := req.Root
	debounce := req.Debounce
	if debounce <= 0 {
		debounce = 2 * time.Second
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := s.addRecursive(watcher, root); err != nil {
		return err
	}

	// Project names touched since the last quiet period.
	pending := make(map[string]bool)
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			project := projectFor(root, ev.Name)
			if project == "" {
				continue
			}
			// New directories need their own watches.
			if ev.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = s.addRecursive(watcher, ev.Name)
				}
			}
			s.logger.Debug().Str("project", project).Str("op", ev.Op.String()).Str("path", ev.Name).Msg("change detected")
			pending[project] = true
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn().Err(err).Msg("watcher error")

		case <-timer.C:
			for project := range pending {
				delete(pending, project)
				dir := filepath.Join(root, project)
				if _, err := os.Stat(dir); err != nil {
					continue // project removed
				}
				p, err := s.scans.ScanProject(ctx, dir)
				events <- WatchEvent{Project: p, Err: err}
			}
		}
	}
}

// addRecursive watches dir and all non-hidden subdirectories.
func (s *watchService) addRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			s.logger.Debug().Err(err).Str("path", path).Msg("skipping unwatchable entry")
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if name := d.Name(); strings.HasPrefix(name, ".") && path != dir {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			s.logger.Debug().Err(err).Str("path", path).Msg("failed to watch directory")
		}
		return nil
	})
}

// projectFor maps a changed path to the project directory name directly
// under root, or "" when the path is the root itself or outside it.
func projectFor(root, changed string) string {
	rel, err := filepath.Rel(root, changed)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return ""
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if parts[0] == "" || strings.HasPrefix(parts[0], ".") {
		return ""
	}
	return parts[0]
}
