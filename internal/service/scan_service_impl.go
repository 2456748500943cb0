package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/boppreh/workspace/internal/contract"
	"github.com/boppreh/workspace/internal/db"
	"github.com/boppreh/workspace/internal/domain"
	"github.com/boppreh/workspace/internal/log"
	"github.com/boppreh/workspace/internal/repository"
	"github.com/boppreh/workspace/internal/scanner"
	"github.com/boppreh/workspace/internal/vcs"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type scanService struct {
	git    *vcs.Git
	uow    db.UnitOfWork
	logger zerolog.Logger
}

func NewScanService(git *vcs.Git, uow db.UnitOfWork) ScanService {
	return &scanService{
		git:    git,
		uow:    uow,
		logger: log.WithComponent("scan"),
	}
}

func (s *scanService) ScanAll(ctx context.Context, req contract.ScanRequest) (*contract.ScanResponse, error) {
	start := time.Now()

	jobs := req.Jobs
	if jobs < 1 {
		jobs = 1
	}
	sc := scanner.New(jobs)
	projects, err := sc.ScanAll(ctx, req.Root)
	if err != nil {
		return nil, err
	}

	var warnings []string
	warnings = append(warnings, s.attachVCS(ctx, projects, jobs)...)

	now := time.Now().UTC()
	for _, p := range projects {
		p.ID = uuid.New().String()
		p.ScannedAt = now
	}

	// One transaction for the whole snapshot set: a failed scan never
	// leaves the cache half-replaced.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteProjectRepo(tx)
		for _, p := range projects {
			if err := repo.Save(ctx, p); err != nil {
				return fmt.Errorf("saving snapshot for %s: %w", p.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &contract.ScanResponse{
		Projects: projects,
		Duration: time.Since(start),
		Warnings: warnings,
	}, nil
}

func (s *scanService) ScanProject(ctx context.Context, projectDir string) (*domain.Project, error) {
	sc := scanner.New(1)
	p, err := sc.ScanProject(ctx, projectDir)
	if err != nil {
		return nil, err
	}

	if status, err := s.git.Status(ctx, projectDir); err == nil {
		p.VCS = status
	} else {
		s.logger.Debug().Err(err).Str("project", p.Name).Msg("git status unavailable")
	}

	p.ID = uuid.New().String()
	p.ScannedAt = time.Now().UTC()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteProjectRepo(tx).Save(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// attachVCS fills in git status for each project concurrently. Failures
// downgrade to warnings; a project without git data is still a snapshot.
func (s *scanService) attachVCS(ctx context.Context, projects []*domain.Project, jobs int) []string {
	warnings := make([]string, len(projects))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, p := range projects {
		g.Go(func() error {
			status, err := s.git.Status(ctx, p.Path)
			if err != nil {
				if errors.Is(err, vcs.ErrGitNotFound) {
					warnings[i] = "git binary not found; VCS status skipped"
					return nil
				}
				warnings[i] = fmt.Sprintf("%s: %v", p.Name, err)
				s.logger.Debug().Err(err).Str("project", p.Name).Msg("git status failed")
				return nil
			}
			p.VCS = status
			return nil
		})
	}
	_ = g.Wait()

	var out []string
	seen := make(map[string]bool)
	for _, w := range warnings {
		if w != "" && !seen[w] {
			out = append(out, w)
			seen[w] = true
		}
	}
	return out
}
