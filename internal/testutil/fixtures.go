package testutil

import (
	"time"

	"github.com/boppreh/workspace/internal/domain"
	"github.com/google/uuid"
)

// Project options
type ProjectOption func(*domain.Project)

func WithLanguage(lang string, files, sloc int) ProjectOption {
	return func(p *domain.Project) {
		p.Languages = append(p.Languages, domain.LanguageStat{
			Language:  lang,
			FileCount: files,
			SLOC:      sloc,
		})
		p.Language = domain.DominantLanguage(p.Languages)
		p.FileCount += files
		p.TotalSLOC += sloc
	}
}

func WithVCS(status *domain.VCSStatus) ProjectOption {
	return func(p *domain.Project) {
		p.VCS = status
	}
}

func WithManifest(m domain.Manifest) ProjectOption {
	return func(p *domain.Project) {
		p.Manifests = append(p.Manifests, m)
	}
}

func WithPath(path string) ProjectOption {
	return func(p *domain.Project) {
		p.Path = path
	}
}

// NewTestProject builds a project snapshot with sensible defaults. Without
// options it is a Go project with one file of ten lines.
func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		Path:      "/home/test/projects/" + name,
		ScannedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if len(p.Languages) == 0 {
		WithLanguage("Go", 1, 10)(p)
	}
	return p
}

// CleanVCS returns a clean, up-to-date status on main.
func CleanVCS() *domain.VCSStatus {
	return &domain.VCSStatus{Branch: "main", HasUpstream: true}
}

// DirtyVCS returns a dirty status on main with an upstream.
func DirtyVCS() *domain.VCSStatus {
	return &domain.VCSStatus{Branch: "main", Dirty: true, HasUpstream: true}
}
