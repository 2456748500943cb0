package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/boppreh/workspace/internal/domain"
	"github.com/boppreh/workspace/internal/repository"
	"github.com/google/renameio/v2"
)

type exportService struct {
	projects repository.ProjectRepo
}

func NewExportService(projects repository.ProjectRepo) ExportService {
	return &exportService{projects: projects}
}

// exportDoc is the JSON document written by Export. Projects arrive sorted
// by name from the repository, so output is stable across runs.
type exportDoc struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Projects    []exportProject `json:"projects"`
}

type exportProject struct {
	Name      string                `json:"name"`
	Path      string                `json:"path"`
	Language  string                `json:"language"`
	FileCount int                   `json:"file_count"`
	TotalSLOC int                   `json:"total_sloc"`
	SizeBytes int64                 `json:"size_bytes"`
	ScannedAt time.Time             `json:"scanned_at"`
	Languages []domain.LanguageStat `json:"languages,omitempty"`
	VCS       *exportVCS            `json:"vcs,omitempty"`
	Manifests []exportManifest      `json:"manifests,omitempty"`
}

type exportVCS struct {
	Branch       string     `json:"branch"`
	State        string     `json:"state"`
	Dirty        bool       `json:"dirty"`
	Ahead        int        `json:"ahead"`
	Behind       int        `json:"behind"`
	LastCommitAt *time.Time `json:"last_commit_at,omitempty"`
}

type exportManifest struct {
	Manager string `json:"manager"`
	Path    string `json:"path"`
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

func (s *exportService) Export(ctx context.Context, path string) (int, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading cached projects: %w", err)
	}

	// Projects starts non-nil so an empty cache exports as [] rather
	// than null.
	doc := exportDoc{
		GeneratedAt: time.Now().UTC(),
		Projects:    make([]exportProject, 0, len(projects)),
	}
	for _, p := range projects {
		ep := exportProject{
			Name:      p.Name,
			Path:      p.Path,
			Language:  p.Language,
			FileCount: p.FileCount,
			TotalSLOC: p.TotalSLOC,
			SizeBytes: p.SizeBytes,
			ScannedAt: p.ScannedAt,
			Languages: p.Languages,
		}
		if p.VCS != nil {
			ep.VCS = &exportVCS{
				Branch:       p.VCS.Branch,
				State:        string(p.VCS.State()),
				Dirty:        p.VCS.Dirty,
				Ahead:        p.VCS.Ahead,
				Behind:       p.VCS.Behind,
				LastCommitAt: p.VCS.LastCommitAt,
			}
		}
		for _, m := range p.Manifests {
			ep.Manifests = append(ep.Manifests, exportManifest{
				Manager: string(m.Manager),
				Path:    m.Path,
				Name:    m.Name,
				Version: m.Version,
			})
		}
		doc.Projects = append(doc.Projects, ep)
	}

	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return 0, fmt.Errorf("creating pending export file: %w", err)
	}
	defer func() {
		_ = pending.Cleanup()
	}()

	enc := json.NewEncoder(pending)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return 0, fmt.Errorf("encoding export: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return 0, fmt.Errorf("replacing export file: %w", err)
	}
	return len(doc.Projects), nil
}
