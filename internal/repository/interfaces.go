package repository

import (
	"context"

	"github.com/boppreh/workspace/internal/domain"
)

// ProjectRepo persists project snapshots. Save replaces any prior snapshot
// for the same project name, including its language stats and manifests.
type ProjectRepo interface {
	Save(ctx context.Context, p *domain.Project) error
	GetByName(ctx context.Context, name string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	ListManifests(ctx context.Context) ([]domain.PackageReport, error)
	DeleteByName(ctx context.Context, name string) error
}
