package service

import (
	"context"

	"github.com/boppreh/workspace/internal/contract"
	"github.com/boppreh/workspace/internal/domain"
)

type ScanService interface {
	// ScanAll analyzes every project under the root and persists snapshots.
	ScanAll(ctx context.Context, req contract.ScanRequest) (*contract.ScanResponse, error)
	// ScanProject re-analyzes a single project directory and persists it.
	ScanProject(ctx context.Context, projectDir string) (*domain.Project, error)
}

type ProjectService interface {
	List(ctx context.Context) ([]*domain.Project, error)
	GetByName(ctx context.Context, name string) (*domain.Project, error)
	Remove(ctx context.Context, name string) error
}

type StatusService interface {
	GetStatus(ctx context.Context, req contract.StatusRequest) (*contract.StatusResponse, error)
}

type FreshnessService interface {
	Report(ctx context.Context, req contract.FreshnessRequest) (*contract.FreshnessResponse, error)
}

type ExportService interface {
	// Export writes the cached snapshot set as JSON to path.
	// Returns the number of exported projects.
	Export(ctx context.Context, path string) (int, error)
}

// WatchEvent notifies about a rescanned project in watch mode.
type WatchEvent struct {
	Project *domain.Project
	Err     error
}

type WatchService interface {
	// Watch blocks until ctx is cancelled, rescanning projects whose files
	// change and reporting results on the events channel.
	Watch(ctx context.Context, req contract.WatchRequest, events chan<- WatchEvent) error
}
