package service

import (
	"context"
	"fmt"

	"github.com/boppreh/workspace/internal/config"
	"github.com/boppreh/workspace/internal/contract"
	"github.com/boppreh/workspace/internal/domain"
	"github.com/boppreh/workspace/internal/registry"
	"github.com/boppreh/workspace/internal/repository"
)

type freshnessService struct {
	projects   repository.ProjectRepo
	client     registry.Client
	registries config.RegistryConfig
}

func NewFreshnessService(projects repository.ProjectRepo, client registry.Client, registries config.RegistryConfig) FreshnessService {
	return &freshnessService{
		projects:   projects,
		client:     client,
		registries: registries,
	}
}

func (s *freshnessService) Report(ctx context.Context, req contract.FreshnessRequest) (*contract.FreshnessResponse, error) {
	if req.Manager != "" && !domain.ValidManagers[req.Manager] {
		return nil, fmt.Errorf("unknown package manager %q (expected go|npm|pypi|cargo)", req.Manager)
	}

	reports, err := s.projects.ListManifests(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading cached manifests: %w", err)
	}

	resp := &contract.FreshnessResponse{}
	for i := range reports {
		rep := &reports[i]
		manager := string(rep.Manifest.Manager)
		if req.Manager != "" && manager != req.Manager {
			continue
		}
		if !s.registries.Enabled(manager) {
			continue
		}

		latest, err := s.client.Latest(ctx, rep.Manifest.Manager, rep.Manifest.Name)
		if err != nil {
			// A failed lookup degrades one row, never the whole report.
			rep.Err = err
			rep.Freshness = domain.FreshnessUnknown
			resp.Warnings = append(resp.Warnings,
				fmt.Sprintf("%s/%s: %v", rep.ProjectName, rep.Manifest.Name, err))
			resp.Reports = append(resp.Reports, *rep)
			continue
		}
		rep.LatestVersion = latest
		rep.Freshness = rep.Classify()
		resp.Reports = append(resp.Reports, *rep)
	}
	return resp, nil
}
