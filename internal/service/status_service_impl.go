package service

import (
	"context"
	"fmt"

	"github.com/boppreh/workspace/internal/contract"
	"github.com/boppreh/workspace/internal/domain"
	"github.com/boppreh/workspace/internal/repository"
	"github.com/boppreh/workspace/internal/vcs"
)

type statusService struct {
	projects repository.ProjectRepo
	git      *vcs.Git
}

func NewStatusService(projects repository.ProjectRepo, git *vcs.Git) StatusService {
	return &statusService{projects: projects, git: git}
}

func (s *statusService) GetStatus(ctx context.Context, req contract.StatusRequest) (*contract.StatusResponse, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading cached projects: %w", err)
	}

	resp := &contract.StatusResponse{}
	for _, p := range projects {
		status := p.VCS
		if req.Refresh {
			fresh, err := s.git.Status(ctx, p.Path)
			if err != nil {
				resp.Warnings = append(resp.Warnings, fmt.Sprintf("%s: %v", p.Name, err))
			} else {
				status = fresh
			}
		}
		if status == nil {
			resp.Warnings = append(resp.Warnings, fmt.Sprintf("%s: no VCS data cached, re-run scan", p.Name))
			continue
		}

		state := status.State()
		resp.Projects = append(resp.Projects, contract.ProjectSyncView{
			Name:         p.Name,
			Branch:       status.Branch,
			State:        state,
			Dirty:        status.Dirty,
			Ahead:        status.Ahead,
			Behind:       status.Behind,
			LastCommitAt: status.LastCommitAt,
		})

		switch state {
		case domain.SyncClean:
			resp.Summary.CountsClean++
		case domain.SyncDirty:
			resp.Summary.CountsDirty++
		case domain.SyncAhead, domain.SyncDiverged:
			resp.Summary.CountsUnpushed++
		}
	}
	return resp, nil
}
