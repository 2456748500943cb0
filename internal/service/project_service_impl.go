package service

import (
	"context"

	"github.com/boppreh/workspace/internal/domain"
	"github.com/boppreh/workspace/internal/repository"
)

type projectService struct {
	projects repository.ProjectRepo
}

func NewProjectService(projects repository.ProjectRepo) ProjectService {
	return &projectService{projects: projects}
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectService) GetByName(ctx context.Context, name string) (*domain.Project, error) {
	return s.projects.GetByName(ctx, name)
}

func (s *projectService) Remove(ctx context.Context, name string) error {
	return s.projects.DeleteByName(ctx, name)
}
