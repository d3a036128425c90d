package service

import (
	"context"

	"github.com/mooosty/bckndmstr/internal/core/domain"
	"github.com/mooosty/bckndmstr/internal/core/ports"
)

type ProjectService struct {
	projectRepository ports.ProjectRepository
}

func NewProjectService(projectRepository ports.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepository: projectRepository}
}

func (s *ProjectService) GetByID(ctx context.Context, projectID string) (domain.Project, error) {
	return s.projectRepository.GetByID(ctx, projectID)
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.projectRepository.List(ctx)
}

var _ ports.ProjectService = (*ProjectService)(nil)
