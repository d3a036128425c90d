package ports

import (
	"context"

	"github.com/mooosty/bckndmstr/internal/core/domain"
)

type ProjectRepository interface {
	// GetByID returns domain.ErrProjectNotFound when no project has
	// the given identifier.
	GetByID(ctx context.Context, projectID string) (domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
}

type ProjectService interface {
	GetByID(ctx context.Context, projectID string) (domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
}
