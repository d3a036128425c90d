package ports

import (
	"context"

	"github.com/mooosty/bckndmstr/internal/core/domain"
)

type ApplicationRepository interface {
	Create(ctx context.Context, application domain.Application) (domain.Application, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Application, error)
	ListAll(ctx context.Context) ([]domain.Application, error)

	// UpdateStatus returns domain.ErrApplicationNotFound when no
	// application has the given identifier.
	UpdateStatus(ctx context.Context, applicationID string, status domain.ApplicationStatus) error
}

type ApplicationService interface {
	Apply(ctx context.Context, userID string, input domain.ApplyInput) (domain.Application, error)
	List(ctx context.Context, identity domain.Identity) ([]domain.Application, error)
	Decide(ctx context.Context, applicationID string, status domain.ApplicationStatus) error
}
