package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/mooosty/bckndmstr/internal/core/domain"
	"github.com/mooosty/bckndmstr/internal/core/ports"
)

type ApplicationService struct {
	applicationRepository ports.ApplicationRepository
	projectRepository     ports.ProjectRepository
}

func NewApplicationService(applicationRepository ports.ApplicationRepository, projectRepository ports.ProjectRepository) *ApplicationService {
	return &ApplicationService{
		applicationRepository: applicationRepository,
		projectRepository:     projectRepository,
	}
}

// Apply files a pending application for the user on the given
// project.
func (s *ApplicationService) Apply(ctx context.Context, userID string, input domain.ApplyInput) (domain.Application, error) {
	if !strings.Contains(userID, "@") {
		return domain.Application{}, domain.NewValidationError("userId", "must be an email address")
	}
	if input.ProjectID == "" {
		return domain.Application{}, domain.NewValidationError("projectId", "must not be empty")
	}
	if len(input.Answers) == 0 {
		return domain.Application{}, domain.NewValidationError("answers", "must not be empty")
	}

	project, err := s.projectRepository.GetByID(ctx, input.ProjectID)
	if err != nil {
		return domain.Application{}, err
	}

	application := domain.Application{
		ID:          uuid.NewString(),
		UserID:      userID,
		ProjectID:   project.ID,
		ProjectName: project.Name,
		Answers:     input.Answers,
		Status:      domain.ApplicationStatusPending,
	}

	return s.applicationRepository.Create(ctx, application)
}

// List returns all applications for admins and the caller's own
// applications otherwise.
func (s *ApplicationService) List(ctx context.Context, identity domain.Identity) ([]domain.Application, error) {
	if identity.IsAdmin {
		return s.applicationRepository.ListAll(ctx)
	}
	return s.applicationRepository.ListByUser(ctx, identity.UserID)
}

// Decide records an admin's accept/reject decision on an application.
func (s *ApplicationService) Decide(ctx context.Context, applicationID string, status domain.ApplicationStatus) error {
	if applicationID == "" {
		return domain.NewValidationError("id", "must not be empty")
	}
	if status != domain.ApplicationStatusAccepted && status != domain.ApplicationStatusRejected {
		return domain.NewValidationError("status", `must be "ACCEPTED" or "REJECTED"`)
	}
	return s.applicationRepository.UpdateStatus(ctx, applicationID, status)
}

var _ ports.ApplicationService = (*ApplicationService)(nil)
