package service

import (
	"context"
	"strings"

	"github.com/mooosty/bckndmstr/internal/core/domain"
	"github.com/mooosty/bckndmstr/internal/core/ports"
)

type SubmissionService struct {
	projectRepository  ports.ProjectRepository
	progressRepository ports.ProgressRepository
}

func NewSubmissionService(projectRepository ports.ProjectRepository, progressRepository ports.ProgressRepository) *SubmissionService {
	return &SubmissionService{
		projectRepository:  projectRepository,
		progressRepository: progressRepository,
	}
}

// Submit records a user's evidence for a catalog task and queues it
// for admin review. Resubmitting the same task overwrites the prior
// submission and re-queues it; it never creates a duplicate entry.
func (s *SubmissionService) Submit(ctx context.Context, userID, projectID string, input domain.SubmitTaskInput) (domain.TaskProgress, error) {
	if !strings.Contains(userID, "@") {
		return domain.TaskProgress{}, domain.NewValidationError("userId", "must be an email address")
	}
	if input.TaskID == "" {
		return domain.TaskProgress{}, domain.NewValidationError("taskId", "must not be empty")
	}
	if !input.Type.Valid() {
		return domain.TaskProgress{}, domain.NewValidationError("type", `must be "discord" or "social"`)
	}
	submission := strings.TrimSpace(input.Submission)
	if submission == "" {
		return domain.TaskProgress{}, domain.NewValidationError("submission", "must not be empty")
	}

	project, err := s.projectRepository.GetByID(ctx, projectID)
	if err != nil {
		return domain.TaskProgress{}, err
	}

	if _, ok := project.Tasks.FindInGroup(input.Type, input.TaskID); !ok {
		return domain.TaskProgress{}, domain.ErrTaskNotFound
	}

	entry := domain.TaskProgress{
		TaskID:     input.TaskID,
		Type:       input.Type,
		Status:     domain.TaskStatusPendingApproval,
		Submission: &submission,
	}

	return s.progressRepository.UpsertSubmission(ctx, userID, projectID, entry)
}

var _ ports.SubmissionService = (*SubmissionService)(nil)
