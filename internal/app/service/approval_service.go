package service

import (
	"context"
	"time"

	"github.com/mooosty/bckndmstr/internal/core/domain"
	"github.com/mooosty/bckndmstr/internal/core/ports"
)

type ApprovalService struct {
	projectRepository  ports.ProjectRepository
	progressRepository ports.ProgressRepository
}

func NewApprovalService(projectRepository ports.ProjectRepository, progressRepository ports.ProgressRepository) *ApprovalService {
	return &ApprovalService{
		projectRepository:  projectRepository,
		progressRepository: progressRepository,
	}
}

// Decide applies an admin decision to a submitted task. Approving
// marks it completed and stamps the completion time; rejecting sends
// it back to pending and clears any prior completion time. The write
// targets the one progress entry only, so decisions on sibling tasks
// of the same record cannot clobber each other.
func (s *ApprovalService) Decide(ctx context.Context, input domain.DecisionInput) error {
	if input.ProjectID == "" {
		return domain.NewValidationError("projectId", "must not be empty")
	}
	if input.UserID == "" {
		return domain.NewValidationError("userId", "must not be empty")
	}
	if input.TaskID == "" {
		return domain.NewValidationError("taskId", "must not be empty")
	}
	if input.Action != domain.DecisionApprove && input.Action != domain.DecisionReject {
		return domain.NewValidationError("action", `must be "approve" or "reject"`)
	}

	tasks, err := s.progressRepository.ListByUserProject(ctx, input.UserID, input.ProjectID)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		return domain.ErrProgressNotFound
	}

	found := false
	for _, task := range tasks {
		if task.TaskID == input.TaskID {
			found = true
			break
		}
	}
	if !found {
		return domain.ErrTaskNotInProgress
	}

	status := domain.TaskStatusPending
	var completedAt *time.Time
	if input.Action == domain.DecisionApprove {
		status = domain.TaskStatusCompleted
		now := time.Now()
		completedAt = &now
	}

	return s.progressRepository.UpdateDecision(ctx, input.ProjectID, input.UserID, input.TaskID, status, completedAt)
}

// ReviewQueue lists every submitted progress entry across all users
// and projects, joined with its catalog task details. Entries whose
// project or catalog task no longer exists are dropped.
func (s *ApprovalService) ReviewQueue(ctx context.Context) ([]domain.ReviewItem, error) {
	records, err := s.progressRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := collectProjects(ctx, s.projectRepository, records)
	if err != nil {
		return nil, err
	}

	return buildReviewItems(projects, records), nil
}

var _ ports.ApprovalService = (*ApprovalService)(nil)
