package ports

import (
	"context"
	"time"

	"github.com/mooosty/bckndmstr/internal/core/domain"
)

type ProgressRepository interface {
	// UpsertSubmission inserts or overwrites the progress entry for
	// (userID, projectID, task.TaskID) and returns the stored entry.
	UpsertSubmission(ctx context.Context, userID, projectID string, task domain.TaskProgress) (domain.TaskProgress, error)

	// UpdateDecision sets status and completion time on a single
	// progress entry. Returns domain.ErrTaskNotInProgress when the
	// entry does not exist.
	UpdateDecision(ctx context.Context, projectID, userID, taskID string, status domain.TaskStatus, completedAt *time.Time) error

	ListByUserProject(ctx context.Context, userID, projectID string) ([]domain.TaskProgress, error)
	ListByUser(ctx context.Context, userID string) ([]domain.ProgressRecord, error)
	ListAll(ctx context.Context) ([]domain.ProgressRecord, error)
}

type SubmissionService interface {
	Submit(ctx context.Context, userID, projectID string, input domain.SubmitTaskInput) (domain.TaskProgress, error)
}

type ApprovalService interface {
	Decide(ctx context.Context, input domain.DecisionInput) error
	ReviewQueue(ctx context.Context) ([]domain.ReviewItem, error)
}

type ProgressAggregator interface {
	Aggregate(ctx context.Context, userID, projectID string) (domain.ProjectProgress, error)
	UserTasks(ctx context.Context, userID string) ([]domain.ReviewItem, error)
}
