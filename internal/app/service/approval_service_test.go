package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appservice "github.com/mooosty/bckndmstr/internal/app/service"
	"github.com/mooosty/bckndmstr/internal/core/domain"
)

func pendingApprovalTask(taskID string, group domain.TaskGroup) domain.TaskProgress {
	return domain.TaskProgress{
		TaskID:     taskID,
		Type:       group,
		Status:     domain.TaskStatusPendingApproval,
		Submission: strptr("evidence"),
	}
}

func TestApprovalService_Decide_ApproveStampsCompletion(t *testing.T) {
	projectRepo := new(projectRepositoryMock)
	progressRepo := new(progressRepositoryMock)

	progressRepo.On("ListByUserProject", mock.Anything, "user@example.com", "proj-1").
		Return([]domain.TaskProgress{pendingApprovalTask("t1", domain.TaskGroupDiscord)}, nil).Once()
	progressRepo.On("UpdateDecision", mock.Anything, "proj-1", "user@example.com", "t1",
		domain.TaskStatusCompleted, mock.MatchedBy(func(completedAt *time.Time) bool {
			return completedAt != nil && !completedAt.IsZero()
		})).Return(nil).Once()

	svc := appservice.NewApprovalService(projectRepo, progressRepo)
	err := svc.Decide(context.Background(), domain.DecisionInput{
		ProjectID: "proj-1",
		UserID:    "user@example.com",
		TaskID:    "t1",
		Action:    domain.DecisionApprove,
	})

	require.NoError(t, err)
	progressRepo.AssertExpectations(t)
}

func TestApprovalService_Decide_RejectClearsCompletion(t *testing.T) {
	projectRepo := new(projectRepositoryMock)
	progressRepo := new(progressRepositoryMock)

	progressRepo.On("ListByUserProject", mock.Anything, "user@example.com", "proj-1").
		Return([]domain.TaskProgress{pendingApprovalTask("t2", domain.TaskGroupSocial)}, nil).Once()
	progressRepo.On("UpdateDecision", mock.Anything, "proj-1", "user@example.com", "t2",
		domain.TaskStatusPending, (*time.Time)(nil)).Return(nil).Once()

	svc := appservice.NewApprovalService(projectRepo, progressRepo)
	err := svc.Decide(context.Background(), domain.DecisionInput{
		ProjectID: "proj-1",
		UserID:    "user@example.com",
		TaskID:    "t2",
		Action:    domain.DecisionReject,
	})

	require.NoError(t, err)
	progressRepo.AssertExpectations(t)
}

func TestApprovalService_Decide_RejectsUnknownAction(t *testing.T) {
	progressRepo := new(progressRepositoryMock)
	svc := appservice.NewApprovalService(new(projectRepositoryMock), progressRepo)

	err := svc.Decide(context.Background(), domain.DecisionInput{
		ProjectID: "proj-1",
		UserID:    "user@example.com",
		TaskID:    "t1",
		Action:    domain.DecisionAction("escalate"),
	})

	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	require.Equal(t, "action", validation.Field)
	progressRepo.AssertNotCalled(t, "ListByUserProject", mock.Anything, mock.Anything, mock.Anything)
}

func TestApprovalService_Decide_NoProgressRecord(t *testing.T) {
	progressRepo := new(progressRepositoryMock)
	progressRepo.On("ListByUserProject", mock.Anything, "user@example.com", "proj-1").
		Return([]domain.TaskProgress{}, nil).Once()

	svc := appservice.NewApprovalService(new(projectRepositoryMock), progressRepo)
	err := svc.Decide(context.Background(), domain.DecisionInput{
		ProjectID: "proj-1",
		UserID:    "user@example.com",
		TaskID:    "t1",
		Action:    domain.DecisionApprove,
	})

	require.ErrorIs(t, err, domain.ErrProgressNotFound)
	progressRepo.AssertNotCalled(t, "UpdateDecision", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApprovalService_Decide_TaskNeverSubmitted(t *testing.T) {
	progressRepo := new(progressRepositoryMock)
	progressRepo.On("ListByUserProject", mock.Anything, "user@example.com", "proj-1").
		Return([]domain.TaskProgress{pendingApprovalTask("t1", domain.TaskGroupDiscord)}, nil).Once()

	svc := appservice.NewApprovalService(new(projectRepositoryMock), progressRepo)
	err := svc.Decide(context.Background(), domain.DecisionInput{
		ProjectID: "proj-1",
		UserID:    "user@example.com",
		TaskID:    "t2",
		Action:    domain.DecisionApprove,
	})

	require.ErrorIs(t, err, domain.ErrTaskNotInProgress)
	progressRepo.AssertNotCalled(t, "UpdateDecision", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApprovalService_ReviewQueue_JoinsCatalogDetails(t *testing.T) {
	projectRepo := new(projectRepositoryMock)
	progressRepo := new(progressRepositoryMock)

	progressRepo.On("ListAll", mock.Anything).Return([]domain.ProgressRecord{
		{
			UserID:    "alice@example.com",
			ProjectID: "proj-1",
			Tasks: []domain.TaskProgress{
				pendingApprovalTask("t1", domain.TaskGroupDiscord),
				// No catalog entry for this one; it must be dropped.
				pendingApprovalTask("legacy", domain.TaskGroupDiscord),
			},
		},
		{
			UserID:    "bob@example.com",
			ProjectID: "proj-1",
			Tasks:     []domain.TaskProgress{pendingApprovalTask("t2", domain.TaskGroupSocial)},
		},
	}, nil).Once()
	projectRepo.On("GetByID", mock.Anything, "proj-1").Return(sampleProject(), nil).Once()

	svc := appservice.NewApprovalService(projectRepo, progressRepo)
	items, err := svc.ReviewQueue(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)

	require.Equal(t, "alice@example.com", items[0].UserID)
	require.Equal(t, "t1", items[0].TaskID)
	require.Equal(t, "Join the server", items[0].Title)
	require.Equal(t, 5, items[0].Points)
	require.Equal(t, "Genesis Drop", items[0].ProjectName)

	require.Equal(t, "bob@example.com", items[1].UserID)
	require.Equal(t, "t2", items[1].TaskID)
	require.Equal(t, 10, items[1].Points)

	projectRepo.AssertExpectations(t)
}

func TestApprovalService_ReviewQueue_SkipsVanishedProjects(t *testing.T) {
	projectRepo := new(projectRepositoryMock)
	progressRepo := new(progressRepositoryMock)

	progressRepo.On("ListAll", mock.Anything).Return([]domain.ProgressRecord{
		{
			UserID:    "alice@example.com",
			ProjectID: "gone",
			Tasks:     []domain.TaskProgress{pendingApprovalTask("t1", domain.TaskGroupDiscord)},
		},
	}, nil).Once()
	projectRepo.On("GetByID", mock.Anything, "gone").Return(nil, domain.ErrProjectNotFound).Once()

	svc := appservice.NewApprovalService(projectRepo, progressRepo)
	items, err := svc.ReviewQueue(context.Background())

	require.NoError(t, err)
	require.Empty(t, items)
}
