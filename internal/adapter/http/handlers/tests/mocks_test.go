package tests

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mooosty/bckndmstr/internal/core/domain"
)

const (
	adminEmail = "admin@darknightlabs.com"
	userEmail  = "user@example.com"
)

type submissionServiceMock struct {
	mock.Mock
}

func (m *submissionServiceMock) Submit(ctx context.Context, userID, projectID string, input domain.SubmitTaskInput) (domain.TaskProgress, error) {
	args := m.Called(ctx, userID, projectID, input)

	var task domain.TaskProgress
	if value := args.Get(0); value != nil {
		task = value.(domain.TaskProgress)
	}
	return task, args.Error(1)
}

type progressAggregatorMock struct {
	mock.Mock
}

func (m *progressAggregatorMock) Aggregate(ctx context.Context, userID, projectID string) (domain.ProjectProgress, error) {
	args := m.Called(ctx, userID, projectID)

	var summary domain.ProjectProgress
	if value := args.Get(0); value != nil {
		summary = value.(domain.ProjectProgress)
	}
	return summary, args.Error(1)
}

func (m *progressAggregatorMock) UserTasks(ctx context.Context, userID string) ([]domain.ReviewItem, error) {
	args := m.Called(ctx, userID)

	var items []domain.ReviewItem
	if value := args.Get(0); value != nil {
		items = value.([]domain.ReviewItem)
	}
	return items, args.Error(1)
}

type approvalServiceMock struct {
	mock.Mock
}

func (m *approvalServiceMock) Decide(ctx context.Context, input domain.DecisionInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *approvalServiceMock) ReviewQueue(ctx context.Context) ([]domain.ReviewItem, error) {
	args := m.Called(ctx)

	var items []domain.ReviewItem
	if value := args.Get(0); value != nil {
		items = value.([]domain.ReviewItem)
	}
	return items, args.Error(1)
}

type applicationServiceMock struct {
	mock.Mock
}

func (m *applicationServiceMock) Apply(ctx context.Context, userID string, input domain.ApplyInput) (domain.Application, error) {
	args := m.Called(ctx, userID, input)

	var application domain.Application
	if value := args.Get(0); value != nil {
		application = value.(domain.Application)
	}
	return application, args.Error(1)
}

func (m *applicationServiceMock) List(ctx context.Context, identity domain.Identity) ([]domain.Application, error) {
	args := m.Called(ctx, identity)

	var applications []domain.Application
	if value := args.Get(0); value != nil {
		applications = value.([]domain.Application)
	}
	return applications, args.Error(1)
}

func (m *applicationServiceMock) Decide(ctx context.Context, applicationID string, status domain.ApplicationStatus) error {
	args := m.Called(ctx, applicationID, status)
	return args.Error(0)
}

type projectServiceMock struct {
	mock.Mock
}

func (m *projectServiceMock) GetByID(ctx context.Context, projectID string) (domain.Project, error) {
	args := m.Called(ctx, projectID)

	var project domain.Project
	if value := args.Get(0); value != nil {
		project = value.(domain.Project)
	}
	return project, args.Error(1)
}

func (m *projectServiceMock) List(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Error(1)
}
