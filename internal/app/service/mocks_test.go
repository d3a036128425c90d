package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/mooosty/bckndmstr/internal/core/domain"
)

type projectRepositoryMock struct {
	mock.Mock
}

func (m *projectRepositoryMock) GetByID(ctx context.Context, projectID string) (domain.Project, error) {
	args := m.Called(ctx, projectID)

	var project domain.Project
	if value := args.Get(0); value != nil {
		project = value.(domain.Project)
	}
	return project, args.Error(1)
}

func (m *projectRepositoryMock) List(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Error(1)
}

type progressRepositoryMock struct {
	mock.Mock
}

func (m *progressRepositoryMock) UpsertSubmission(ctx context.Context, userID, projectID string, task domain.TaskProgress) (domain.TaskProgress, error) {
	args := m.Called(ctx, userID, projectID, task)

	var stored domain.TaskProgress
	if value := args.Get(0); value != nil {
		stored = value.(domain.TaskProgress)
	}
	return stored, args.Error(1)
}

func (m *progressRepositoryMock) UpdateDecision(ctx context.Context, projectID, userID, taskID string, status domain.TaskStatus, completedAt *time.Time) error {
	args := m.Called(ctx, projectID, userID, taskID, status, completedAt)
	return args.Error(0)
}

func (m *progressRepositoryMock) ListByUserProject(ctx context.Context, userID, projectID string) ([]domain.TaskProgress, error) {
	args := m.Called(ctx, userID, projectID)

	var tasks []domain.TaskProgress
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.TaskProgress)
	}
	return tasks, args.Error(1)
}

func (m *progressRepositoryMock) ListByUser(ctx context.Context, userID string) ([]domain.ProgressRecord, error) {
	args := m.Called(ctx, userID)

	var records []domain.ProgressRecord
	if value := args.Get(0); value != nil {
		records = value.([]domain.ProgressRecord)
	}
	return records, args.Error(1)
}

func (m *progressRepositoryMock) ListAll(ctx context.Context) ([]domain.ProgressRecord, error) {
	args := m.Called(ctx)

	var records []domain.ProgressRecord
	if value := args.Get(0); value != nil {
		records = value.([]domain.ProgressRecord)
	}
	return records, args.Error(1)
}

type applicationRepositoryMock struct {
	mock.Mock
}

func (m *applicationRepositoryMock) Create(ctx context.Context, application domain.Application) (domain.Application, error) {
	args := m.Called(ctx, application)

	var stored domain.Application
	if value := args.Get(0); value != nil {
		stored = value.(domain.Application)
	}
	return stored, args.Error(1)
}

func (m *applicationRepositoryMock) ListByUser(ctx context.Context, userID string) ([]domain.Application, error) {
	args := m.Called(ctx, userID)

	var applications []domain.Application
	if value := args.Get(0); value != nil {
		applications = value.([]domain.Application)
	}
	return applications, args.Error(1)
}

func (m *applicationRepositoryMock) ListAll(ctx context.Context) ([]domain.Application, error) {
	args := m.Called(ctx)

	var applications []domain.Application
	if value := args.Get(0); value != nil {
		applications = value.([]domain.Application)
	}
	return applications, args.Error(1)
}

func (m *applicationRepositoryMock) UpdateStatus(ctx context.Context, applicationID string, status domain.ApplicationStatus) error {
	args := m.Called(ctx, applicationID, status)
	return args.Error(0)
}

// sampleProject is the fixture used across service tests: one
// 5-point discord task and one 10-point social task.
func sampleProject() domain.Project {
	return domain.Project{
		ID:     "proj-1",
		Name:   "Genesis Drop",
		Status: domain.ProjectStatusOpen,
		Tasks: domain.TaskCatalog{
			Discord: []domain.TaskDefinition{
				{ID: "t1", Title: "Join the server", Points: 5},
			},
			Social: []domain.TaskDefinition{
				{ID: "t2", Title: "Share the launch post", Points: 10},
			},
		},
	}
}

func strptr(value string) *string {
	return &value
}
