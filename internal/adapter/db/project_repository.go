package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mooosty/bckndmstr/internal/core/domain"
	"github.com/mooosty/bckndmstr/internal/core/ports"
)

const getProjectQuery = `
SELECT id, name, description, status, created_at, updated_at
FROM projects
WHERE id = ?;
`

const listProjectsQuery = `
SELECT id, name, description, status, created_at, updated_at
FROM projects
ORDER BY created_at DESC;
`

const listProjectTasksQuery = `
SELECT project_id, id, task_group, title, description, points, due_date, position
FROM project_tasks
WHERE project_id IN (?)
ORDER BY project_id, task_group, position;
`

const listProjectSubtasksQuery = `
SELECT project_id, task_id, id, title, required, position
FROM project_subtasks
WHERE project_id IN (?)
ORDER BY project_id, task_id, position;
`

type ProjectRepository struct {
	db *sqlx.DB
}

type projectRow struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	Status      string         `db:"status"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type projectTaskRow struct {
	ProjectID   string         `db:"project_id"`
	ID          string         `db:"id"`
	TaskGroup   string         `db:"task_group"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Points      int            `db:"points"`
	DueDate     sql.NullTime   `db:"due_date"`
	Position    int            `db:"position"`
}

type projectSubtaskRow struct {
	ProjectID string `db:"project_id"`
	TaskID    string `db:"task_id"`
	ID        string `db:"id"`
	Title     string `db:"title"`
	Required  bool   `db:"required"`
	Position  int    `db:"position"`
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) GetByID(ctx context.Context, projectID string) (domain.Project, error) {
	var row projectRow
	if err := r.db.GetContext(ctx, &row, getProjectQuery, projectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Project{}, domain.ErrProjectNotFound
		}
		return domain.Project{}, err
	}

	catalogs, err := r.loadCatalogs(ctx, []string{projectID})
	if err != nil {
		return domain.Project{}, err
	}

	return mapProjectRowToDomainProject(row, catalogs[projectID]), nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	var rows []projectRow
	if err := r.db.SelectContext(ctx, &rows, listProjectsQuery); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return []domain.Project{}, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	catalogs, err := r.loadCatalogs(ctx, ids)
	if err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, mapProjectRowToDomainProject(row, catalogs[row.ID]))
	}

	return projects, nil
}

func (r *ProjectRepository) loadCatalogs(ctx context.Context, projectIDs []string) (map[string]domain.TaskCatalog, error) {
	taskQuery, taskArgs, err := sqlx.In(listProjectTasksQuery, projectIDs)
	if err != nil {
		return nil, err
	}
	var taskRows []projectTaskRow
	if err := r.db.SelectContext(ctx, &taskRows, r.db.Rebind(taskQuery), taskArgs...); err != nil {
		return nil, err
	}

	subtaskQuery, subtaskArgs, err := sqlx.In(listProjectSubtasksQuery, projectIDs)
	if err != nil {
		return nil, err
	}
	var subtaskRows []projectSubtaskRow
	if err := r.db.SelectContext(ctx, &subtaskRows, r.db.Rebind(subtaskQuery), subtaskArgs...); err != nil {
		return nil, err
	}

	type taskKey struct {
		projectID string
		taskID    string
	}
	subtasksByTask := make(map[taskKey][]domain.SubtaskDefinition)
	for _, row := range subtaskRows {
		key := taskKey{projectID: row.ProjectID, taskID: row.TaskID}
		subtasksByTask[key] = append(subtasksByTask[key], domain.SubtaskDefinition{
			ID:       row.ID,
			Title:    row.Title,
			Required: row.Required,
		})
	}

	catalogs := make(map[string]domain.TaskCatalog, len(projectIDs))
	for _, row := range taskRows {
		definition := mapTaskRowToDefinition(row)
		definition.Subtasks = subtasksByTask[taskKey{projectID: row.ProjectID, taskID: row.ID}]

		catalog := catalogs[row.ProjectID]
		switch domain.TaskGroup(row.TaskGroup) {
		case domain.TaskGroupDiscord:
			catalog.Discord = append(catalog.Discord, definition)
		case domain.TaskGroupSocial:
			catalog.Social = append(catalog.Social, definition)
		}
		catalogs[row.ProjectID] = catalog
	}

	return catalogs, nil
}

func mapProjectRowToDomainProject(row projectRow, catalog domain.TaskCatalog) domain.Project {
	project := domain.Project{
		ID:        row.ID,
		Name:      row.Name,
		Status:    domain.ProjectStatus(row.Status),
		Tasks:     catalog,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Description.Valid {
		project.Description = row.Description.String
	}
	return project
}

func mapTaskRowToDefinition(row projectTaskRow) domain.TaskDefinition {
	definition := domain.TaskDefinition{
		ID:     row.ID,
		Title:  row.Title,
		Points: row.Points,
	}
	if row.Description.Valid {
		definition.Description = row.Description.String
	}
	if row.DueDate.Valid {
		value := row.DueDate.Time
		definition.DueDate = &value
	}
	return definition
}
