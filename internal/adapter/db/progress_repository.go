package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mooosty/bckndmstr/internal/core/domain"
	"github.com/mooosty/bckndmstr/internal/core/ports"
)

const upsertSubmissionQuery = `
INSERT INTO task_progress (user_id, project_id, task_id, type, status, submission, completed_at)
VALUES (?, ?, ?, ?, ?, ?, NULL)
ON DUPLICATE KEY UPDATE
  type = VALUES(type),
  status = VALUES(status),
  submission = VALUES(submission),
  completed_at = NULL;
`

const updateDecisionQuery = `
UPDATE task_progress
SET status = ?, completed_at = ?, updated_at = NOW(3)
WHERE project_id = ? AND user_id = ? AND task_id = ?;
`

const getTaskProgressQuery = `
SELECT user_id, project_id, task_id, type, status, submission, completed_at, created_at, updated_at
FROM task_progress
WHERE user_id = ? AND project_id = ? AND task_id = ?;
`

const listTaskProgressByUserProjectQuery = `
SELECT user_id, project_id, task_id, type, status, submission, completed_at, created_at, updated_at
FROM task_progress
WHERE user_id = ? AND project_id = ?
ORDER BY created_at, task_id;
`

const listTaskProgressByUserQuery = `
SELECT user_id, project_id, task_id, type, status, submission, completed_at, created_at, updated_at
FROM task_progress
WHERE user_id = ?
ORDER BY project_id, created_at, task_id;
`

const listAllTaskProgressQuery = `
SELECT user_id, project_id, task_id, type, status, submission, completed_at, created_at, updated_at
FROM task_progress
ORDER BY user_id, project_id, created_at, task_id;
`

const listSubtaskProgressByUserProjectQuery = `
SELECT user_id, project_id, task_id, subtask_id, completed, completed_at
FROM subtask_progress
WHERE user_id = ? AND project_id = ?
ORDER BY task_id, subtask_id;
`

const listSubtaskProgressByUserQuery = `
SELECT user_id, project_id, task_id, subtask_id, completed, completed_at
FROM subtask_progress
WHERE user_id = ?
ORDER BY project_id, task_id, subtask_id;
`

const listAllSubtaskProgressQuery = `
SELECT user_id, project_id, task_id, subtask_id, completed, completed_at
FROM subtask_progress
ORDER BY user_id, project_id, task_id, subtask_id;
`

type ProgressRepository struct {
	db *sqlx.DB
}

type taskProgressRow struct {
	UserID      string         `db:"user_id"`
	ProjectID   string         `db:"project_id"`
	TaskID      string         `db:"task_id"`
	Type        string         `db:"type"`
	Status      string         `db:"status"`
	Submission  sql.NullString `db:"submission"`
	CompletedAt sql.NullTime   `db:"completed_at"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type subtaskProgressRow struct {
	UserID      string       `db:"user_id"`
	ProjectID   string       `db:"project_id"`
	TaskID      string       `db:"task_id"`
	SubtaskID   string       `db:"subtask_id"`
	Completed   bool         `db:"completed"`
	CompletedAt sql.NullTime `db:"completed_at"`
}

var _ ports.ProgressRepository = (*ProgressRepository)(nil)

func NewProgressRepository(db *sqlx.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

func (r *ProgressRepository) UpsertSubmission(ctx context.Context, userID, projectID string, task domain.TaskProgress) (domain.TaskProgress, error) {
	var submission sql.NullString
	if task.Submission != nil {
		submission = sql.NullString{String: *task.Submission, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, upsertSubmissionQuery,
		userID,
		projectID,
		task.TaskID,
		string(task.Type),
		string(task.Status),
		submission,
	)
	if err != nil {
		return domain.TaskProgress{}, err
	}

	var row taskProgressRow
	if err := r.db.GetContext(ctx, &row, getTaskProgressQuery, userID, projectID, task.TaskID); err != nil {
		return domain.TaskProgress{}, err
	}

	return mapTaskProgressRow(row, nil), nil
}

func (r *ProgressRepository) UpdateDecision(ctx context.Context, projectID, userID, taskID string, status domain.TaskStatus, completedAt *time.Time) error {
	var completed sql.NullTime
	if completedAt != nil {
		completed = sql.NullTime{Time: *completedAt, Valid: true}
	}

	result, err := r.db.ExecContext(ctx, updateDecisionQuery, string(status), completed, projectID, userID, taskID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotInProgress
	}

	return nil
}

func (r *ProgressRepository) ListByUserProject(ctx context.Context, userID, projectID string) ([]domain.TaskProgress, error) {
	var taskRows []taskProgressRow
	if err := r.db.SelectContext(ctx, &taskRows, listTaskProgressByUserProjectQuery, userID, projectID); err != nil {
		return nil, err
	}

	var subtaskRows []subtaskProgressRow
	if err := r.db.SelectContext(ctx, &subtaskRows, listSubtaskProgressByUserProjectQuery, userID, projectID); err != nil {
		return nil, err
	}

	subtasks := groupSubtaskRows(subtaskRows)

	tasks := make([]domain.TaskProgress, 0, len(taskRows))
	for _, row := range taskRows {
		tasks = append(tasks, mapTaskProgressRow(row, subtasks[progressKey(row)]))
	}

	return tasks, nil
}

func (r *ProgressRepository) ListByUser(ctx context.Context, userID string) ([]domain.ProgressRecord, error) {
	var taskRows []taskProgressRow
	if err := r.db.SelectContext(ctx, &taskRows, listTaskProgressByUserQuery, userID); err != nil {
		return nil, err
	}

	var subtaskRows []subtaskProgressRow
	if err := r.db.SelectContext(ctx, &subtaskRows, listSubtaskProgressByUserQuery, userID); err != nil {
		return nil, err
	}

	return groupProgressRows(taskRows, subtaskRows), nil
}

func (r *ProgressRepository) ListAll(ctx context.Context) ([]domain.ProgressRecord, error) {
	var taskRows []taskProgressRow
	if err := r.db.SelectContext(ctx, &taskRows, listAllTaskProgressQuery); err != nil {
		return nil, err
	}

	var subtaskRows []subtaskProgressRow
	if err := r.db.SelectContext(ctx, &subtaskRows, listAllSubtaskProgressQuery); err != nil {
		return nil, err
	}

	return groupProgressRows(taskRows, subtaskRows), nil
}

type progressEntryKey struct {
	userID    string
	projectID string
	taskID    string
}

func progressKey(row taskProgressRow) progressEntryKey {
	return progressEntryKey{userID: row.UserID, projectID: row.ProjectID, taskID: row.TaskID}
}

func groupSubtaskRows(rows []subtaskProgressRow) map[progressEntryKey][]domain.SubtaskProgress {
	grouped := make(map[progressEntryKey][]domain.SubtaskProgress, len(rows))
	for _, row := range rows {
		key := progressEntryKey{userID: row.UserID, projectID: row.ProjectID, taskID: row.TaskID}
		entry := domain.SubtaskProgress{
			SubtaskID: row.SubtaskID,
			Completed: row.Completed,
		}
		if row.CompletedAt.Valid {
			value := row.CompletedAt.Time
			entry.CompletedAt = &value
		}
		grouped[key] = append(grouped[key], entry)
	}
	return grouped
}

// groupProgressRows folds per-task rows into one ProgressRecord per
// (user, project). Rows arrive ordered by user then project.
func groupProgressRows(taskRows []taskProgressRow, subtaskRows []subtaskProgressRow) []domain.ProgressRecord {
	subtasks := groupSubtaskRows(subtaskRows)

	records := make([]domain.ProgressRecord, 0)
	for _, row := range taskRows {
		task := mapTaskProgressRow(row, subtasks[progressKey(row)])

		if n := len(records); n > 0 && records[n-1].UserID == row.UserID && records[n-1].ProjectID == row.ProjectID {
			records[n-1].Tasks = append(records[n-1].Tasks, task)
			continue
		}

		records = append(records, domain.ProgressRecord{
			UserID:    row.UserID,
			ProjectID: row.ProjectID,
			Tasks:     []domain.TaskProgress{task},
		})
	}

	return records
}

func mapTaskProgressRow(row taskProgressRow, subtasks []domain.SubtaskProgress) domain.TaskProgress {
	task := domain.TaskProgress{
		TaskID:    row.TaskID,
		Type:      domain.TaskGroup(row.Type),
		Status:    domain.TaskStatus(row.Status),
		Subtasks:  subtasks,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Submission.Valid {
		value := row.Submission.String
		task.Submission = &value
	}

	if row.CompletedAt.Valid {
		value := row.CompletedAt.Time
		task.CompletedAt = &value
	}

	return task
}
