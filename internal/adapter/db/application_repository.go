package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mooosty/bckndmstr/internal/core/domain"
	"github.com/mooosty/bckndmstr/internal/core/ports"
)

const insertApplicationQuery = `
INSERT INTO applications (id, user_id, project_id, answers, status)
VALUES (?, ?, ?, ?, ?);
`

const getApplicationQuery = `
SELECT a.id, a.user_id, a.project_id, p.name AS project_name, a.answers, a.status, a.created_at, a.updated_at
FROM applications a
LEFT JOIN projects p ON p.id = a.project_id
WHERE a.id = ?;
`

const listApplicationsByUserQuery = `
SELECT a.id, a.user_id, a.project_id, p.name AS project_name, a.answers, a.status, a.created_at, a.updated_at
FROM applications a
LEFT JOIN projects p ON p.id = a.project_id
WHERE a.user_id = ?
ORDER BY a.created_at DESC;
`

const listAllApplicationsQuery = `
SELECT a.id, a.user_id, a.project_id, p.name AS project_name, a.answers, a.status, a.created_at, a.updated_at
FROM applications a
LEFT JOIN projects p ON p.id = a.project_id
ORDER BY a.created_at DESC;
`

const updateApplicationStatusQuery = `
UPDATE applications
SET status = ?, updated_at = NOW(3)
WHERE id = ?;
`

type ApplicationRepository struct {
	db *sqlx.DB
}

type applicationRow struct {
	ID          string         `db:"id"`
	UserID      string         `db:"user_id"`
	ProjectID   string         `db:"project_id"`
	ProjectName sql.NullString `db:"project_name"`
	Answers     string         `db:"answers"`
	Status      string         `db:"status"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.ApplicationRepository = (*ApplicationRepository)(nil)

func NewApplicationRepository(db *sqlx.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, application domain.Application) (domain.Application, error) {
	answers, err := json.Marshal(application.Answers)
	if err != nil {
		return domain.Application{}, err
	}

	_, err = r.db.ExecContext(ctx, insertApplicationQuery,
		application.ID,
		application.UserID,
		application.ProjectID,
		string(answers),
		string(application.Status),
	)
	if err != nil {
		return domain.Application{}, err
	}

	var row applicationRow
	if err := r.db.GetContext(ctx, &row, getApplicationQuery, application.ID); err != nil {
		return domain.Application{}, err
	}

	return mapApplicationRow(row)
}

func (r *ApplicationRepository) ListByUser(ctx context.Context, userID string) ([]domain.Application, error) {
	var rows []applicationRow
	if err := r.db.SelectContext(ctx, &rows, listApplicationsByUserQuery, userID); err != nil {
		return nil, err
	}
	return mapApplicationRows(rows)
}

func (r *ApplicationRepository) ListAll(ctx context.Context) ([]domain.Application, error) {
	var rows []applicationRow
	if err := r.db.SelectContext(ctx, &rows, listAllApplicationsQuery); err != nil {
		return nil, err
	}
	return mapApplicationRows(rows)
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, applicationID string, status domain.ApplicationStatus) error {
	result, err := r.db.ExecContext(ctx, updateApplicationStatusQuery, string(status), applicationID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrApplicationNotFound
	}

	return nil
}

func mapApplicationRows(rows []applicationRow) ([]domain.Application, error) {
	applications := make([]domain.Application, 0, len(rows))
	for _, row := range rows {
		application, err := mapApplicationRow(row)
		if err != nil {
			return nil, err
		}
		applications = append(applications, application)
	}
	return applications, nil
}

func mapApplicationRow(row applicationRow) (domain.Application, error) {
	application := domain.Application{
		ID:        row.ID,
		UserID:    row.UserID,
		ProjectID: row.ProjectID,
		Status:    domain.ApplicationStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.ProjectName.Valid {
		application.ProjectName = row.ProjectName.String
	}

	if row.Answers != "" {
		if err := json.Unmarshal([]byte(row.Answers), &application.Answers); err != nil {
			return domain.Application{}, err
		}
	}

	return application, nil
}
