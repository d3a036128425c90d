package domain

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusAccepted ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

// Application is a user's request to join a project.
type Application struct {
	ID          string
	UserID      string
	ProjectID   string
	ProjectName string
	Answers     map[string]string
	Status      ApplicationStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ApplyInput struct {
	ProjectID string
	Answers   map[string]string
}
