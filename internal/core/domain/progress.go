package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending         TaskStatus = "pending"
	TaskStatusPendingApproval TaskStatus = "pending_approval"
	TaskStatusCompleted       TaskStatus = "completed"
)

// TaskProgress is one user's state for a single catalog task.
type TaskProgress struct {
	TaskID      string
	Type        TaskGroup
	Status      TaskStatus
	Submission  *string
	CompletedAt *time.Time
	Subtasks    []SubtaskProgress
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type SubtaskProgress struct {
	SubtaskID   string
	Completed   bool
	CompletedAt *time.Time
}

// ProgressRecord groups a user's task progress for one project.
type ProgressRecord struct {
	UserID    string
	ProjectID string
	Tasks     []TaskProgress
}

type SubmitTaskInput struct {
	TaskID     string
	Type       TaskGroup
	Submission string
}

type DecisionAction string

const (
	DecisionApprove DecisionAction = "approve"
	DecisionReject  DecisionAction = "reject"
)

type DecisionInput struct {
	ProjectID string
	UserID    string
	TaskID    string
	Action    DecisionAction
}

// ProjectProgress is the read-side summary of a user's progress on a
// project: the full catalog joined against the user's progress entries.
type ProjectProgress struct {
	Tasks          []TaskProgressDetail
	TotalPoints    int
	CompletedTasks int
	GroupProgress  GroupProgress
}

// GroupProgress holds per-group completion percentages, 0-100.
type GroupProgress struct {
	Discord int
	Social  int
}

// TaskProgressDetail is a catalog task definition joined with the
// user's progress for it. Tasks never submitted show up as pending.
type TaskProgressDetail struct {
	TaskID      string
	Title       string
	Description string
	Type        TaskGroup
	Points      int
	DueDate     *time.Time
	Status      TaskStatus
	Submission  *string
	CompletedAt *time.Time
	Subtasks    []SubtaskDetail
}

type SubtaskDetail struct {
	SubtaskID   string
	Title       string
	Required    bool
	Completed   bool
	CompletedAt *time.Time
}

// ReviewItem is a TaskProgressDetail annotated with the owning user
// and project, as listed in the admin review queue.
type ReviewItem struct {
	TaskProgressDetail

	ProjectID   string
	ProjectName string
	UserID      string
}
