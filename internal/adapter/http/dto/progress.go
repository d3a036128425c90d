package dto

// JSON field names are camelCase throughout: the dashboard client
// consumes these shapes as-is.

type SubmitTaskRequest struct {
	TaskID     string `json:"taskId" binding:"required"`
	Type       string `json:"type" binding:"required"`
	Submission string `json:"submission" binding:"required"`
}

type DecisionRequest struct {
	TaskID    string `json:"taskId" binding:"required"`
	ProjectID string `json:"projectId" binding:"required"`
	UserID    string `json:"userId" binding:"required"`
	Action    string `json:"action" binding:"required"`
}

type ProjectProgressItem struct {
	Tasks          []TaskDetailItem  `json:"tasks"`
	TotalPoints    int               `json:"totalPoints"`
	CompletedTasks int               `json:"completedTasks"`
	GroupProgress  GroupProgressItem `json:"groupProgress"`
}

type GroupProgressItem struct {
	Discord int `json:"discord"`
	Social  int `json:"social"`
}

type TaskDetailItem struct {
	TaskID      string              `json:"taskId"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Type        string              `json:"type"`
	Points      int                 `json:"points"`
	DueDate     *string             `json:"dueDate,omitempty"`
	Status      string              `json:"status"`
	Submission  *string             `json:"submission,omitempty"`
	CompletedAt *string             `json:"completedAt,omitempty"`
	Subtasks    []SubtaskDetailItem `json:"subtasks,omitempty"`
}

type SubtaskDetailItem struct {
	SubtaskID   string  `json:"subtaskId"`
	Title       string  `json:"title"`
	Required    bool    `json:"required"`
	Completed   bool    `json:"completed"`
	CompletedAt *string `json:"completedAt,omitempty"`
}

// ReviewItem is a TaskDetailItem annotated with its owner, as shown
// in the admin review queue and the cross-project task list.
type ReviewItem struct {
	TaskDetailItem

	ProjectID   string `json:"projectId"`
	ProjectName string `json:"projectName"`
	UserID      string `json:"userId"`
	UserEmail   string `json:"userEmail"`
}
