package domain

import "time"

type ProjectStatus string

const (
	ProjectStatusComingSoon ProjectStatus = "COMING_SOON"
	ProjectStatusOpen       ProjectStatus = "OPEN"
	ProjectStatusInProgress ProjectStatus = "IN_PROGRESS"
	ProjectStatusCompleted  ProjectStatus = "COMPLETED"
)

// TaskGroup names one of the two catalog groups a task belongs to.
type TaskGroup string

const (
	TaskGroupDiscord TaskGroup = "discord"
	TaskGroupSocial  TaskGroup = "social"
)

func (g TaskGroup) Valid() bool {
	return g == TaskGroupDiscord || g == TaskGroupSocial
}

type Project struct {
	ID          string
	Name        string
	Description string
	Status      ProjectStatus
	Tasks       TaskCatalog
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskCatalog is the admin-authored task definitions of a project,
// split into the discord and social groups.
type TaskCatalog struct {
	Discord []TaskDefinition
	Social  []TaskDefinition
}

func (c TaskCatalog) Group(group TaskGroup) []TaskDefinition {
	switch group {
	case TaskGroupDiscord:
		return c.Discord
	case TaskGroupSocial:
		return c.Social
	}
	return nil
}

// Find looks a task up across both groups.
func (c TaskCatalog) Find(taskID string) (TaskDefinition, TaskGroup, bool) {
	for _, task := range c.Discord {
		if task.ID == taskID {
			return task, TaskGroupDiscord, true
		}
	}
	for _, task := range c.Social {
		if task.ID == taskID {
			return task, TaskGroupSocial, true
		}
	}
	return TaskDefinition{}, "", false
}

func (c TaskCatalog) FindInGroup(group TaskGroup, taskID string) (TaskDefinition, bool) {
	for _, task := range c.Group(group) {
		if task.ID == taskID {
			return task, true
		}
	}
	return TaskDefinition{}, false
}

type TaskDefinition struct {
	ID          string
	Title       string
	Description string
	Points      int
	DueDate     *time.Time
	Subtasks    []SubtaskDefinition
}

type SubtaskDefinition struct {
	ID       string
	Title    string
	Required bool
}
