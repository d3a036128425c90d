package dto

type ProjectItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Status      string          `json:"status"`
	Tasks       TaskCatalogItem `json:"tasks"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

type TaskCatalogItem struct {
	Discord []TaskDefinitionItem `json:"discord"`
	Social  []TaskDefinitionItem `json:"social"`
}

type TaskDefinitionItem struct {
	ID          string                  `json:"id"`
	Title       string                  `json:"title"`
	Description string                  `json:"description,omitempty"`
	Points      int                     `json:"points"`
	DueDate     *string                 `json:"dueDate,omitempty"`
	Subtasks    []SubtaskDefinitionItem `json:"subtasks,omitempty"`
}

type SubtaskDefinitionItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Required bool   `json:"required"`
}
