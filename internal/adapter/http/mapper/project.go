package mapper

import (
	"time"

	"github.com/mooosty/bckndmstr/internal/adapter/http/dto"
	"github.com/mooosty/bckndmstr/internal/core/domain"
)

func ToProjectItems(projects []domain.Project) []dto.ProjectItem {
	items := make([]dto.ProjectItem, 0, len(projects))
	for _, project := range projects {
		items = append(items, ToProjectItem(project))
	}
	return items
}

func ToProjectItem(project domain.Project) dto.ProjectItem {
	return dto.ProjectItem{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Status:      string(project.Status),
		Tasks: dto.TaskCatalogItem{
			Discord: toTaskDefinitionItems(project.Tasks.Discord),
			Social:  toTaskDefinitionItems(project.Tasks.Social),
		},
		CreatedAt: project.CreatedAt.Format(time.RFC3339),
		UpdatedAt: project.UpdatedAt.Format(time.RFC3339),
	}
}

func toTaskDefinitionItems(definitions []domain.TaskDefinition) []dto.TaskDefinitionItem {
	items := make([]dto.TaskDefinitionItem, 0, len(definitions))
	for _, definition := range definitions {
		item := dto.TaskDefinitionItem{
			ID:          definition.ID,
			Title:       definition.Title,
			Description: definition.Description,
			Points:      definition.Points,
		}
		if definition.DueDate != nil {
			value := definition.DueDate.Format("2006-01-02")
			item.DueDate = &value
		}
		for _, subtask := range definition.Subtasks {
			item.Subtasks = append(item.Subtasks, dto.SubtaskDefinitionItem{
				ID:       subtask.ID,
				Title:    subtask.Title,
				Required: subtask.Required,
			})
		}
		items = append(items, item)
	}
	return items
}
