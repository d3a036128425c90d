package mapper

import (
	"time"

	"github.com/mooosty/bckndmstr/internal/adapter/http/dto"
	"github.com/mooosty/bckndmstr/internal/core/domain"
)

func ToProjectProgressItem(progress domain.ProjectProgress) dto.ProjectProgressItem {
	tasks := make([]dto.TaskDetailItem, 0, len(progress.Tasks))
	for _, task := range progress.Tasks {
		tasks = append(tasks, ToTaskDetailItem(task))
	}

	return dto.ProjectProgressItem{
		Tasks:          tasks,
		TotalPoints:    progress.TotalPoints,
		CompletedTasks: progress.CompletedTasks,
		GroupProgress: dto.GroupProgressItem{
			Discord: progress.GroupProgress.Discord,
			Social:  progress.GroupProgress.Social,
		},
	}
}

func ToTaskDetailItem(detail domain.TaskProgressDetail) dto.TaskDetailItem {
	item := dto.TaskDetailItem{
		TaskID:      detail.TaskID,
		Title:       detail.Title,
		Description: detail.Description,
		Type:        string(detail.Type),
		Points:      detail.Points,
		Status:      string(detail.Status),
		Submission:  detail.Submission,
	}

	if detail.DueDate != nil {
		value := detail.DueDate.Format("2006-01-02")
		item.DueDate = &value
	}

	if detail.CompletedAt != nil {
		value := detail.CompletedAt.Format(time.RFC3339)
		item.CompletedAt = &value
	}

	if len(detail.Subtasks) > 0 {
		item.Subtasks = make([]dto.SubtaskDetailItem, 0, len(detail.Subtasks))
		for _, subtask := range detail.Subtasks {
			item.Subtasks = append(item.Subtasks, toSubtaskDetailItem(subtask))
		}
	}

	return item
}

func toSubtaskDetailItem(subtask domain.SubtaskDetail) dto.SubtaskDetailItem {
	item := dto.SubtaskDetailItem{
		SubtaskID: subtask.SubtaskID,
		Title:     subtask.Title,
		Required:  subtask.Required,
		Completed: subtask.Completed,
	}
	if subtask.CompletedAt != nil {
		value := subtask.CompletedAt.Format(time.RFC3339)
		item.CompletedAt = &value
	}
	return item
}

func ToReviewItems(items []domain.ReviewItem) []dto.ReviewItem {
	result := make([]dto.ReviewItem, 0, len(items))
	for _, item := range items {
		result = append(result, dto.ReviewItem{
			TaskDetailItem: ToTaskDetailItem(item.TaskProgressDetail),
			ProjectID:      item.ProjectID,
			ProjectName:    item.ProjectName,
			UserID:         item.UserID,
			UserEmail:      item.UserID,
		})
	}
	return result
}
