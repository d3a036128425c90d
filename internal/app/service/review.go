package service

import (
	"context"
	"errors"

	"github.com/mooosty/bckndmstr/internal/core/domain"
	"github.com/mooosty/bckndmstr/internal/core/ports"
)

// collectProjects fetches each distinct project referenced by the
// records. Vanished projects are skipped rather than failing the
// whole listing.
func collectProjects(ctx context.Context, repository ports.ProjectRepository, records []domain.ProgressRecord) (map[string]domain.Project, error) {
	projects := make(map[string]domain.Project)
	for _, record := range records {
		if _, seen := projects[record.ProjectID]; seen {
			continue
		}
		project, err := repository.GetByID(ctx, record.ProjectID)
		if err != nil {
			if errors.Is(err, domain.ErrProjectNotFound) {
				continue
			}
			return nil, err
		}
		projects[record.ProjectID] = project
	}
	return projects, nil
}

// buildReviewItems joins progress records against their project
// catalogs. Progress entries with no matching catalog task are
// dropped.
func buildReviewItems(projects map[string]domain.Project, records []domain.ProgressRecord) []domain.ReviewItem {
	items := make([]domain.ReviewItem, 0, len(records))
	for _, record := range records {
		project, ok := projects[record.ProjectID]
		if !ok {
			continue
		}
		for _, task := range record.Tasks {
			definition, group, ok := project.Tasks.Find(task.TaskID)
			if !ok {
				continue
			}
			items = append(items, domain.ReviewItem{
				TaskProgressDetail: joinTask(definition, group, task, true),
				ProjectID:          record.ProjectID,
				ProjectName:        project.Name,
				UserID:             record.UserID,
			})
		}
	}
	return items
}

// joinTask merges a catalog task definition with a user's progress
// entry. Subtask completion defaults to false when the user has no
// entry for a defined subtask.
func joinTask(definition domain.TaskDefinition, group domain.TaskGroup, progress domain.TaskProgress, submitted bool) domain.TaskProgressDetail {
	detail := domain.TaskProgressDetail{
		TaskID:      definition.ID,
		Title:       definition.Title,
		Description: definition.Description,
		Type:        group,
		Points:      definition.Points,
		DueDate:     definition.DueDate,
		Status:      domain.TaskStatusPending,
	}

	if submitted {
		detail.Status = progress.Status
		detail.Submission = progress.Submission
		detail.CompletedAt = progress.CompletedAt
	}

	if len(definition.Subtasks) > 0 {
		completion := make(map[string]domain.SubtaskProgress, len(progress.Subtasks))
		for _, subtask := range progress.Subtasks {
			completion[subtask.SubtaskID] = subtask
		}

		detail.Subtasks = make([]domain.SubtaskDetail, 0, len(definition.Subtasks))
		for _, subtask := range definition.Subtasks {
			entry := domain.SubtaskDetail{
				SubtaskID: subtask.ID,
				Title:     subtask.Title,
				Required:  subtask.Required,
			}
			if done, ok := completion[subtask.ID]; ok {
				entry.Completed = done.Completed
				entry.CompletedAt = done.CompletedAt
			}
			detail.Subtasks = append(detail.Subtasks, entry)
		}
	}

	return detail
}
