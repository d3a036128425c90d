package service

import (
	"context"
	"math"

	"github.com/mooosty/bckndmstr/internal/core/domain"
	"github.com/mooosty/bckndmstr/internal/core/ports"
)

type ProgressAggregator struct {
	projectRepository  ports.ProjectRepository
	progressRepository ports.ProgressRepository
}

func NewProgressAggregator(projectRepository ports.ProjectRepository, progressRepository ports.ProgressRepository) *ProgressAggregator {
	return &ProgressAggregator{
		projectRepository:  projectRepository,
		progressRepository: progressRepository,
	}
}

// Aggregate joins a project's full catalog against one user's
// progress entries. Tasks the user never touched show as pending;
// progress entries whose catalog task no longer exists are dropped.
//
// TotalPoints only counts approved tasks. CompletedTasks and the
// group percentages count submitted-but-unapproved tasks too, so a
// user sees their submission reflected before an admin signs off.
func (a *ProgressAggregator) Aggregate(ctx context.Context, userID, projectID string) (domain.ProjectProgress, error) {
	project, err := a.projectRepository.GetByID(ctx, projectID)
	if err != nil {
		return domain.ProjectProgress{}, err
	}

	tasks, err := a.progressRepository.ListByUserProject(ctx, userID, projectID)
	if err != nil {
		return domain.ProjectProgress{}, err
	}

	progressByTask := make(map[string]domain.TaskProgress, len(tasks))
	for _, task := range tasks {
		progressByTask[task.TaskID] = task
	}

	summary := domain.ProjectProgress{
		Tasks: make([]domain.TaskProgressDetail, 0, len(project.Tasks.Discord)+len(project.Tasks.Social)),
	}

	discordSubmitted := a.joinGroup(&summary, project.Tasks.Discord, domain.TaskGroupDiscord, progressByTask)
	socialSubmitted := a.joinGroup(&summary, project.Tasks.Social, domain.TaskGroupSocial, progressByTask)

	summary.GroupProgress = domain.GroupProgress{
		Discord: percentage(discordSubmitted, len(project.Tasks.Discord)),
		Social:  percentage(socialSubmitted, len(project.Tasks.Social)),
	}

	return summary, nil
}

func (a *ProgressAggregator) joinGroup(summary *domain.ProjectProgress, definitions []domain.TaskDefinition, group domain.TaskGroup, progressByTask map[string]domain.TaskProgress) int {
	submitted := 0
	for _, definition := range definitions {
		progress, ok := progressByTask[definition.ID]
		detail := joinTask(definition, group, progress, ok)
		summary.Tasks = append(summary.Tasks, detail)

		if detail.Status == domain.TaskStatusCompleted {
			summary.TotalPoints += definition.Points
		}
		if detail.Status == domain.TaskStatusCompleted || detail.Status == domain.TaskStatusPendingApproval {
			summary.CompletedTasks++
			submitted++
		}
	}
	return submitted
}

// UserTasks flattens a user's progress across all projects, joined
// with catalog task details, for the dashboard task list.
func (a *ProgressAggregator) UserTasks(ctx context.Context, userID string) ([]domain.ReviewItem, error) {
	records, err := a.progressRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	projects, err := collectProjects(ctx, a.projectRepository, records)
	if err != nil {
		return nil, err
	}

	return buildReviewItems(projects, records), nil
}

func percentage(submitted, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(submitted) / float64(total)))
}

var _ ports.ProgressAggregator = (*ProgressAggregator)(nil)
