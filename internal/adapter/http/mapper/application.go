package mapper

import (
	"time"

	"github.com/mooosty/bckndmstr/internal/adapter/http/dto"
	"github.com/mooosty/bckndmstr/internal/core/domain"
)

func ToApplicationItems(applications []domain.Application) []dto.ApplicationItem {
	items := make([]dto.ApplicationItem, 0, len(applications))
	for _, application := range applications {
		items = append(items, ToApplicationItem(application))
	}
	return items
}

func ToApplicationItem(application domain.Application) dto.ApplicationItem {
	return dto.ApplicationItem{
		ID:          application.ID,
		UserID:      application.UserID,
		ProjectID:   application.ProjectID,
		ProjectName: application.ProjectName,
		Answers:     application.Answers,
		Status:      string(application.Status),
		CreatedAt:   application.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   application.UpdatedAt.Format(time.RFC3339),
	}
}
