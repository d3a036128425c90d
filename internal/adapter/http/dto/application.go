package dto

type ApplyRequest struct {
	ProjectID string            `json:"projectId" binding:"required"`
	Answers   map[string]string `json:"answers" binding:"required"`
}

type ApplicationDecisionRequest struct {
	Status string `json:"status" binding:"required"`
}

type ApplicationItem struct {
	ID          string            `json:"id"`
	UserID      string            `json:"userId"`
	ProjectID   string            `json:"projectId"`
	ProjectName string            `json:"projectTitle,omitempty"`
	Answers     map[string]string `json:"answers"`
	Status      string            `json:"status"`
	CreatedAt   string            `json:"createdAt"`
	UpdatedAt   string            `json:"updatedAt"`
}
