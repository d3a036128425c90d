package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mooosty/bckndmstr/internal/adapter/http/dto"
	"github.com/mooosty/bckndmstr/internal/adapter/http/mapper"
	"github.com/mooosty/bckndmstr/internal/adapter/http/middleware"
	"github.com/mooosty/bckndmstr/internal/adapter/http/validation"
	"github.com/mooosty/bckndmstr/internal/core/domain"
	"github.com/mooosty/bckndmstr/internal/core/ports"
	"github.com/mooosty/bckndmstr/pkg/apierrors"
	"github.com/mooosty/bckndmstr/pkg/response"
)

type ProgressHandler struct {
	submissionService  ports.SubmissionService
	progressAggregator ports.ProgressAggregator
	approvalService    ports.ApprovalService
}

func NewProgressHandler(submissionService ports.SubmissionService, progressAggregator ports.ProgressAggregator, approvalService ports.ApprovalService) *ProgressHandler {
	return &ProgressHandler{
		submissionService:  submissionService,
		progressAggregator: progressAggregator,
		approvalService:    approvalService,
	}
}

// SubmitTask records the caller's evidence for a catalog task and
// answers with the refreshed progress summary.
func (h *ProgressHandler) SubmitTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	identity := middleware.GetIdentity(c)
	projectID := c.Param("projectId")

	var req dto.SubmitTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidPayload, lang))
		return
	}

	input, err := validation.BuildSubmitTaskInput(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidPayload, lang))
		return
	}

	ctx := c.Request.Context()
	if _, err := h.submissionService.Submit(ctx, identity.UserID, projectID, input); err != nil {
		respondDomainError(c, lang, err, apierrors.MsgFailSubmitTask)
		return
	}

	summary, err := h.progressAggregator.Aggregate(ctx, identity.UserID, projectID)
	if err != nil {
		respondDomainError(c, lang, err, apierrors.MsgFailFetchProgress)
		return
	}

	c.JSON(http.StatusOK, response.OK(mapper.ToProjectProgressItem(summary)))
}

// GetProgress answers the caller's progress summary for one project.
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	lang := middleware.GetLang(c)
	identity := middleware.GetIdentity(c)
	projectID := c.Param("projectId")

	summary, err := h.progressAggregator.Aggregate(c.Request.Context(), identity.UserID, projectID)
	if err != nil {
		respondDomainError(c, lang, err, apierrors.MsgFailFetchProgress)
		return
	}

	c.JSON(http.StatusOK, response.OK(mapper.ToProjectProgressItem(summary)))
}

// ListTasks answers the caller's flat task list across projects.
// Admins see every user's submissions instead of their own.
func (h *ProgressHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)
	identity := middleware.GetIdentity(c)
	ctx := c.Request.Context()

	var (
		items []domain.ReviewItem
		err   error
	)
	if identity.IsAdmin {
		items, err = h.approvalService.ReviewQueue(ctx)
	} else {
		items, err = h.progressAggregator.UserTasks(ctx, identity.UserID)
	}
	if err != nil {
		respondDomainError(c, lang, err, apierrors.MsgFailFetchTasks)
		return
	}

	c.JSON(http.StatusOK, response.OK(mapper.ToReviewItems(items)))
}
