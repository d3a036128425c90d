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

// ReviewHandler serves the admin review queue.
type ReviewHandler struct {
	approvalService ports.ApprovalService
}

func NewReviewHandler(approvalService ports.ApprovalService) *ReviewHandler {
	return &ReviewHandler{approvalService: approvalService}
}

// ListReviewQueue answers every submitted progress entry across all
// users, joined with project and catalog task details.
func (h *ReviewHandler) ListReviewQueue(c *gin.Context) {
	lang := middleware.GetLang(c)

	items, err := h.approvalService.ReviewQueue(c.Request.Context())
	if err != nil {
		respondDomainError(c, lang, err, apierrors.MsgFailFetchProgress)
		return
	}

	c.JSON(http.StatusOK, response.OK(mapper.ToReviewItems(items)))
}

// DecideTask applies an approve or reject decision to a submitted
// task.
func (h *ReviewHandler) DecideTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidPayload, lang))
		return
	}

	input, err := validation.BuildDecisionInput(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidPayload, lang))
		return
	}

	if err := h.approvalService.Decide(c.Request.Context(), input); err != nil {
		respondDomainError(c, lang, err, apierrors.MsgFailUpdateProgress)
		return
	}

	message := "Task rejected successfully"
	if input.Action == domain.DecisionApprove {
		message = "Task approved successfully"
	}
	c.JSON(http.StatusOK, response.Message(message))
}
