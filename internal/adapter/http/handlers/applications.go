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

type ApplicationHandler struct {
	applicationService ports.ApplicationService
}

func NewApplicationHandler(applicationService ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// Apply files the caller's application to a project.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	lang := middleware.GetLang(c)
	identity := middleware.GetIdentity(c)

	var req dto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidPayload, lang))
		return
	}

	application, err := h.applicationService.Apply(c.Request.Context(), identity.UserID, domain.ApplyInput{
		ProjectID: req.ProjectID,
		Answers:   req.Answers,
	})
	if err != nil {
		respondDomainError(c, lang, err, apierrors.MsgFailSubmitApp)
		return
	}

	c.JSON(http.StatusCreated, response.MessageWithData("Application submitted successfully", mapper.ToApplicationItem(application)))
}

// List answers the caller's applications; admins get everyone's.
func (h *ApplicationHandler) List(c *gin.Context) {
	lang := middleware.GetLang(c)
	identity := middleware.GetIdentity(c)

	applications, err := h.applicationService.List(c.Request.Context(), identity)
	if err != nil {
		respondDomainError(c, lang, err, apierrors.MsgFailFetchApps)
		return
	}

	c.JSON(http.StatusOK, response.OK(mapper.ToApplicationItems(applications)))
}

// Decide records an admin accept/reject decision on an application.
func (h *ApplicationHandler) Decide(c *gin.Context) {
	lang := middleware.GetLang(c)
	applicationID := c.Param("id")

	var req dto.ApplicationDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidPayload, lang))
		return
	}

	status, err := validation.ParseApplicationStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidPayload, lang))
		return
	}

	if err := h.applicationService.Decide(c.Request.Context(), applicationID, status); err != nil {
		respondDomainError(c, lang, err, apierrors.MsgFailUpdateApp)
		return
	}

	c.JSON(http.StatusOK, response.Message("Application updated successfully"))
}
