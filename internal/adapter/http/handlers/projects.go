package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mooosty/bckndmstr/internal/adapter/http/mapper"
	"github.com/mooosty/bckndmstr/internal/adapter/http/middleware"
	"github.com/mooosty/bckndmstr/internal/core/ports"
	"github.com/mooosty/bckndmstr/pkg/apierrors"
	"github.com/mooosty/bckndmstr/pkg/response"
)

type ProjectHandler struct {
	projectService ports.ProjectService
}

func NewProjectHandler(projectService ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	lang := middleware.GetLang(c)

	projects, err := h.projectService.List(c.Request.Context())
	if err != nil {
		respondDomainError(c, lang, err, apierrors.MsgFailListProjects)
		return
	}

	c.JSON(http.StatusOK, response.OK(mapper.ToProjectItems(projects)))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	lang := middleware.GetLang(c)
	projectID := c.Param("projectId")

	project, err := h.projectService.GetByID(c.Request.Context(), projectID)
	if err != nil {
		respondDomainError(c, lang, err, apierrors.MsgFailFetchProject)
		return
	}

	c.JSON(http.StatusOK, response.OK(mapper.ToProjectItem(project)))
}
