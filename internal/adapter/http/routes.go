package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mooosty/bckndmstr/internal/adapter/http/handlers"
	"github.com/mooosty/bckndmstr/internal/adapter/http/middleware"
)

type Handlers struct {
	Health      *handlers.HealthHandler
	Project     *handlers.ProjectHandler
	Progress    *handlers.ProgressHandler
	Review      *handlers.ReviewHandler
	Application *handlers.ApplicationHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers, adminEmail string) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())

	api.GET("/health", h.Health.CheckHealth)
	api.GET("/health/report", h.Health.CheckHealthReport)

	authenticated := api.Group("")
	authenticated.Use(middleware.IdentityMiddleware(adminEmail))
	{
		authenticated.GET("/projects", h.Project.ListProjects)
		authenticated.GET("/projects/:projectId", h.Project.GetProject)
		authenticated.POST("/projects/:projectId/progress", h.Progress.SubmitTask)
		authenticated.GET("/projects/:projectId/progress", h.Progress.GetProgress)
		authenticated.GET("/tasks", h.Progress.ListTasks)
		authenticated.POST("/applications", h.Application.Apply)
		authenticated.GET("/applications", h.Application.List)
		authenticated.PATCH("/applications/:id", middleware.RequireAdmin(), h.Application.Decide)

		admin := authenticated.Group("/admin")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/task-progress", h.Review.ListReviewQueue)
			admin.POST("/task-progress", h.Review.DecideTask)
		}
	}
}
