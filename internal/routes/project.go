package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/planhub/planhub/internal/handlers"
	"github.com/planhub/planhub/internal/middlewares"
)

type ProjectRoutes struct {
	projectHandler *handlers.ProjectHandler
	sprintHandler  *handlers.SprintHandler
	taskHandler    *handlers.TaskHandler
}

func NewProjectRoutes(
	projectHandler *handlers.ProjectHandler,
	sprintHandler *handlers.SprintHandler,
	taskHandler *handlers.TaskHandler,
) *ProjectRoutes {
	return &ProjectRoutes{
		projectHandler: projectHandler,
		sprintHandler:  sprintHandler,
		taskHandler:    taskHandler,
	}
}

func (r *ProjectRoutes) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	projects.Use(middlewares.Authenticate)
	{
		projects.GET("/:projectId", r.projectHandler.Get)
		projects.PATCH("/:projectId", r.projectHandler.Update)
		projects.DELETE("/:projectId", r.projectHandler.Delete)
		projects.GET("/:projectId/board", r.projectHandler.GetBoard)

		projects.POST("/:projectId/labels", r.projectHandler.CreateLabel)
		projects.GET("/:projectId/labels", r.projectHandler.ListLabels)
		projects.DELETE("/:projectId/labels/:labelId", r.projectHandler.DeleteLabel)

		projects.POST("/:projectId/sprints", r.sprintHandler.Create)
		projects.GET("/:projectId/sprints", r.sprintHandler.List)

		projects.POST("/:projectId/tasks", r.taskHandler.Create)
		projects.GET("/:projectId/tasks", r.taskHandler.List)
	}
}
