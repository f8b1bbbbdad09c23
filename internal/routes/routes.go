package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/planhub/planhub/internal/handlers"
)

func RegisterRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	orgHandler *handlers.OrganizationHandler,
	workspaceHandler *handlers.WorkspaceHandler,
	workflowHandler *handlers.WorkflowHandler,
	projectHandler *handlers.ProjectHandler,
	sprintHandler *handlers.SprintHandler,
	taskHandler *handlers.TaskHandler,
) {
	api := router.Group("/api/v1")

	authRoutes := NewAuthRoutes(authHandler)
	authRoutes.RegisterRoutes(api)

	orgRoutes := NewOrganizationRoutes(orgHandler, workspaceHandler, workflowHandler)
	orgRoutes.RegisterRoutes(api)

	workspaceRoutes := NewWorkspaceRoutes(workspaceHandler, projectHandler)
	workspaceRoutes.RegisterRoutes(api)

	workflowRoutes := NewWorkflowRoutes(workflowHandler)
	workflowRoutes.RegisterRoutes(api)

	projectRoutes := NewProjectRoutes(projectHandler, sprintHandler, taskHandler)
	projectRoutes.RegisterRoutes(api)

	sprintRoutes := NewSprintRoutes(sprintHandler)
	sprintRoutes.RegisterRoutes(api)

	taskRoutes := NewTaskRoutes(taskHandler)
	taskRoutes.RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
