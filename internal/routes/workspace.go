package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/planhub/planhub/internal/handlers"
	"github.com/planhub/planhub/internal/middlewares"
)

type WorkspaceRoutes struct {
	workspaceHandler *handlers.WorkspaceHandler
	projectHandler   *handlers.ProjectHandler
}

func NewWorkspaceRoutes(
	workspaceHandler *handlers.WorkspaceHandler,
	projectHandler *handlers.ProjectHandler,
) *WorkspaceRoutes {
	return &WorkspaceRoutes{
		workspaceHandler: workspaceHandler,
		projectHandler:   projectHandler,
	}
}

func (r *WorkspaceRoutes) RegisterRoutes(router *gin.RouterGroup) {
	workspaces := router.Group("/workspaces")
	workspaces.Use(middlewares.Authenticate)
	{
		workspaces.GET("/:workspaceId", r.workspaceHandler.Get)
		workspaces.PATCH("/:workspaceId", r.workspaceHandler.Update)
		workspaces.DELETE("/:workspaceId", r.workspaceHandler.Delete)

		workspaces.POST("/:workspaceId/members", r.workspaceHandler.AddMember)
		workspaces.GET("/:workspaceId/members", r.workspaceHandler.ListMembers)

		workspaces.POST("/:workspaceId/projects", r.projectHandler.Create)
		workspaces.GET("/:workspaceId/projects", r.projectHandler.List)
	}
}
