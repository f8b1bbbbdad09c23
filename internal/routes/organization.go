package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/planhub/planhub/internal/handlers"
	"github.com/planhub/planhub/internal/middlewares"
)

type OrganizationRoutes struct {
	orgHandler       *handlers.OrganizationHandler
	workspaceHandler *handlers.WorkspaceHandler
	workflowHandler  *handlers.WorkflowHandler
}

func NewOrganizationRoutes(
	orgHandler *handlers.OrganizationHandler,
	workspaceHandler *handlers.WorkspaceHandler,
	workflowHandler *handlers.WorkflowHandler,
) *OrganizationRoutes {
	return &OrganizationRoutes{
		orgHandler:       orgHandler,
		workspaceHandler: workspaceHandler,
		workflowHandler:  workflowHandler,
	}
}

func (r *OrganizationRoutes) RegisterRoutes(router *gin.RouterGroup) {
	orgs := router.Group("/organizations")
	orgs.Use(middlewares.Authenticate)
	{
		orgs.POST("", r.orgHandler.Create)
		orgs.GET("", r.orgHandler.List)
		orgs.GET("/:orgId", r.orgHandler.Get)
		orgs.PATCH("/:orgId", r.orgHandler.Update)
		orgs.DELETE("/:orgId", r.orgHandler.Delete)

		orgs.POST("/:orgId/members", r.orgHandler.AddMember)
		orgs.GET("/:orgId/members", r.orgHandler.ListMembers)
		orgs.DELETE("/:orgId/members/:userId", r.orgHandler.RemoveMember)

		orgs.POST("/:orgId/workspaces", r.workspaceHandler.Create)
		orgs.GET("/:orgId/workspaces", r.workspaceHandler.List)

		orgs.POST("/:orgId/workflows", r.workflowHandler.Create)
		orgs.GET("/:orgId/workflows", r.workflowHandler.List)
	}
}
