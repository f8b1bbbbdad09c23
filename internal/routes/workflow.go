package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/planhub/planhub/internal/handlers"
	"github.com/planhub/planhub/internal/middlewares"
)

type WorkflowRoutes struct {
	handler *handlers.WorkflowHandler
}

func NewWorkflowRoutes(handler *handlers.WorkflowHandler) *WorkflowRoutes {
	return &WorkflowRoutes{handler: handler}
}

func (r *WorkflowRoutes) RegisterRoutes(router *gin.RouterGroup) {
	workflows := router.Group("/workflows")
	workflows.Use(middlewares.Authenticate)
	{
		workflows.GET("/:workflowId/statuses", r.handler.ListStatuses)
		workflows.POST("/:workflowId/statuses", r.handler.CreateStatus)
		workflows.PUT("/:workflowId/statuses/order", r.handler.ReorderStatuses)
	}
}
