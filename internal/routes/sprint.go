package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/planhub/planhub/internal/handlers"
	"github.com/planhub/planhub/internal/middlewares"
)

type SprintRoutes struct {
	handler *handlers.SprintHandler
}

func NewSprintRoutes(handler *handlers.SprintHandler) *SprintRoutes {
	return &SprintRoutes{handler: handler}
}

func (r *SprintRoutes) RegisterRoutes(router *gin.RouterGroup) {
	sprints := router.Group("/sprints")
	sprints.Use(middlewares.Authenticate)
	{
		sprints.GET("/:sprintId", r.handler.Get)
		sprints.PATCH("/:sprintId", r.handler.Update)
		sprints.DELETE("/:sprintId", r.handler.Delete)
		sprints.POST("/:sprintId/start", r.handler.Start)
		sprints.POST("/:sprintId/complete", r.handler.Complete)
	}
}
