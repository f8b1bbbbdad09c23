package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/planhub/planhub/internal/handlers"
	"github.com/planhub/planhub/internal/middlewares"
)

type TaskRoutes struct {
	handler *handlers.TaskHandler
}

func NewTaskRoutes(handler *handlers.TaskHandler) *TaskRoutes {
	return &TaskRoutes{handler: handler}
}

func (r *TaskRoutes) RegisterRoutes(router *gin.RouterGroup) {
	tasks := router.Group("/tasks")
	tasks.Use(middlewares.Authenticate)
	{
		tasks.GET("/:taskId", r.handler.Get)
		tasks.PATCH("/:taskId", r.handler.Update)
		tasks.DELETE("/:taskId", r.handler.Delete)
		tasks.POST("/:taskId/move", r.handler.Move)
		tasks.POST("/:taskId/assign", r.handler.Assign)

		tasks.POST("/:taskId/comments", r.handler.AddComment)
		tasks.GET("/:taskId/comments", r.handler.ListComments)
		tasks.DELETE("/:taskId/comments/:commentId", r.handler.DeleteComment)

		tasks.PUT("/:taskId/watchers", r.handler.Watch)
		tasks.DELETE("/:taskId/watchers", r.handler.Unwatch)
		tasks.GET("/:taskId/watchers", r.handler.ListWatchers)

		tasks.PUT("/:taskId/labels/:labelId", r.handler.AddLabel)
		tasks.DELETE("/:taskId/labels/:labelId", r.handler.RemoveLabel)
		tasks.GET("/:taskId/labels", r.handler.ListLabels)

		tasks.POST("/:taskId/dependencies", r.handler.AddDependency)
		tasks.GET("/:taskId/dependencies", r.handler.ListDependencies)

		tasks.POST("/:taskId/time-entries", r.handler.AddTimeEntry)
		tasks.GET("/:taskId/time-entries", r.handler.ListTimeEntries)
		tasks.DELETE("/:taskId/time-entries/:entryId", r.handler.DeleteTimeEntry)
	}
}
