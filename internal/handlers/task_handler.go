package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/planhub/planhub/internal/responses"
	"github.com/planhub/planhub/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	projectID, err := pathUUID(c, "projectId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid project ID")
		return
	}

	var req services.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid Format")
		return
	}

	task, err := h.taskService.CreateTask(userID, projectID, req)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not create task")
		return
	}

	responses.Success(c, http.StatusCreated, task, "Task created successfully")
}

func (h *TaskHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	taskID, err := pathUUID(c, "taskId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid task ID")
		return
	}

	task, err := h.taskService.GetTask(userID, taskID)
	if err != nil {
		responses.Fail(c, http.StatusNotFound, err, "Task not found")
		return
	}

	responses.Success(c, http.StatusOK, task, "Task fetched successfully")
}

func (h *TaskHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	projectID, err := pathUUID(c, "projectId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid project ID")
		return
	}

	req := services.ListTasksRequest{
		Search: c.Query("search"),
	}
	if v := c.Query("sprint_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			responses.Fail(c, http.StatusBadRequest, err, "Invalid sprint_id filter")
			return
		}
		req.SprintID = &id
	}
	if v := c.Query("status_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			responses.Fail(c, http.StatusBadRequest, err, "Invalid status_id filter")
			return
		}
		req.StatusID = &id
	}
	if v := c.Query("assignee_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			responses.Fail(c, http.StatusBadRequest, err, "Invalid assignee_id filter")
			return
		}
		req.AssigneeID = &id
	}

	tasks, err := h.taskService.ListTasks(userID, projectID, req)
	if err != nil {
		responses.Fail(c, http.StatusForbidden, err, "Could not list tasks")
		return
	}

	responses.Success(c, http.StatusOK, tasks, "Tasks fetched successfully")
}

func (h *TaskHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	taskID, err := pathUUID(c, "taskId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid task ID")
		return
	}

	var req services.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid Format")
		return
	}

	task, err := h.taskService.UpdateTask(userID, taskID, req)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not update task")
		return
	}

	responses.Success(c, http.StatusOK, task, "Task updated successfully")
}

func (h *TaskHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	taskID, err := pathUUID(c, "taskId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid task ID")
		return
	}

	if err := h.taskService.DeleteTask(userID, taskID); err != nil {
		responses.Fail(c, http.StatusForbidden, err, "Could not delete task")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Task deleted successfully")
}

func (h *TaskHandler) Move(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	taskID, err := pathUUID(c, "taskId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid task ID")
		return
	}

	var req services.MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid Format")
		return
	}

	task, err := h.taskService.MoveTask(userID, taskID, req)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not move task")
		return
	}

	responses.Success(c, http.StatusOK, task, "Task moved successfully")
}

func (h *TaskHandler) Assign(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	taskID, err := pathUUID(c, "taskId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid task ID")
		return
	}

	var req services.AssignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid Format")
		return
	}

	task, err := h.taskService.AssignTask(userID, taskID, req)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not assign task")
		return
	}

	responses.Success(c, http.StatusOK, task, "Task assigned successfully")
}

func (h *TaskHandler) AddComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	taskID, err := pathUUID(c, "taskId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid task ID")
		return
	}

	var req services.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid Format")
		return
	}

	comment, err := h.taskService.AddComment(userID, taskID, req)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not add comment")
		return
	}

	responses.Success(c, http.StatusCreated, comment, "Comment added successfully")
}

func (h *TaskHandler) ListComments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	taskID, err := pathUUID(c, "taskId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid task ID")
		return
	}

	comments, err := h.taskService.ListComments(userID, taskID)
	if err != nil {
		responses.Fail(c, http.StatusForbidden, err, "Could not list comments")
		return
	}

	responses.Success(c, http.StatusOK, comments, "Comments fetched successfully")
}

func (h *TaskHandler) DeleteComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	taskID, err := pathUUID(c, "taskId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid task ID")
		return
	}

	commentID, err := pathUUID(c, "commentId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid comment ID")
		return
	}

	if err := h.taskService.DeleteComment(userID, taskID, commentID); err != nil {
		responses.Fail(c, http.StatusForbidden, err, "Could not delete comment")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Comment deleted successfully")
}

func (h *TaskHandler) Watch(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	taskID, err := pathUUID(c, "taskId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid task ID")
		return
	}

	if err := h.taskService.Watch(userID, taskID); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not watch task")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Watching task")
}

func (h *TaskHandler) Unwatch(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	taskID, err := pathUUID(c, "taskId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid task ID")
		return
	}

	if err := h.taskService.Unwatch(userID, taskID); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not unwatch task")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Stopped watching task")
}

func (h *TaskHandler) ListWatchers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	taskID, err := pathUUID(c, "taskId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid task ID")
		return
	}

	watchers, err := h.taskService.ListWatchers(userID, taskID)
	if err != nil {
		responses.Fail(c, http.StatusForbidden, err, "Could not list watchers")
		return
	}

	responses.Success(c, http.StatusOK, watchers, "Watchers fetched successfully")
}

func (h *TaskHandler) AddLabel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	taskID, err := pathUUID(c, "taskId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid task ID")
		return
	}

	labelID, err := pathUUID(c, "labelId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid label ID")
		return
	}

	if err := h.taskService.AddLabel(userID, taskID, labelID); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not add label")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Label added successfully")
}

func (h *TaskHandler) RemoveLabel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	taskID, err := pathUUID(c, "taskId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid task ID")
		return
	}

	labelID, err := pathUUID(c, "labelId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid label ID")
		return
	}

	if err := h.taskService.RemoveLabel(userID, taskID, labelID); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not remove label")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Label removed successfully")
}

func (h *TaskHandler) ListLabels(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	taskID, err := pathUUID(c, "taskId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid task ID")
		return
	}

	labels, err := h.taskService.ListLabels(userID, taskID)
	if err != nil {
		responses.Fail(c, http.StatusForbidden, err, "Could not list labels")
		return
	}

	responses.Success(c, http.StatusOK, labels, "Labels fetched successfully")
}

func (h *TaskHandler) AddDependency(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	taskID, err := pathUUID(c, "taskId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid task ID")
		return
	}

	var req services.AddDependencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid Format")
		return
	}

	dep, err := h.taskService.AddDependency(userID, taskID, req)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not add dependency")
		return
	}

	responses.Success(c, http.StatusCreated, dep, "Dependency added successfully")
}

func (h *TaskHandler) ListDependencies(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	taskID, err := pathUUID(c, "taskId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid task ID")
		return
	}

	deps, err := h.taskService.ListDependencies(userID, taskID)
	if err != nil {
		responses.Fail(c, http.StatusForbidden, err, "Could not list dependencies")
		return
	}

	responses.Success(c, http.StatusOK, deps, "Dependencies fetched successfully")
}

func (h *TaskHandler) AddTimeEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	taskID, err := pathUUID(c, "taskId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid task ID")
		return
	}

	var req services.CreateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid Format")
		return
	}

	entry, err := h.taskService.AddTimeEntry(userID, taskID, req)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not log time")
		return
	}

	responses.Success(c, http.StatusCreated, entry, "Time entry logged successfully")
}

func (h *TaskHandler) ListTimeEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	taskID, err := pathUUID(c, "taskId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid task ID")
		return
	}

	report, err := h.taskService.ListTimeEntries(userID, taskID)
	if err != nil {
		responses.Fail(c, http.StatusForbidden, err, "Could not list time entries")
		return
	}

	responses.Success(c, http.StatusOK, report, "Time entries fetched successfully")
}

func (h *TaskHandler) DeleteTimeEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	taskID, err := pathUUID(c, "taskId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid task ID")
		return
	}

	entryID, err := pathUUID(c, "entryId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid time entry ID")
		return
	}

	if err := h.taskService.DeleteTimeEntry(userID, taskID, entryID); err != nil {
		responses.Fail(c, http.StatusForbidden, err, "Could not delete time entry")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Time entry deleted successfully")
}
