package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/planhub/planhub/internal/responses"
	"github.com/planhub/planhub/internal/services"
)

type WorkflowHandler struct {
	workflowService *services.WorkflowService
}

func NewWorkflowHandler(workflowService *services.WorkflowService) *WorkflowHandler {
	return &WorkflowHandler{workflowService: workflowService}
}

func (h *WorkflowHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	orgID, err := pathUUID(c, "orgId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid organization ID")
		return
	}

	workflows, err := h.workflowService.ListWorkflows(userID, orgID)
	if err != nil {
		responses.Fail(c, http.StatusForbidden, err, "Could not list workflows")
		return
	}

	responses.Success(c, http.StatusOK, workflows, "Workflows fetched successfully")
}

func (h *WorkflowHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	orgID, err := pathUUID(c, "orgId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid organization ID")
		return
	}

	var req services.CreateWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid Format")
		return
	}

	wf, err := h.workflowService.CreateWorkflow(userID, orgID, req)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not create workflow")
		return
	}

	responses.Success(c, http.StatusCreated, wf, "Workflow created successfully")
}

func (h *WorkflowHandler) ListStatuses(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	workflowID, err := pathUUID(c, "workflowId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid workflow ID")
		return
	}

	statuses, err := h.workflowService.ListStatuses(userID, workflowID)
	if err != nil {
		responses.Fail(c, http.StatusForbidden, err, "Could not list statuses")
		return
	}

	responses.Success(c, http.StatusOK, statuses, "Statuses fetched successfully")
}

func (h *WorkflowHandler) CreateStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	workflowID, err := pathUUID(c, "workflowId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid workflow ID")
		return
	}

	var req services.CreateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid Format")
		return
	}

	status, err := h.workflowService.CreateStatus(userID, workflowID, req)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not create status")
		return
	}

	responses.Success(c, http.StatusCreated, status, "Status created successfully")
}

func (h *WorkflowHandler) ReorderStatuses(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	workflowID, err := pathUUID(c, "workflowId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid workflow ID")
		return
	}

	var req struct {
		StatusIDs []uuid.UUID `json:"status_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid Format")
		return
	}

	if err := h.workflowService.ReorderStatuses(userID, workflowID, req.StatusIDs); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not reorder statuses")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Statuses reordered successfully")
}
