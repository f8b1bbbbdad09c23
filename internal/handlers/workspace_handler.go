package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/planhub/planhub/internal/responses"
	"github.com/planhub/planhub/internal/services"
)

type WorkspaceHandler struct {
	workspaceService *services.WorkspaceService
}

func NewWorkspaceHandler(workspaceService *services.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService}
}

func (h *WorkspaceHandler) Create(c *gin.Context) {
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

	var req services.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid Format")
		return
	}

	ws, err := h.workspaceService.CreateWorkspace(userID, orgID, req)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not create workspace")
		return
	}

	responses.Success(c, http.StatusCreated, ws, "Workspace created successfully")
}

func (h *WorkspaceHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	workspaceID, err := pathUUID(c, "workspaceId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid workspace ID")
		return
	}

	ws, err := h.workspaceService.GetWorkspace(userID, workspaceID)
	if err != nil {
		responses.Fail(c, http.StatusNotFound, err, "Workspace not found")
		return
	}

	responses.Success(c, http.StatusOK, ws, "Workspace fetched successfully")
}

func (h *WorkspaceHandler) List(c *gin.Context) {
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

	workspaces, err := h.workspaceService.ListWorkspaces(userID, orgID)
	if err != nil {
		responses.Fail(c, http.StatusForbidden, err, "Could not list workspaces")
		return
	}

	responses.Success(c, http.StatusOK, workspaces, "Workspaces fetched successfully")
}

func (h *WorkspaceHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	workspaceID, err := pathUUID(c, "workspaceId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid workspace ID")
		return
	}

	var req services.UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid Format")
		return
	}

	ws, err := h.workspaceService.UpdateWorkspace(userID, workspaceID, req)
	if err != nil {
		responses.Fail(c, http.StatusForbidden, err, "Could not update workspace")
		return
	}

	responses.Success(c, http.StatusOK, ws, "Workspace updated successfully")
}

func (h *WorkspaceHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	workspaceID, err := pathUUID(c, "workspaceId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid workspace ID")
		return
	}

	if err := h.workspaceService.DeleteWorkspace(userID, workspaceID); err != nil {
		responses.Fail(c, http.StatusForbidden, err, "Could not delete workspace")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Workspace deleted successfully")
}

func (h *WorkspaceHandler) AddMember(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	workspaceID, err := pathUUID(c, "workspaceId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid workspace ID")
		return
	}

	var req struct {
		UserID uuid.UUID `json:"user_id" binding:"required"`
		Role   string    `json:"role,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid Format")
		return
	}

	member, err := h.workspaceService.AddMember(userID, workspaceID, req.UserID, req.Role)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not add member")
		return
	}

	responses.Success(c, http.StatusCreated, member, "Member added successfully")
}

func (h *WorkspaceHandler) ListMembers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	workspaceID, err := pathUUID(c, "workspaceId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid workspace ID")
		return
	}

	members, err := h.workspaceService.ListMembers(userID, workspaceID)
	if err != nil {
		responses.Fail(c, http.StatusForbidden, err, "Could not list members")
		return
	}

	responses.Success(c, http.StatusOK, members, "Members fetched successfully")
}
