package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/planhub/planhub/internal/responses"
	"github.com/planhub/planhub/internal/services"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) Create(c *gin.Context) {
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

	var req services.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid Format")
		return
	}

	project, err := h.projectService.CreateProject(userID, workspaceID, req)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not create project")
		return
	}

	responses.Success(c, http.StatusCreated, project, "Project created successfully")
}

func (h *ProjectHandler) Get(c *gin.Context) {
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

	project, err := h.projectService.GetProject(userID, projectID)
	if err != nil {
		responses.Fail(c, http.StatusNotFound, err, "Project not found")
		return
	}

	responses.Success(c, http.StatusOK, project, "Project fetched successfully")
}

func (h *ProjectHandler) List(c *gin.Context) {
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

	projects, err := h.projectService.ListProjects(userID, workspaceID)
	if err != nil {
		responses.Fail(c, http.StatusForbidden, err, "Could not list projects")
		return
	}

	responses.Success(c, http.StatusOK, projects, "Projects fetched successfully")
}

func (h *ProjectHandler) Update(c *gin.Context) {
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

	var req services.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid Format")
		return
	}

	project, err := h.projectService.UpdateProject(userID, projectID, req)
	if err != nil {
		responses.Fail(c, http.StatusForbidden, err, "Could not update project")
		return
	}

	responses.Success(c, http.StatusOK, project, "Project updated successfully")
}

func (h *ProjectHandler) Delete(c *gin.Context) {
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

	if err := h.projectService.DeleteProject(userID, projectID); err != nil {
		responses.Fail(c, http.StatusForbidden, err, "Could not delete project")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Project deleted successfully")
}

func (h *ProjectHandler) GetBoard(c *gin.Context) {
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

	board, err := h.projectService.GetBoard(userID, projectID)
	if err != nil {
		responses.Fail(c, http.StatusForbidden, err, "Could not load board")
		return
	}

	responses.Success(c, http.StatusOK, board, "Board fetched successfully")
}

func (h *ProjectHandler) CreateLabel(c *gin.Context) {
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

	var req services.CreateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid Format")
		return
	}

	label, err := h.projectService.CreateLabel(userID, projectID, req)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not create label")
		return
	}

	responses.Success(c, http.StatusCreated, label, "Label created successfully")
}

func (h *ProjectHandler) ListLabels(c *gin.Context) {
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

	labels, err := h.projectService.ListLabels(userID, projectID)
	if err != nil {
		responses.Fail(c, http.StatusForbidden, err, "Could not list labels")
		return
	}

	responses.Success(c, http.StatusOK, labels, "Labels fetched successfully")
}

func (h *ProjectHandler) DeleteLabel(c *gin.Context) {
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

	labelID, err := pathUUID(c, "labelId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid label ID")
		return
	}

	if err := h.projectService.DeleteLabel(userID, projectID, labelID); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not delete label")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Label deleted successfully")
}
