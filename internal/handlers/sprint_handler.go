package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/planhub/planhub/internal/responses"
	"github.com/planhub/planhub/internal/services"
)

type SprintHandler struct {
	sprintService *services.SprintService
}

func NewSprintHandler(sprintService *services.SprintService) *SprintHandler {
	return &SprintHandler{sprintService: sprintService}
}

func (h *SprintHandler) Create(c *gin.Context) {
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

	var req services.CreateSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid Format")
		return
	}

	sprint, err := h.sprintService.CreateSprint(userID, projectID, req)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not create sprint")
		return
	}

	responses.Success(c, http.StatusCreated, sprint, "Sprint created successfully")
}

func (h *SprintHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	sprintID, err := pathUUID(c, "sprintId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid sprint ID")
		return
	}

	sprint, err := h.sprintService.GetSprint(userID, sprintID)
	if err != nil {
		responses.Fail(c, http.StatusNotFound, err, "Sprint not found")
		return
	}

	responses.Success(c, http.StatusOK, sprint, "Sprint fetched successfully")
}

func (h *SprintHandler) List(c *gin.Context) {
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

	sprints, err := h.sprintService.ListSprints(userID, projectID)
	if err != nil {
		responses.Fail(c, http.StatusForbidden, err, "Could not list sprints")
		return
	}

	responses.Success(c, http.StatusOK, sprints, "Sprints fetched successfully")
}

func (h *SprintHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	sprintID, err := pathUUID(c, "sprintId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid sprint ID")
		return
	}

	var req services.UpdateSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid Format")
		return
	}

	sprint, err := h.sprintService.UpdateSprint(userID, sprintID, req)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not update sprint")
		return
	}

	responses.Success(c, http.StatusOK, sprint, "Sprint updated successfully")
}

func (h *SprintHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	sprintID, err := pathUUID(c, "sprintId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid sprint ID")
		return
	}

	if err := h.sprintService.DeleteSprint(userID, sprintID); err != nil {
		responses.Fail(c, http.StatusForbidden, err, "Could not delete sprint")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Sprint deleted successfully")
}

func (h *SprintHandler) Start(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	sprintID, err := pathUUID(c, "sprintId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid sprint ID")
		return
	}

	sprint, err := h.sprintService.StartSprint(userID, sprintID)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not start sprint")
		return
	}

	responses.Success(c, http.StatusOK, sprint, "Sprint started successfully")
}

func (h *SprintHandler) Complete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	sprintID, err := pathUUID(c, "sprintId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid sprint ID")
		return
	}

	sprint, err := h.sprintService.CompleteSprint(userID, sprintID)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not complete sprint")
		return
	}

	responses.Success(c, http.StatusOK, sprint, "Sprint completed successfully")
}
