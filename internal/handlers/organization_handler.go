package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/planhub/planhub/internal/responses"
	"github.com/planhub/planhub/internal/services"
)

type OrganizationHandler struct {
	orgService *services.OrganizationService
}

func NewOrganizationHandler(orgService *services.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

func (h *OrganizationHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	var req services.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid Format")
		return
	}

	org, err := h.orgService.CreateOrganization(userID, req)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not create organization")
		return
	}

	responses.Success(c, http.StatusCreated, org, "Organization created successfully")
}

func (h *OrganizationHandler) Get(c *gin.Context) {
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

	org, err := h.orgService.GetOrganization(userID, orgID)
	if err != nil {
		responses.Fail(c, http.StatusNotFound, err, "Organization not found")
		return
	}

	responses.Success(c, http.StatusOK, org, "Organization fetched successfully")
}

func (h *OrganizationHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	orgs, err := h.orgService.ListOrganizations(userID)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Could not list organizations")
		return
	}

	responses.Success(c, http.StatusOK, orgs, "Organizations fetched successfully")
}

func (h *OrganizationHandler) Update(c *gin.Context) {
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

	var req services.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid Format")
		return
	}

	org, err := h.orgService.UpdateOrganization(userID, orgID, req)
	if err != nil {
		responses.Fail(c, http.StatusForbidden, err, "Could not update organization")
		return
	}

	responses.Success(c, http.StatusOK, org, "Organization updated successfully")
}

func (h *OrganizationHandler) Delete(c *gin.Context) {
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

	if err := h.orgService.DeleteOrganization(userID, orgID); err != nil {
		responses.Fail(c, http.StatusForbidden, err, "Could not delete organization")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Organization deleted successfully")
}

func (h *OrganizationHandler) AddMember(c *gin.Context) {
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

	var req services.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid Format")
		return
	}

	member, err := h.orgService.AddMember(userID, orgID, req)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not add member")
		return
	}

	responses.Success(c, http.StatusCreated, member, "Member added successfully")
}

func (h *OrganizationHandler) ListMembers(c *gin.Context) {
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

	members, err := h.orgService.ListMembers(userID, orgID)
	if err != nil {
		responses.Fail(c, http.StatusForbidden, err, "Could not list members")
		return
	}

	responses.Success(c, http.StatusOK, members, "Members fetched successfully")
}

func (h *OrganizationHandler) RemoveMember(c *gin.Context) {
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

	memberID, err := pathUUID(c, "userId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid user ID")
		return
	}

	if err := h.orgService.RemoveMember(userID, orgID, memberID); err != nil {
		responses.Fail(c, http.StatusForbidden, err, "Could not remove member")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Member removed successfully")
}
