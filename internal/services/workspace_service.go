package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/planhub/planhub/internal/models"
	"github.com/planhub/planhub/internal/repositories"
	"github.com/planhub/planhub/internal/utils"
)

type WorkspaceService struct {
	workspaceRepo *repositories.WorkspaceRepository
	access        *AccessService
}

func NewWorkspaceService(workspaceRepo *repositories.WorkspaceRepository, access *AccessService) *WorkspaceService {
	return &WorkspaceService{
		workspaceRepo: workspaceRepo,
		access:        access,
	}
}

type CreateWorkspaceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Slug        string  `json:"slug,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (s *WorkspaceService) CreateWorkspace(userID, orgID uuid.UUID, req CreateWorkspaceRequest) (*models.Workspace, error) {
	if _, err := s.access.RequireOrgRole(userID, orgID, models.OrgRoleAdmin); err != nil {
		return nil, err
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}

	existing, err := s.workspaceRepo.GetByOrgAndSlug(orgID, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("workspace slug %q is taken", slug)
	}

	ws := &models.Workspace{
		OrganizationID: orgID,
		Name:           req.Name,
		Slug:           slug,
		Description:    req.Description,
	}

	if err := s.workspaceRepo.Create(ws); err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	member := &models.WorkspaceMember{
		WorkspaceID: ws.ID,
		UserID:      userID,
		Role:        models.OrgRoleAdmin,
	}
	if err := s.workspaceRepo.AddMember(member); err != nil {
		return nil, fmt.Errorf("failed to add workspace membership: %w", err)
	}

	return ws, nil
}

func (s *WorkspaceService) GetWorkspace(userID, workspaceID uuid.UUID) (*models.Workspace, error) {
	return s.access.ResolveWorkspace(userID, workspaceID)
}

func (s *WorkspaceService) ListWorkspaces(userID, orgID uuid.UUID) ([]models.Workspace, error) {
	if _, err := s.access.RequireOrgMember(userID, orgID); err != nil {
		return nil, err
	}

	return s.workspaceRepo.ListByOrganization(orgID)
}

type UpdateWorkspaceRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (s *WorkspaceService) UpdateWorkspace(userID, workspaceID uuid.UUID, req UpdateWorkspaceRequest) (*models.Workspace, error) {
	ws, err := s.access.ResolveWorkspace(userID, workspaceID)
	if err != nil {
		return nil, err
	}

	if _, err := s.access.RequireOrgRole(userID, ws.OrganizationID, models.OrgRoleAdmin); err != nil {
		return nil, err
	}

	if req.Name != nil {
		ws.Name = *req.Name
	}
	if req.Description != nil {
		ws.Description = req.Description
	}

	if err := s.workspaceRepo.Update(ws); err != nil {
		return nil, fmt.Errorf("failed to update workspace: %w", err)
	}

	return ws, nil
}

func (s *WorkspaceService) DeleteWorkspace(userID, workspaceID uuid.UUID) error {
	ws, err := s.access.ResolveWorkspace(userID, workspaceID)
	if err != nil {
		return err
	}

	if _, err := s.access.RequireOrgRole(userID, ws.OrganizationID, models.OrgRoleAdmin); err != nil {
		return err
	}

	return s.workspaceRepo.Delete(workspaceID)
}

func (s *WorkspaceService) AddMember(userID, workspaceID, memberUserID uuid.UUID, role string) (*models.WorkspaceMember, error) {
	ws, err := s.access.ResolveWorkspace(userID, workspaceID)
	if err != nil {
		return nil, err
	}

	if _, err := s.access.RequireOrgRole(userID, ws.OrganizationID, models.OrgRoleAdmin); err != nil {
		return nil, err
	}

	// Owner is an organization role; workspaces only know admins and members.
	if role == "" {
		role = models.OrgRoleMember
	}
	if !utils.Contains([]string{models.OrgRoleAdmin, models.OrgRoleMember}, role) {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	// Workspace members must already belong to the organization.
	if _, err := s.access.RequireOrgMember(memberUserID, ws.OrganizationID); err != nil {
		return nil, fmt.Errorf("user is not in the organization")
	}

	existing, err := s.workspaceRepo.GetMember(workspaceID, memberUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("user is already a member")
	}

	member := &models.WorkspaceMember{
		WorkspaceID: workspaceID,
		UserID:      memberUserID,
		Role:        role,
	}
	if err := s.workspaceRepo.AddMember(member); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	return member, nil
}

func (s *WorkspaceService) ListMembers(userID, workspaceID uuid.UUID) ([]models.WorkspaceMember, error) {
	if _, err := s.access.ResolveWorkspace(userID, workspaceID); err != nil {
		return nil, err
	}

	return s.workspaceRepo.ListMembers(workspaceID)
}
