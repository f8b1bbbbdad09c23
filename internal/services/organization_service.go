package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/planhub/planhub/internal/email"
	"github.com/planhub/planhub/internal/logging"
	"github.com/planhub/planhub/internal/models"
	"github.com/planhub/planhub/internal/repositories"
	"github.com/planhub/planhub/internal/utils"
)

// DefaultStatuses are created for every new organization's default workflow.
var DefaultStatuses = []struct {
	Name     string
	Category string
}{
	{"Backlog", models.StatusCategoryTodo},
	{"To Do", models.StatusCategoryTodo},
	{"In Progress", models.StatusCategoryInProgress},
	{"In Review", models.StatusCategoryInProgress},
	{"Done", models.StatusCategoryDone},
}

type OrganizationService struct {
	orgRepo      *repositories.OrganizationRepository
	workflowRepo *repositories.WorkflowRepository
	userRepo     *repositories.UserRepository
	access       *AccessService
	mailer       email.Mailer
}

func NewOrganizationService(
	orgRepo *repositories.OrganizationRepository,
	workflowRepo *repositories.WorkflowRepository,
	userRepo *repositories.UserRepository,
	access *AccessService,
	mailer email.Mailer,
) *OrganizationService {
	return &OrganizationService{
		orgRepo:      orgRepo,
		workflowRepo: workflowRepo,
		userRepo:     userRepo,
		access:       access,
		mailer:       mailer,
	}
}

type CreateOrganizationRequest struct {
	Name        string  `json:"name" binding:"required"`
	Slug        string  `json:"slug,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (s *OrganizationService) CreateOrganization(userID uuid.UUID, req CreateOrganizationRequest) (*models.Organization, error) {
	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}

	existing, err := s.orgRepo.GetBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("organization slug %q is taken", slug)
	}

	org := &models.Organization{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
	}

	if err := s.orgRepo.Create(org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	member := &models.OrganizationMember{
		OrganizationID: org.ID,
		UserID:         userID,
		Role:           models.OrgRoleOwner,
	}
	if err := s.orgRepo.AddMember(member); err != nil {
		// Creator must always end up inside the org; undo the create.
		s.orgRepo.Delete(org.ID)
		return nil, fmt.Errorf("failed to add owner membership: %w", err)
	}

	if err := s.createDefaultWorkflow(org.ID); err != nil {
		logging.C("organizations").Warnf("failed to create default workflow for %s: %v", org.Slug, err)
	}

	return org, nil
}

func (s *OrganizationService) createDefaultWorkflow(orgID uuid.UUID) error {
	wf := &models.Workflow{
		OrganizationID: orgID,
		Name:           "Default",
		IsDefault:      true,
	}
	if err := s.workflowRepo.Create(wf); err != nil {
		return err
	}

	for i, def := range DefaultStatuses {
		status := &models.TaskStatus{
			WorkflowID: wf.ID,
			Name:       def.Name,
			Category:   def.Category,
			Position:   i,
		}
		if err := s.workflowRepo.CreateStatus(status); err != nil {
			return err
		}
	}

	return nil
}

func (s *OrganizationService) GetOrganization(userID, orgID uuid.UUID) (*models.Organization, error) {
	if _, err := s.access.RequireOrgMember(userID, orgID); err != nil {
		return nil, err
	}

	org, err := s.orgRepo.GetByID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	if org == nil {
		return nil, fmt.Errorf("organization not found")
	}

	return org, nil
}

func (s *OrganizationService) ListOrganizations(userID uuid.UUID) ([]models.Organization, error) {
	return s.orgRepo.ListByUserID(userID)
}

type UpdateOrganizationRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (s *OrganizationService) UpdateOrganization(userID, orgID uuid.UUID, req UpdateOrganizationRequest) (*models.Organization, error) {
	if _, err := s.access.RequireOrgRole(userID, orgID, models.OrgRoleAdmin); err != nil {
		return nil, err
	}

	org, err := s.orgRepo.GetByID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	if org == nil {
		return nil, fmt.Errorf("organization not found")
	}

	if req.Name != nil {
		org.Name = *req.Name
	}
	if req.Description != nil {
		org.Description = req.Description
	}

	if err := s.orgRepo.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	return org, nil
}

func (s *OrganizationService) DeleteOrganization(userID, orgID uuid.UUID) error {
	if _, err := s.access.RequireOrgRole(userID, orgID); err != nil {
		return err
	}

	return s.orgRepo.Delete(orgID)
}

type AddMemberRequest struct {
	Email string `json:"email" binding:"required"`
	Role  string `json:"role,omitempty"`
}

func (s *OrganizationService) AddMember(userID, orgID uuid.UUID, req AddMemberRequest) (*models.OrganizationMember, error) {
	inviter, err := s.access.RequireOrgRole(userID, orgID, models.OrgRoleAdmin)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.OrgRoleMember
	}
	if !utils.Contains([]string{models.OrgRoleOwner, models.OrgRoleAdmin, models.OrgRoleMember}, role) {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	// Only owners may mint other owners.
	if role == models.OrgRoleOwner && inviter.Role != models.OrgRoleOwner {
		return nil, fmt.Errorf("only an owner can grant the owner role")
	}

	invitee, err := s.userRepo.FindUserByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if invitee == nil {
		return nil, fmt.Errorf("no user with email %s", req.Email)
	}

	existing, err := s.orgRepo.GetMember(orgID, invitee.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("user is already a member")
	}

	member := &models.OrganizationMember{
		OrganizationID: orgID,
		UserID:         invitee.ID,
		Role:           role,
	}
	if err := s.orgRepo.AddMember(member); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	s.sendInviteEmail(inviter.UserID, invitee, orgID, member.Role)

	return member, nil
}

func (s *OrganizationService) sendInviteEmail(inviterID uuid.UUID, invitee *models.User, orgID uuid.UUID, role string) {
	log := logging.C("organizations")

	org, err := s.orgRepo.GetByID(orgID)
	if err != nil || org == nil {
		log.Warnf("skipping invite email, organization %s not found", orgID)
		return
	}

	inviterName := "An administrator"
	if inviter, err := s.userRepo.FindUserByID(inviterID); err == nil && inviter != nil {
		inviterName = inviter.Name
	}

	body, err := email.RenderTemplate(email.OrgInviteTemplate, map[string]string{
		"Name":        invitee.Name,
		"InviterName": inviterName,
		"OrgName":     org.Name,
		"Role":        role,
	})
	if err != nil {
		log.Warnf("failed to render invite email: %v", err)
		return
	}

	if err := s.mailer.Send(invitee.Email, body); err != nil {
		log.Warnf("failed to send invite email to %s: %v", invitee.Email, err)
	}
}

func (s *OrganizationService) ListMembers(userID, orgID uuid.UUID) ([]models.OrganizationMember, error) {
	if _, err := s.access.RequireOrgMember(userID, orgID); err != nil {
		return nil, err
	}

	return s.orgRepo.ListMembers(orgID)
}

func (s *OrganizationService) RemoveMember(userID, orgID, memberUserID uuid.UUID) error {
	if _, err := s.access.RequireOrgRole(userID, orgID, models.OrgRoleAdmin); err != nil {
		return err
	}

	target, err := s.orgRepo.GetMember(orgID, memberUserID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if target == nil {
		return fmt.Errorf("member not found")
	}
	if target.Role == models.OrgRoleOwner {
		return fmt.Errorf("cannot remove the organization owner")
	}

	return s.orgRepo.RemoveMember(orgID, memberUserID)
}
