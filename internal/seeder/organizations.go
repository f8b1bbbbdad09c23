package seeder

import (
	"github.com/planhub/planhub/internal/models"
	"github.com/planhub/planhub/internal/services"
)

// seedOrganization creates one organization with its members, default
// workflow and workspaces.
func (s *Seeder) seedOrganization(fix orgFixture, usersByEmail map[string]*models.User) {
	org, err := s.ensureOrganization(fix)
	if err != nil {
		s.log.Warnf("skipping organization %s: %v", fix.Slug, err)
		return
	}

	for _, memberFix := range fix.Members {
		s.seedOrgMember(org, memberFix, usersByEmail)
	}

	workflow, err := s.ensureDefaultWorkflow(org)
	if err != nil {
		s.log.Warnf("skipping workflow for %s: %v", fix.Slug, err)
		return
	}

	for _, wsFix := range fix.Workspaces {
		s.seedWorkspace(org, workflow, wsFix, fix.Members, usersByEmail)
	}
}

func (s *Seeder) ensureOrganization(fix orgFixture) (*models.Organization, error) {
	existing, err := s.orgs.GetBySlug(fix.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	desc := fix.Description
	org := &models.Organization{
		Name:        fix.Name,
		Slug:        fix.Slug,
		Description: &desc,
	}
	org.Prepare()
	if err := s.orgs.Create(org); err != nil {
		return nil, err
	}

	s.log.Infof("created organization %s", org.Slug)
	return org, nil
}

func (s *Seeder) seedOrgMember(org *models.Organization, fix memberFixture, usersByEmail map[string]*models.User) {
	user, ok := usersByEmail[fix.Email]
	if !ok {
		s.log.Warnf("skipping membership for unknown user %s", fix.Email)
		return
	}

	existing, err := s.orgs.GetMember(org.ID, user.ID)
	if err != nil {
		s.log.Warnf("skipping membership for %s: %v", fix.Email, err)
		return
	}
	if existing != nil {
		return
	}

	member := &models.OrganizationMember{
		OrganizationID: org.ID,
		UserID:         user.ID,
		Role:           fix.Role,
	}
	member.Prepare()
	if err := s.orgs.AddMember(member); err != nil {
		s.log.Warnf("failed to add %s to %s: %v", fix.Email, org.Slug, err)
		return
	}
	s.log.Infof("added %s to %s as %s", fix.Email, org.Slug, fix.Role)
}

// ensureDefaultWorkflow creates the organization's default workflow with
// the standard status set the API would create for a new organization.
func (s *Seeder) ensureDefaultWorkflow(org *models.Organization) (*models.Workflow, error) {
	existing, err := s.workflows.GetDefaultByOrganization(org.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	wf := &models.Workflow{
		OrganizationID: org.ID,
		Name:           "Default",
		IsDefault:      true,
	}
	wf.Prepare()
	if err := s.workflows.Create(wf); err != nil {
		return nil, err
	}

	for i, def := range services.DefaultStatuses {
		status := &models.TaskStatus{
			WorkflowID: wf.ID,
			Name:       def.Name,
			Category:   def.Category,
			Position:   i,
		}
		status.Prepare()
		if err := s.workflows.CreateStatus(status); err != nil {
			s.log.Warnf("failed to create status %s: %v", def.Name, err)
		}
	}

	s.log.Infof("created default workflow for %s", org.Slug)
	return wf, nil
}
