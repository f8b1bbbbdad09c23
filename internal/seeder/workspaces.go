package seeder

import (
	"github.com/planhub/planhub/internal/models"
)

func (s *Seeder) seedWorkspace(
	org *models.Organization,
	workflow *models.Workflow,
	fix workspaceFixture,
	members []memberFixture,
	usersByEmail map[string]*models.User,
) {
	ws, err := s.ensureWorkspace(org, fix)
	if err != nil {
		s.log.Warnf("skipping workspace %s: %v", fix.Slug, err)
		return
	}

	// Every org member joins every demo workspace.
	for _, memberFix := range members {
		s.seedWorkspaceMember(ws, memberFix, usersByEmail)
	}

	for _, projectFix := range fix.Projects {
		s.seedProject(ws, workflow, projectFix, members, usersByEmail)
	}
}

func (s *Seeder) ensureWorkspace(org *models.Organization, fix workspaceFixture) (*models.Workspace, error) {
	existing, err := s.workspaces.GetByOrgAndSlug(org.ID, fix.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	desc := fix.Description
	ws := &models.Workspace{
		OrganizationID: org.ID,
		Name:           fix.Name,
		Slug:           fix.Slug,
		Description:    &desc,
	}
	ws.Prepare()
	if err := s.workspaces.Create(ws); err != nil {
		return nil, err
	}

	s.log.Infof("created workspace %s/%s", org.Slug, ws.Slug)
	return ws, nil
}

func (s *Seeder) seedWorkspaceMember(ws *models.Workspace, fix memberFixture, usersByEmail map[string]*models.User) {
	user, ok := usersByEmail[fix.Email]
	if !ok {
		return
	}

	existing, err := s.workspaces.GetMember(ws.ID, user.ID)
	if err != nil || existing != nil {
		return
	}

	member := &models.WorkspaceMember{
		WorkspaceID: ws.ID,
		UserID:      user.ID,
		Role:        fix.Role,
	}
	member.Prepare()
	if err := s.workspaces.AddMember(member); err != nil {
		s.log.Warnf("failed to add %s to workspace %s: %v", fix.Email, ws.Slug, err)
	}
}
