package seeder

import (
	"github.com/planhub/planhub/internal/models"
)

func (s *Seeder) seedProject(
	ws *models.Workspace,
	workflow *models.Workflow,
	fix projectFixture,
	members []memberFixture,
	usersByEmail map[string]*models.User,
) {
	project, err := s.ensureProject(ws, workflow, fix)
	if err != nil {
		s.log.Warnf("skipping project %s: %v", fix.Slug, err)
		return
	}

	labelsByName := make(map[string]*models.Label, len(fix.Labels))
	for _, labelFix := range fix.Labels {
		label, err := s.ensureLabel(project, labelFix)
		if err != nil {
			s.log.Warnf("skipping label %s: %v", labelFix.Name, err)
			continue
		}
		labelsByName[label.Name] = label
	}

	sprintsByName := make(map[string]*models.Sprint, len(fix.Sprints))
	for _, sprintFix := range fix.Sprints {
		sprint, err := s.ensureSprint(project, sprintFix)
		if err != nil {
			s.log.Warnf("skipping sprint %s: %v", sprintFix.Name, err)
			continue
		}
		sprintsByName[sprint.Name] = sprint
	}

	s.seedTasks(project, workflow, fix, labelsByName, sprintsByName, members, usersByEmail)
}

func (s *Seeder) ensureProject(ws *models.Workspace, workflow *models.Workflow, fix projectFixture) (*models.Project, error) {
	existing, err := s.projects.GetByWorkspaceAndSlug(ws.ID, fix.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	desc := fix.Description
	project := &models.Project{
		WorkspaceID: ws.ID,
		WorkflowID:  workflow.ID,
		Name:        fix.Name,
		Slug:        fix.Slug,
		Description: &desc,
	}
	project.Prepare()
	if err := s.projects.Create(project); err != nil {
		return nil, err
	}

	s.log.Infof("created project %s/%s", ws.Slug, project.Slug)
	return project, nil
}

func (s *Seeder) ensureLabel(project *models.Project, fix labelFixture) (*models.Label, error) {
	existing, err := s.labels.GetByProjectAndName(project.ID, fix.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	label := &models.Label{
		ProjectID: project.ID,
		Name:      fix.Name,
		Color:     fix.Color,
	}
	label.Prepare()
	if err := s.labels.Create(label); err != nil {
		return nil, err
	}
	return label, nil
}

func (s *Seeder) ensureSprint(project *models.Project, fix sprintFixture) (*models.Sprint, error) {
	existing, err := s.sprints.GetByProjectAndName(project.ID, fix.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	goal := fix.Goal
	sprint := &models.Sprint{
		ProjectID: project.ID,
		Name:      fix.Name,
		Goal:      &goal,
	}
	sprint.Prepare()
	if err := s.sprints.Create(sprint); err != nil {
		return nil, err
	}
	return sprint, nil
}
