package seeder

import (
	"github.com/planhub/planhub/internal/models"
)

// seedTasks creates a project's tasks and everything hanging off them. The
// board is populated by spreading tasks across the workflow statuses.
func (s *Seeder) seedTasks(
	project *models.Project,
	workflow *models.Workflow,
	fix projectFixture,
	labelsByName map[string]*models.Label,
	sprintsByName map[string]*models.Sprint,
	members []memberFixture,
	usersByEmail map[string]*models.User,
) {
	statuses, err := s.workflows.ListStatuses(workflow.ID)
	if err != nil || len(statuses) == 0 {
		s.log.Warnf("skipping tasks for %s, no statuses: %v", project.Slug, err)
		return
	}

	reporter := s.pickReporter(members, usersByEmail)
	if reporter == nil {
		s.log.Warnf("skipping tasks for %s, no reporter available", project.Slug)
		return
	}

	created := make([]*models.Task, 0, len(fix.Tasks))
	for i, taskFix := range fix.Tasks {
		status := statuses[i%len(statuses)]
		task, err := s.ensureTask(project, status, taskFix, reporter, sprintsByName, usersByEmail)
		if err != nil {
			s.log.Warnf("skipping task %q: %v", taskFix.Title, err)
			continue
		}
		created = append(created, task)

		s.seedComments(task, taskFix, usersByEmail)
		s.seedTaskLabels(task, fix.Labels, labelsByName)
		s.seedWatchers(task, members, usersByEmail)
		s.seedTimeEntries(task)
	}

	s.seedDependencies(created)
}

// pickReporter uses the organization owner as the reporter for all fixture
// tasks.
func (s *Seeder) pickReporter(members []memberFixture, usersByEmail map[string]*models.User) *models.User {
	for _, member := range members {
		if member.Role == models.OrgRoleOwner {
			if user, ok := usersByEmail[member.Email]; ok {
				return user
			}
		}
	}
	for _, member := range members {
		if user, ok := usersByEmail[member.Email]; ok {
			return user
		}
	}
	return nil
}

func (s *Seeder) ensureTask(
	project *models.Project,
	status models.TaskStatus,
	fix taskFixture,
	reporter *models.User,
	sprintsByName map[string]*models.Sprint,
	usersByEmail map[string]*models.User,
) (*models.Task, error) {
	existing, err := s.tasks.GetByProjectAndTitle(project.ID, fix.Title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	position, err := s.tasks.MaxPositionForStatus(status.ID)
	if err != nil {
		return nil, err
	}

	desc := fix.Description
	task := &models.Task{
		ProjectID:   project.ID,
		StatusID:    status.ID,
		Title:       fix.Title,
		Description: &desc,
		Priority:    fix.Priority,
		ReporterID:  reporter.ID,
		Position:    position + 1,
	}
	if sprint, ok := sprintsByName[fix.Sprint]; ok {
		task.SprintID = &sprint.ID
	}
	if assignee, ok := usersByEmail[fix.Assignee]; ok {
		task.AssigneeID = &assignee.ID
	}

	task.Prepare()
	if err := s.tasks.Create(task); err != nil {
		return nil, err
	}

	s.log.Infof("created task %q in %s", task.Title, project.Slug)
	return task, nil
}

// seedDependencies wires blocked-by edges between the project's tasks based
// on the phase their titles suggest.
func (s *Seeder) seedDependencies(tasks []*models.Task) {
	for _, blocked := range tasks {
		for _, blocker := range tasks {
			if blocker.ID == blocked.ID {
				continue
			}
			if !shouldCreateDependency(blocker.Title, blocked.Title) {
				continue
			}

			exists, err := s.tasks.HasDependency(blocked.ID, blocker.ID)
			if err != nil {
				s.log.Warnf("failed to check dependency for %q: %v", blocked.Title, err)
				continue
			}
			if exists {
				continue
			}

			dep := &models.TaskDependency{
				TaskID:      blocked.ID,
				DependsOnID: blocker.ID,
			}
			dep.Prepare()
			if err := s.tasks.AddDependency(dep); err != nil {
				s.log.Warnf("failed to add dependency %q -> %q: %v", blocked.Title, blocker.Title, err)
				continue
			}
			s.log.Infof("%q now blocked by %q", blocked.Title, blocker.Title)
		}
	}
}
