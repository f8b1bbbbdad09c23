package seeder

import (
	"github.com/planhub/planhub/internal/models"
)

// seedComments adds the fixture comments once; the author is the assignee
// when set, which also registers them as a watcher via the usual flow.
func (s *Seeder) seedComments(task *models.Task, fix taskFixture, usersByEmail map[string]*models.User) {
	if len(fix.Comments) == 0 {
		return
	}

	count, err := s.comments.CountByTask(task.ID)
	if err != nil {
		s.log.Warnf("failed to count comments for %q: %v", task.Title, err)
		return
	}
	if count > 0 {
		return
	}

	author, ok := usersByEmail[fix.Assignee]
	if !ok {
		author = usersByEmail[adminEmail]
	}
	if author == nil {
		return
	}

	for _, body := range fix.Comments {
		comment := &models.Comment{
			TaskID:   task.ID,
			AuthorID: author.ID,
			Body:     body,
		}
		comment.Prepare()
		if err := s.comments.Create(comment); err != nil {
			s.log.Warnf("failed to add comment on %q: %v", task.Title, err)
		}
	}
}

func (s *Seeder) seedTaskLabels(task *models.Task, labelFixes []labelFixture, labelsByName map[string]*models.Label) {
	for _, name := range labelsForTask(labelFixes, task.Title) {
		label, ok := labelsByName[name]
		if !ok {
			continue
		}
		if err := s.labels.AssignToTask(task.ID, label.ID); err != nil {
			s.log.Warnf("failed to label %q with %s: %v", task.Title, name, err)
		}
	}
}

func (s *Seeder) seedWatchers(task *models.Task, members []memberFixture, usersByEmail map[string]*models.User) {
	for _, watcherEmail := range determineWatchers(task.Title, members) {
		user, ok := usersByEmail[watcherEmail]
		if !ok {
			continue
		}
		if err := s.tasks.AddWatcher(task.ID, user.ID); err != nil {
			s.log.Warnf("failed to add watcher %s on %q: %v", watcherEmail, task.Title, err)
		}
	}
}

// seedTimeEntries logs random work against assigned tasks.
func (s *Seeder) seedTimeEntries(task *models.Task) {
	if task.AssigneeID == nil {
		return
	}

	count, err := s.timeEntries.CountByTask(task.ID)
	if err != nil {
		s.log.Warnf("failed to count time entries for %q: %v", task.Title, err)
		return
	}
	if count > 0 {
		return
	}

	for _, entry := range randomTimeEntries(s.rng, task.ID, *task.AssigneeID) {
		entry := entry
		entry.Prepare()
		if err := s.timeEntries.Create(&entry); err != nil {
			s.log.Warnf("failed to log time on %q: %v", task.Title, err)
		}
	}
}
