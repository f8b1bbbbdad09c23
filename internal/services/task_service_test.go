package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDependencyCycleRules(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "Rita Reporter", "rita@example.com")
	fx := env.createProject(t, owner.ID)

	blocker, err := env.taskService.CreateTask(owner.ID, fx.Project.ID, CreateTaskRequest{Title: "Design schema"})
	require.NoError(t, err)
	blocked, err := env.taskService.CreateTask(owner.ID, fx.Project.ID, CreateTaskRequest{Title: "Implement API"})
	require.NoError(t, err)

	t.Run("self-dependency rejected", func(t *testing.T) {
		_, err := env.taskService.AddDependency(owner.ID, blocked.ID, AddDependencyRequest{DependsOnID: blocked.ID})
		assert.Error(t, err)
	})

	t.Run("reverse edge rejected", func(t *testing.T) {
		_, err := env.taskService.AddDependency(owner.ID, blocked.ID, AddDependencyRequest{DependsOnID: blocker.ID})
		require.NoError(t, err)

		// The opposite edge would close a cycle.
		_, err = env.taskService.AddDependency(owner.ID, blocker.ID, AddDependencyRequest{DependsOnID: blocked.ID})
		assert.Error(t, err)

		deps, err := env.taskService.ListDependencies(owner.ID, blocker.ID)
		require.NoError(t, err)
		assert.Empty(t, deps)
	})
}

func TestTaskCollaboration(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "Wes Writer", "wes@example.com")
	fx := env.createProject(t, owner.ID)

	task, err := env.taskService.CreateTask(owner.ID, fx.Project.ID, CreateTaskRequest{Title: "Write docs"})
	require.NoError(t, err)

	colleague := env.createUser(t, "Cara Colleague", "cara@example.com")
	_, err = env.orgService.AddMember(owner.ID, fx.Org.ID, AddMemberRequest{Email: colleague.Email})
	require.NoError(t, err)

	t.Run("comments can only be deleted by their author", func(t *testing.T) {
		comment, err := env.taskService.AddComment(owner.ID, task.ID, CreateCommentRequest{Body: "First pass done."})
		require.NoError(t, err)

		err = env.taskService.DeleteComment(colleague.ID, task.ID, comment.ID)
		assert.Error(t, err)

		require.NoError(t, env.taskService.DeleteComment(owner.ID, task.ID, comment.ID))
		comments, err := env.taskService.ListComments(owner.ID, task.ID)
		require.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Run("time entries sum and are owner-deletable", func(t *testing.T) {
		mine, err := env.taskService.AddTimeEntry(owner.ID, task.ID, CreateTimeEntryRequest{
			StartedAt:       time.Now(),
			DurationMinutes: 30,
		})
		require.NoError(t, err)
		_, err = env.taskService.AddTimeEntry(colleague.ID, task.ID, CreateTimeEntryRequest{
			StartedAt:       time.Now(),
			DurationMinutes: 45,
		})
		require.NoError(t, err)

		report, err := env.taskService.ListTimeEntries(owner.ID, task.ID)
		require.NoError(t, err)
		assert.Len(t, report.Entries, 2)
		assert.Equal(t, int64(75), report.TotalMinutes)

		err = env.taskService.DeleteTimeEntry(colleague.ID, task.ID, mine.ID)
		assert.Error(t, err)

		require.NoError(t, env.taskService.DeleteTimeEntry(owner.ID, task.ID, mine.ID))
		report, err = env.taskService.ListTimeEntries(owner.ID, task.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(45), report.TotalMinutes)
	})

	t.Run("deleting a label detaches it from tasks", func(t *testing.T) {
		label, err := env.projectService.CreateLabel(owner.ID, fx.Project.ID, CreateLabelRequest{Name: "docs"})
		require.NoError(t, err)
		require.NoError(t, env.taskService.AddLabel(owner.ID, task.ID, label.ID))

		require.NoError(t, env.projectService.DeleteLabel(owner.ID, fx.Project.ID, label.ID))

		labels, err := env.projectService.ListLabels(owner.ID, fx.Project.ID)
		require.NoError(t, err)
		assert.Empty(t, labels)

		taskLabels, err := env.taskService.ListLabels(owner.ID, task.ID)
		require.NoError(t, err)
		assert.Empty(t, taskLabels)
	})
}
