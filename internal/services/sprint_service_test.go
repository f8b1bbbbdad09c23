package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planhub/planhub/internal/models"
)

func TestSprintLifecycle(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "Sasha Scrum", "sasha@example.com")
	fx := env.createProject(t, owner.ID)

	sprint, err := env.sprintService.CreateSprint(owner.ID, fx.Project.ID, CreateSprintRequest{Name: "Sprint 1"})
	require.NoError(t, err)
	assert.Equal(t, models.SprintStatePlanned, sprint.State)

	t.Run("only active sprints can complete", func(t *testing.T) {
		_, err := env.sprintService.CompleteSprint(owner.ID, sprint.ID)
		assert.Error(t, err)
	})

	t.Run("start transitions planned to active", func(t *testing.T) {
		started, err := env.sprintService.StartSprint(owner.ID, sprint.ID)
		require.NoError(t, err)
		assert.Equal(t, models.SprintStateActive, started.State)
		assert.NotNil(t, started.StartsAt)

		// Starting twice is rejected.
		_, err = env.sprintService.StartSprint(owner.ID, sprint.ID)
		assert.Error(t, err)
	})

	t.Run("complete detaches unfinished tasks", func(t *testing.T) {
		done := env.doneStatus(t, fx.Project.WorkflowID)

		finished, err := env.taskService.CreateTask(owner.ID, fx.Project.ID, CreateTaskRequest{
			Title:    "Finished work",
			SprintID: &sprint.ID,
			StatusID: &done.ID,
		})
		require.NoError(t, err)
		leftover, err := env.taskService.CreateTask(owner.ID, fx.Project.ID, CreateTaskRequest{
			Title:    "Leftover work",
			SprintID: &sprint.ID,
		})
		require.NoError(t, err)

		completed, err := env.sprintService.CompleteSprint(owner.ID, sprint.ID)
		require.NoError(t, err)
		assert.Equal(t, models.SprintStateCompleted, completed.State)

		// The unfinished task returns to the backlog, the done one stays.
		backlogged, err := env.taskService.GetTask(owner.ID, leftover.ID)
		require.NoError(t, err)
		assert.Nil(t, backlogged.SprintID)

		kept, err := env.taskService.GetTask(owner.ID, finished.ID)
		require.NoError(t, err)
		require.NotNil(t, kept.SprintID)
		assert.Equal(t, sprint.ID, *kept.SprintID)
	})

	t.Run("completed sprints are terminal", func(t *testing.T) {
		_, err := env.sprintService.StartSprint(owner.ID, sprint.ID)
		assert.Error(t, err)
		_, err = env.sprintService.CompleteSprint(owner.ID, sprint.ID)
		assert.Error(t, err)
		_, err = env.sprintService.UpdateSprint(owner.ID, sprint.ID, UpdateSprintRequest{})
		assert.Error(t, err)
	})
}
