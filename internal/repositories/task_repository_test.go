package repositories

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planhub/planhub/internal/models"
)

func TestTaskRepository(t *testing.T) {
	pool := setupTestPool(t)
	chain := createProjectChain(t, pool)
	repo := NewTaskRepository(pool)

	todo := chain.Statuses[0]
	doing := chain.Statuses[1]

	newTask := func(title string) *models.Task {
		return &models.Task{
			ProjectID:  chain.Project.ID,
			StatusID:   todo.ID,
			Title:      title,
			Priority:   models.PriorityMedium,
			ReporterID: chain.User.ID,
		}
	}

	first := newTask("Design schema")
	require.NoError(t, repo.Create(first))
	second := newTask("Implement API")
	second.Position = 1
	require.NoError(t, repo.Create(second))

	t.Run("get by id", func(t *testing.T) {
		found, err := repo.GetByID(first.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Design schema", found.Title)
		assert.Equal(t, models.PriorityMedium, found.Priority)
	})

	t.Run("get by project and title", func(t *testing.T) {
		found, err := repo.GetByProjectAndTitle(chain.Project.ID, "Implement API")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, second.ID, found.ID)

		missing, err := repo.GetByProjectAndTitle(chain.Project.ID, "No such task")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("list with filters", func(t *testing.T) {
		all, err := repo.ListByProject(chain.Project.ID, TaskFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 2)

		byStatus, err := repo.ListByProject(chain.Project.ID, TaskFilter{StatusID: &todo.ID})
		require.NoError(t, err)
		assert.Len(t, byStatus, 2)

		bySearch, err := repo.ListByProject(chain.Project.ID, TaskFilter{Search: "schema"})
		require.NoError(t, err)
		require.Len(t, bySearch, 1)
		assert.Equal(t, first.ID, bySearch[0].ID)
	})

	t.Run("max position per status", func(t *testing.T) {
		maxPos, err := repo.MaxPositionForStatus(todo.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, maxPos)

		empty, err := repo.MaxPositionForStatus(doing.ID)
		require.NoError(t, err)
		assert.Equal(t, -1, empty)
	})

	t.Run("move", func(t *testing.T) {
		require.NoError(t, repo.Move(second.ID, doing.ID, 0))
		found, err := repo.GetByID(second.ID)
		require.NoError(t, err)
		assert.Equal(t, doing.ID, found.StatusID)
		assert.Equal(t, 0, found.Position)
	})

	t.Run("assign and unassign", func(t *testing.T) {
		require.NoError(t, repo.Assign(first.ID, &chain.User.ID))
		found, err := repo.GetByID(first.ID)
		require.NoError(t, err)
		require.NotNil(t, found.AssigneeID)
		assert.Equal(t, chain.User.ID, *found.AssigneeID)

		require.NoError(t, repo.Assign(first.ID, nil))
		found, err = repo.GetByID(first.ID)
		require.NoError(t, err)
		assert.Nil(t, found.AssigneeID)
	})

	t.Run("dependencies", func(t *testing.T) {
		dep := &models.TaskDependency{TaskID: second.ID, DependsOnID: first.ID}
		require.NoError(t, repo.AddDependency(dep))

		has, err := repo.HasDependency(second.ID, first.ID)
		require.NoError(t, err)
		assert.True(t, has)

		deps, err := repo.ListDependencies(second.ID)
		require.NoError(t, err)
		require.Len(t, deps, 1)
		assert.Equal(t, first.ID, deps[0].DependsOnID)

		// Self-dependency violates the table check constraint.
		self := &models.TaskDependency{TaskID: first.ID, DependsOnID: first.ID}
		assert.Error(t, repo.AddDependency(self))
	})

	t.Run("watchers", func(t *testing.T) {
		require.NoError(t, repo.AddWatcher(first.ID, chain.User.ID))
		// Adding twice is a no-op.
		require.NoError(t, repo.AddWatcher(first.ID, chain.User.ID))

		watchers, err := repo.ListWatchers(first.ID)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{chain.User.ID}, watchers)

		require.NoError(t, repo.RemoveWatcher(first.ID, chain.User.ID))
		watchers, err = repo.ListWatchers(first.ID)
		require.NoError(t, err)
		assert.Empty(t, watchers)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(second.ID))
		found, err := repo.GetByID(second.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}
