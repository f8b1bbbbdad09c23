package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planhub/planhub/internal/models"
)

func TestStatusManagement(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "Flo Flow", "flo@example.com")
	fx := env.createProject(t, owner.ID)

	statuses, err := env.workflows.ListStatuses(fx.Project.WorkflowID)
	require.NoError(t, err)
	require.NotEmpty(t, statuses)

	t.Run("reorder rejects duplicate ids", func(t *testing.T) {
		ids := make([]uuid.UUID, len(statuses))
		for i, status := range statuses {
			ids[i] = status.ID
		}
		ids[len(ids)-1] = ids[0]

		err := env.workflowService.ReorderStatuses(owner.ID, fx.Project.WorkflowID, ids)
		assert.Error(t, err)

		// No positions were clobbered by the rejected request.
		unchanged, err := env.workflows.ListStatuses(fx.Project.WorkflowID)
		require.NoError(t, err)
		for i, status := range unchanged {
			assert.Equal(t, statuses[i].ID, status.ID)
		}
	})

	t.Run("reorder rewrites positions", func(t *testing.T) {
		ids := make([]uuid.UUID, len(statuses))
		for i, status := range statuses {
			ids[len(ids)-1-i] = status.ID
		}

		require.NoError(t, env.workflowService.ReorderStatuses(owner.ID, fx.Project.WorkflowID, ids))

		reordered, err := env.workflows.ListStatuses(fx.Project.WorkflowID)
		require.NoError(t, err)
		for i, status := range reordered {
			assert.Equal(t, ids[i], status.ID)
		}
	})

	t.Run("create status validates category", func(t *testing.T) {
		_, err := env.workflowService.CreateStatus(owner.ID, fx.Project.WorkflowID, CreateStatusRequest{
			Name:     "Blocked",
			Category: "stalled",
		})
		assert.Error(t, err)

		status, err := env.workflowService.CreateStatus(owner.ID, fx.Project.WorkflowID, CreateStatusRequest{
			Name:     "Blocked",
			Category: models.StatusCategoryInProgress,
		})
		require.NoError(t, err)
		assert.Equal(t, models.StatusCategoryInProgress, status.Category)
	})
}
