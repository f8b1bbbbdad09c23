package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planhub/planhub/internal/models"
)

func TestWorkspaceAddMemberRoleValidation(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "Wanda Workspace", "wanda@example.com")
	org := env.createOrg(t, owner.ID, "Workspace Roles")

	ws, err := env.workspaceService.CreateWorkspace(owner.ID, org.ID, CreateWorkspaceRequest{Name: "Main"})
	require.NoError(t, err)

	colleague := env.createUser(t, "Max Member", "max@example.com")
	_, err = env.orgService.AddMember(owner.ID, org.ID, AddMemberRequest{Email: colleague.Email})
	require.NoError(t, err)

	t.Run("unknown roles are rejected", func(t *testing.T) {
		_, err := env.workspaceService.AddMember(owner.ID, ws.ID, colleague.ID, "superuser")
		assert.Error(t, err)
	})

	t.Run("owner is not a workspace role", func(t *testing.T) {
		_, err := env.workspaceService.AddMember(owner.ID, ws.ID, colleague.ID, models.OrgRoleOwner)
		assert.Error(t, err)
	})

	t.Run("empty role defaults to member", func(t *testing.T) {
		member, err := env.workspaceService.AddMember(owner.ID, ws.ID, colleague.ID, "")
		require.NoError(t, err)
		assert.Equal(t, models.OrgRoleMember, member.Role)
	})
}
