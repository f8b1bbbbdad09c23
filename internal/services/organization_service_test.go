package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planhub/planhub/internal/models"
)

func TestAddMemberRoleValidation(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "Olive Owner", "olive@example.com")
	org := env.createOrg(t, owner.ID, "Role Checks")

	admin := env.createUser(t, "Andre Admin", "andre@example.com")
	added, err := env.orgService.AddMember(owner.ID, org.ID, AddMemberRequest{Email: admin.Email, Role: models.OrgRoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, models.OrgRoleAdmin, added.Role)

	t.Run("unknown roles are rejected", func(t *testing.T) {
		stranger := env.createUser(t, "Sam Stranger", "sam@example.com")
		_, err := env.orgService.AddMember(owner.ID, org.ID, AddMemberRequest{Email: stranger.Email, Role: "superadmin"})
		assert.Error(t, err)
	})

	t.Run("admins cannot grant the owner role", func(t *testing.T) {
		target := env.createUser(t, "Tess Target", "tess@example.com")
		_, err := env.orgService.AddMember(admin.ID, org.ID, AddMemberRequest{Email: target.Email, Role: models.OrgRoleOwner})
		assert.Error(t, err)
	})

	t.Run("owners can grant the owner role", func(t *testing.T) {
		partner := env.createUser(t, "Pat Partner", "pat@example.com")
		coOwner, err := env.orgService.AddMember(owner.ID, org.ID, AddMemberRequest{Email: partner.Email, Role: models.OrgRoleOwner})
		require.NoError(t, err)
		assert.Equal(t, models.OrgRoleOwner, coOwner.Role)
	})

	t.Run("empty role defaults to member", func(t *testing.T) {
		quinn := env.createUser(t, "Quinn Quiet", "quinn@example.com")
		member, err := env.orgService.AddMember(owner.ID, org.ID, AddMemberRequest{Email: quinn.Email})
		require.NoError(t, err)
		assert.Equal(t, models.OrgRoleMember, member.Role)
	})
}
