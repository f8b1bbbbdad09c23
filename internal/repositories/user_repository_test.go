package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planhub/planhub/internal/models"
)

func TestUserRepository(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewUserRepository(pool)

	user := &models.User{
		Name:         "Ava Martinez",
		Email:        "ava@example.com",
		PasswordHash: "hash",
		Role:         "user",
	}
	require.NoError(t, repo.Create(user))
	require.NotEqual(t, user.ID.String(), "00000000-0000-0000-0000-000000000000")

	t.Run("find by email", func(t *testing.T) {
		found, err := repo.FindUserByEmail("ava@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, "Ava Martinez", found.Name)
	})

	t.Run("missing email returns nil without error", func(t *testing.T) {
		found, err := repo.FindUserByEmail("nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("find by id", func(t *testing.T) {
		found, err := repo.FindUserByID(user.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "ava@example.com", found.Email)
	})

	t.Run("count", func(t *testing.T) {
		count, err := repo.CountUsers()
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		dup := &models.User{Name: "Other", Email: "ava@example.com", PasswordHash: "hash", Role: "user"}
		assert.Error(t, repo.Create(dup))
	})

	t.Run("update last login", func(t *testing.T) {
		require.NoError(t, repo.UpdateLastLogin(user.ID))
		found, err := repo.FindUserByID(user.ID)
		require.NoError(t, err)
		assert.NotNil(t, found.LastLoginAt)
	})

	t.Run("delete by email", func(t *testing.T) {
		require.NoError(t, repo.DeleteByEmail("ava@example.com"))
		found, err := repo.FindUserByEmail("ava@example.com")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}
