package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyTokens(t *testing.T) {
	SetTokenSecrets("access-test-secret", "refresh-test-secret")

	userID := uuid.New()
	access, refresh, jti, err := GenerateTokens(userID)
	require.NoError(t, err)
	require.NotEmpty(t, jti)

	accessClaims, err := VerifyJWT(access, AccessSecret())
	require.NoError(t, err)
	assert.Equal(t, userID.String(), accessClaims.Subject)
	assert.Equal(t, jti, accessClaims.ID)

	refreshClaims, err := VerifyJWT(refresh, RefreshSecret())
	require.NoError(t, err)
	assert.Equal(t, userID.String(), refreshClaims.Subject)

	// Access and refresh tokens share the same JTI.
	assert.Equal(t, accessClaims.ID, refreshClaims.ID)
}

func TestTokensSignedWithConfiguredSecrets(t *testing.T) {
	SetTokenSecrets("first-access", "first-refresh")

	access, _, _, err := GenerateTokens(uuid.New())
	require.NoError(t, err)

	// Rotating the secret invalidates previously issued tokens.
	SetTokenSecrets("second-access", "second-refresh")
	_, err = VerifyJWT(access, AccessSecret())
	assert.Error(t, err)

	_, err = VerifyJWT(access, []byte("first-access"))
	assert.NoError(t, err)
}

func TestVerifyJWTRejectsWrongSecret(t *testing.T) {
	SetTokenSecrets("access-test-secret", "refresh-test-secret")

	access, _, _, err := GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = VerifyJWT(access, []byte("another-secret"))
	assert.Error(t, err)
}

func TestVerifyJWTRejectsGarbage(t *testing.T) {
	_, err := VerifyJWT("not.a.token", []byte("secret"))
	assert.Error(t, err)
}
