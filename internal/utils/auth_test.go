package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := Hash("s3cret-password")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(hash), "argon2id$v=19$"))
	assert.NoError(t, VerifyPassword(string(hash), "s3cret-password"))
	assert.Error(t, VerifyPassword(string(hash), "wrong-password"))
}

func TestHashIsSalted(t *testing.T) {
	a, err := Hash("same-password")
	require.NoError(t, err)
	b, err := Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, string(a), string(b))
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	assert.Error(t, VerifyPassword("not-a-hash", "whatever"))
	assert.Error(t, VerifyPassword("argon2id$v=19$m=65536,t=1,p=4$!!!$!!!", "whatever"))
}
