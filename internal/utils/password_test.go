package utils_test

import (
	"testing"

	"github.com/Hanifzan/auth_acl_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, utils.CheckPasswordHash("secret1", hash))
	assert.False(t, utils.CheckPasswordHash("secret2", hash))
	assert.False(t, utils.CheckPasswordHash("", hash))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := utils.HashPassword("secret1")
	require.NoError(t, err)
	second, err := utils.HashPassword("secret1")
	require.NoError(t, err)

	// bcrypt salts every hash; both must still verify.
	assert.NotEqual(t, first, second)
	assert.True(t, utils.CheckPasswordHash("secret1", first))
	assert.True(t, utils.CheckPasswordHash("secret1", second))
}
