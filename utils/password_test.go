package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogm710811/stem-cell-API/utils"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("super-secret")
	require.NoError(t, err)

	assert.NotEqual(t, "super-secret", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))
	assert.True(t, utils.CheckPassword(hash, "super-secret"))
	assert.False(t, utils.CheckPassword(hash, "not-the-password"))
}

func TestHashPasswordSaltsEachHash(t *testing.T) {
	first, err := utils.HashPassword("super-secret")
	require.NoError(t, err)
	second, err := utils.HashPassword("super-secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
