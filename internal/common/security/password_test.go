package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("12345")
	require.NoError(t, err)
	assert.NotEqual(t, "12345", hash)

	assert.True(t, CheckPasswordHash("12345", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestIsHashed(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	assert.True(t, IsHashed(hash))
	assert.False(t, IsHashed("secret"))
	assert.False(t, IsHashed(""))
}
