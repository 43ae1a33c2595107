package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("isslametmetmet")
	require.NoError(t, err)

	assert.NotEqual(t, "isslametmetmet", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	assert.True(t, VerifyPassword(hash, "isslametmetmet"))
	assert.False(t, VerifyPassword(hash, "wrongpass"))
	assert.False(t, VerifyPassword(hash, ""))
}

func TestHashIsSalted(t *testing.T) {
	h1, err := HashPassword("same")
	require.NoError(t, err)
	h2, err := HashPassword("same")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
