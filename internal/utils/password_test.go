package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("rahasia-123", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "rahasia-123", hash)

	require.True(t, VerifyPassword(hash, "rahasia-123"))
	require.False(t, VerifyPassword(hash, "salah"))
	require.False(t, VerifyPassword("not-a-bcrypt-hash", "rahasia-123"))
}
