package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_IssueAndVerify(t *testing.T) {
	manager := NewJWTManager("test-secret")

	token, err := manager.Issue("user-123", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestJWTManager_Verify_Errors(t *testing.T) {
	manager := NewJWTManager("test-secret")

	t.Run("garbage token", func(t *testing.T) {
		_, err := manager.Verify("not.a.jwt")
		require.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTManager("other-secret")
		token, err := other.Issue("user-123", time.Hour)
		require.NoError(t, err)

		_, err = manager.Verify(token)
		require.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := manager.Issue("user-123", -time.Minute)
		require.NoError(t, err)

		_, err = manager.Verify(token)
		require.Error(t, err)
	})

	t.Run("empty subject", func(t *testing.T) {
		token, err := manager.Issue("", time.Hour)
		require.NoError(t, err)

		_, err = manager.Verify(token)
		require.Error(t, err)
	})
}
