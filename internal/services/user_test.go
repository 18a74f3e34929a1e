package services

import (
	"context"
	"testing"
	"time"

	"slotswapper/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetByID(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo(&domain.User{ID: "user-1", Name: "Alice", Email: "alice@example.com"})
	svc := NewUserService(users, 5*time.Second)

	t.Run("found", func(t *testing.T) {
		user, err := svc.GetByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "Alice", user.Name)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "user-missing")
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
