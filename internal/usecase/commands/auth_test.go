//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"card-tracker/internal/pkg/clock"
	"card-tracker/internal/pkg/jwt"
	"card-tracker/internal/pkg/securekey"
	"card-tracker/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*fakeStore, *jwt.Service, commands.AuthCommands) {
	t.Helper()
	store := newFakeStore()
	jwtSvc := jwt.NewService("test-secret", time.Hour)
	uc := commands.NewAuthCommands(newFakeUoW(store), jwtSvc, clock.NewMockClock(testNow))
	return store, jwtSvc, uc
}

func TestAuthCommands_Login(t *testing.T) {
	t.Run("valid key yields an admin token", func(t *testing.T) {
		store, jwtSvc, uc := newAuthFixture(t)
		hash, err := securekey.HashKey("letmein")
		require.NoError(t, err)
		store.config["adminSecurityKey"] = hash

		token, err := uc.Login(context.Background(), "letmein")
		require.NoError(t, err)

		claims, err := jwtSvc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, jwt.SubjectAdmin, claims.Subject)
	})

	t.Run("wrong key", func(t *testing.T) {
		store, _, uc := newAuthFixture(t)
		hash, err := securekey.HashKey("letmein")
		require.NoError(t, err)
		store.config["adminSecurityKey"] = hash

		_, err = uc.Login(context.Background(), "wrong")
		assert.ErrorIs(t, err, commands.ErrInvalidSecurityKey)
	})

	t.Run("key not configured", func(t *testing.T) {
		_, _, uc := newAuthFixture(t)
		_, err := uc.Login(context.Background(), "anything")
		assert.ErrorIs(t, err, commands.ErrKeyNotConfigured)
	})
}
