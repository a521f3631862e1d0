package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticResolver(t *testing.T) {
	r := &StaticResolver{UserID: "user_123"}
	ctx := context.Background()

	t.Run("any non-empty credential maps to the fixed id", func(t *testing.T) {
		id, err := r.Resolve(ctx, "whatever")
		assert.NoError(t, err)
		assert.Equal(t, "user_123", id)

		id, err = r.Resolve(ctx, "something-else")
		assert.NoError(t, err)
		assert.Equal(t, "user_123", id)
	})

	t.Run("empty credential rejected", func(t *testing.T) {
		_, err := r.Resolve(ctx, "")
		assert.ErrorIs(t, err, ErrMissingCredentials)
	})
}

func TestJWTResolver(t *testing.T) {
	secret := []byte("test-secret")
	r := &JWTResolver{Secret: secret}
	ctx := context.Background()

	t.Run("valid token", func(t *testing.T) {
		token, err := GenerateToken("user_042", secret, time.Hour)
		require.NoError(t, err)

		id, err := r.Resolve(ctx, token)
		assert.NoError(t, err)
		assert.Equal(t, "user_042", id)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := GenerateToken("user_042", secret, -time.Minute)
		require.NoError(t, err)

		_, err = r.Resolve(ctx, token)
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := GenerateToken("user_042", []byte("other-secret"), time.Hour)
		require.NoError(t, err)

		_, err = r.Resolve(ctx, token)
		assert.Error(t, err)
	})

	t.Run("garbage credential", func(t *testing.T) {
		_, err := r.Resolve(ctx, "not-a-token")
		assert.Error(t, err)
	})

	t.Run("empty credential rejected", func(t *testing.T) {
		_, err := r.Resolve(ctx, "")
		assert.ErrorIs(t, err, ErrMissingCredentials)
	})
}
