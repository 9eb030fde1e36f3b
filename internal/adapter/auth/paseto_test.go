package auth

import (
	"testing"
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/MikeRez0/enrollment/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasetoToken(t *testing.T) {
	key := paseto.NewV4SymmetricKey()

	ts, err := New(key.ExportHex(), time.Hour)
	require.NoError(t, err)

	token, err := ts.CreateToken(&domain.User{ID: 42, IsAdmin: true})
	require.NoError(t, err)

	payload, err := ts.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), payload.UserID)
	assert.True(t, payload.IsAdmin)

	t.Run("same key verifies across instances", func(t *testing.T) {
		other, err := New(key.ExportHex(), time.Hour)
		require.NoError(t, err)
		_, err = other.VerifyToken(token)
		assert.NoError(t, err)
	})

	t.Run("other key rejects", func(t *testing.T) {
		other, err := New("", time.Hour)
		require.NoError(t, err)
		_, err = other.VerifyToken(token)
		assert.Equal(t, domain.ErrInvalidToken, err)
	})

	t.Run("garbage rejects", func(t *testing.T) {
		_, err := ts.VerifyToken("v4.local.garbage")
		assert.Equal(t, domain.ErrInvalidToken, err)
	})

	t.Run("expired rejects", func(t *testing.T) {
		short, err := New(key.ExportHex(), time.Millisecond)
		require.NoError(t, err)
		token, err := short.CreateToken(&domain.User{ID: 1})
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
		_, err = short.VerifyToken(token)
		assert.Equal(t, domain.ErrInvalidToken, err)
	})

	t.Run("bad config", func(t *testing.T) {
		_, err := New("zz", time.Hour)
		assert.Error(t, err)
		_, err = New("", 0)
		assert.Equal(t, domain.ErrTokenDuration, err)
	})
}
