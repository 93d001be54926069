package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, key []byte, memberID uint64, expiresAt time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		MemberID: memberID,
	})
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestVerifyToken(t *testing.T) {
	key := []byte("0123456789abcdef")
	at := NewAuthToken(key)

	t.Run("valid token", func(t *testing.T) {
		payload, err := at.VerifyToken(signToken(t, key, 7, time.Now().Add(time.Hour)))
		require.NoError(t, err)
		assert.Equal(t, uint64(7), payload.MemberID)
	})

	t.Run("expired token", func(t *testing.T) {
		_, err := at.VerifyToken(signToken(t, key, 7, time.Now().Add(-time.Hour)))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong key", func(t *testing.T) {
		_, err := at.VerifyToken(signToken(t, []byte("another-key-0000"), 7, time.Now().Add(time.Hour)))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("zero member id", func(t *testing.T) {
		_, err := at.VerifyToken(signToken(t, key, 0, time.Now().Add(time.Hour)))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := at.VerifyToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
