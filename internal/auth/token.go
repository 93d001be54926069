package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v4"
)

var ErrInvalidToken = errors.New("invalid auth token")

// TokenPayload is the member identity carried by an auth token.
type TokenPayload struct {
	MemberID uint64
}

type tokenClaims struct {
	jwt.RegisteredClaims
	MemberID uint64 `json:"member_id"`
}

// AuthToken verifies member tokens minted by the identity service. This
// service never issues tokens itself.
type AuthToken struct {
	key []byte
}

// NewAuthToken creates new AuthToken instance
func NewAuthToken(key []byte) *AuthToken {
	return &AuthToken{key: key}
}

// VerifyToken validates the token signature and returns its payload.
func (t *AuthToken) VerifyToken(tokenString string) (*TokenPayload, error) {
	claims := tokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.key, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.MemberID == 0 {
		return nil, ErrInvalidToken
	}

	return &TokenPayload{MemberID: claims.MemberID}, nil
}
