package middleware

import (
	"context"
	"net/http"

	"github.com/koperasi/coopmart/internal/auth"
)

type contextKey int

const (
	contextKeyMemberID contextKey = iota
)

// TokenVerifier validates member auth tokens.
type TokenVerifier interface {
	VerifyToken(tokenString string) (*auth.TokenPayload, error)
}

// Auth gets the token from the cookie and puts the member id into the context.
func Auth(ts TokenVerifier) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("auth_token")
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			payload, err := ts.VerifyToken(cookie.Value)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithMemberID(r.Context(), payload.MemberID)))
		})
	}
}

// WithMemberID returns ctx carrying the authenticated member id.
func WithMemberID(ctx context.Context, memberID uint64) context.Context {
	return context.WithValue(ctx, contextKeyMemberID, memberID)
}

// MemberID extracts the authenticated member id from ctx.
func MemberID(ctx context.Context) (uint64, bool) {
	memberID, ok := ctx.Value(contextKeyMemberID).(uint64)
	return memberID, ok
}
