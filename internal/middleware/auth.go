package middleware

import (
	"context"
	"net/http"

	"github.com/Souvik9205/KomyuLink/internal/auth/token"
)

// unexported, collision-proof context key
type userIDContextKeyType struct{}

var userIDKey = userIDContextKeyType{}

// UserIDFromContext extracts the authenticated user ID from context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// CookieName must match the cookie the auth handlers issue.
const CookieName = "token"

type AuthMiddleware struct {
	Tokens *token.Issuer
}

func NewAuthMiddleware(tokens *token.Issuer) *AuthMiddleware {
	return &AuthMiddleware{Tokens: tokens}
}

// RequireAuth rejects requests without a valid session token cookie.
// Validity is decided purely by signature and expiry; there is no
// server-side session state to consult.
func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil || cookie.Value == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		userID, err := a.Tokens.Parse(cookie.Value)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
