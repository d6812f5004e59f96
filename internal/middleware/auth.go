package middleware

import (
	"context"
	"net/http"
	"strings"

	"mernify-backend/internal/token"
)

// unexported, collision-proof context key
type claimsContextKeyType struct{}

var claimsKey = claimsContextKeyType{}

// ClaimsFromContext extracts the verified access-token claims from context.
func ClaimsFromContext(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*token.Claims)
	return claims, ok
}

// Verifier checks an access token against the signing key.
type Verifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

// AuthMiddleware is the stateless access gate. It consults only the
// signing key, never the credential store.
type AuthMiddleware struct {
	Verifier Verifier
}

func NewAuthMiddleware(v Verifier) *AuthMiddleware {
	return &AuthMiddleware{Verifier: v}
}

func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Extract bearer token
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			writeJSONError(w, http.StatusUnauthorized, "Authorization token missing")
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")

		// 2. Verify signature and expiry
		claims, err := a.Verifier.Verify(raw)
		if err != nil {
			writeJSONError(w, http.StatusForbidden, "Invalid token")
			return
		}

		// 3. Attach claims to context
		ctx := context.WithValue(r.Context(), claimsKey, claims)

		// 4. Continue request
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + msg + `"}`))
}
