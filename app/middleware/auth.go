package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"pressroom/app/auth"
)

type contextKey string

const principalKey contextKey = "principal"

// RequireAuth gates a handler behind bearer-token verification. On failure
// the request short-circuits with a 401 and the verification reason; on
// success the principal is placed on the request context.
func RequireAuth(gateway *auth.Gateway) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := gateway.VerifyHeader(r.Header.Get("Authorization"))
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer realm="admin"`)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
				return
			}
			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalFrom returns the authenticated principal stored on the context,
// or nil for unauthenticated requests.
func PrincipalFrom(ctx context.Context) *auth.Principal {
	principal, _ := ctx.Value(principalKey).(*auth.Principal)
	return principal
}
