package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/veripay/partner-gateway/internal/api/httpx"
	"github.com/veripay/partner-gateway/internal/auth"
)

type opsUserKey struct{}

func OpsUser(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(opsUserKey{}).(string)
	return v, ok
}

type AuthMiddleware struct {
	TM *auth.TokenManager
}

func NewAuthMiddleware(tm *auth.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{TM: tm}
}

// RequireToken guards the operator routes with a Bearer JWT. Partner
// submissions never pass through here; they carry their own credentials
// in the request body.
func (m *AuthMiddleware) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ah := r.Header.Get("Authorization")
		if ah == "" || !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token", nil)
			return
		}
		token := strings.TrimSpace(ah[len("Bearer "):])
		claims, err := m.TM.Parse(token)
		if err != nil {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid token", nil)
			return
		}
		ctx := context.WithValue(r.Context(), opsUserKey{}, claims.User)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
