package http

import (
	"net/http"
	"strings"

	"locmaq-backend/internal/logger"
	"locmaq-backend/internal/security"

	"github.com/gorilla/mux"
)

// AuthMiddleware verifies the bearer ID token on every request and stores the
// resolved identity in the request context.
func AuthMiddleware(verifier security.TokenVerifier) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
				return
			}

			identity, err := verifier.Verify(r.Context(), token)
			if err != nil {
				logger.Debug("Token verification failed", "error", err)
				respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid token"})
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// RequireAdmin gates a handler behind the admin claim.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFrom(r.Context())
		if !ok || !identity.Admin {
			respondJSON(w, http.StatusForbidden, errorResponse{Error: "admin access required"})
			return
		}
		next(w, r)
	}
}
