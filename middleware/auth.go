package middleware

import (
	"net/http"
	"strings"

	"blogapi/auth"
	"blogapi/handlers"
	"blogapi/repositories"
)

// Auth verifies the Bearer token and checks the subject still exists before
// letting a user-scoped request through.
func Auth(tokens *auth.TokenManager, users *repositories.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				handlers.RespondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				handlers.RespondError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			user, err := users.Get(r.Context(), claims.UserID)
			if err != nil || user.Email != claims.Email {
				handlers.RespondError(w, http.StatusUnauthorized, "unknown user")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
		})
	}
}
