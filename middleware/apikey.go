package middleware

import (
	"net/http"

	"blogapi/handlers"
)

// APIKey gates every route behind the x-api-key header. The metrics endpoint
// stays open for the scraper.
func APIKey(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}
			if r.Header.Get("x-api-key") != apiKey {
				handlers.RespondError(w, http.StatusUnauthorized, "invalid api key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
