package middleware

import (
	"net/http"
	"strings"

	"blogapi/cache"
)

// CacheInvalidation evicts the cached responses of the entity a write
// touched. GET requests pass through untouched.
func CacheInvalidation(responses *cache.ResponseCache) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				if scope := scopeFromPath(r.URL.Path); scope != "" {
					responses.Invalidate(r.Context(), scope)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// scopeFromPath maps /api/<entity>/... to the cache scope of that entity.
// Comments live under the posts scope since they render inside posts.
func scopeFromPath(path string) string {
	parts := strings.Split(strings.TrimPrefix(path, "/api/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		return ""
	}
	switch parts[0] {
	case "comments":
		return "posts"
	case "posts", "notes", "tags":
		return parts[0]
	}
	return ""
}
