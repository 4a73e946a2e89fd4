package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAPIKey(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := APIKey("top-secret")(next)

	tests := []struct {
		name       string
		path       string
		key        string
		wantStatus int
	}{
		{"valid key", "/api/posts", "top-secret", http.StatusOK},
		{"missing key", "/api/posts", "", http.StatusUnauthorized},
		{"wrong key", "/api/posts", "nope", http.StatusUnauthorized},
		{"metrics exempt", "/metrics", "", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.path, nil)
			if tt.key != "" {
				r.Header.Set("x-api-key", tt.key)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
