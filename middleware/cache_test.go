package middleware

import "testing"

func TestScopeFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/posts", "posts"},
		{"/api/posts/abc", "posts"},
		{"/api/notes/interaction/guest", "notes"},
		{"/api/tags/xyz", "tags"},
		{"/api/comments", "posts"},
		{"/api/users/signin", ""},
		{"/api/bookmarks/guest", ""},
		{"/metrics", ""},
	}
	for _, tt := range tests {
		if got := scopeFromPath(tt.path); got != tt.want {
			t.Errorf("scopeFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
