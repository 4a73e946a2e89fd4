package handlers

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestPreview(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short stays whole", "nice post", "nice post"},
		{"long ascii truncated", strings.Repeat("a", 100), strings.Repeat("a", 80) + "..."},
		{"multibyte truncated on rune boundary", strings.Repeat("é", 100), strings.Repeat("é", 80) + "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := preview(tt.in)
			if got != tt.want {
				t.Errorf("preview = %q, want %q", got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("preview produced invalid UTF-8: %q", got)
			}
		})
	}
}
