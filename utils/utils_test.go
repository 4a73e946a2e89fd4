package utils

import (
	"net/http/httptest"
	"testing"
)

func TestIntFromString(t *testing.T) {
	tests := []struct {
		in           string
		defaultValue int
		want         int
	}{
		{"42", 0, 42},
		{"", 7, 7},
		{"abc", 7, 7},
		{"-3", 0, -3},
	}
	for _, tt := range tests {
		if got := IntFromString(tt.in, tt.defaultValue); got != tt.want {
			t.Errorf("IntFromString(%q, %d) = %d, want %d", tt.in, tt.defaultValue, got, tt.want)
		}
	}
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "9.9.9.9:1234"
	if got := ClientIP(r); got != "9.9.9.9" {
		t.Errorf("ClientIP = %q, want 9.9.9.9", got)
	}

	r.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8")
	if got := ClientIP(r); got != "1.2.3.4" {
		t.Errorf("ClientIP with forwarded header = %q, want 1.2.3.4", got)
	}
}
