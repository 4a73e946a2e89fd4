package auth

import (
	"strings"
	"testing"
	"time"
)

func TestSignVerifyRoundtrip(t *testing.T) {
	tokens := NewTokenManager("secret", time.Hour)

	signed, err := tokens.Sign("user-1", "owner@example.com", "USER")
	if err != nil {
		t.Fatalf("signing: %v", err)
	}

	claims, err := tokens.Verify(signed)
	if err != nil {
		t.Fatalf("verifying: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "owner@example.com" || claims.Role != "USER" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signed, err := NewTokenManager("secret", time.Hour).Sign("user-1", "owner@example.com", "USER")
	if err != nil {
		t.Fatalf("signing: %v", err)
	}

	if _, err := NewTokenManager("other", time.Hour).Verify(signed); err == nil {
		t.Error("token signed with another secret was accepted")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	signed, err := NewTokenManager("secret", -time.Minute).Sign("user-1", "owner@example.com", "USER")
	if err != nil {
		t.Fatalf("signing: %v", err)
	}

	if _, err := NewTokenManager("secret", -time.Minute).Verify(signed); err == nil {
		t.Error("expired token was accepted")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tokens := NewTokenManager("secret", time.Hour)
	for _, token := range []string{"", "not-a-token", strings.Repeat("x", 200)} {
		if _, err := tokens.Verify(token); err == nil {
			t.Errorf("garbage token %q was accepted", token)
		}
	}
}
