package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestTokenExpiry_WithExp(t *testing.T) {
	exp := time.Unix(1_900_000_000, 0)
	tok := signedToken(t, jwt.MapClaims{"sub": "admin", "exp": exp.Unix()})

	got, ok := TokenExpiry(tok)

	if !ok {
		t.Fatal("expected ok=true")
	}
	if !got.Equal(exp) {
		t.Errorf("expected %s, got %s", exp, got)
	}
}

func TestTokenExpiry_Undecodable(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt"},
		{"bad base64 payload", "aaa.%%%.bbb"},
		{"no exp claim", signedToken(t, jwt.MapClaims{"sub": "admin"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := TokenExpiry(tt.token); ok {
				t.Error("expected ok=false")
			}
		})
	}
}

func TestTokenExpired(t *testing.T) {
	now := time.Unix(1_800_000_000, 0)

	past := signedToken(t, jwt.MapClaims{"exp": now.Add(-time.Minute).Unix()})
	future := signedToken(t, jwt.MapClaims{"exp": now.Add(time.Minute).Unix()})

	if !TokenExpired(past, now) {
		t.Error("expected past token to be expired")
	}
	if TokenExpired(future, now) {
		t.Error("expected future token to be valid")
	}
	if TokenExpired(signedToken(t, jwt.MapClaims{"exp": now.Unix()}), now) {
		t.Error("expected a token expiring exactly now to be valid")
	}
	if TokenExpired("malformed", now) {
		t.Error("expected malformed token to fail open")
	}
}
