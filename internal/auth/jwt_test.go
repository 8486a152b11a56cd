package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newTestAuthenticator() *JWTAuthenticator {
	return NewJWTAuthenticator("access-secret", "refresh-secret",
		15*time.Minute, 72*time.Hour, "evently", "evently")
}

func TestGenerateAndValidateTokens(t *testing.T) {
	a := newTestAuthenticator()

	access, refresh, err := a.GenerateTokens(42, "admin")
	if err != nil {
		t.Fatalf("GenerateTokens: %v", err)
	}
	if access == refresh {
		t.Fatal("access and refresh tokens are identical")
	}

	tok, err := a.ValidateAccessToken(access)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if claims["role"] != "admin" {
		t.Errorf("role claim = %v, want admin", claims["role"])
	}
	if claims["sub"].(float64) != 42 {
		t.Errorf("sub claim = %v, want 42", claims["sub"])
	}

	if _, err := a.ValidateRefreshToken(refresh); err != nil {
		t.Fatalf("ValidateRefreshToken: %v", err)
	}
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	a := newTestAuthenticator()

	access, refresh, err := a.GenerateTokens(1, "user")
	if err != nil {
		t.Fatalf("GenerateTokens: %v", err)
	}

	if _, err := a.ValidateAccessToken(refresh); err == nil {
		t.Error("refresh token validated against access secret")
	}
	if _, err := a.ValidateRefreshToken(access); err == nil {
		t.Error("access token validated against refresh secret")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	a := NewJWTAuthenticator("access-secret", "refresh-secret",
		-time.Minute, -time.Minute, "evently", "evently")

	access, _, err := a.GenerateTokens(1, "user")
	if err != nil {
		t.Fatalf("GenerateTokens: %v", err)
	}

	if _, err := a.ValidateAccessToken(access); err == nil {
		t.Error("expired access token validated")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	a := newTestAuthenticator()

	access, _, err := a.GenerateTokens(1, "user")
	if err != nil {
		t.Fatalf("GenerateTokens: %v", err)
	}

	other := NewJWTAuthenticator("different-secret", "refresh-secret",
		15*time.Minute, 72*time.Hour, "evently", "evently")
	if _, err := other.ValidateAccessToken(access); err == nil {
		t.Error("token signed with one secret validated with another")
	}
}
