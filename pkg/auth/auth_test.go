package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mammidi-vikram/netflix/pkg/auth"
)

// expiredToken signs a token whose expiry is already in the past.
func expiredToken(t *testing.T, secret string) string {
	t.Helper()
	claims := auth.Claims{
		UserID:   42,
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return signed
}

func TestTokenRoundTrip(t *testing.T) {
	tokens := auth.NewJWT("test-secret", time.Hour)

	token, err := tokens.GenerateToken(42, "alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := tokens.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "alice" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidateToken_RejectsTampering(t *testing.T) {
	tokens := auth.NewJWT("test-secret", time.Hour)

	token, err := tokens.GenerateToken(42, "alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// Flip a character in the payload segment
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(parts))
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := tokens.ValidateToken(tampered); err == nil {
		t.Fatal("tampered token accepted")
	}
}

func TestValidateToken_RejectsForeignSecret(t *testing.T) {
	issuer := auth.NewJWT("secret-a", time.Hour)
	verifier := auth.NewJWT("secret-b", time.Hour)

	token, err := issuer.GenerateToken(42, "alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := verifier.ValidateToken(token); err == nil {
		t.Fatal("token signed with a different secret accepted")
	}
}

func TestValidateToken_RejectsExpired(t *testing.T) {
	tokens := auth.NewJWT("test-secret", time.Hour)

	if _, err := tokens.ValidateToken(expiredToken(t, "test-secret")); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash equals plaintext")
	}
	if !auth.CheckPassword(hash, "secret1") {
		t.Fatal("correct password rejected")
	}
	if auth.CheckPassword(hash, "wrong") {
		t.Fatal("wrong password accepted")
	}
}
