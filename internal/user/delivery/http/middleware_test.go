package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	userhttp "github.com/mammidi-vikram/netflix/internal/user/delivery/http"
	"github.com/mammidi-vikram/netflix/pkg/auth"
)

func TestAuthMiddleware_RejectsWithoutHittingHandler(t *testing.T) {
	tokens := auth.NewJWT("test-secret", time.Hour)
	gate := userhttp.AuthMiddleware(tokens)

	otherTokens := auth.NewJWT("other-secret", time.Hour)
	foreign, err := otherTokens.GenerateToken(1, "alice")
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	expiredClaims := auth.Claims{
		UserID:   1,
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"malformed", "Bearer"},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong signature", "Bearer " + foreign},
		{"expired", "Bearer " + expired},
	}

	var gateBody string
	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reached := false
			handler := gate(func(w http.ResponseWriter, r *http.Request) {
				reached = true
			})

			req := httptest.NewRequest(http.MethodGet, "/api/user/watchlist", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			if reached {
				t.Fatal("gate let the request through")
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}

			// Every rejection must be byte-identical: no hint which check failed
			if i == 0 {
				gateBody = rec.Body.String()
			} else if rec.Body.String() != gateBody {
				t.Fatalf("rejection leaks failure mode: %q vs %q", rec.Body.String(), gateBody)
			}
		})
	}
}

func TestAuthMiddleware_AttachesIdentity(t *testing.T) {
	tokens := auth.NewJWT("test-secret", time.Hour)
	gate := userhttp.AuthMiddleware(tokens)

	token, err := tokens.GenerateToken(7, "bob")
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	var gotID uint
	var gotOK bool
	handler := gate(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = userhttp.UserIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/user/watchlist", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !gotOK || gotID != 7 {
		t.Fatalf("expected user id 7 in context, got %d (ok=%v)", gotID, gotOK)
	}
}
