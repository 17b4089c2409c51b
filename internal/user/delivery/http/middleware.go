package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mammidi-vikram/netflix/pkg/apperr"
	"github.com/mammidi-vikram/netflix/pkg/auth"
)

type contextKey string

const (
	// UserIDKey carries the authenticated user id in the request context
	UserIDKey contextKey = "user_id"
	// UsernameKey carries the authenticated username in the request context
	UsernameKey contextKey = "username"
)

// AuthMiddleware is the session gate: it validates the bearer token and
// attaches the resolved identity to the request context. Every failure mode
// (missing header, malformed header, bad signature, expired token) yields
// the same generic response so callers cannot probe which check failed.
func AuthMiddleware(tokens *auth.JWT) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				respondGateRejection(w)
				return
			}

			claims, err := tokens.ValidateToken(parts[1])
			if err != nil {
				respondGateRejection(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, UsernameKey, claims.Username)

			next.ServeHTTP(w, r.WithContext(ctx))
		}
	}
}

// UserIDFromContext extracts the authenticated user id set by the gate
func UserIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(UserIDKey).(uint)
	return id, ok
}

func respondGateRejection(w http.ResponseWriter) {
	e := apperr.NotAuthorized()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{"code": string(e.Code), "message": e.Message},
	})
}
