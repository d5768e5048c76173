package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/Ashish-04-codes/Portfolio/internal/models"
)

// contextKey is a custom type for context keys
type contextKey string

// UserContextKey is the key for storing session claims in context
const UserContextKey contextKey = "user"

// SessionGuard is the idle-timeout check consulted on every
// authenticated request.
type SessionGuard interface {
	CheckSessionTimeout() models.SessionStatus
	ClearSessionActivity()
}

// InteractionRecorder receives one qualifying interaction per
// authenticated request. This is the server-side analog of the pointer,
// key and scroll listeners the admin UI used to reset its idle timer.
type InteractionRecorder interface {
	Interaction()
}

// Middleware validates Bearer session tokens, enforces the idle timeout
// and records the request as session activity.
func Middleware(tm *TokenManager, guard SessionGuard, recorder InteractionRecorder) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "missing authorization header", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "invalid authorization header format", http.StatusUnauthorized)
				return
			}

			claims, err := tm.ValidateToken(parts[1])
			if err != nil {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			// Idle-timeout enforcement: a stale session is rejected and
			// its activity stamp cleared, forcing a fresh login.
			if guard != nil {
				if status := guard.CheckSessionTimeout(); status.TimedOut {
					guard.ClearSessionActivity()
					http.Error(w, "session expired due to inactivity", http.StatusUnauthorized)
					return
				}
			}

			if recorder != nil {
				recorder.Interaction()
			}

			ctx := context.WithValue(r.Context(), UserContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromRequest returns the session claims injected by Middleware,
// or nil when the request is unauthenticated.
func ClaimsFromRequest(r *http.Request) *SessionClaims {
	claims, _ := r.Context().Value(UserContextKey).(*SessionClaims)
	return claims
}
