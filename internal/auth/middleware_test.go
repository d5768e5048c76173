package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ashish-04-codes/Portfolio/internal/models"
)

type fakeGuard struct {
	timedOut     bool
	clearedCalls int
}

func (g *fakeGuard) CheckSessionTimeout() models.SessionStatus {
	if g.timedOut {
		return models.SessionStatus{TimedOut: true}
	}
	return models.SessionStatus{TimedOut: false, RemainingSeconds: 1800}
}

func (g *fakeGuard) ClearSessionActivity() { g.clearedCalls++ }

type fakeRecorder struct {
	interactions int
}

func (r *fakeRecorder) Interaction() { r.interactions++ }

func protectedHandler(t *testing.T, claimsOut **SessionClaims) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*claimsOut = ClaimsFromRequest(r)
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddleware_ValidToken(t *testing.T) {
	tm := NewTokenManager("test-session-secret-of-sufficient-length", time.Hour)
	guard := &fakeGuard{}
	recorder := &fakeRecorder{}

	token, err := tm.GenerateSessionToken("admin", "admin@example.com")
	require.NoError(t, err)

	var claims *SessionClaims
	handler := Middleware(tm, guard, recorder)(protectedHandler(t, &claims))

	req := httptest.NewRequest("GET", "/admin/projects", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, claims)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, 1, recorder.interactions, "each request counts as one interaction")
}

func TestMiddleware_MissingOrMalformedHeader(t *testing.T) {
	tm := NewTokenManager("test-session-secret-of-sufficient-length", time.Hour)
	handler := Middleware(tm, &fakeGuard{}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	for _, header := range []string{"", "Basic abc", "Bearer"} {
		req := httptest.NewRequest("GET", "/admin/projects", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "header %q", header)
	}
}

func TestMiddleware_InvalidToken(t *testing.T) {
	tm := NewTokenManager("test-session-secret-of-sufficient-length", time.Hour)
	other := NewTokenManager("a-completely-different-session-secret", time.Hour)

	token, err := other.GenerateSessionToken("admin", "admin@example.com")
	require.NoError(t, err)

	handler := Middleware(tm, &fakeGuard{}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	req := httptest.NewRequest("GET", "/admin/projects", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMiddleware_IdleTimeoutRejectsAndClears(t *testing.T) {
	tm := NewTokenManager("test-session-secret-of-sufficient-length", time.Hour)
	guard := &fakeGuard{timedOut: true}
	recorder := &fakeRecorder{}

	token, err := tm.GenerateSessionToken("admin", "admin@example.com")
	require.NoError(t, err)

	handler := Middleware(tm, guard, recorder)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	req := httptest.NewRequest("GET", "/admin/projects", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "inactivity")
	assert.Equal(t, 1, guard.clearedCalls, "the stale activity stamp is cleared")
	assert.Zero(t, recorder.interactions, "a rejected request is not an interaction")
}

func TestClaimsFromRequest_Unauthenticated(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	assert.Nil(t, ClaimsFromRequest(req))
}
