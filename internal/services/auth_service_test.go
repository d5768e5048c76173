package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ashish-04-codes/Portfolio/internal/auth"
	"github.com/Ashish-04-codes/Portfolio/internal/kvstore"
	"github.com/Ashish-04-codes/Portfolio/internal/models"
	pkglogger "github.com/Ashish-04-codes/Portfolio/pkg/logger"
)

// MockProvider implements auth.Provider for testing
type MockProvider struct {
	email       string
	password    string
	failCode    string
	signInCalls int
}

func (m *MockProvider) SignIn(ctx context.Context, email, password, otpCode string) (*auth.Credential, error) {
	m.signInCalls++
	if m.failCode != "" {
		return nil, &auth.ProviderError{Code: m.failCode}
	}
	if email != m.email || password != m.password {
		return nil, &auth.ProviderError{Code: auth.CodeWrongPassword}
	}
	return &auth.Credential{UserID: "admin", Email: m.email}, nil
}

func (m *MockProvider) SignOut(ctx context.Context) error { return nil }

func newTestAuthService(t *testing.T, provider *MockProvider) (*AuthService, *SecurityService, *ActivityService) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	store := kvstore.NewMemory()
	security := NewSecurityService(store, logger)
	activity := NewActivityService(store, logger)
	tokens := auth.NewTokenManager("test-session-secret-of-sufficient-length", time.Hour)
	svc := NewAuthService(provider, tokens, security, activity, logger, pkglogger.NewAuditLogger(logger))
	return svc, security, activity
}

func TestLogin_Success(t *testing.T) {
	provider := &MockProvider{email: "admin@example.com", password: "correct-horse"}
	svc, security, activity := newTestAuthService(t, provider)

	resp, err := svc.Login(context.Background(), "Admin@Example.com", "correct-horse", "")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin@example.com", resp.Email)

	// Session activity is stamped and the login is in the trail
	assert.Less(t, security.CheckSessionTimeout().RemainingSeconds, int(SessionTimeout.Seconds())+1)
	logs := activity.LogsByAction(models.ActivityActionLogin)
	require.Len(t, logs, 1)
	assert.Equal(t, "Successfully logged in", logs[0].Details)
}

func TestLogin_WrongPasswordCountsAttempts(t *testing.T) {
	provider := &MockProvider{email: "admin@example.com", password: "correct-horse"}
	svc, _, activity := newTestAuthService(t, provider)

	_, err := svc.Login(context.Background(), "admin@example.com", "wrong", "")
	require.Error(t, err)

	var failed *models.AuthFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, "Incorrect password", failed.Message)
	assert.Equal(t, MaxLoginAttempts-1, failed.AttemptsRemaining)
	assert.Contains(t, err.Error(), "(4 attempts remaining)")
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	logs := activity.LogsByAction(models.ActivityActionLoginFailed)
	require.Len(t, logs, 1)
	assert.Equal(t, "Failed login: wrong-password", logs[0].Details)
}

func TestLogin_LockoutBlocksProviderEntirely(t *testing.T) {
	provider := &MockProvider{email: "admin@example.com", password: "correct-horse"}
	svc, _, _ := newTestAuthService(t, provider)

	for i := 0; i < MaxLoginAttempts; i++ {
		_, err := svc.Login(context.Background(), "admin@example.com", "wrong", "")
		require.Error(t, err)
	}
	require.Equal(t, MaxLoginAttempts, provider.signInCalls)

	// Correct credentials are refused while locked and the provider is
	// not consulted at all.
	_, err := svc.Login(context.Background(), "admin@example.com", "correct-horse", "")
	require.Error(t, err)

	var locked *models.AccountLockedError
	require.ErrorAs(t, err, &locked)
	assert.Greater(t, locked.RemainingMinutes, 0)
	assert.ErrorIs(t, err, models.ErrAccountLocked)
	assert.Equal(t, MaxLoginAttempts, provider.signInCalls)
}

func TestLogin_FifthFailureReportsLockout(t *testing.T) {
	provider := &MockProvider{email: "admin@example.com", password: "correct-horse"}
	svc, _, _ := newTestAuthService(t, provider)

	var lastErr error
	for i := 0; i < MaxLoginAttempts; i++ {
		_, lastErr = svc.Login(context.Background(), "admin@example.com", "wrong", "")
	}

	var failed *models.AuthFailedError
	require.ErrorAs(t, lastErr, &failed)
	assert.True(t, failed.Lockout)
	assert.Equal(t, 0, failed.AttemptsRemaining)
	assert.NotContains(t, lastErr.Error(), "remaining")
}

func TestLogin_SuccessClearsFailureHistory(t *testing.T) {
	provider := &MockProvider{email: "admin@example.com", password: "correct-horse"}
	svc, _, _ := newTestAuthService(t, provider)

	for i := 0; i < MaxLoginAttempts-1; i++ {
		_, err := svc.Login(context.Background(), "admin@example.com", "wrong", "")
		require.Error(t, err)
	}

	_, err := svc.Login(context.Background(), "admin@example.com", "correct-horse", "")
	require.NoError(t, err)

	// The counter restarted: a new failure reports a full budget again
	_, err = svc.Login(context.Background(), "admin@example.com", "wrong", "")
	var failed *models.AuthFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, MaxLoginAttempts-1, failed.AttemptsRemaining)
}

func TestLogin_ProviderErrorMessages(t *testing.T) {
	tests := []struct {
		code    string
		message string
	}{
		{auth.CodeInvalidEmail, "Invalid email address"},
		{auth.CodeUserDisabled, "This account has been disabled"},
		{auth.CodeUserNotFound, "No account found with this email"},
		{auth.CodeWrongPassword, "Incorrect password"},
		{auth.CodeInvalidCredential, "Invalid email or password"},
		{"something-else", "Login failed. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			provider := &MockProvider{failCode: tt.code}
			svc, _, _ := newTestAuthService(t, provider)

			_, err := svc.Login(context.Background(), "admin@example.com", "whatever", "")
			var failed *models.AuthFailedError
			require.ErrorAs(t, err, &failed)
			assert.Equal(t, tt.message, failed.Message)
		})
	}
}

func TestLogout(t *testing.T) {
	provider := &MockProvider{email: "admin@example.com", password: "correct-horse"}
	svc, security, activity := newTestAuthService(t, provider)

	_, err := svc.Login(context.Background(), "admin@example.com", "correct-horse", "")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), "admin@example.com"))

	// Activity stamp cleared: next check reads as a fresh session
	assert.Equal(t, int(SessionTimeout.Seconds()), security.CheckSessionTimeout().RemainingSeconds)
	assert.Len(t, activity.LogsByAction(models.ActivityActionLogout), 1)
}

func TestLoginThenIdleTimeout(t *testing.T) {
	provider := &MockProvider{email: "admin@example.com", password: "correct-horse"}
	svc, security, _ := newTestAuthService(t, provider)

	base := time.Now()
	security.now = func() time.Time { return base }

	_, err := svc.Login(context.Background(), "admin@example.com", "correct-horse", "")
	require.NoError(t, err)

	// 29 minutes idle: warning territory, still signed in
	security.now = func() time.Time { return base.Add(29 * time.Minute) }
	assert.False(t, security.CheckSessionTimeout().TimedOut)
	assert.True(t, security.ShouldShowTimeoutWarning())

	// 30 minutes idle: timed out
	security.now = func() time.Time { return base.Add(30 * time.Minute) }
	assert.True(t, security.CheckSessionTimeout().TimedOut)
}

func TestLogin_WrappedProviderError(t *testing.T) {
	provider := &MockProvider{failCode: auth.CodeUserNotFound}
	svc, _, _ := newTestAuthService(t, provider)

	_, err := svc.Login(context.Background(), "nobody@example.com", "pw", "")
	require.Error(t, err)

	var provErr *auth.ProviderError
	assert.False(t, errors.As(err, &provErr), "provider internals must not leak to callers")
}
