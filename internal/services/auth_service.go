package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Ashish-04-codes/Portfolio/internal/auth"
	"github.com/Ashish-04-codes/Portfolio/internal/models"
	pkglogger "github.com/Ashish-04-codes/Portfolio/pkg/logger"
)

// AuthResponse represents the response from a successful login
type AuthResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// AuthService wraps the external credential provider with the advisory
// security layer: lockout is checked before the provider is consulted,
// failures feed the rate limiter, and every outcome lands in the
// activity trail.
type AuthService struct {
	provider    auth.Provider
	tokens      *auth.TokenManager
	security    *SecurityService
	activity    *ActivityService
	logger      *slog.Logger
	auditLogger *pkglogger.AuditLogger
}

// NewAuthService creates a new AuthService
func NewAuthService(provider auth.Provider, tokens *auth.TokenManager, security *SecurityService, activity *ActivityService, logger *slog.Logger, auditLogger *pkglogger.AuditLogger) *AuthService {
	return &AuthService{
		provider:    provider,
		tokens:      tokens,
		security:    security,
		activity:    activity,
		logger:      logger,
		auditLogger: auditLogger,
	}
}

// Login authenticates the admin. While a lockout is active the provider
// is never called, regardless of whether the credentials are correct.
func (s *AuthService) Login(ctx context.Context, email, password, otpCode string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if lockout := s.security.IsLockedOut(); lockout.Locked {
		minutes := (lockout.RemainingSeconds + 59) / 60
		s.activity.Log(LogActivityParams{
			Action:     models.ActivityActionLoginFailed,
			EntityType: models.ActivityEntityAuth,
			UserEmail:  email,
			Details:    fmt.Sprintf("Account locked - %d minutes remaining", minutes),
		})
		s.auditLogger.LogAuthAttempt(pkglogger.AuditEvent{
			EventType:     "login_failed",
			UserEmail:     email,
			FailureReason: "account_locked",
			Success:       false,
		})
		return nil, &models.AccountLockedError{RemainingMinutes: minutes}
	}

	credential, err := s.provider.SignIn(ctx, email, password, otpCode)
	if err != nil {
		return nil, s.loginFailed(email, err)
	}

	s.security.ClearFailedLoginAttempts()
	s.security.RecordActivity()

	s.activity.Log(LogActivityParams{
		Action:     models.ActivityActionLogin,
		EntityType: models.ActivityEntityAuth,
		UserEmail:  credential.Email,
		Details:    "Successfully logged in",
	})
	s.auditLogger.LogAuthAttempt(pkglogger.AuditEvent{
		EventType: "login_success",
		UserEmail: credential.Email,
		Success:   true,
	})

	token, err := s.tokens.GenerateSessionToken(credential.UserID, credential.Email)
	if err != nil {
		s.logger.Error("failed to generate session token", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	return &AuthResponse{Token: token, Email: credential.Email}, nil
}

// Logout ends the session: provider sign-out, activity stamp cleared,
// logout recorded.
func (s *AuthService) Logout(ctx context.Context, email string) error {
	if err := s.provider.SignOut(ctx); err != nil {
		s.logger.Error("provider sign-out failed", slog.Any("error", err))
		return fmt.Errorf("logout failed: %w", err)
	}

	s.security.ClearSessionActivity()

	s.activity.Log(LogActivityParams{
		Action:     models.ActivityActionLogout,
		EntityType: models.ActivityEntityAuth,
		UserEmail:  email,
		Details:    "Successfully logged out",
	})
	s.auditLogger.LogAuthAttempt(pkglogger.AuditEvent{
		EventType: "logout",
		UserEmail: email,
		Success:   true,
	})

	return nil
}

// loginFailed records the failure, advances the rate limiter and builds
// the user-facing error.
func (s *AuthService) loginFailed(email string, cause error) error {
	code := "unknown"
	var provErr *auth.ProviderError
	if errors.As(cause, &provErr) {
		code = provErr.Code
	}

	result := s.security.RecordFailedLogin()

	s.activity.Log(LogActivityParams{
		Action:     models.ActivityActionLoginFailed,
		EntityType: models.ActivityEntityAuth,
		UserEmail:  email,
		Details:    fmt.Sprintf("Failed login: %s", code),
	})
	s.auditLogger.LogAuthAttempt(pkglogger.AuditEvent{
		EventType:     "login_failed",
		UserEmail:     email,
		FailureReason: code,
		Success:       false,
	})

	return &models.AuthFailedError{
		Message:           loginErrorMessage(code),
		AttemptsRemaining: result.AttemptsRemaining,
		Lockout:           result.ShouldLockout,
	}
}

func loginErrorMessage(code string) string {
	switch code {
	case auth.CodeInvalidEmail:
		return "Invalid email address"
	case auth.CodeUserDisabled:
		return "This account has been disabled"
	case auth.CodeUserNotFound:
		return "No account found with this email"
	case auth.CodeWrongPassword:
		return "Incorrect password"
	case auth.CodeInvalidCredential:
		return "Invalid email or password"
	default:
		return "Login failed. Please try again."
	}
}
