package services

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/Ashish-04-codes/Portfolio/internal/kvstore"
	"github.com/Ashish-04-codes/Portfolio/internal/models"
)

// Storage keys for security state
const (
	RateLimitKey    = "login_rate_limit"
	LockoutKey      = "account_lockout"
	LastActivityKey = "last_activity"
)

// Fixed security policy. These are deliberate constants, not runtime
// configuration: the throttling is advisory and the authoritative
// rejection still comes from the credential provider.
const (
	MaxLoginAttempts = 5
	LockoutDuration  = 15 * time.Minute
	RateLimitWindow  = 15 * time.Minute
	SessionTimeout   = 30 * time.Minute
	WarningThreshold = 120 * time.Second
)

// SecurityService implements login rate limiting, account lockout and
// session-timeout tracking over persisted timestamps and counters.
// All state lives in the shared key-value store and is re-read on every
// call; nothing is cached in memory. Storage failures read as "no
// record" (fail-open), which can never wrongly lock anyone out.
type SecurityService struct {
	store  kvstore.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewSecurityService creates a new SecurityService.
func NewSecurityService(store kvstore.Store, logger *slog.Logger) *SecurityService {
	return &SecurityService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// IsLockedOut reports whether logins are currently refused. An expired
// lockout record is deleted as a side effect of being observed: lazy
// expiry, no background timer.
func (s *SecurityService) IsLockedOut() models.LockoutStatus {
	raw, err := s.store.GetItem(LockoutKey)
	if err != nil || raw == "" {
		return models.LockoutStatus{Locked: false}
	}

	var lockout models.LockoutRecord
	if err := json.Unmarshal([]byte(raw), &lockout); err != nil {
		return models.LockoutStatus{Locked: false}
	}

	nowMs := s.now().UnixMilli()
	if nowMs < lockout.LockedUntil {
		remaining := int((lockout.LockedUntil - nowMs + 999) / 1000)
		return models.LockoutStatus{Locked: true, RemainingSeconds: remaining}
	}

	s.clearLockout()
	return models.LockoutStatus{Locked: false}
}

// RecordFailedLogin counts a failed attempt inside the rolling window.
// The window resets when the time since the first attempt exceeds it
// (sliding window reset, not sliding expiry per attempt). Reaching the
// maximum creates the lockout record.
func (s *SecurityService) RecordFailedLogin() models.RateLimitResult {
	nowMs := s.now().UnixMilli()

	record := models.RateLimitRecord{Attempts: 1, FirstAttempt: nowMs}
	if raw, err := s.store.GetItem(RateLimitKey); err == nil && raw != "" {
		var existing models.RateLimitRecord
		if err := json.Unmarshal([]byte(raw), &existing); err == nil {
			if nowMs-existing.FirstAttempt > RateLimitWindow.Milliseconds() {
				// window elapsed, restart the count
			} else {
				existing.Attempts++
				record = existing
			}
		}
	}

	if data, err := json.Marshal(record); err == nil {
		_ = s.store.SetItem(RateLimitKey, string(data))
	}

	if record.Attempts >= MaxLoginAttempts {
		s.lockoutAccount()
		s.logger.Warn("account locked out",
			slog.Int("attempts", record.Attempts),
			slog.Duration("lockout_duration", LockoutDuration))
		return models.RateLimitResult{ShouldLockout: true, AttemptsRemaining: 0}
	}

	return models.RateLimitResult{ShouldLockout: false, AttemptsRemaining: MaxLoginAttempts - record.Attempts}
}

// ClearFailedLoginAttempts removes both the rate-limit and lockout
// records. Called only after a verified-successful credential check.
func (s *SecurityService) ClearFailedLoginAttempts() {
	_ = s.store.RemoveItem(RateLimitKey)
	_ = s.store.RemoveItem(LockoutKey)
}

// RecordActivity stamps the session with the current time. Called on
// login success and on every qualifying interaction while authenticated.
func (s *SecurityService) RecordActivity() {
	_ = s.store.SetItem(LastActivityKey, strconv.FormatInt(s.now().UnixMilli(), 10))
}

// CheckSessionTimeout computes the session state from the last activity
// stamp. A missing stamp is treated as a fresh session with the full
// timeout budget remaining, not as an error.
func (s *SecurityService) CheckSessionTimeout() models.SessionStatus {
	raw, err := s.store.GetItem(LastActivityKey)
	if err != nil || raw == "" {
		return models.SessionStatus{TimedOut: false, RemainingSeconds: int(SessionTimeout.Seconds())}
	}

	lastActivity, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return models.SessionStatus{TimedOut: false, RemainingSeconds: int(SessionTimeout.Seconds())}
	}

	elapsed := s.now().UnixMilli() - lastActivity
	if elapsed >= SessionTimeout.Milliseconds() {
		return models.SessionStatus{TimedOut: true, RemainingSeconds: 0}
	}

	remaining := SessionTimeout.Milliseconds() - elapsed
	return models.SessionStatus{TimedOut: false, RemainingSeconds: int((remaining + 999) / 1000)}
}

// ClearSessionActivity removes the activity stamp (on logout).
func (s *SecurityService) ClearSessionActivity() {
	_ = s.store.RemoveItem(LastActivityKey)
}

// TimeUntilTimeout returns the seconds left before forced logout.
func (s *SecurityService) TimeUntilTimeout() int {
	return s.CheckSessionTimeout().RemainingSeconds
}

// ShouldShowTimeoutWarning is true iff the remaining time is in
// (0, WarningThreshold].
func (s *SecurityService) ShouldShowTimeoutWarning() bool {
	remaining := s.TimeUntilTimeout()
	return remaining > 0 && remaining <= int(WarningThreshold.Seconds())
}

func (s *SecurityService) lockoutAccount() {
	lockout := models.LockoutRecord{
		LockedUntil: s.now().Add(LockoutDuration).UnixMilli(),
		Attempts:    MaxLoginAttempts,
	}
	if data, err := json.Marshal(lockout); err == nil {
		_ = s.store.SetItem(LockoutKey, string(data))
	}
}

// clearLockout also drops the rate-limit record so the next failure
// starts a fresh window.
func (s *SecurityService) clearLockout() {
	_ = s.store.RemoveItem(LockoutKey)
	_ = s.store.RemoveItem(RateLimitKey)
}
