package models

// RateLimitRecord tracks failed login attempts inside a rolling window.
// Created on the first failed login, reset when the window elapses,
// cleared on successful login or lockout expiry.
type RateLimitRecord struct {
	Attempts     int   `json:"attempts"`
	FirstAttempt int64 `json:"firstAttempt"` // epoch milliseconds
}

// LockoutRecord is created when the attempt count reaches the maximum
// within the window. While now < LockedUntil, login is refused regardless
// of credentials. Removed lazily when observed expired, or on successful
// login.
type LockoutRecord struct {
	LockedUntil int64 `json:"lockedUntil"` // epoch milliseconds
	Attempts    int   `json:"attempts"`
}

// LockoutStatus is the result of a lockout check.
type LockoutStatus struct {
	Locked           bool `json:"locked"`
	RemainingSeconds int  `json:"remainingSeconds,omitempty"`
}

// RateLimitResult reports the outcome of recording a failed login.
type RateLimitResult struct {
	ShouldLockout     bool `json:"shouldLockout"`
	AttemptsRemaining int  `json:"attemptsRemaining"`
}

// SessionStatus is the result of a session-timeout check.
type SessionStatus struct {
	TimedOut         bool `json:"timedOut"`
	RemainingSeconds int  `json:"remainingSeconds"`
}
