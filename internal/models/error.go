package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions
var (
	ErrNotFound       = errors.New("resource not found")
	ErrConflict       = errors.New("resource already exists")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrBadRequest     = errors.New("bad request")
	ErrInternalServer = errors.New("internal server error")

	// Account state errors
	ErrAccountLocked  = errors.New("account is temporarily locked")
	ErrSessionExpired = errors.New("session expired")
)

// AccountLockedError is returned when a login is refused because the
// account lockout window has not elapsed. The credential provider is
// never consulted while the lockout is active.
type AccountLockedError struct {
	RemainingMinutes int
}

func (e *AccountLockedError) Error() string {
	unit := "minutes"
	if e.RemainingMinutes == 1 {
		unit = "minute"
	}
	return fmt.Sprintf("account locked due to too many failed attempts, try again in %d %s", e.RemainingMinutes, unit)
}

func (e *AccountLockedError) Unwrap() error { return ErrAccountLocked }

// AuthFailedError carries the user-facing message for a rejected login,
// including how many attempts remain before lockout.
type AuthFailedError struct {
	Message           string
	AttemptsRemaining int
	Lockout           bool
}

func (e *AuthFailedError) Error() string {
	if e.Lockout || e.AttemptsRemaining <= 0 {
		return e.Message
	}
	unit := "attempts"
	if e.AttemptsRemaining == 1 {
		unit = "attempt"
	}
	return fmt.Sprintf("%s (%d %s remaining)", e.Message, e.AttemptsRemaining, unit)
}

func (e *AuthFailedError) Unwrap() error { return ErrUnauthorized }
