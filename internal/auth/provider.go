package auth

import (
	"context"
	"fmt"
)

// Provider error codes, mirrored from the hosted identity provider the
// admin UI originally authenticated against. The auth service maps these
// to fixed user-facing messages.
const (
	CodeInvalidEmail      = "invalid-email"
	CodeUserDisabled      = "user-disabled"
	CodeUserNotFound      = "user-not-found"
	CodeWrongPassword     = "wrong-password"
	CodeInvalidCredential = "invalid-credential"
)

// ProviderError is a credential-check failure with a machine code.
type ProviderError struct {
	Code string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("auth provider: %s", e.Code)
}

// Credential is the identity returned by a successful sign-in.
type Credential struct {
	UserID string
	Email  string
}

// Provider is the external credential checker. It is the authoritative
// gate: the client-side style throttling layered on top of it is
// advisory only.
type Provider interface {
	SignIn(ctx context.Context, email, password, otpCode string) (*Credential, error)
	SignOut(ctx context.Context) error
}
