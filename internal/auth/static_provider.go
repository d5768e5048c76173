package auth

import (
	"context"
	"strings"

	pkgauth "github.com/Ashish-04-codes/Portfolio/pkg/auth"
	"github.com/pquerna/otp/totp"
)

// StaticProvider authenticates the single admin identity configured at
// startup. The portfolio CMS has exactly one editor; there is no user
// table. An optional TOTP secret enables a second factor.
type StaticProvider struct {
	userID       string
	email        string
	passwordHash string
	totpSecret   string
}

// NewStaticProvider creates a provider for the configured admin. The
// hash is a bcrypt hash; totpSecret may be empty to disable MFA.
func NewStaticProvider(userID, email, passwordHash, totpSecret string) *StaticProvider {
	return &StaticProvider{
		userID:       userID,
		email:        strings.ToLower(strings.TrimSpace(email)),
		passwordHash: passwordHash,
		totpSecret:   totpSecret,
	}
}

// MFAEnabled reports whether a second factor is configured.
func (p *StaticProvider) MFAEnabled() bool { return p.totpSecret != "" }

// TOTPSecret returns the configured shared secret (for QR provisioning).
func (p *StaticProvider) TOTPSecret() string { return p.totpSecret }

// SignIn verifies the credentials against the configured identity.
func (p *StaticProvider) SignIn(ctx context.Context, email, password, otpCode string) (*Credential, error) {
	if !strings.Contains(email, "@") {
		return nil, &ProviderError{Code: CodeInvalidEmail}
	}

	if strings.ToLower(strings.TrimSpace(email)) != p.email {
		return nil, &ProviderError{Code: CodeUserNotFound}
	}

	if err := pkgauth.ComparePassword(p.passwordHash, password); err != nil {
		return nil, &ProviderError{Code: CodeWrongPassword}
	}

	if p.totpSecret != "" && !totp.Validate(otpCode, p.totpSecret) {
		return nil, &ProviderError{Code: CodeInvalidCredential}
	}

	return &Credential{UserID: p.userID, Email: p.email}, nil
}

// SignOut is a no-op for the static provider; sessions are ended by the
// caller dropping its token and clearing the activity stamp.
func (p *StaticProvider) SignOut(ctx context.Context) error { return nil }
