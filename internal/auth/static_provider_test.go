package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testPasswordHash(t *testing.T, password string) string {
	t.Helper()
	// MinCost keeps the suite fast; production hashes use a higher cost
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func providerErrCode(t *testing.T, err error) string {
	t.Helper()
	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	return provErr.Code
}

func TestStaticProvider_SignIn(t *testing.T) {
	hash := testPasswordHash(t, "correct-horse")
	provider := NewStaticProvider("admin", "Admin@Example.com", hash, "")

	cred, err := provider.SignIn(context.Background(), "admin@example.com", "correct-horse", "")
	require.NoError(t, err)
	assert.Equal(t, "admin", cred.UserID)
	assert.Equal(t, "admin@example.com", cred.Email, "configured email is normalized")
}

func TestStaticProvider_SignInErrors(t *testing.T) {
	hash := testPasswordHash(t, "correct-horse")
	provider := NewStaticProvider("admin", "admin@example.com", hash, "")

	tests := []struct {
		name     string
		email    string
		password string
		wantCode string
	}{
		{"malformed email", "no-at-sign", "correct-horse", CodeInvalidEmail},
		{"unknown email", "other@example.com", "correct-horse", CodeUserNotFound},
		{"wrong password", "admin@example.com", "nope", CodeWrongPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := provider.SignIn(context.Background(), tt.email, tt.password, "")
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, providerErrCode(t, err))
		})
	}
}

func TestStaticProvider_TOTP(t *testing.T) {
	hash := testPasswordHash(t, "correct-horse")

	key, err := totp.Generate(totp.GenerateOpts{Issuer: "test", AccountName: "admin@example.com"})
	require.NoError(t, err)

	provider := NewStaticProvider("admin", "admin@example.com", hash, key.Secret())
	require.True(t, provider.MFAEnabled())

	// Missing or wrong code is rejected as an invalid credential
	_, err = provider.SignIn(context.Background(), "admin@example.com", "correct-horse", "")
	assert.Equal(t, CodeInvalidCredential, providerErrCode(t, err))

	_, err = provider.SignIn(context.Background(), "admin@example.com", "correct-horse", "000000")
	require.Error(t, err)

	code, err := totp.GenerateCode(key.Secret(), time.Now())
	require.NoError(t, err)

	cred, err := provider.SignIn(context.Background(), "admin@example.com", "correct-horse", code)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", cred.Email)
}

func TestStaticProvider_SignOut(t *testing.T) {
	provider := NewStaticProvider("admin", "admin@example.com", "hash", "")
	assert.NoError(t, provider.SignOut(context.Background()))
}

func TestProviderError_Message(t *testing.T) {
	err := &ProviderError{Code: CodeWrongPassword}
	assert.Contains(t, err.Error(), CodeWrongPassword)
	assert.False(t, errors.Is(err, context.Canceled))
}
