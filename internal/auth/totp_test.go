package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTOTPSecret(t *testing.T) {
	secret, qr, err := GenerateTOTPSecret("Portfolio Admin", "admin@example.com")
	require.NoError(t, err)

	assert.NotEmpty(t, secret)
	assert.True(t, strings.HasPrefix(qr, "data:image/png;base64,"))
}

func TestProvisioningQR(t *testing.T) {
	qr, err := ProvisioningQR("Portfolio Admin", "admin@example.com", "JBSWY3DPEHPK3PXP")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(qr, "data:image/png;base64,"))
}
