package auth

import (
	"encoding/base64"
	"fmt"
	"net/url"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"
)

// GenerateTOTPSecret creates a fresh TOTP secret for the admin account
// and returns the secret plus a QR data URL for authenticator apps. The
// secret is handed back to the operator to store in configuration; it is
// never persisted here.
func GenerateTOTPSecret(issuer, accountName string) (secret, qrDataURL string, err error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: accountName,
		SecretSize:  32,
		Period:      30,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to generate TOTP key: %w", err)
	}

	qrDataURL, err = qrDataURLFor(key.URL())
	if err != nil {
		return "", "", err
	}
	return key.Secret(), qrDataURL, nil
}

// ProvisioningQR renders a QR data URL for an already-configured secret,
// so the admin can re-enroll a new device.
func ProvisioningQR(issuer, accountName, secret string) (string, error) {
	uri := fmt.Sprintf("otpauth://totp/%s:%s?secret=%s&issuer=%s&period=30&algorithm=SHA1&digits=6",
		url.PathEscape(issuer),
		url.PathEscape(accountName),
		url.QueryEscape(secret),
		url.QueryEscape(issuer))

	return qrDataURLFor(uri)
}

func qrDataURLFor(provisioningURL string) (string, error) {
	qr, err := qrcode.New(provisioningURL, qrcode.Highest)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(200)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR code: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
