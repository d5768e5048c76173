package handlers

import (
	"net/http"

	"github.com/Ashish-04-codes/Portfolio/internal/auth"
	pkghttp "github.com/Ashish-04-codes/Portfolio/pkg/http"
)

// mfaIssuer is the issuer shown in authenticator apps
const mfaIssuer = "Portfolio Admin"

// MFAHandler serves second-factor enrollment for the static admin
// identity. Secrets are delivered to the operator, never stored here.
type MFAHandler struct {
	provider *auth.StaticProvider
}

// NewMFAHandler creates a new MFAHandler
func NewMFAHandler(provider *auth.StaticProvider) *MFAHandler {
	return &MFAHandler{provider: provider}
}

// MFAStatusResponse reports whether a second factor is configured
type MFAStatusResponse struct {
	Enabled bool `json:"enabled"`
}

// MFASetupResponse carries a freshly generated secret and its QR code
type MFASetupResponse struct {
	Secret  string `json:"secret"`
	QRCode  string `json:"qrCode"`
	Message string `json:"message"`
}

// Status returns whether MFA is enabled for the admin account
func (h *MFAHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MFAStatusResponse{Enabled: h.provider.MFAEnabled()})
}

// Setup generates a new TOTP secret and QR code. The operator stores the
// secret in configuration to activate it on the next restart.
func (h *MFAHandler) Setup(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromRequest(r)
	if claims == nil {
		pkghttp.WriteUnauthorized(w, "unauthorized")
		return
	}

	secret, qr, err := auth.GenerateTOTPSecret(mfaIssuer, claims.Email)
	if err != nil {
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, MFASetupResponse{
		Secret:  secret,
		QRCode:  qr,
		Message: "Set ADMIN_TOTP_SECRET to this value and restart to enable MFA.",
	})
}

// QR re-renders the QR code for the already-configured secret so the
// admin can enroll a new device.
func (h *MFAHandler) QR(w http.ResponseWriter, r *http.Request) {
	if !h.provider.MFAEnabled() {
		pkghttp.WriteNotFound(w, "MFA is not enabled")
		return
	}

	claims := auth.ClaimsFromRequest(r)
	if claims == nil {
		pkghttp.WriteUnauthorized(w, "unauthorized")
		return
	}

	qr, err := auth.ProvisioningQR(mfaIssuer, claims.Email, h.provider.TOTPSecret())
	if err != nil {
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"qrCode": qr})
}
