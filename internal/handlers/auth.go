package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Ashish-04-codes/Portfolio/internal/auth"
	"github.com/Ashish-04-codes/Portfolio/internal/models"
	"github.com/Ashish-04-codes/Portfolio/internal/services"
	pkghttp "github.com/Ashish-04-codes/Portfolio/pkg/http"
)

// AuthServiceInterface defines the interface for auth business logic
type AuthServiceInterface interface {
	Login(ctx context.Context, email, password, otpCode string) (*services.AuthResponse, error)
	Logout(ctx context.Context, email string) error
}

// SessionArmer is notified when a session begins or ends so background
// idle monitoring only runs while someone is signed in.
type SessionArmer interface {
	Arm()
	Disarm()
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	service AuthServiceInterface
	monitor SessionArmer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service AuthServiceInterface, monitor SessionArmer) *AuthHandler {
	return &AuthHandler{
		service: service,
		monitor: monitor,
	}
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	OTPCode  string `json:"otpCode,omitempty"`
}

// Login handles admin login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	authResp, err := h.service.Login(r.Context(), req.Email, req.Password, req.OTPCode)
	if err != nil {
		var lockedErr *models.AccountLockedError
		var failedErr *models.AuthFailedError
		switch {
		case errors.As(err, &lockedErr):
			pkghttp.WriteLocked(w, lockedErr.Error())
		case errors.As(err, &failedErr):
			pkghttp.WriteUnauthorized(w, failedErr.Error())
		case errors.Is(err, models.ErrUnauthorized):
			pkghttp.WriteUnauthorized(w, "Authentication failed")
		default:
			pkghttp.WriteInternalError(w, "Internal server error")
		}
		return
	}

	if h.monitor != nil {
		h.monitor.Arm()
	}

	writeJSON(w, http.StatusOK, authResp)
}

// Logout handles admin logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromRequest(r)
	if claims == nil {
		pkghttp.WriteUnauthorized(w, "unauthorized")
		return
	}

	if err := h.service.Logout(r.Context(), claims.Email); err != nil {
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	if h.monitor != nil {
		h.monitor.Disarm()
	}

	w.WriteHeader(http.StatusNoContent)
}
