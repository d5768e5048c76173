package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ashish-04-codes/Portfolio/internal/models"
	"github.com/Ashish-04-codes/Portfolio/internal/services"
)

// MockAuthService implements AuthServiceInterface for testing
type MockAuthService struct {
	loginErr   error
	logoutErr  error
	loginCalls int
}

func (m *MockAuthService) Login(ctx context.Context, email, password, otpCode string) (*services.AuthResponse, error) {
	m.loginCalls++
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	return &services.AuthResponse{Token: "signed-token", Email: email}, nil
}

func (m *MockAuthService) Logout(ctx context.Context, email string) error {
	return m.logoutErr
}

// MockArmer implements SessionArmer for testing
type MockArmer struct {
	armed    int
	disarmed int
}

func (m *MockArmer) Arm()    { m.armed++ }
func (m *MockArmer) Disarm() { m.disarmed++ }

func doLogin(t *testing.T, handler *AuthHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.Login(rr, req)
	return rr
}

func TestLoginHandler_Success(t *testing.T) {
	service := &MockAuthService{}
	armer := &MockArmer{}
	handler := NewAuthHandler(service, armer)

	rr := doLogin(t, handler, `{"email":"Admin@Example.com","password":"pw"}`)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp services.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, "admin@example.com", resp.Email, "email is normalized before the service sees it")
	assert.Equal(t, 1, armer.armed, "login arms the session monitor")
}

func TestLoginHandler_InvalidBody(t *testing.T) {
	handler := NewAuthHandler(&MockAuthService{}, nil)

	rr := doLogin(t, handler, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLoginHandler_ValidationFailure(t *testing.T) {
	service := &MockAuthService{}
	handler := NewAuthHandler(service, nil)

	rr := doLogin(t, handler, `{"email":"not-an-email","password":"pw"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Zero(t, service.loginCalls, "invalid requests never reach the service")
}

func TestLoginHandler_AuthFailure(t *testing.T) {
	service := &MockAuthService{loginErr: &models.AuthFailedError{
		Message:           "Incorrect password",
		AttemptsRemaining: 3,
	}}
	handler := NewAuthHandler(service, nil)

	rr := doLogin(t, handler, `{"email":"admin@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Incorrect password (3 attempts remaining)")
}

func TestLoginHandler_AccountLocked(t *testing.T) {
	service := &MockAuthService{loginErr: &models.AccountLockedError{RemainingMinutes: 12}}
	armer := &MockArmer{}
	handler := NewAuthHandler(service, armer)

	rr := doLogin(t, handler, `{"email":"admin@example.com","password":"pw"}`)

	assert.Equal(t, http.StatusLocked, rr.Code)
	assert.Contains(t, rr.Body.String(), "try again in 12 minutes")
	assert.Zero(t, armer.armed)
}

func TestLogoutHandler_RequiresClaims(t *testing.T) {
	handler := NewAuthHandler(&MockAuthService{}, nil)

	req := httptest.NewRequest("POST", "/admin/auth/logout", nil)
	rr := httptest.NewRecorder()
	handler.Logout(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
