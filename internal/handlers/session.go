package handlers

import (
	"net/http"

	"github.com/Ashish-04-codes/Portfolio/internal/background"
)

// SessionMonitorInterface exposes the idle-session state to HTTP clients
type SessionMonitorInterface interface {
	Status() background.SessionStatus
	ExtendSession()
}

// SessionHandler serves the idle-timeout status the admin UI polls and
// the explicit "stay signed in" extension.
type SessionHandler struct {
	monitor SessionMonitorInterface
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(monitor SessionMonitorInterface) *SessionHandler {
	return &SessionHandler{monitor: monitor}
}

// Status returns the current session state, remaining seconds and
// whether the expiry warning should be shown.
func (h *SessionHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.monitor.Status())
}

// Extend resets the idle timer, dismissing a pending warning.
func (h *SessionHandler) Extend(w http.ResponseWriter, r *http.Request) {
	h.monitor.ExtendSession()
	writeJSON(w, http.StatusOK, h.monitor.Status())
}
