package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ashish-04-codes/Portfolio/internal/background"
)

type fakeSessionMonitor struct {
	status   background.SessionStatus
	extended int
}

func (f *fakeSessionMonitor) Status() background.SessionStatus { return f.status }

func (f *fakeSessionMonitor) ExtendSession() {
	f.extended++
	f.status = background.SessionStatus{State: "active", RemainingSeconds: 1800}
}

func TestSessionStatus(t *testing.T) {
	monitor := &fakeSessionMonitor{status: background.SessionStatus{
		State:            "active",
		RemainingSeconds: 95,
		Warning:          true,
	}}
	h := NewSessionHandler(monitor)

	rec := httptest.NewRecorder()
	h.Status(rec, httptest.NewRequest(http.MethodGet, "/admin/session/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var status background.SessionStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, 95, status.RemainingSeconds)
	assert.True(t, status.Warning)
}

func TestSessionExtend(t *testing.T) {
	monitor := &fakeSessionMonitor{status: background.SessionStatus{
		State:            "active",
		RemainingSeconds: 40,
		Warning:          true,
	}}
	h := NewSessionHandler(monitor)

	rec := httptest.NewRecorder()
	h.Extend(rec, httptest.NewRequest(http.MethodPost, "/admin/session/extend", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, monitor.extended)

	var status background.SessionStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, 1800, status.RemainingSeconds)
	assert.False(t, status.Warning)
}
