// Package background holds long-running watchdogs started from main.
package background

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Ashish-04-codes/Portfolio/internal/services"
)

// Session states
const (
	SessionStateActive  = "active"
	SessionStateWarning = "warning"
	SessionStateExpired = "expired"
)

// DefaultPollInterval is how often the monitor re-reads the activity
// stamp while a session is armed.
const DefaultPollInterval = 5 * time.Second

// SessionStatus is a snapshot of the monitor state.
type SessionStatus struct {
	State            string `json:"state"`
	RemainingSeconds int    `json:"remainingSeconds"`
	Warning          bool   `json:"warning"`
}

// SessionMonitorConfig wires the monitor's callbacks and cadence.
type SessionMonitorConfig struct {
	Interval  time.Duration
	OnWarning func(remainingSeconds int) // fired once on the rising edge
	OnTimeout func()                     // expected to perform the forced logout
}

// SessionMonitor polls the security service while a session is armed,
// raising a warning event when the idle budget drops inside the warning
// threshold and a timeout event when it runs out. Any interaction resets
// the session to active. There is exactly one admin session, so one
// monitor instance serves the process.
type SessionMonitor struct {
	security *services.SecurityService
	logger   *slog.Logger
	config   SessionMonitorConfig

	mu           sync.Mutex
	armed        bool
	warningShown bool
	state        string
	remaining    int

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewSessionMonitor creates a stopped monitor; call Start to begin
// polling and Arm once a session exists.
func NewSessionMonitor(security *services.SecurityService, logger *slog.Logger, config SessionMonitorConfig) *SessionMonitor {
	if config.Interval <= 0 {
		config.Interval = DefaultPollInterval
	}
	return &SessionMonitor{
		security: security,
		logger:   logger,
		config:   config,
		state:    SessionStateActive,
		stopCh:   make(chan struct{}),
	}
}

// Start runs the polling loop until the context is cancelled or Stop is
// called.
func (m *SessionMonitor) Start(ctx context.Context) {
	ticker := time.NewTicker(m.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.CheckNow()
		case <-m.stopCh:
			m.logger.Info("session monitor stopped")
			return
		case <-ctx.Done():
			m.logger.Info("session monitor context cancelled")
			return
		}
	}
}

// Stop signals the polling loop to exit.
func (m *SessionMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

// Arm begins watching; called after a successful login.
func (m *SessionMonitor) Arm() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.armed = true
	m.warningShown = false
	m.state = SessionStateActive
	m.remaining = m.security.TimeUntilTimeout()
}

// Disarm stops watching; called on logout.
func (m *SessionMonitor) Disarm() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.armed = false
	m.warningShown = false
	m.state = SessionStateActive
}

// Interaction records a qualifying user interaction: the activity stamp
// is refreshed and any pending warning is withdrawn.
func (m *SessionMonitor) Interaction() {
	m.mu.Lock()
	armed := m.armed
	m.mu.Unlock()
	if !armed {
		return
	}

	m.security.RecordActivity()

	m.mu.Lock()
	m.warningShown = false
	m.state = SessionStateActive
	m.remaining = m.security.TimeUntilTimeout()
	m.mu.Unlock()
}

// ExtendSession is the explicit "stay logged in" affordance; it behaves
// exactly like an interaction.
func (m *SessionMonitor) ExtendSession() {
	m.Interaction()
}

// Status returns the current snapshot.
func (m *SessionMonitor) Status() SessionStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return SessionStatus{
		State:            m.state,
		RemainingSeconds: m.remaining,
		Warning:          m.warningShown,
	}
}

// CheckNow performs one poll tick.
func (m *SessionMonitor) CheckNow() {
	m.mu.Lock()
	if !m.armed {
		m.warningShown = false
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()

	status := m.security.CheckSessionTimeout()
	if status.TimedOut {
		m.mu.Lock()
		m.armed = false
		m.warningShown = false
		m.state = SessionStateExpired
		m.remaining = 0
		m.mu.Unlock()

		m.logger.Info("session timed out, forcing logout")
		if m.config.OnTimeout != nil {
			m.config.OnTimeout()
		}
		return
	}

	shouldWarn := m.security.ShouldShowTimeoutWarning()

	m.mu.Lock()
	m.remaining = status.RemainingSeconds
	fireWarning := shouldWarn && !m.warningShown
	if shouldWarn {
		m.warningShown = true
		m.state = SessionStateWarning
	} else {
		m.warningShown = false
		m.state = SessionStateActive
	}
	m.mu.Unlock()

	if fireWarning {
		m.logger.Info("session expiring soon", slog.Int("remaining_seconds", status.RemainingSeconds))
		if m.config.OnWarning != nil {
			m.config.OnWarning(status.RemainingSeconds)
		}
	}
}
