package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Ashish-04-codes/Portfolio/internal/models"
	"github.com/Ashish-04-codes/Portfolio/internal/services"
)

// ActivityHandler serves the admin audit trail: filtered queries,
// aggregate stats, CSV download and the destructive clear.
type ActivityHandler struct {
	service *services.ActivityService
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(service *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// List returns trail entries, newest first. Supports ?days=N, ?entity=
// and ?action= filters; without filters the whole capped trail returns.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var logs []models.ActivityLog
	switch {
	case q.Get("days") != "":
		days, err := strconv.Atoi(q.Get("days"))
		if err != nil || days < 1 {
			days = 7
		}
		logs = h.service.RecentLogs(days)
	case q.Get("entity") != "":
		logs = h.service.LogsByEntity(q.Get("entity"))
	case q.Get("action") != "":
		logs = h.service.LogsByAction(q.Get("action"))
	default:
		logs = h.service.AllLogs()
	}

	writeJSON(w, http.StatusOK, logs)
}

// Stats returns aggregate counts over the recent window (default 7 days)
func (h *ActivityHandler) Stats(w http.ResponseWriter, r *http.Request) {
	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil || days < 1 {
		days = 7
	}
	writeJSON(w, http.StatusOK, h.service.Stats(days))
}

// FailedLogins returns failed login entries from the last N hours
// (default 24), for the security dashboard.
func (h *ActivityHandler) FailedLogins(w http.ResponseWriter, r *http.Request) {
	hours, err := strconv.Atoi(r.URL.Query().Get("hours"))
	if err != nil || hours < 1 {
		hours = 24
	}
	writeJSON(w, http.StatusOK, h.service.FailedLoginAttempts(hours))
}

// Export streams the whole trail as a CSV download.
func (h *ActivityHandler) Export(w http.ResponseWriter, r *http.Request) {
	filename := fmt.Sprintf("activity-logs-%s.csv", time.Now().Format("2006-01-02"))

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(h.service.ExportCSV()))
}

// Clear wipes the whole trail and records that it happened.
func (h *ActivityHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.service.ClearLogs()

	h.service.Log(services.LogActivityParams{
		Action:     models.ActivityActionDelete,
		EntityType: models.ActivityEntityConfig,
		UserEmail:  actorEmail(r),
		Details:    "Cleared activity logs",
	})

	w.WriteHeader(http.StatusNoContent)
}
