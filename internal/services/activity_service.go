package services

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/Ashish-04-codes/Portfolio/internal/kvstore"
	"github.com/Ashish-04-codes/Portfolio/internal/models"
	"github.com/google/uuid"
)

// ActivityLogKey is the storage key holding the whole audit trail as a
// single JSON list, newest first.
const ActivityLogKey = "admin_activity_logs"

// MaxActivityLogs caps the retained trail; the oldest entries beyond the
// cap are silently dropped.
const MaxActivityLogs = 1000

// LogActivityParams are the caller-supplied fields of one entry. ID and
// timestamp are assigned by the service.
type LogActivityParams struct {
	Action     string
	EntityType string
	EntityID   string
	EntityName string
	UserEmail  string
	Details    string
}

// ActivityService keeps the append-only admin audit trail. Every write
// is a full read-modify-write of the capped list, unsynchronized across
// writers (the state is advisory, see the security service).
type ActivityService struct {
	store  kvstore.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewActivityService creates a new ActivityService.
func NewActivityService(store kvstore.Store, logger *slog.Logger) *ActivityService {
	return &ActivityService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Log appends one entry to the front of the trail and truncates to the
// cap. Entries are immutable once written.
func (s *ActivityService) Log(params LogActivityParams) {
	entry := models.ActivityLog{
		ID:         uuid.New().String(),
		Action:     params.Action,
		EntityType: params.EntityType,
		EntityID:   params.EntityID,
		EntityName: params.EntityName,
		UserEmail:  params.UserEmail,
		Timestamp:  s.now().UTC(),
		Details:    params.Details,
	}

	logs := s.AllLogs()
	logs = append([]models.ActivityLog{entry}, logs...)
	if len(logs) > MaxActivityLogs {
		logs = logs[:MaxActivityLogs]
	}

	s.saveLogs(logs)
}

// AllLogs returns the whole trail, newest first. Unreadable state reads
// as an empty trail.
func (s *ActivityService) AllLogs() []models.ActivityLog {
	raw, err := s.store.GetItem(ActivityLogKey)
	if err != nil || raw == "" {
		return []models.ActivityLog{}
	}

	var logs []models.ActivityLog
	if err := json.Unmarshal([]byte(raw), &logs); err != nil {
		s.logger.Error("unable to read activity logs", slog.Any("error", err))
		return []models.ActivityLog{}
	}
	return logs
}

// RecentLogs returns entries from the last N days. The boundary is
// inclusive: an entry exactly at the cutoff is kept.
func (s *ActivityService) RecentLogs(days int) []models.ActivityLog {
	cutoff := s.now().AddDate(0, 0, -days)
	return s.filter(func(entry models.ActivityLog) bool {
		return !entry.Timestamp.Before(cutoff)
	})
}

// LogsByEntity returns entries for one entity type.
func (s *ActivityService) LogsByEntity(entityType string) []models.ActivityLog {
	return s.filter(func(entry models.ActivityLog) bool {
		return entry.EntityType == entityType
	})
}

// LogsByAction returns entries for one action.
func (s *ActivityService) LogsByAction(action string) []models.ActivityLog {
	return s.filter(func(entry models.ActivityLog) bool {
		return entry.Action == action
	})
}

// FailedLoginAttempts returns auth login_failed entries from the last N
// hours.
func (s *ActivityService) FailedLoginAttempts(hours int) []models.ActivityLog {
	cutoff := s.now().Add(-time.Duration(hours) * time.Hour)
	return s.filter(func(entry models.ActivityLog) bool {
		return entry.Action == models.ActivityActionLoginFailed &&
			entry.EntityType == models.ActivityEntityAuth &&
			!entry.Timestamp.Before(cutoff)
	})
}

// Stats aggregates counts over the recent window.
func (s *ActivityService) Stats(days int) models.ActivityStats {
	logs := s.RecentLogs(days)

	stats := models.ActivityStats{TotalActions: len(logs)}
	for _, entry := range logs {
		switch entry.Action {
		case models.ActivityActionLogin:
			stats.Logins++
		case models.ActivityActionLoginFailed:
			stats.FailedLogins++
		case models.ActivityActionCreate:
			stats.Creates++
		case models.ActivityActionUpdate:
			stats.Updates++
		case models.ActivityActionDelete:
			stats.Deletes++
		}
	}
	return stats
}

// ClearLogs removes the whole trail.
func (s *ActivityService) ClearLogs() {
	_ = s.store.RemoveItem(ActivityLogKey)
}

// ExportCSV renders the trail as CSV. Every field is wrapped in double
// quotes; embedded quote characters are not escaped beyond the wrapping.
// That matches the historical export format consumed by the admin UI, so
// it is preserved rather than corrected.
func (s *ActivityService) ExportCSV() string {
	logs := s.AllLogs()

	var b strings.Builder
	b.WriteString("Timestamp,Action,Entity Type,Entity Name,User Email,Details")

	for _, entry := range logs {
		email := entry.UserEmail
		if email == "" {
			email = "Unknown"
		}
		fields := []string{
			entry.Timestamp.Local().Format("2006-01-02 15:04:05"),
			entry.Action,
			entry.EntityType,
			orDash(entry.EntityName),
			email,
			orDash(entry.Details),
		}
		b.WriteString("\n")
		for i, field := range fields {
			if i > 0 {
				b.WriteString(",")
			}
			// plain wrapping, no quote escaping (see doc comment)
			b.WriteString(`"` + field + `"`)
		}
	}

	return b.String()
}

func (s *ActivityService) filter(keep func(models.ActivityLog) bool) []models.ActivityLog {
	all := s.AllLogs()
	matched := make([]models.ActivityLog, 0, len(all))
	for _, entry := range all {
		if keep(entry) {
			matched = append(matched, entry)
		}
	}
	return matched
}

func (s *ActivityService) saveLogs(logs []models.ActivityLog) {
	data, err := json.Marshal(logs)
	if err != nil {
		s.logger.Error("unable to encode activity logs", slog.Any("error", err))
		return
	}
	_ = s.store.SetItem(ActivityLogKey, string(data))
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
