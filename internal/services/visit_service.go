package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Ashish-04-codes/Portfolio/internal/docstore"
	"github.com/Ashish-04-codes/Portfolio/internal/geo"
	"github.com/Ashish-04-codes/Portfolio/internal/models"
)

const visitCollection = "audits"

// GeoResolver resolves an IP address to a coarse location.
type GeoResolver interface {
	Lookup(ctx context.Context, ip string) (geo.Location, error)
}

// RecordVisitParams carries the request-derived fields of one page visit.
type RecordVisitParams struct {
	IP        string
	DeviceID  string
	UserAgent string
	Language  string
	Path      string
}

// VisitService keeps a best-effort audit trail of public page visits.
// Geolocation failures degrade every geo field to "unknown" rather than
// dropping the record.
type VisitService struct {
	store  docstore.Store
	geo    GeoResolver
	logger *slog.Logger
	now    func() time.Time
}

// NewVisitService creates a new VisitService
func NewVisitService(store docstore.Store, resolver GeoResolver, logger *slog.Logger) *VisitService {
	return &VisitService{store: store, geo: resolver, logger: logger, now: time.Now}
}

// Record stores one visit. Never returns an error to the caller's hot
// path for geo failures, only for storage failures.
func (s *VisitService) Record(ctx context.Context, params RecordVisitParams) (*models.Visit, error) {
	visit := models.Visit{
		ID:        uuid.New().String(),
		IP:        orUnknown(params.IP),
		City:      "unknown",
		Region:    "unknown",
		Country:   "unknown",
		DeviceID:  orUnknown(params.DeviceID),
		UserAgent: orUnknown(params.UserAgent),
		Language:  orUnknown(params.Language),
		Path:      orUnknown(params.Path),
		VisitedAt: s.now().UTC(),
	}

	if s.geo != nil {
		loc, err := s.geo.Lookup(ctx, params.IP)
		if err != nil {
			s.logger.Warn("geo lookup failed", slog.Any("error", err))
		} else {
			visit.City = orUnknown(loc.City)
			visit.Region = orUnknown(loc.Region)
			visit.Country = orUnknown(loc.Country)
			if visit.IP == "unknown" {
				visit.IP = orUnknown(loc.IP)
			}
		}
	}

	if err := s.store.SaveDocument(ctx, visitCollection, visit.ID, visit); err != nil {
		return nil, err
	}
	return &visit, nil
}

// Recent returns the visits of the last given number of days, newest first.
func (s *VisitService) Recent(ctx context.Context, days int) ([]models.Visit, error) {
	raws, err := s.store.GetCollection(ctx, visitCollection)
	if err != nil {
		return nil, err
	}

	visits, err := docstore.DecodeAll[models.Visit](raws)
	if err != nil {
		return nil, err
	}

	cutoff := s.now().AddDate(0, 0, -days)
	recent := make([]models.Visit, 0, len(visits))
	for _, v := range visits {
		if !v.VisitedAt.Before(cutoff) {
			recent = append(recent, v)
		}
	}

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].VisitedAt.After(recent[j].VisitedAt)
	})
	return recent, nil
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
