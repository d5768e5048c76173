package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Ashish-04-codes/Portfolio/internal/services"
	pkghttp "github.com/Ashish-04-codes/Portfolio/pkg/http"
)

// VisitHandler records public page visits and serves the visit audit to
// the admin dashboard.
type VisitHandler struct {
	service  *services.VisitService
	ipConfig *pkghttp.IPConfig
}

// NewVisitHandler creates a new VisitHandler
func NewVisitHandler(service *services.VisitService, ipConfig *pkghttp.IPConfig) *VisitHandler {
	return &VisitHandler{service: service, ipConfig: ipConfig}
}

// RecordVisitRequest is the client-supplied part of a visit record
type RecordVisitRequest struct {
	DeviceID string `json:"deviceId"`
	Language string `json:"language"`
	Path     string `json:"path"`
}

// Record stores one visit. Always answers 202; a failed geo lookup or
// an empty body never surfaces to the visitor.
func (h *VisitHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req RecordVisitRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	params := services.RecordVisitParams{
		IP:        pkghttp.ExtractClientIP(r, h.ipConfig),
		DeviceID:  req.DeviceID,
		UserAgent: r.Header.Get("User-Agent"),
		Language:  req.Language,
		Path:      req.Path,
	}
	if params.Language == "" {
		params.Language = r.Header.Get("Accept-Language")
	}

	if _, err := h.service.Record(r.Context(), params); err != nil {
		pkghttp.WriteInternalError(w, "Unable to record visit")
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// Recent returns the visits of the last N days, newest first (admin)
func (h *VisitHandler) Recent(w http.ResponseWriter, r *http.Request) {
	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil || days < 1 {
		days = 7
	}

	visits, err := h.service.Recent(r.Context(), days)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, visits)
}
