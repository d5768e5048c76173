package models

import "time"

// Visit is one best-effort visitor audit record. Geo fields degrade to
// "unknown" when the lookup fails.
type Visit struct {
	ID        string    `json:"id"`
	IP        string    `json:"ip"`
	City      string    `json:"city"`
	Region    string    `json:"region"`
	Country   string    `json:"country"`
	DeviceID  string    `json:"deviceId"`
	UserAgent string    `json:"userAgent"`
	Language  string    `json:"language"`
	Path      string    `json:"path"`
	VisitedAt time.Time `json:"visitedAt"`
}
