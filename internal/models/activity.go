package models

import "time"

// Activity actions
const (
	ActivityActionLogin       = "login"
	ActivityActionLogout      = "logout"
	ActivityActionLoginFailed = "login_failed"
	ActivityActionCreate      = "create"
	ActivityActionUpdate      = "update"
	ActivityActionDelete      = "delete"
	ActivityActionPublish     = "publish"
	ActivityActionUnpublish   = "unpublish"
)

// Activity entity types
const (
	ActivityEntityAuth    = "auth"
	ActivityEntityProject = "project"
	ActivityEntityBlog    = "blog"
	ActivityEntityProfile = "profile"
	ActivityEntitySkill   = "skill"
	ActivityEntityConfig  = "config"
)

// ActivityLog is one entry of the admin audit trail. Entries are
// immutable once appended; only the whole-list truncation at the cap
// removes entries, always the oldest.
type ActivityLog struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId,omitempty"`
	EntityName string    `json:"entityName,omitempty"`
	UserEmail  string    `json:"userEmail,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	Details    string    `json:"details,omitempty"`
}

// ActivityStats aggregates activity counts over a recent window.
type ActivityStats struct {
	TotalActions int `json:"totalActions"`
	Logins       int `json:"logins"`
	FailedLogins int `json:"failedLogins"`
	Creates      int `json:"creates"`
	Updates      int `json:"updates"`
	Deletes      int `json:"deletes"`
}
