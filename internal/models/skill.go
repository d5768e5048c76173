package models

// Skill trends rendered as stock-ticker style indicators
const (
	SkillTrendBullish   = "bullish"
	SkillTrendHigh      = "high"
	SkillTrendStable    = "stable"
	SkillTrendBearish   = "bearish"
	SkillTrendDeclining = "declining"
)

// Skill is one entry of the skills board.
type Skill struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Category          string `json:"category"`
	Icon              string `json:"icon,omitempty"`
	Trend             string `json:"trend"`
	Proficiency       int    `json:"proficiency,omitempty"` // 1-100
	YearsOfExperience int    `json:"yearsOfExperience,omitempty"`
	Featured          bool   `json:"featured,omitempty"`
	Order             *int   `json:"order,omitempty"`
	CreatedAt         string `json:"createdAt,omitempty"`
	UpdatedAt         string `json:"updatedAt,omitempty"`
}
