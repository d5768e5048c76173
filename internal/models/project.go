package models

// Project layouts used by the front-page composition
const (
	ProjectLayoutFeatured     = "featured"
	ProjectLayoutStandard     = "standard"
	ProjectLayoutInverted     = "inverted"
	ProjectLayoutTextOnly     = "text-only"
	ProjectLayoutSidebarImage = "sidebar-image"
	ProjectLayoutPlaceholder  = "placeholder"
)

// ProjectLinks holds the outbound links of a project listing.
type ProjectLinks struct {
	Demo string `json:"demo,omitempty"`
	Repo string `json:"repo,omitempty"`
}

// Project is a portfolio project ("classified" listing).
type Project struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Year      string        `json:"year"`
	Category  string        `json:"category"`
	Layout    string        `json:"layout"`
	ShortDesc string        `json:"shortDesc"`
	FullDesc  string        `json:"fullDesc,omitempty"`
	Image     string        `json:"image,omitempty"`
	TechStack []string      `json:"techStack,omitempty"`
	Challenge string        `json:"challenge,omitempty"`
	Solution  string        `json:"solution,omitempty"`
	Links     *ProjectLinks `json:"links,omitempty"`
	Featured  bool          `json:"featured,omitempty"`
	Order     *int          `json:"order,omitempty"`
	Published *bool         `json:"published,omitempty"`
	CreatedAt string        `json:"createdAt,omitempty"`
	UpdatedAt string        `json:"updatedAt,omitempty"`
}

// IsPublished treats a missing published flag as published, matching the
// public listing behavior.
func (p *Project) IsPublished() bool {
	return p.Published == nil || *p.Published
}

// SortOrder returns the explicit order or a sink value for unordered rows.
func (p *Project) SortOrder() int {
	if p.Order == nil {
		return 999
	}
	return *p.Order
}
