package models

type SiteConfigSeo struct {
	MetaDescription string   `json:"metaDescription"`
	Keywords        []string `json:"keywords"`
	OgImage         string   `json:"ogImage"`
}

type SiteConfigAnalytics struct {
	GoogleAnalyticsID string `json:"googleAnalyticsId"`
	EnableTracking    bool   `json:"enableTracking"`
}

type SiteConfigSocial struct {
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	Twitter  string `json:"twitter"`
	Email    string `json:"email"`
}

type SiteConfigFooter struct {
	Text      string   `json:"text"`
	Copyright string   `json:"copyright"`
	Links     []string `json:"links"`
}

// SiteConfig is the single site-wide settings document.
type SiteConfig struct {
	ID          string `json:"id"`
	SiteName    string `json:"siteName"`
	SiteTitle   string `json:"siteTitle,omitempty"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	Author      string `json:"author"`
	Location    string `json:"location"`
	Logo        string `json:"logo,omitempty"`
	Favicon     string `json:"favicon,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`

	HeroTitle    string `json:"heroTitle"`
	HeroSubtitle string `json:"heroSubtitle"`
	HeroImage    string `json:"heroImage,omitempty"`

	// Flat social links kept for backward compatibility with early documents
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Website  string `json:"website,omitempty"`

	Seo       *SiteConfigSeo       `json:"seo,omitempty"`
	Analytics *SiteConfigAnalytics `json:"analytics,omitempty"`
	Social    *SiteConfigSocial    `json:"social,omitempty"`
	Footer    *SiteConfigFooter    `json:"footer,omitempty"`

	AvailableForWork    bool   `json:"availableForWork"`
	AvailabilityMessage string `json:"availabilityMessage,omitempty"`
	UpdatedAt           string `json:"updatedAt,omitempty"`
}
