package models

// ProfileSection is one ordered block of the about page.
type ProfileSection struct {
	ID         string `json:"id"`
	Heading    string `json:"heading"`
	Subheading string `json:"subheading"`
	Content    string `json:"content"`
	Order      int    `json:"order"`
}

// ProfileVitals is the quick-facts sidebar box.
type ProfileVitals struct {
	Experience   string `json:"experience"`
	Level        string `json:"level"`
	Location     string `json:"location"`
	Status       string `json:"status"`
	Availability string `json:"availability,omitempty"`
}

// Profile is the single about/bio document.
type Profile struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Title        string           `json:"title"`
	Location     string           `json:"location"`
	Bio          string           `json:"bio"`
	ProfileImage string           `json:"profileImage,omitempty"`
	Sections     []ProfileSection `json:"sections"`
	Vitals       ProfileVitals    `json:"vitals"`
	Email        string           `json:"email,omitempty"`
	GitHub       string           `json:"github,omitempty"`
	LinkedIn     string           `json:"linkedin,omitempty"`
	Twitter      string           `json:"twitter,omitempty"`
	Website      string           `json:"website,omitempty"`
	CreatedAt    string           `json:"createdAt,omitempty"`
	UpdatedAt    string           `json:"updatedAt,omitempty"`
}
