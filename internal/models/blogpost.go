package models

// BlogContent is one block of editorial content.
type BlogContent struct {
	Type    string `json:"type"` // paragraph, blockquote, heading, list
	Content string `json:"content"`
	Level   int    `json:"level,omitempty"` // heading depth
}

// BlogPost is an editorial article.
type BlogPost struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Subtitle      string        `json:"subtitle,omitempty"`
	Author        string        `json:"author"`
	PublishDate   string        `json:"publishDate"`
	ReadTime      string        `json:"readTime"`
	Category      string        `json:"category,omitempty"`
	Tags          []string      `json:"tags,omitempty"`
	FeaturedImage string        `json:"featuredImage,omitempty"`
	Content       []BlogContent `json:"content"`
	Published     *bool         `json:"published,omitempty"`
	Featured      bool          `json:"featured,omitempty"`
	Order         *int          `json:"order,omitempty"`
	CreatedAt     string        `json:"createdAt,omitempty"`
	UpdatedAt     string        `json:"updatedAt,omitempty"`
}

func (b *BlogPost) IsPublished() bool {
	return b.Published == nil || *b.Published
}
