package sections

import "time"

// WhyUsFeature is one "why choose us" card on the site-info page. Its order
// lives in its own column, feature_order, a historical quirk the reorder
// endpoint has to respect.
type WhyUsFeature struct {
	ID           string    `gorm:"primaryKey;type:char(36)" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Body         string    `gorm:"type:text" json:"body"`
	Icon         string    `gorm:"size:255" json:"icon"`
	FeatureOrder int       `gorm:"column:feature_order" json:"feature_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (WhyUsFeature) TableName() string { return "why_us_features" }

// PageSection is a reorderable content block on a static page.
type PageSection struct {
	ID           string    `gorm:"primaryKey;type:char(36)" json:"id"`
	PageKey      string    `gorm:"size:64;index:ix_page_sections_page" json:"page_key"`
	Heading      string    `gorm:"size:255" json:"heading"`
	Body         string    `gorm:"type:text" json:"body"`
	ImageURL     string    `gorm:"size:1024" json:"image_url"`
	DisplayOrder int       `json:"display_order"`
	Visible      bool      `json:"visible"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (PageSection) TableName() string { return "page_sections" }
