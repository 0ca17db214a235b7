package categories

import "time"

type Category struct {
	ID           string    `gorm:"primaryKey;type:char(36)" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Slug         string    `gorm:"size:255;uniqueIndex:ux_categories_slug" json:"slug"`
	SubBrand     string    `gorm:"size:255" json:"sub_brand"`
	Description  string    `gorm:"type:text" json:"description"`
	HeroText     string    `gorm:"type:text" json:"hero_text"`
	DisplayOrder int       `json:"display_order"`
	Visible      bool      `json:"visible"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Category) TableName() string { return "categories" }
