package testimonials

import "time"

type Testimonial struct {
	ID           string    `gorm:"primaryKey;type:char(36)" json:"id"`
	Author       string    `gorm:"size:255;not null" json:"author"`
	Location     string    `gorm:"size:255" json:"location"`
	Message      string    `gorm:"type:text;not null" json:"message"`
	Rating       int       `json:"rating"`
	ProductName  string    `gorm:"size:255" json:"product_name"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Testimonial) TableName() string { return "testimonials" }
