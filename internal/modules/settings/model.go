package settings

import "time"

// SiteSettings is a singleton: exactly one row is expected. A missing row
// means "not yet initialized", not an error.
type SiteSettings struct {
	ID              string    `gorm:"primaryKey;type:char(36)" json:"id"`
	SiteName        string    `gorm:"size:255" json:"site_name"`
	Tagline         string    `gorm:"size:255" json:"tagline"`
	ContactEmail    string    `gorm:"size:255" json:"contact_email"`
	ContactPhone    string    `gorm:"size:64" json:"contact_phone"`
	WhatsappNumber  string    `gorm:"size:64" json:"whatsapp_number"`
	Address         string    `gorm:"type:text" json:"address"`
	InstagramURL    string    `gorm:"size:512" json:"instagram_url"`
	FacebookURL     string    `gorm:"size:512" json:"facebook_url"`
	YoutubeURL      string    `gorm:"size:512" json:"youtube_url"`
	FooterText      string    `gorm:"type:text" json:"footer_text"`
	ShippingPolicy  string    `gorm:"type:text" json:"shipping_policy"`
	RefundPolicy    string    `gorm:"type:text" json:"refund_policy"`
	ShowTestimonial bool      `json:"show_testimonials"`
	ShowWhatsapp    bool      `json:"show_whatsapp"`
	OrderingEnabled bool      `json:"ordering_enabled"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (SiteSettings) TableName() string { return "site_settings" }
