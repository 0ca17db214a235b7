package settings

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotInitialized marks the recognized non-error state of a missing
// settings row. The next save inserts instead of updating.
var ErrNotInitialized = errors.New("site settings not initialized")

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

// Get returns the singleton row, or ErrNotInitialized when it does not
// exist yet. Any other database error passes through.
func (r *Repo) Get(ctx context.Context) (SiteSettings, error) {
	var s SiteSettings
	err := r.db.WithContext(ctx).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return SiteSettings{}, ErrNotInitialized
	}
	return s, err
}

func (r *Repo) Insert(ctx context.Context, s *SiteSettings) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *Repo) Update(ctx context.Context, s *SiteSettings) error {
	// Map form so false toggles and cleared strings still get written.
	return r.db.WithContext(ctx).Model(&SiteSettings{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"site_name":        s.SiteName,
			"tagline":          s.Tagline,
			"contact_email":    s.ContactEmail,
			"contact_phone":    s.ContactPhone,
			"whatsapp_number":  s.WhatsappNumber,
			"address":          s.Address,
			"instagram_url":    s.InstagramURL,
			"facebook_url":     s.FacebookURL,
			"youtube_url":      s.YoutubeURL,
			"footer_text":      s.FooterText,
			"shipping_policy":  s.ShippingPolicy,
			"refund_policy":    s.RefundPolicy,
			"show_testimonial": s.ShowTestimonial,
			"show_whatsapp":    s.ShowWhatsapp,
			"ordering_enabled": s.OrderingEnabled,
			"updated_at":       time.Now(),
		}).Error
}
