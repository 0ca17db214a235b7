package sections

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) ListFeatures(ctx context.Context) ([]WhyUsFeature, error) {
	var items []WhyUsFeature
	err := r.db.WithContext(ctx).
		Order("feature_order ASC").
		Find(&items).Error
	return items, err
}

func (r *Repo) GetFeature(ctx context.Context, id string) (WhyUsFeature, error) {
	var f WhyUsFeature
	err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error
	return f, err
}

func (r *Repo) CreateFeature(ctx context.Context, f *WhyUsFeature) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	f.CreatedAt = time.Now()
	f.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *Repo) UpdateFeature(ctx context.Context, f *WhyUsFeature) error {
	return r.db.WithContext(ctx).Model(&WhyUsFeature{}).
		Where("id = ?", f.ID).
		Updates(map[string]any{
			"title":      f.Title,
			"body":       f.Body,
			"icon":       f.Icon,
			"updated_at": time.Now(),
		}).Error
}

func (r *Repo) DeleteFeature(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&WhyUsFeature{}, "id = ?", id).Error
}

// FeatureOrderWriter writes the feature_order column, not display_order.
type FeatureOrderWriter struct{ repo *Repo }

func (r *Repo) FeatureOrders() *FeatureOrderWriter { return &FeatureOrderWriter{repo: r} }

func (w *FeatureOrderWriter) SetOrder(ctx context.Context, id string, position int) error {
	return w.repo.db.WithContext(ctx).Model(&WhyUsFeature{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"feature_order": position,
			"updated_at":    time.Now(),
		}).Error
}

func (r *Repo) ListSections(ctx context.Context, pageKey string) ([]PageSection, error) {
	q := r.db.WithContext(ctx).Order("display_order ASC")
	if pageKey != "" {
		q = q.Where("page_key = ?", pageKey)
	}
	var items []PageSection
	err := q.Find(&items).Error
	return items, err
}

func (r *Repo) GetSection(ctx context.Context, id string) (PageSection, error) {
	var sec PageSection
	err := r.db.WithContext(ctx).First(&sec, "id = ?", id).Error
	return sec, err
}

func (r *Repo) CreateSection(ctx context.Context, sec *PageSection) error {
	if sec.ID == "" {
		sec.ID = uuid.NewString()
	}
	sec.CreatedAt = time.Now()
	sec.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Create(sec).Error
}

func (r *Repo) UpdateSection(ctx context.Context, sec *PageSection) error {
	return r.db.WithContext(ctx).Model(&PageSection{}).
		Where("id = ?", sec.ID).
		Updates(map[string]any{
			"page_key":   sec.PageKey,
			"heading":    sec.Heading,
			"body":       sec.Body,
			"image_url":  sec.ImageURL,
			"visible":    sec.Visible,
			"updated_at": time.Now(),
		}).Error
}

func (r *Repo) DeleteSection(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&PageSection{}, "id = ?", id).Error
}

// SetOrder writes a page section's display order.
func (r *Repo) SetOrder(ctx context.Context, id string, position int) error {
	return r.db.WithContext(ctx).Model(&PageSection{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"display_order": position,
			"updated_at":    time.Now(),
		}).Error
}
