package testimonials

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) List(ctx context.Context) ([]Testimonial, error) {
	var items []Testimonial
	err := r.db.WithContext(ctx).
		Order("display_order ASC").
		Find(&items).Error
	return items, err
}

func (r *Repo) Get(ctx context.Context, id string) (Testimonial, error) {
	var tm Testimonial
	err := r.db.WithContext(ctx).First(&tm, "id = ?", id).Error
	return tm, err
}

func (r *Repo) Create(ctx context.Context, tm *Testimonial) error {
	if tm.ID == "" {
		tm.ID = uuid.NewString()
	}
	tm.CreatedAt = time.Now()
	tm.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Create(tm).Error
}

func (r *Repo) Update(ctx context.Context, tm *Testimonial) error {
	return r.db.WithContext(ctx).Model(&Testimonial{}).
		Where("id = ?", tm.ID).
		Updates(map[string]any{
			"author":       tm.Author,
			"location":     tm.Location,
			"message":      tm.Message,
			"rating":       tm.Rating,
			"product_name": tm.ProductName,
			"updated_at":   time.Now(),
		}).Error
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Testimonial{}, "id = ?", id).Error
}

func (r *Repo) SetOrder(ctx context.Context, id string, position int) error {
	return r.db.WithContext(ctx).Model(&Testimonial{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"display_order": position,
			"updated_at":    time.Now(),
		}).Error
}
