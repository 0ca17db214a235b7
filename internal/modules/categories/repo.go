package categories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) List(ctx context.Context) ([]Category, error) {
	var items []Category
	err := r.db.WithContext(ctx).
		Order("display_order ASC").
		Find(&items).Error
	return items, err
}

func (r *Repo) Get(ctx context.Context, id string) (Category, error) {
	var c Category
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return c, err
}

func (r *Repo) Create(ctx context.Context, c *Category) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.CreatedAt = time.Now()
	c.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *Repo) Update(ctx context.Context, c *Category) error {
	return r.db.WithContext(ctx).Model(&Category{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"title":       c.Title,
			"slug":        c.Slug,
			"sub_brand":   c.SubBrand,
			"description": c.Description,
			"hero_text":   c.HeroText,
			"visible":     c.Visible,
			"updated_at":  time.Now(),
		}).Error
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Category{}, "id = ?", id).Error
}

func (r *Repo) SetOrder(ctx context.Context, id string, position int) error {
	return r.db.WithContext(ctx).Model(&Category{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"display_order": position,
			"updated_at":    time.Now(),
		}).Error
}
