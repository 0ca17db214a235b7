package products

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) List(ctx context.Context) ([]Product, error) {
	var items []Product
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("display_order ASC, id ASC") }).
		Order("category_slug ASC, display_order ASC").
		Find(&items).Error
	return items, err
}

func (r *Repo) ListByCategory(ctx context.Context, categorySlug string) ([]Product, error) {
	var items []Product
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("display_order ASC, id ASC") }).
		Where("category_slug = ?", categorySlug).
		Order("display_order ASC").
		Find(&items).Error
	return items, err
}

func (r *Repo) Get(ctx context.Context, id string) (Product, error) {
	var p Product
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("display_order ASC, id ASC") }).
		First(&p, "id = ?", id).Error
	return p, err
}

func (r *Repo) Create(ctx context.Context, p *Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Omit("Images").Create(p).Error
}

func (r *Repo) Update(ctx context.Context, p *Product) error {
	return r.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"name":           p.Name,
			"category_slug":  p.CategorySlug,
			"tagline":        p.Tagline,
			"description":    p.Description,
			"nutrition_info": p.NutritionInfo,
			"variants":       p.Variants,
			"stock":          p.Stock,
			"visible":        p.Visible,
			"trending":       p.Trending,
			"slug":           p.Slug,
			"updated_at":     time.Now(),
		}).Error
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Product{}, "id = ?", id).Error
}

// SlugTaken reports whether another product already holds the slug.
func (r *Repo) SlugTaken(ctx context.Context, slug, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).Model(&Product{}).Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// SetOrder writes one product's per-category display order.
func (r *Repo) SetOrder(ctx context.Context, id string, position int) error {
	return r.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"display_order": position,
			"updated_at":    time.Now(),
		}).Error
}

func (r *Repo) AddImage(ctx context.Context, productID, storageKey, url string, isDefault bool, position int) (Image, error) {
	im := Image{
		ID:           uuid.NewString(),
		ProductID:    productID,
		StorageKey:   storageKey,
		URL:          url,
		IsDefault:    isDefault,
		DisplayOrder: position,
		CreatedAt:    time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&im).Error; err != nil {
		return Image{}, err
	}
	return im, nil
}

func (r *Repo) GetImage(ctx context.Context, productID, imageID string) (Image, error) {
	var im Image
	err := r.db.WithContext(ctx).First(&im, "id = ? AND product_id = ?", imageID, productID).Error
	return im, err
}

func (r *Repo) DeleteImage(ctx context.Context, productID, imageID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND product_id = ?", imageID, productID).
		Delete(&Image{}).Error
}

// SetDefaultImage flips the default flag to the given image within one
// product's image set.
func (r *Repo) SetDefaultImage(ctx context.Context, productID, imageID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Image{}).
			Where("product_id = ?", productID).
			Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Model(&Image{}).
			Where("id = ? AND product_id = ?", imageID, productID).
			Update("is_default", true).Error
	})
}

func IsDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	return false
}
