package products

import (
	"encoding/json"
	"log/slog"
	"time"

	"gorm.io/datatypes"
)

// Variant is one priced packaging option of a product. The variant list is
// stored as a serialized JSON column and parsed defensively on read.
type Variant struct {
	Quantity  string  `json:"quantity"`
	Price     float64 `json:"price"`
	MRP       float64 `json:"mrp"`
	Stock     int     `json:"stock"`
	BatchSold int     `json:"batch_sold"`
	TotalSold int     `json:"total_sold"`
	Packaging string  `json:"packaging"`
}

type Product struct {
	ID            string         `gorm:"primaryKey;type:char(36)" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	CategorySlug  string         `gorm:"size:255;index:ix_products_category" json:"category_slug"`
	Tagline       string         `gorm:"size:255" json:"tagline"`
	Description   string         `gorm:"type:text" json:"description"`
	NutritionInfo datatypes.JSON `json:"nutrition_info"`
	Variants      datatypes.JSON `json:"variants"`
	Stock         int            `json:"stock"`
	Visible       bool           `json:"visible"`
	Trending      bool           `json:"trending"`
	DisplayOrder  int            `json:"display_order"`
	Slug          string         `gorm:"size:255;uniqueIndex:ux_products_slug" json:"slug"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`

	Images []Image `gorm:"foreignKey:ProductID" json:"images"`
}

func (Product) TableName() string { return "products" }

type Image struct {
	ID           string    `gorm:"primaryKey;type:char(36)" json:"id"`
	ProductID    string    `gorm:"type:char(36);index:ix_product_images_product" json:"product_id"`
	StorageKey   string    `gorm:"size:512" json:"storage_key"`
	URL          string    `gorm:"size:1024" json:"url"`
	IsDefault    bool      `json:"is_default"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Image) TableName() string { return "product_images" }

// catalog.Entry implementation, so the projector and cache can hold products
// without importing this package.
func (p Product) EntryID() string       { return p.ID }
func (p Product) EntryCategory() string { return p.CategorySlug }
func (p Product) EntryTrending() bool   { return p.Trending }
func (p Product) EntryOrder() int       { return p.DisplayOrder }

// ParseVariants decodes the serialized variant list. Malformed stored data
// degrades to an empty list; the rest of the record is still usable.
func (p Product) ParseVariants(l *slog.Logger) []Variant {
	if len(p.Variants) == 0 {
		return []Variant{}
	}
	var out []Variant
	if err := json.Unmarshal(p.Variants, &out); err != nil {
		if l != nil {
			l.Warn("malformed variants column", "product_id", p.ID, "err", err)
		}
		return []Variant{}
	}
	return out
}

// ParseNutrition decodes the nutrition facts map, degrading to empty on
// malformed data like ParseVariants.
func (p Product) ParseNutrition(l *slog.Logger) map[string]any {
	if len(p.NutritionInfo) == 0 {
		return map[string]any{}
	}
	var out map[string]any
	if err := json.Unmarshal(p.NutritionInfo, &out); err != nil {
		if l != nil {
			l.Warn("malformed nutrition column", "product_id", p.ID, "err", err)
		}
		return map[string]any{}
	}
	return out
}
