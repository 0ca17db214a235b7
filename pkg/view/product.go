package view

type VariantVM struct {
	Quantity  string  `json:"quantity"`
	Price     float64 `json:"price"`
	MRP       float64 `json:"mrp"`
	Stock     int     `json:"stock"`
	BatchSold int     `json:"batch_sold"`
	TotalSold int     `json:"total_sold"`
	Packaging string  `json:"packaging"`
}

type ImageVM struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	IsDefault    bool   `json:"is_default"`
	DisplayOrder int    `json:"display_order"`
}

type ProductVM struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	CategorySlug string         `json:"category_slug"`
	Tagline      string         `json:"tagline"`
	Description  string         `json:"description"`
	Nutrition    map[string]any `json:"nutrition_info"`
	Variants     []VariantVM    `json:"variants"`
	Stock        int            `json:"stock"`
	Visible      bool           `json:"visible"`
	Trending     bool           `json:"trending"`
	DisplayOrder int            `json:"display_order"`
	Slug         string         `json:"slug"`
	Images       []ImageVM      `json:"images"`
}

// ProductListVM is the projected, render-ready product list plus whether
// drag-and-drop reordering is allowed under the active filter.
type ProductListVM struct {
	Items      []ProductVM `json:"items"`
	CanReorder bool        `json:"can_reorder"`
}
