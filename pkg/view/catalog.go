package view

type CategoryVM struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Slug         string `json:"slug"`
	SubBrand     string `json:"sub_brand"`
	Description  string `json:"description"`
	HeroText     string `json:"hero_text"`
	DisplayOrder int    `json:"display_order"`
	Visible      bool   `json:"visible"`
}

type TestimonialVM struct {
	ID           string `json:"id"`
	Author       string `json:"author"`
	Location     string `json:"location"`
	Message      string `json:"message"`
	Rating       int    `json:"rating"`
	ProductName  string `json:"product_name"`
	DisplayOrder int    `json:"display_order"`
}

type FeatureVM struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Body         string `json:"body"`
	Icon         string `json:"icon"`
	FeatureOrder int    `json:"feature_order"`
}

type SectionVM struct {
	ID           string `json:"id"`
	PageKey      string `json:"page_key"`
	Heading      string `json:"heading"`
	Body         string `json:"body"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order"`
	Visible      bool   `json:"visible"`
}
