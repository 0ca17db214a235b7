package products

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/catalog"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/shared/apperr"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/shared/slug"
)

type Service struct {
	repo    Repository
	log     *slog.Logger
	session *catalog.EditSession
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log, session: catalog.NewEditSession()}
}

// Input is the validated form payload for a product save.
type Input struct {
	ID           string         `json:"id"`
	Name         string         `json:"name" binding:"required"`
	CategorySlug string         `json:"category_slug" binding:"required"`
	Tagline      string         `json:"tagline"`
	Description  string         `json:"description"`
	Nutrition    map[string]any `json:"nutrition_info"`
	Variants     []Variant      `json:"variants"`
	Visible      bool           `json:"visible"`
	Trending     bool           `json:"trending"`
	Slug         string         `json:"slug"`
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Remote(err)
	}
	return items, nil
}

// BeginEdit fetches the product and captures the edit snapshot.
func (s *Service) BeginEdit(ctx context.Context, id string) (Product, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Product{}, apperr.NotFoundErr("Product not found.")
		}
		return Product{}, apperr.Remote(err)
	}
	s.session.Begin(p)
	return p, nil
}

// BeginCreate clears any prior snapshot for a create form.
func (s *Service) BeginCreate() { s.session.BeginNew() }

// CancelEdit drops the snapshot when the form closes without saving.
func (s *Service) CancelEdit() { s.session.Discard() }

// Save validates, resolves a unique slug and writes the product. The
// returned summary lists the changed fields (or the created/no-changes
// sentinel) for the success toast. Validation failures happen before any
// database call.
func (s *Service) Save(ctx context.Context, in Input) (Product, []string, error) {
	if len(in.Variants) == 0 {
		return Product{}, nil, apperr.InvalidErr("A product needs at least one variant.",
			map[string]string{"variants": "Add at least one variant before saving."})
	}

	base := in.Slug
	if base == "" {
		base = slug.Make(in.Name)
	}
	if base == "" {
		return Product{}, nil, apperr.InvalidErr("Product name is required.",
			map[string]string{"name": "This field is required."})
	}

	unique, err := catalog.EnsureUniqueSlug(ctx, s.repo, base, in.ID)
	if err != nil {
		return Product{}, nil, apperr.Remote(err)
	}

	variantsJSON, err := json.Marshal(in.Variants)
	if err != nil {
		return Product{}, nil, apperr.Wrap(err)
	}
	nutritionJSON, err := json.Marshal(in.Nutrition)
	if err != nil {
		return Product{}, nil, apperr.Wrap(err)
	}

	stock := 0
	for _, v := range in.Variants {
		stock += v.Stock
	}

	// On edit, start from the stored row so fields the form does not carry
	// (timestamps, display order, images) survive into the compared record
	// and the change summary covers form-owned data only.
	p := Product{ID: in.ID}
	if in.ID != "" {
		existing, err := s.repo.Get(ctx, in.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return Product{}, nil, apperr.NotFoundErr("Product not found.")
			}
			return Product{}, nil, apperr.Remote(err)
		}
		p = existing
	}
	p.Name = in.Name
	p.CategorySlug = in.CategorySlug
	p.Tagline = in.Tagline
	p.Description = in.Description
	p.NutritionInfo = datatypes.JSON(nutritionJSON)
	p.Variants = datatypes.JSON(variantsJSON)
	p.Stock = stock
	p.Visible = in.Visible
	p.Trending = in.Trending
	p.Slug = unique

	if in.ID == "" {
		err = s.repo.Create(ctx, &p)
	} else {
		err = s.repo.Update(ctx, &p)
	}
	if err != nil {
		if IsDuplicateKey(err) {
			return Product{}, nil, apperr.ConflictErr("A product with this slug already exists.")
		}
		return Product{}, nil, apperr.Remote(err)
	}

	// The summary diffs the whole record, derived stock included, against
	// the edit snapshot.
	summary := s.session.Finish(p)
	s.log.Info("product saved", "id", p.ID, "slug", p.Slug, "changes", summary)
	return p, summary, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Remote(err)
	}
	return nil
}
