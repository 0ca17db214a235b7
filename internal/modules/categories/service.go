package categories

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/catalog"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/modules/products"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/shared/apperr"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/shared/slug"
)

type Repository interface {
	List(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, id string) (Category, error)
	Create(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo    Repository
	log     *slog.Logger
	session *catalog.EditSession
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log, session: catalog.NewEditSession()}
}

type Input struct {
	ID          string `json:"id"`
	Title       string `json:"title" binding:"required"`
	Slug        string `json:"slug"`
	SubBrand    string `json:"sub_brand"`
	Description string `json:"description"`
	HeroText    string `json:"hero_text"`
	Visible     bool   `json:"visible"`
}

func (s *Service) List(ctx context.Context) ([]Category, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Remote(err)
	}
	return items, nil
}

func (s *Service) BeginEdit(ctx context.Context, id string) (Category, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Category{}, apperr.NotFoundErr("Category not found.")
		}
		return Category{}, apperr.Remote(err)
	}
	s.session.Begin(c)
	return c, nil
}

func (s *Service) BeginCreate() { s.session.BeginNew() }

// Save writes the category. Unlike products, category slugs are not resolved
// with numeric suffixes: the unique index surfaces a collision as a conflict
// and the operator picks a different title or slug.
func (s *Service) Save(ctx context.Context, in Input) (Category, []string, error) {
	sl := in.Slug
	if sl == "" {
		sl = slug.Make(in.Title)
	}
	if sl == "" {
		return Category{}, nil, apperr.InvalidErr("Category title is required.",
			map[string]string{"title": "This field is required."})
	}

	// On edit, start from the stored row so display order and timestamps
	// survive into the compared record.
	c := Category{ID: in.ID}
	if in.ID != "" {
		existing, err := s.repo.Get(ctx, in.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return Category{}, nil, apperr.NotFoundErr("Category not found.")
			}
			return Category{}, nil, apperr.Remote(err)
		}
		c = existing
	}
	c.Title = in.Title
	c.Slug = sl
	c.SubBrand = in.SubBrand
	c.Description = in.Description
	c.HeroText = in.HeroText
	c.Visible = in.Visible

	var err error
	if in.ID == "" {
		err = s.repo.Create(ctx, &c)
	} else {
		err = s.repo.Update(ctx, &c)
	}
	if err != nil {
		if products.IsDuplicateKey(err) {
			return Category{}, nil, apperr.ConflictErr("A category with this slug already exists.")
		}
		return Category{}, nil, apperr.Remote(err)
	}

	summary := s.session.Finish(c)
	s.log.Info("category saved", "id", c.ID, "slug", c.Slug, "changes", summary)
	return c, summary, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Remote(err)
	}
	return nil
}
