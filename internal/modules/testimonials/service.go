package testimonials

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/catalog"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/shared/apperr"
)

type Repository interface {
	List(ctx context.Context) ([]Testimonial, error)
	Get(ctx context.Context, id string) (Testimonial, error)
	Create(ctx context.Context, tm *Testimonial) error
	Update(ctx context.Context, tm *Testimonial) error
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
	Author      string `json:"author" binding:"required"`
	Location    string `json:"location"`
	Message     string `json:"message" binding:"required"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	ProductName string `json:"product_name"`
}

func (s *Service) List(ctx context.Context) ([]Testimonial, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Remote(err)
	}
	return items, nil
}

func (s *Service) BeginEdit(ctx context.Context, id string) (Testimonial, error) {
	tm, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Testimonial{}, apperr.NotFoundErr("Testimonial not found.")
		}
		return Testimonial{}, apperr.Remote(err)
	}
	s.session.Begin(tm)
	return tm, nil
}

func (s *Service) BeginCreate() { s.session.BeginNew() }

func (s *Service) Save(ctx context.Context, in Input) (Testimonial, []string, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return Testimonial{}, nil, apperr.InvalidErr("Rating must be between 1 and 5.",
			map[string]string{"rating": "Must be between 1 and 5."})
	}

	// On edit, start from the stored row so display order and timestamps
	// survive into the compared record.
	tm := Testimonial{ID: in.ID}
	if in.ID != "" {
		existing, err := s.repo.Get(ctx, in.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return Testimonial{}, nil, apperr.NotFoundErr("Testimonial not found.")
			}
			return Testimonial{}, nil, apperr.Remote(err)
		}
		tm = existing
	}
	tm.Author = in.Author
	tm.Location = in.Location
	tm.Message = in.Message
	tm.Rating = in.Rating
	tm.ProductName = in.ProductName

	var err error
	if in.ID == "" {
		err = s.repo.Create(ctx, &tm)
	} else {
		err = s.repo.Update(ctx, &tm)
	}
	if err != nil {
		return Testimonial{}, nil, apperr.Remote(err)
	}

	summary := s.session.Finish(tm)
	s.log.Info("testimonial saved", "id", tm.ID, "changes", summary)
	return tm, summary, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Remote(err)
	}
	return nil
}
