package sections

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/catalog"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/shared/apperr"
)

type Service struct {
	repo           *Repo
	log            *slog.Logger
	featureSession *catalog.EditSession
	sectionSession *catalog.EditSession
}

func NewService(repo *Repo, log *slog.Logger) *Service {
	return &Service{
		repo:           repo,
		log:            log,
		featureSession: catalog.NewEditSession(),
		sectionSession: catalog.NewEditSession(),
	}
}

type FeatureInput struct {
	ID    string `json:"id"`
	Title string `json:"title" binding:"required"`
	Body  string `json:"body"`
	Icon  string `json:"icon"`
}

type SectionInput struct {
	ID       string `json:"id"`
	PageKey  string `json:"page_key" binding:"required"`
	Heading  string `json:"heading"`
	Body     string `json:"body"`
	ImageURL string `json:"image_url"`
	Visible  bool   `json:"visible"`
}

func (s *Service) ListFeatures(ctx context.Context) ([]WhyUsFeature, error) {
	items, err := s.repo.ListFeatures(ctx)
	if err != nil {
		return nil, apperr.Remote(err)
	}
	return items, nil
}

func (s *Service) BeginFeatureEdit(ctx context.Context, id string) (WhyUsFeature, error) {
	f, err := s.repo.GetFeature(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return WhyUsFeature{}, apperr.NotFoundErr("Feature not found.")
		}
		return WhyUsFeature{}, apperr.Remote(err)
	}
	s.featureSession.Begin(f)
	return f, nil
}

func (s *Service) BeginFeatureCreate() { s.featureSession.BeginNew() }

func (s *Service) SaveFeature(ctx context.Context, in FeatureInput) (WhyUsFeature, []string, error) {
	// On edit, start from the stored row so feature_order and timestamps
	// survive into the compared record.
	f := WhyUsFeature{ID: in.ID}
	if in.ID != "" {
		existing, err := s.repo.GetFeature(ctx, in.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return WhyUsFeature{}, nil, apperr.NotFoundErr("Feature not found.")
			}
			return WhyUsFeature{}, nil, apperr.Remote(err)
		}
		f = existing
	}
	f.Title = in.Title
	f.Body = in.Body
	f.Icon = in.Icon

	var err error
	if in.ID == "" {
		err = s.repo.CreateFeature(ctx, &f)
	} else {
		err = s.repo.UpdateFeature(ctx, &f)
	}
	if err != nil {
		return WhyUsFeature{}, nil, apperr.Remote(err)
	}
	summary := s.featureSession.Finish(f)
	s.log.Info("feature saved", "id", f.ID, "changes", summary)
	return f, summary, nil
}

func (s *Service) DeleteFeature(ctx context.Context, id string) error {
	if err := s.repo.DeleteFeature(ctx, id); err != nil {
		return apperr.Remote(err)
	}
	return nil
}

func (s *Service) ListSections(ctx context.Context, pageKey string) ([]PageSection, error) {
	items, err := s.repo.ListSections(ctx, pageKey)
	if err != nil {
		return nil, apperr.Remote(err)
	}
	return items, nil
}

func (s *Service) BeginSectionEdit(ctx context.Context, id string) (PageSection, error) {
	sec, err := s.repo.GetSection(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PageSection{}, apperr.NotFoundErr("Section not found.")
		}
		return PageSection{}, apperr.Remote(err)
	}
	s.sectionSession.Begin(sec)
	return sec, nil
}

func (s *Service) BeginSectionCreate() { s.sectionSession.BeginNew() }

func (s *Service) SaveSection(ctx context.Context, in SectionInput) (PageSection, []string, error) {
	sec := PageSection{ID: in.ID}
	if in.ID != "" {
		existing, err := s.repo.GetSection(ctx, in.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return PageSection{}, nil, apperr.NotFoundErr("Section not found.")
			}
			return PageSection{}, nil, apperr.Remote(err)
		}
		sec = existing
	}
	sec.PageKey = in.PageKey
	sec.Heading = in.Heading
	sec.Body = in.Body
	sec.ImageURL = in.ImageURL
	sec.Visible = in.Visible

	var err error
	if in.ID == "" {
		err = s.repo.CreateSection(ctx, &sec)
	} else {
		err = s.repo.UpdateSection(ctx, &sec)
	}
	if err != nil {
		return PageSection{}, nil, apperr.Remote(err)
	}
	summary := s.sectionSession.Finish(sec)
	s.log.Info("section saved", "id", sec.ID, "changes", summary)
	return sec, summary, nil
}

func (s *Service) DeleteSection(ctx context.Context, id string) error {
	if err := s.repo.DeleteSection(ctx, id); err != nil {
		return apperr.Remote(err)
	}
	return nil
}
