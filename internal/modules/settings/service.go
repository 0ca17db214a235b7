package settings

import (
	"context"
	"errors"
	"log/slog"

	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/catalog"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/shared/apperr"
)

type Repository interface {
	Get(ctx context.Context) (SiteSettings, error)
	Insert(ctx context.Context, s *SiteSettings) error
	Update(ctx context.Context, s *SiteSettings) error
}

type Service struct {
	repo    Repository
	log     *slog.Logger
	session *catalog.EditSession
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log, session: catalog.NewEditSession()}
}

// Get loads the singleton and captures the edit snapshot. Initialized is
// false when no row exists yet; that is not an error.
func (s *Service) Get(ctx context.Context) (SiteSettings, bool, error) {
	row, err := s.repo.Get(ctx)
	if errors.Is(err, ErrNotInitialized) {
		s.session.BeginNew()
		return SiteSettings{}, false, nil
	}
	if err != nil {
		return SiteSettings{}, false, apperr.Remote(err)
	}
	s.session.Begin(row)
	return row, true, nil
}

// Save writes the settings form, inserting on first save and updating
// thereafter. The snapshot is replaced with the just-saved state so a second
// save in the same session diffs against the latest persisted values.
func (s *Service) Save(ctx context.Context, in SiteSettings) (SiteSettings, []string, error) {
	existing, err := s.repo.Get(ctx)
	switch {
	case errors.Is(err, ErrNotInitialized):
		if err := s.repo.Insert(ctx, &in); err != nil {
			return SiteSettings{}, nil, apperr.Remote(err)
		}
	case err != nil:
		return SiteSettings{}, nil, apperr.Remote(err)
	default:
		// The form does not carry id or updated_at; take both from the
		// stored row so the change summary covers form-owned data only.
		in.ID = existing.ID
		in.UpdatedAt = existing.UpdatedAt
		if err := s.repo.Update(ctx, &in); err != nil {
			return SiteSettings{}, nil, apperr.Remote(err)
		}
	}

	summary := s.session.Finish(in)
	s.session.Replace(in)
	s.log.Info("settings saved", "changes", summary)
	return in, summary, nil
}
