package categories

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/shared/diff"
)

type fakeRepo struct {
	rows    map[string]Category
	creates int
	updates int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: map[string]Category{}}
}

func (r *fakeRepo) List(ctx context.Context) ([]Category, error) {
	out := make([]Category, 0, len(r.rows))
	for _, c := range r.rows {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeRepo) Get(ctx context.Context, id string) (Category, error) {
	c, ok := r.rows[id]
	if !ok {
		return Category{}, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *fakeRepo) Create(ctx context.Context, c *Category) error {
	r.creates++
	if c.ID == "" {
		c.ID = "generated"
	}
	r.rows[c.ID] = *c
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, c *Category) error {
	r.updates++
	r.rows[c.ID] = *c
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	delete(r.rows, id)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSaveGeneratesSlugFromTitle(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, testLogger())
	svc.BeginCreate()

	c, summary, err := svc.Save(context.Background(), Input{Title: "Spice Podis!", Visible: true})
	require.NoError(t, err)
	assert.Equal(t, "spice-podis", c.Slug)
	assert.Equal(t, []string{diff.CreatedLabel}, summary)
	assert.Equal(t, 1, repo.creates)
}

func TestSaveUnchangedEditReportsNoChanges(t *testing.T) {
	repo := newFakeRepo()
	repo.rows["c1"] = Category{
		ID:           "c1",
		Title:        "Podis",
		Slug:         "podis",
		SubBrand:     "Telugu Delicacies",
		DisplayOrder: 3,
		Visible:      true,
		CreatedAt:    time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC),
	}
	svc := NewService(repo, testLogger())

	_, err := svc.BeginEdit(context.Background(), "c1")
	require.NoError(t, err)

	// Display order and timestamps are not form fields; re-saving the same
	// form data must report the no-changes sentinel.
	_, summary, err := svc.Save(context.Background(), Input{
		ID:       "c1",
		Title:    "Podis",
		Slug:     "podis",
		SubBrand: "Telugu Delicacies",
		Visible:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{diff.NoChangesLabel}, summary)
	assert.Equal(t, 1, repo.updates)
}

func TestSaveEditReportsChangedField(t *testing.T) {
	repo := newFakeRepo()
	repo.rows["c1"] = Category{ID: "c1", Title: "Podis", Slug: "podis", DisplayOrder: 3, Visible: true}
	svc := NewService(repo, testLogger())

	_, err := svc.BeginEdit(context.Background(), "c1")
	require.NoError(t, err)

	_, summary, err := svc.Save(context.Background(), Input{
		ID:      "c1",
		Title:   "Podis & Spice Mixes",
		Slug:    "podis",
		Visible: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Title"}, summary)
}
