package products

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/shared/apperr"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/shared/diff"
)

type fakeRepo struct {
	rows    map[string]Product
	slugs   map[string]string // slug -> product id
	creates int
	updates int
	queries int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: map[string]Product{}, slugs: map[string]string{}}
}

func (r *fakeRepo) List(ctx context.Context) ([]Product, error) {
	out := make([]Product, 0, len(r.rows))
	for _, p := range r.rows {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeRepo) Get(ctx context.Context, id string) (Product, error) {
	p, ok := r.rows[id]
	if !ok {
		return Product{}, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakeRepo) Create(ctx context.Context, p *Product) error {
	r.creates++
	if p.ID == "" {
		p.ID = "generated"
	}
	r.rows[p.ID] = *p
	r.slugs[p.Slug] = p.ID
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, p *Product) error {
	r.updates++
	r.rows[p.ID] = *p
	r.slugs[p.Slug] = p.ID
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	delete(r.rows, id)
	return nil
}

func (r *fakeRepo) SlugTaken(ctx context.Context, slug, excludeID string) (bool, error) {
	r.queries++
	owner, ok := r.slugs[slug]
	if !ok {
		return false, nil
	}
	return excludeID == "" || owner != excludeID, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func oneVariant() []Variant {
	return []Variant{{Quantity: "250g", Price: 180, MRP: 200, Stock: 10, Packaging: "jar"}}
}

func TestSaveRejectsZeroVariants(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, testLogger())

	_, _, err := svc.Save(context.Background(), Input{Name: "Karam Podi", CategorySlug: "podi"})
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Invalid, ae.Kind)

	// Blocked locally: nothing reached the repo.
	assert.Zero(t, repo.creates)
	assert.Zero(t, repo.updates)
	assert.Zero(t, repo.queries)
}

func TestSaveGeneratesSlugFromName(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, testLogger())
	svc.BeginCreate()

	p, summary, err := svc.Save(context.Background(), Input{
		Name:         "Red Chilli Podi!!",
		CategorySlug: "podi",
		Variants:     oneVariant(),
	})
	require.NoError(t, err)
	assert.Equal(t, "red-chilli-podi", p.Slug)
	assert.Equal(t, []string{diff.CreatedLabel}, summary)
	assert.Equal(t, 1, repo.creates)
}

func TestSaveResolvesSlugCollision(t *testing.T) {
	repo := newFakeRepo()
	repo.slugs["mango-pickle"] = "other1"
	repo.slugs["mango-pickle-1"] = "other2"
	svc := NewService(repo, testLogger())
	svc.BeginCreate()

	p, _, err := svc.Save(context.Background(), Input{
		Name:         "Mango Pickle",
		CategorySlug: "pickles",
		Variants:     oneVariant(),
	})
	require.NoError(t, err)
	assert.Equal(t, "mango-pickle-2", p.Slug)
}

func TestSaveKeepsOwnSlugOnEdit(t *testing.T) {
	repo := newFakeRepo()
	existing := Product{ID: "p1", Name: "Mango Pickle", CategorySlug: "pickles", Slug: "mango-pickle"}
	repo.rows["p1"] = existing
	repo.slugs["mango-pickle"] = "p1"
	svc := NewService(repo, testLogger())

	_, err := svc.BeginEdit(context.Background(), "p1")
	require.NoError(t, err)

	p, _, err := svc.Save(context.Background(), Input{
		ID:           "p1",
		Name:         "Mango Pickle",
		CategorySlug: "pickles",
		Slug:         "mango-pickle",
		Variants:     oneVariant(),
	})
	require.NoError(t, err)
	assert.Equal(t, "mango-pickle", p.Slug)
	assert.Equal(t, 1, repo.updates)
}

func TestSaveAggregatesStock(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, testLogger())
	svc.BeginCreate()

	p, _, err := svc.Save(context.Background(), Input{
		Name:         "Avakaya",
		CategorySlug: "pickles",
		Variants: []Variant{
			{Quantity: "250g", Price: 180, Stock: 4},
			{Quantity: "500g", Price: 340, Stock: 6},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 10, p.Stock)
}

func TestSaveSummaryListsChangedFields(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, testLogger())
	svc.BeginCreate()
	saved, _, err := svc.Save(context.Background(), Input{
		Name:         "Karam Podi",
		CategorySlug: "podi",
		Tagline:      "fiery",
		Variants:     oneVariant(),
	})
	require.NoError(t, err)

	_, err = svc.BeginEdit(context.Background(), saved.ID)
	require.NoError(t, err)

	_, summary, err := svc.Save(context.Background(), Input{
		ID:           saved.ID,
		Name:         "Karam Podi",
		CategorySlug: "podi",
		Tagline:      "extra fiery",
		Slug:         saved.Slug,
		Variants:     oneVariant(),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Tagline"}, summary)
}

func TestSaveUnchangedEditReportsNoChanges(t *testing.T) {
	repo := newFakeRepo()
	variants, err := json.Marshal(oneVariant())
	require.NoError(t, err)
	repo.rows["p1"] = Product{
		ID:           "p1",
		Name:         "Karam Podi",
		CategorySlug: "podi",
		Tagline:      "fiery",
		Variants:     variants,
		Stock:        10,
		Visible:      true,
		DisplayOrder: 4,
		Slug:         "karam-podi",
		CreatedAt:    time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC),
		Images:       []Image{{ID: "i1", ProductID: "p1", URL: "/uploads/i1.webp", IsDefault: true, DisplayOrder: 1}},
	}
	repo.slugs["karam-podi"] = "p1"
	svc := NewService(repo, testLogger())

	_, err = svc.BeginEdit(context.Background(), "p1")
	require.NoError(t, err)

	// The form never carries timestamps, display order or images; an
	// identical re-save must still report the no-changes sentinel.
	_, summary, err := svc.Save(context.Background(), Input{
		ID:           "p1",
		Name:         "Karam Podi",
		CategorySlug: "podi",
		Tagline:      "fiery",
		Slug:         "karam-podi",
		Visible:      true,
		Variants:     oneVariant(),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{diff.NoChangesLabel}, summary)
}

func TestBeginEditNotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), testLogger())
	_, err := svc.BeginEdit(context.Background(), "missing")
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.NotFound, ae.Kind)
}

func TestParseVariantsDefensive(t *testing.T) {
	p := Product{Variants: []byte(`{not json`)}
	assert.Empty(t, p.ParseVariants(testLogger()))

	p = Product{Variants: []byte(`[{"quantity":"250g","price":180,"stock":3}]`)}
	vs := p.ParseVariants(testLogger())
	require.Len(t, vs, 1)
	assert.Equal(t, "250g", vs[0].Quantity)
}

func TestParseNutritionDefensive(t *testing.T) {
	p := Product{NutritionInfo: []byte(`"oops"`)}
	assert.Empty(t, p.ParseNutrition(testLogger()))

	p = Product{NutritionInfo: []byte(`{"protein":"12g"}`)}
	assert.Equal(t, map[string]any{"protein": "12g"}, p.ParseNutrition(testLogger()))
}
