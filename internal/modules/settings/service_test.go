package settings

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/shared/diff"
)

type fakeRepo struct {
	row     *SiteSettings
	getErr  error
	inserts int
	updates int
}

func (r *fakeRepo) Get(ctx context.Context) (SiteSettings, error) {
	if r.getErr != nil {
		return SiteSettings{}, r.getErr
	}
	if r.row == nil {
		return SiteSettings{}, ErrNotInitialized
	}
	return *r.row, nil
}

func (r *fakeRepo) Insert(ctx context.Context, s *SiteSettings) error {
	r.inserts++
	if s.ID == "" {
		s.ID = "st1"
	}
	cp := *s
	r.row = &cp
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, s *SiteSettings) error {
	r.updates++
	cp := *s
	r.row = &cp
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGetUninitializedIsNotAnError(t *testing.T) {
	svc := NewService(&fakeRepo{}, testLogger())
	_, initialized, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, initialized)
}

func TestSaveInsertsWhenAbsentThenUpdates(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, testLogger())

	_, _, err := svc.Get(context.Background())
	require.NoError(t, err)

	saved, summary, err := svc.Save(context.Background(), SiteSettings{SiteName: "Telugu Delicacies"})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.inserts)
	assert.Zero(t, repo.updates)
	assert.Equal(t, []string{diff.CreatedLabel}, summary)

	saved.ContactPhone = "12345"
	_, _, err = svc.Save(context.Background(), saved)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.inserts)
	assert.Equal(t, 1, repo.updates)
}

func TestSaveDiffsAgainstLatestSavedState(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, testLogger())
	_, _, err := svc.Get(context.Background())
	require.NoError(t, err)

	first, _, err := svc.Save(context.Background(), SiteSettings{SiteName: "Telugu Delicacies", ContactPhone: "111"})
	require.NoError(t, err)

	// Second save in the same session changes only the phone; the summary
	// must diff against the first save, not the page-load snapshot.
	second := first
	second.ContactPhone = "222"
	_, summary, err := svc.Save(context.Background(), second)
	require.NoError(t, err)
	assert.Equal(t, []string{"Contact phone"}, summary)

	// Saving the identical record again reports no changes.
	_, summary, err = svc.Save(context.Background(), second)
	require.NoError(t, err)
	assert.Equal(t, []string{diff.NoChangesLabel}, summary)
}

func TestSaveRemoteErrorPassesThrough(t *testing.T) {
	repo := &fakeRepo{getErr: errors.New("connection refused")}
	svc := NewService(repo, testLogger())
	_, _, err := svc.Save(context.Background(), SiteSettings{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
