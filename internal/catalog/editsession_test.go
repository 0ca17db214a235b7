package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/shared/diff"
)

type settingsRow struct {
	SiteName string `json:"site_name"`
	Phone    string `json:"phone"`
}

func TestEditSessionNewEntity(t *testing.T) {
	s := NewEditSession()
	s.BeginNew()
	got := s.Finish(settingsRow{SiteName: "Telugu Delicacies"})
	assert.Equal(t, []string{diff.CreatedLabel}, got)
}

func TestEditSessionNoChanges(t *testing.T) {
	s := NewEditSession()
	row := settingsRow{SiteName: "Telugu Delicacies", Phone: "12345"}
	s.Begin(row)
	got := s.Finish(row)
	assert.Equal(t, []string{diff.NoChangesLabel}, got)
}

func TestEditSessionReportsChangedFields(t *testing.T) {
	s := NewEditSession()
	s.Begin(settingsRow{SiteName: "Telugu Delicacies", Phone: "12345"})
	got := s.Finish(settingsRow{SiteName: "Telugu Delicacies", Phone: "99999"})
	assert.Equal(t, []string{"Phone"}, got)
}

func TestEditSessionSnapshotIsIndependentCopy(t *testing.T) {
	s := NewEditSession()
	row := settingsRow{SiteName: "Telugu Delicacies"}
	s.Begin(row)
	row.SiteName = "mutated after capture"
	got := s.Finish(settingsRow{SiteName: "Telugu Delicacies"})
	assert.Equal(t, []string{diff.NoChangesLabel}, got)
}

func TestEditSessionReplaceDiffsAgainstLatestSave(t *testing.T) {
	s := NewEditSession()
	s.Begin(settingsRow{Phone: "111"})

	// First save changes the phone, then the snapshot is replaced with the
	// saved state, so an identical second save reports no changes.
	saved := settingsRow{Phone: "222"}
	assert.Equal(t, []string{"Phone"}, s.Finish(saved))
	s.Replace(saved)
	assert.Equal(t, []string{diff.NoChangesLabel}, s.Finish(saved))
}

func TestEditSessionDiscard(t *testing.T) {
	s := NewEditSession()
	s.Begin(settingsRow{Phone: "111"})
	s.Discard()
	got := s.Finish(settingsRow{Phone: "111"})
	assert.Equal(t, []string{diff.CreatedLabel}, got)
}
