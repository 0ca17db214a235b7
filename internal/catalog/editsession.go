package catalog

import (
	"sync"

	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/shared/diff"
)

// EditSession tracks the single snapshot taken when an edit form opens, and
// turns the eventual save into a change summary. One session exists per
// entity surface; the single-operator assumption means at most one edit is
// in flight on each.
type EditSession struct {
	mu       sync.Mutex
	snapshot map[string]any
}

func NewEditSession() *EditSession { return &EditSession{} }

// Begin captures a deep, independent copy of the entity's current server
// state. Later mutations of the entity do not leak into the snapshot.
func (s *EditSession) Begin(entity any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = diff.Snapshot(entity)
}

// BeginNew marks an edit with no prior state (a create form).
func (s *EditSession) BeginNew() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = nil
}

// Finish compares the snapshot against the submitted data, discards the
// snapshot, and returns the change summary for the success toast.
func (s *EditSession) Finish(submitted any) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	labels := diff.DescribeChanges(s.snapshot, diff.Snapshot(submitted))
	s.snapshot = nil
	return labels
}

// Replace swaps the snapshot for the just-saved state, so the next save in
// the same session diffs against the latest persisted data. Used after
// settings saves, where the form stays open.
func (s *EditSession) Replace(saved any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = diff.Snapshot(saved)
}

// Discard drops the snapshot without producing a summary (modal closed).
func (s *EditSession) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = nil
}
