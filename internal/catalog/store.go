// Package catalog implements the admin console's state layer: the in-memory
// cache of the last-fetched rows, the filter+sort projection over it, the
// drag-and-drop reorder coordinator, the edit-session snapshot/diff, and the
// product slug uniqueness resolver.
package catalog

import "sync"

// UnknownRank sorts entries whose category is not in the cache after
// everything else.
const UnknownRank = 1 << 30

// Entry is the projector's view of a cached catalog row.
type Entry interface {
	EntryID() string
	EntryCategory() string
	EntryTrending() bool
	EntryOrder() int
}

// CategoryRef is the slice of a category the cache needs for ordering.
type CategoryRef struct {
	Slug  string
	Order int
}

// Store holds the most recently fetched products and categories. It is owned
// by the application and handed to whoever needs it; there is no package
// level state. A single operator is assumed, the mutex only guards against
// overlapping fetches.
type Store struct {
	mu         sync.RWMutex
	products   []Entry
	categories []CategoryRef
}

func NewStore() *Store { return &Store{} }

func (s *Store) SetProducts(items []Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = items
}

func (s *Store) Products() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) SetCategories(refs []CategoryRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = refs
}

func (s *Store) Categories() []CategoryRef {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]CategoryRef, len(s.categories))
	copy(out, s.categories)
	return out
}

// Rank returns a category's display order, or UnknownRank if the slug is not
// in the cache.
func (s *Store) Rank(slug string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.Slug == slug {
			return c.Order
		}
	}
	return UnknownRank
}
