package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEntry struct {
	id       string
	category string
	trending bool
	order    int
}

func (e fakeEntry) EntryID() string       { return e.id }
func (e fakeEntry) EntryCategory() string { return e.category }
func (e fakeEntry) EntryTrending() bool   { return e.trending }
func (e fakeEntry) EntryOrder() int       { return e.order }

func ids(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.EntryID()
	}
	return out
}

func fixtureStore() *Store {
	s := NewStore()
	s.SetProducts([]Entry{
		fakeEntry{id: "P1", category: "snacks", order: 2},
		fakeEntry{id: "P2", category: "snacks", order: 1},
		fakeEntry{id: "P3", category: "sweets", order: 1},
	})
	s.SetCategories([]CategoryRef{
		{Slug: "snacks", Order: 1},
		{Slug: "sweets", Order: 2},
	})
	return s
}

func TestProjectAllCategories(t *testing.T) {
	s := fixtureStore()
	got, canReorder := Project(s.Products(), s.Rank, Filter{Category: CategoryAll})
	assert.Equal(t, []string{"P2", "P1", "P3"}, ids(got))
	assert.False(t, canReorder)
}

func TestProjectSingleCategory(t *testing.T) {
	s := fixtureStore()
	got, canReorder := Project(s.Products(), s.Rank, Filter{Category: "sweets"})
	assert.Equal(t, []string{"P3"}, ids(got))
	assert.True(t, canReorder)

	got, canReorder = Project(s.Products(), s.Rank, Filter{Category: "snacks"})
	assert.Equal(t, []string{"P2", "P1"}, ids(got))
	assert.True(t, canReorder)
}

func TestProjectTrendingDisablesReorder(t *testing.T) {
	s := NewStore()
	s.SetProducts([]Entry{
		fakeEntry{id: "A", category: "snacks", order: 1, trending: true},
		fakeEntry{id: "B", category: "snacks", order: 2},
	})
	s.SetCategories([]CategoryRef{{Slug: "snacks", Order: 1}})

	got, canReorder := Project(s.Products(), s.Rank, Filter{Category: "snacks", TrendingOnly: true})
	assert.Equal(t, []string{"A"}, ids(got))
	assert.False(t, canReorder)
}

func TestProjectFiltersIntersect(t *testing.T) {
	s := NewStore()
	s.SetProducts([]Entry{
		fakeEntry{id: "A", category: "snacks", order: 1, trending: true},
		fakeEntry{id: "B", category: "sweets", order: 1, trending: true},
		fakeEntry{id: "C", category: "snacks", order: 2},
	})
	s.SetCategories([]CategoryRef{{Slug: "snacks", Order: 1}, {Slug: "sweets", Order: 2}})

	got, _ := Project(s.Products(), s.Rank, Filter{Category: "snacks", TrendingOnly: true})
	assert.Equal(t, []string{"A"}, ids(got))
}

func TestProjectUnknownCategorySortsLast(t *testing.T) {
	s := NewStore()
	s.SetProducts([]Entry{
		fakeEntry{id: "X", category: "ghost", order: 1},
		fakeEntry{id: "Y", category: "snacks", order: 1},
	})
	s.SetCategories([]CategoryRef{{Slug: "snacks", Order: 5}})

	got, _ := Project(s.Products(), s.Rank, Filter{Category: CategoryAll})
	require.Len(t, got, 2)
	assert.Equal(t, []string{"Y", "X"}, ids(got))
}

func TestStoreRank(t *testing.T) {
	s := fixtureStore()
	assert.Equal(t, 1, s.Rank("snacks"))
	assert.Equal(t, UnknownRank, s.Rank("nope"))
}
