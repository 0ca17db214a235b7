package catalog

import "sort"

// CategoryAll selects every category in a Filter.
const CategoryAll = "all"

// Filter is the operator's active list filter.
type Filter struct {
	Category     string
	TrendingOnly bool
}

// AllowsReorder reports whether manual reordering makes sense under this
// filter. Order is scoped per category, so a multi-category or trending view
// has no unambiguous order to edit.
func (f Filter) AllowsReorder() bool {
	return f.Category != "" && f.Category != CategoryAll && !f.TrendingOnly
}

// Project filters and sorts the cached entries for display. Filters compose
// by intersection. Within a single selected category entries sort by their
// own display order; across categories they sort by the category's rank
// first (unknown categories last), then by display order.
func Project(entries []Entry, rank func(categorySlug string) int, f Filter) ([]Entry, bool) {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if f.Category != "" && f.Category != CategoryAll && e.EntryCategory() != f.Category {
			continue
		}
		if f.TrendingOnly && !e.EntryTrending() {
			continue
		}
		out = append(out, e)
	}

	if f.AllowsReorder() {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EntryOrder() < out[j].EntryOrder()
		})
		return out, true
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := rank(out[i].EntryCategory()), rank(out[j].EntryCategory())
		if ri != rj {
			return ri < rj
		}
		return out[i].EntryOrder() < out[j].EntryOrder()
	})
	return out, false
}
