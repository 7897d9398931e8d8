package view

import (
	"sort"
	"time"

	"github.com/AtharulKhan/wins-analyzer/internal/stats"
	"github.com/AtharulKhan/wins-analyzer/internal/store"
)

// Snapshot is one fully derived view of a win collection. It is recomputed
// from scratch whenever the collection or any parameter changes; nothing
// in it aliases mutable state, so a new snapshot simply supersedes the
// previous one.
type Snapshot struct {
	// Active is the non-archived collection, source order preserved.
	Active []store.Win
	// Wins is Active with filter and sort applied.
	Wins []store.Win
	// Grouped partitions Wins by the group key.
	Grouped *Grouped

	// Aggregates are derived from Active, independent of filter, sort,
	// and group state.
	Categories    []stats.CategoryItem
	TopCategories []stats.TopCategory
	Periods       stats.PeriodCounts
	Monthly       []stats.TimeSeriesPoint
	Cumulative    []stats.CumulativePoint
	Keywords      []stats.KeywordItem
}

// Compute runs the whole pipeline: filter → sort → group for the list
// view, and the three aggregators in parallel branches off the active
// collection. now anchors the date-preset filter and the trailing
// time-series windows.
func Compute(wins []store.Win, p Params, now time.Time) Snapshot {
	active := Active(wins)
	sorted := Sort(Filter(wins, p.Filter, now), p.Sort)
	categories := stats.Categories(active)

	return Snapshot{
		Active:        active,
		Wins:          sorted,
		Grouped:       Group(sorted, p.Group),
		Categories:    categories,
		TopCategories: stats.TopCategories(categories),
		Periods:       stats.Periods(active, now),
		Monthly:       stats.Monthly(active, now),
		Cumulative:    stats.Cumulative(active),
		Keywords:      stats.Keywords(active),
	}
}

// Recent returns the newest n active wins, used by the sidebar and the
// home screen.
func Recent(wins []store.Win, n int) []store.Win {
	sorted := Sort(Active(wins), SortSpec{Key: SortByDate, Order: Descending})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Dimensions lists the distinct filterable values present in a collection,
// sorted alphabetically, one slice per multi-select dimension.
type Dimensions struct {
	Categories    []string
	SubCategories []string
	Platforms     []string
}

// CollectDimensions scans the full collection (archived included, matching
// the original filter popover) for the selectable filter values.
func CollectDimensions(wins []store.Win) Dimensions {
	cats := make(map[string]bool)
	subs := make(map[string]bool)
	plats := make(map[string]bool)
	for _, w := range wins {
		for _, c := range w.CategoryList() {
			cats[c] = true
		}
		for _, s := range w.SubCategoryList() {
			subs[s] = true
		}
		if w.Platform != "" {
			plats[w.Platform] = true
		}
	}
	return Dimensions{
		Categories:    sortedKeys(cats),
		SubCategories: sortedKeys(subs),
		Platforms:     sortedKeys(plats),
	}
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
