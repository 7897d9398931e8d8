// Package stats implements the dashboard aggregators: category counts,
// time-series bucketing, and keyword frequency extraction. Everything here
// is a pure function over an active (non-archived) win collection; size
// and color hints are computed as data for the presentation layer to map
// onto styles.
package stats

import (
	"math"
	"sort"

	"github.com/AtharulKhan/wins-analyzer/internal/store"
)

// CategoryItem is one ranked category with bubble-chart sizing hints.
type CategoryItem struct {
	Name  string
	Count int
	Color string
	// Size is clamped to [20, 60] as a function of count.
	Size int
}

// TopCategory is one of the top-three categories with its ordinal label.
type TopCategory struct {
	Title string
	Name  string
	Count int
	Color string
}

var categoryPalette = []string{
	"#8B5CF6", "#D946EF", "#F97316", "#0EA5E9", "#22C55E",
	"#EAB308", "#EC4899", "#06B6D4", "#9b87f5", "#7E69AB",
	"#6E59A5", "#D6BCFA", "#33C3F0", "#ea384c",
}

// Categories counts category membership across the multi-valued category
// field: a win contributes one increment to every category it names.
// Output is ranked descending by count, ties broken by first-seen order,
// with colors assigned round-robin by rank.
func Categories(active []store.Win) []CategoryItem {
	counts := make(map[string]int)
	var order []string
	for _, w := range active {
		for _, cat := range w.CategoryList() {
			if _, seen := counts[cat]; !seen {
				order = append(order, cat)
			}
			counts[cat]++
		}
	}

	items := make([]CategoryItem, 0, len(order))
	for _, name := range order {
		items = append(items, CategoryItem{Name: name, Count: counts[name]})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Count > items[j].Count
	})

	for i := range items {
		items[i].Color = categoryPalette[i%len(categoryPalette)]
		items[i].Size = clampInt(items[i].Count*5, 20, 60)
	}
	return items
}

var ordinalTitles = []string{"Top Category", "Second Category", "Third Category"}

// TopCategories slices the top three ranked categories.
func TopCategories(items []CategoryItem) []TopCategory {
	limit := 3
	if len(items) < limit {
		limit = len(items)
	}
	top := make([]TopCategory, 0, limit)
	for i := 0; i < limit; i++ {
		top = append(top, TopCategory{
			Title: ordinalTitles[i],
			Name:  items[i].Name,
			Count: items[i].Count,
			Color: items[i].Color,
		})
	}
	return top
}

// Percentage returns round(count/total*100), treating a zero total as 0%.
func Percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
