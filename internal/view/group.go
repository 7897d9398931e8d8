package view

import (
	"github.com/AtharulKhan/wins-analyzer/internal/store"
)

// Bucket labels for wins that resolve to no value on the group dimension,
// and the sentinel key used when no grouping is active.
const (
	UngroupedKey        = "ungrouped"
	UncategorizedBucket = "Uncategorized"
	UnknownPlatform     = "Unknown"
)

// MonthLabel is the group-by-month bucket format.
const MonthLabel = "January 2006"

// Grouped is an ordered partition of wins. Keys preserve first-seen order
// from the (typically sorted) input, not alphabetical order.
type Grouped struct {
	Keys    []string
	Buckets map[string][]store.Win
}

func newGrouped() *Grouped {
	return &Grouped{Buckets: make(map[string][]store.Win)}
}

func (g *Grouped) add(key string, w store.Win) {
	if _, ok := g.Buckets[key]; !ok {
		g.Keys = append(g.Keys, key)
	}
	g.Buckets[key] = append(g.Buckets[key], w)
}

// Len returns the total number of (win, bucket) pairs. With multi-value
// fan-out this can exceed the input length.
func (g *Grouped) Len() int {
	n := 0
	for _, b := range g.Buckets {
		n += len(b)
	}
	return n
}

// Group partitions wins into named buckets by the chosen dimension.
// Multi-valued dimensions fan a win out into one bucket per distinct
// value; a win with no sub-categories lands in "Uncategorized" and a win
// with no platform in "Unknown". An unrecognized key behaves like none.
func Group(wins []store.Win, key GroupKey) *Grouped {
	g := newGrouped()

	switch key {
	case GroupCategory:
		for _, w := range wins {
			for _, cat := range w.CategoryList() {
				g.add(cat, w)
			}
		}
	case GroupSubCategory:
		for _, w := range wins {
			subs := w.SubCategoryList()
			if len(subs) == 0 {
				g.add(UncategorizedBucket, w)
				continue
			}
			for _, sub := range subs {
				g.add(sub, w)
			}
		}
	case GroupPlatform:
		for _, w := range wins {
			platform := w.Platform
			if platform == "" {
				platform = UnknownPlatform
			}
			g.add(platform, w)
		}
	case GroupMonth:
		for _, w := range wins {
			g.add(w.Date.Format(MonthLabel), w)
		}
	default:
		// none, or anything unrecognized: a single sentinel bucket
		g.Keys = []string{UngroupedKey}
		g.Buckets[UngroupedKey] = wins
	}

	return g
}
