package view

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/AtharulKhan/wins-analyzer/internal/store"
)

// Sort returns a new slice ordered by the spec. Date compares numeric
// timestamps; string keys use English collation (case-sensitive). The sort
// is stable: equal keys keep their input order, which keeps downstream
// group ordering reproducible. An unrecognized key sorts by date; an
// unrecognized order sorts descending.
func Sort(wins []store.Win, spec SortSpec) []store.Win {
	out := make([]store.Win, len(wins))
	copy(out, wins)

	// Collators carry internal buffers, so each call gets its own.
	c := collate.New(language.English)

	asc := spec.Order == Ascending
	less := func(i, j int) bool {
		var cmp int
		switch spec.Key {
		case SortByTitle:
			cmp = c.CompareString(out[i].Title, out[j].Title)
		case SortByCategory:
			cmp = c.CompareString(out[i].Category, out[j].Category)
		case SortByPlatform:
			cmp = c.CompareString(out[i].Platform, out[j].Platform)
		default:
			// date, or anything unrecognized
			switch {
			case out[i].Date.Before(out[j].Date):
				cmp = -1
			case out[i].Date.After(out[j].Date):
				cmp = 1
			}
		}
		if asc {
			return cmp < 0
		}
		return cmp > 0
	}

	sort.SliceStable(out, less)
	return out
}
