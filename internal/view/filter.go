package view

import (
	"strings"
	"time"

	"github.com/AtharulKhan/wins-analyzer/internal/store"
)

// Active returns the non-archived subset of wins, preserving order.
func Active(wins []store.Win) []store.Win {
	out := make([]store.Win, 0, len(wins))
	for _, w := range wins {
		if !w.IsArchived {
			out = append(out, w)
		}
	}
	return out
}

// Filter applies the conjunction of all active predicates. Archived wins
// are excluded unconditionally before anything else. The input slice is
// not modified.
func Filter(wins []store.Win, p FilterParams, now time.Time) []store.Win {
	search := strings.ToLower(strings.TrimSpace(p.Search))
	from, to := p.Dates.resolve(now)

	out := make([]store.Win, 0, len(wins))
	for _, w := range wins {
		if w.IsArchived {
			continue
		}
		if search != "" && !strings.Contains(w.SearchText(), search) {
			continue
		}
		if !matchesAny(w.CategoryList(), p.Categories) {
			continue
		}
		if !matchesAny(w.SubCategoryList(), p.SubCategories) {
			continue
		}
		if len(p.Platforms) > 0 && !contains(p.Platforms, w.Platform) {
			continue
		}
		if !from.IsZero() && w.Date.Before(from) {
			continue
		}
		if !to.IsZero() && w.Date.After(to) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// resolve turns a preset into concrete inclusive bounds. A zero bound
// means unconstrained on that side.
func (d DateRange) resolve(now time.Time) (from, to time.Time) {
	switch d.Preset {
	case DateLast7:
		return now.AddDate(0, 0, -7), now
	case DateMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), now
	case DateCustom:
		return d.From, d.To
	default:
		// all, or anything unrecognized
		return time.Time{}, time.Time{}
	}
}

// matchesAny implements per-dimension OR semantics: an empty selection
// matches everything, otherwise the win's value-set must intersect it.
func matchesAny(values, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, v := range values {
		if contains(selected, v) {
			return true
		}
	}
	return false
}

func contains(xs []string, x string) bool {
	for _, s := range xs {
		if s == x {
			return true
		}
	}
	return false
}
