// Package view implements the win transformation engine: filtering,
// sorting, grouping with multi-value fan-out, and the orchestrator that
// derives a full view snapshot from a win collection. Every function is a
// pure transformation: inputs are never mutated, "now" is an explicit
// parameter, and unknown parameter values fall back to documented defaults
// instead of failing.
package view

import (
	"strings"
	"time"
)

// SortKey selects the field a win collection is ordered by.
type SortKey string

const (
	SortByDate     SortKey = "date"
	SortByTitle    SortKey = "title"
	SortByCategory SortKey = "category"
	SortByPlatform SortKey = "platform"
)

// SortOrder is the direction of a sort.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// SortSpec pairs a key with a direction.
type SortSpec struct {
	Key   SortKey
	Order SortOrder
}

// GroupKey selects the dimension a win collection is partitioned by.
type GroupKey string

const (
	GroupNone        GroupKey = "none"
	GroupCategory    GroupKey = "category"
	GroupSubCategory GroupKey = "subCategory"
	GroupPlatform    GroupKey = "platform"
	GroupMonth       GroupKey = "month"
)

// DatePreset names a date-range filter preset.
type DatePreset string

const (
	DateAll    DatePreset = "all"
	DateLast7  DatePreset = "last7"
	DateMonth  DatePreset = "month"
	DateCustom DatePreset = "custom"
)

// DateRange is a resolved or preset-based date filter. From/To are only
// consulted for the custom preset; a zero bound imposes no constraint on
// that side.
type DateRange struct {
	Preset DatePreset
	From   time.Time
	To     time.Time
}

// FilterParams holds every filter dimension. Empty selections and an empty
// search string match everything.
type FilterParams struct {
	Search        string
	Categories    []string
	SubCategories []string
	Platforms     []string
	Dates         DateRange
}

// Params is the full set of view parameters the orchestrator consumes.
type Params struct {
	Filter FilterParams
	Sort   SortSpec
	Group  GroupKey
}

// DefaultParams mirrors the initial UI state: everything shown, newest
// first, ungrouped.
func DefaultParams() Params {
	return Params{
		Sort:  SortSpec{Key: SortByDate, Order: Descending},
		Group: GroupNone,
		Filter: FilterParams{
			Dates: DateRange{Preset: DateAll},
		},
	}
}

// AllSortKeys returns the valid sort keys in canonical order.
func AllSortKeys() []SortKey {
	return []SortKey{SortByDate, SortByTitle, SortByCategory, SortByPlatform}
}

// AllGroupKeys returns the valid group keys in canonical order.
func AllGroupKeys() []GroupKey {
	return []GroupKey{GroupNone, GroupCategory, GroupSubCategory, GroupPlatform, GroupMonth}
}

// AllDatePresets returns the cyclable date presets (custom is excluded; it
// needs explicit bounds).
func AllDatePresets() []DatePreset {
	return []DatePreset{DateAll, DateLast7, DateMonth}
}

// ParseSortKey maps user-controlled input to a SortKey, falling back to
// date for anything unrecognized.
func ParseSortKey(s string) SortKey {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "date":
		return SortByDate
	case "title":
		return SortByTitle
	case "category":
		return SortByCategory
	case "platform":
		return SortByPlatform
	default:
		return SortByDate
	}
}

// ParseSortOrder maps user-controlled input to a SortOrder, falling back
// to descending.
func ParseSortOrder(s string) SortOrder {
	if strings.ToLower(strings.TrimSpace(s)) == "asc" {
		return Ascending
	}
	return Descending
}

// ParseGroupKey maps user-controlled input to a GroupKey, falling back to
// none. Accepts common spellings of the sub-category dimension.
func ParseGroupKey(s string) GroupKey {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "category":
		return GroupCategory
	case "subcategory", "sub-category", "sub":
		return GroupSubCategory
	case "platform":
		return GroupPlatform
	case "month":
		return GroupMonth
	default:
		return GroupNone
	}
}

// ParseDatePreset maps user-controlled input to a DatePreset, falling back
// to all.
func ParseDatePreset(s string) DatePreset {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "last7":
		return DateLast7
	case "month":
		return DateMonth
	case "custom":
		return DateCustom
	default:
		return DateAll
	}
}
