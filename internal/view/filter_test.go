package view

import (
	"testing"
	"time"

	"github.com/AtharulKhan/wins-analyzer/internal/store"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleWins() []store.Win {
	return []store.Win{
		{ID: "1", Title: "Shipped the search index", Category: "Tech", SubCategories: "Backend, Search", Platform: "Web", Date: day(2026, 8, 20)},
		{ID: "2", Title: "Ran a half marathon", Category: "Health", Platform: "Strava", Date: day(2026, 8, 10)},
		{ID: "3", Title: "Published the Go article", Category: "Tech, Writing", SubCategories: "Backend", Platform: "Blog", Date: day(2026, 7, 5)},
		{ID: "4", Title: "Old archived thing", Category: "Tech", Platform: "Web", Date: day(2026, 6, 1), IsArchived: true},
	}
}

func ids(wins []store.Win) []string {
	out := make([]string, len(wins))
	for i, w := range wins {
		out[i] = w.ID
	}
	return out
}

func assertIDs(t *testing.T, got []store.Win, want ...string) {
	t.Helper()
	g := ids(got)
	if len(g) != len(want) {
		t.Fatalf("got %v, want %v", g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("got %v, want %v", g, want)
		}
	}
}

func TestActiveExcludesArchived(t *testing.T) {
	assertIDs(t, Active(sampleWins()), "1", "2", "3")
}

func TestFilterExcludesArchivedUnconditionally(t *testing.T) {
	// The archived win matches every other predicate; it must still be gone.
	got := Filter(sampleWins(), FilterParams{Categories: []string{"Tech"}, Platforms: []string{"Web"}}, day(2026, 8, 28))
	assertIDs(t, got, "1")
}

func TestFilterSearchIsCaseInsensitiveSubstring(t *testing.T) {
	got := Filter(sampleWins(), FilterParams{Search: "  MARATHON "}, day(2026, 8, 28))
	assertIDs(t, got, "2")
}

func TestFilterSearchCoversAllTextFields(t *testing.T) {
	// "search" only appears in win 1's sub-categories and title.
	got := Filter(sampleWins(), FilterParams{Search: "strava"}, day(2026, 8, 28))
	assertIDs(t, got, "2")
}

func TestFilterCategoryMatchesAnyValue(t *testing.T) {
	// Win 3 has "Tech, Writing"; selecting Writing must include it.
	got := Filter(sampleWins(), FilterParams{Categories: []string{"Writing"}}, day(2026, 8, 28))
	assertIDs(t, got, "3")
}

func TestFilterMultiSelectIsUnionWithinDimension(t *testing.T) {
	got := Filter(sampleWins(), FilterParams{Categories: []string{"Health", "Writing"}}, day(2026, 8, 28))
	assertIDs(t, got, "2", "3")
}

func TestFilterDimensionsCombineAsConjunction(t *testing.T) {
	got := Filter(sampleWins(), FilterParams{
		Categories: []string{"Tech"},
		Platforms:  []string{"Blog"},
	}, day(2026, 8, 28))
	assertIDs(t, got, "3")
}

func TestFilterSubCategory(t *testing.T) {
	got := Filter(sampleWins(), FilterParams{SubCategories: []string{"Search"}}, day(2026, 8, 28))
	assertIDs(t, got, "1")
}

func TestFilterLast7DaysBoundsAreInclusive(t *testing.T) {
	now := day(2026, 8, 27)
	wins := []store.Win{
		{ID: "edge", Date: day(2026, 8, 20)}, // exactly now-7d
		{ID: "out", Date: day(2026, 8, 19)},
		{ID: "in", Date: day(2026, 8, 25)},
	}
	got := Filter(wins, FilterParams{Dates: DateRange{Preset: DateLast7}}, now)
	assertIDs(t, got, "edge", "in")
}

func TestFilterThisMonthStartsAtFirstOfMonth(t *testing.T) {
	now := day(2026, 8, 15)
	wins := []store.Win{
		{ID: "first", Date: day(2026, 8, 1)},
		{ID: "prev", Date: day(2026, 7, 31)},
	}
	got := Filter(wins, FilterParams{Dates: DateRange{Preset: DateMonth}}, now)
	assertIDs(t, got, "first")
}

func TestFilterCustomRange(t *testing.T) {
	got := Filter(sampleWins(), FilterParams{
		Dates: DateRange{Preset: DateCustom, From: day(2026, 7, 1), To: day(2026, 7, 31)},
	}, day(2026, 8, 28))
	assertIDs(t, got, "3")
}

func TestFilterEmptyParamsKeepsEverythingActive(t *testing.T) {
	got := Filter(sampleWins(), FilterParams{}, day(2026, 8, 28))
	assertIDs(t, got, "1", "2", "3")
}

func TestFilterIsIdempotent(t *testing.T) {
	p := FilterParams{Categories: []string{"Tech"}}
	now := day(2026, 8, 28)
	once := Filter(sampleWins(), p, now)
	twice := Filter(once, p, now)
	assertIDs(t, twice, ids(once)...)
}

func TestParseFallbacks(t *testing.T) {
	if got := ParseSortKey("bogus"); got != SortByDate {
		t.Errorf("ParseSortKey fallback = %q, want date", got)
	}
	if got := ParseSortOrder("sideways"); got != Descending {
		t.Errorf("ParseSortOrder fallback = %q, want desc", got)
	}
	if got := ParseGroupKey("emoji"); got != GroupNone {
		t.Errorf("ParseGroupKey fallback = %q, want none", got)
	}
	if got := ParseDatePreset("fortnight"); got != DateAll {
		t.Errorf("ParseDatePreset fallback = %q, want all", got)
	}
	if got := ParseGroupKey("sub-category"); got != GroupSubCategory {
		t.Errorf("ParseGroupKey(sub-category) = %q", got)
	}
}
