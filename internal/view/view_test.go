package view

import (
	"testing"

	"github.com/AtharulKhan/wins-analyzer/internal/store"
)

func TestComputeAggregatesIgnoreFilters(t *testing.T) {
	now := day(2026, 8, 28)
	p := DefaultParams()
	p.Filter.Categories = []string{"Health"}

	snap := Compute(sampleWins(), p, now)

	if len(snap.Wins) != 1 {
		t.Fatalf("filtered wins = %d, want 1", len(snap.Wins))
	}
	// Aggregates run on the full active collection, not the filtered list.
	if len(snap.Active) != 3 {
		t.Errorf("active = %d, want 3", len(snap.Active))
	}
	if len(snap.Categories) != 3 {
		t.Errorf("categories = %d, want 3 (Tech, Health, Writing)", len(snap.Categories))
	}
}

func TestComputeGroupsTheFilteredSortedList(t *testing.T) {
	now := day(2026, 8, 28)
	p := DefaultParams()
	p.Group = GroupCategory

	snap := Compute(sampleWins(), p, now)
	if len(snap.Grouped.Keys) == 0 {
		t.Fatal("expected grouped keys")
	}
	// Newest-first sort means Tech (win 1) is the first-seen key.
	if snap.Grouped.Keys[0] != "Tech" {
		t.Errorf("first key = %q, want Tech", snap.Grouped.Keys[0])
	}
}

func TestRecentCapsAndOrders(t *testing.T) {
	got := Recent(sampleWins(), 2)
	assertIDs(t, got, "1", "2")
}

func TestCollectDimensionsIncludesArchivedAndSorts(t *testing.T) {
	dims := CollectDimensions(sampleWins())

	wantCats := []string{"Health", "Tech", "Writing"}
	if len(dims.Categories) != len(wantCats) {
		t.Fatalf("categories = %v, want %v", dims.Categories, wantCats)
	}
	for i := range wantCats {
		if dims.Categories[i] != wantCats[i] {
			t.Fatalf("categories = %v, want %v", dims.Categories, wantCats)
		}
	}
	// Platforms come from every win, archived included.
	found := false
	for _, p := range dims.Platforms {
		if p == "Web" {
			found = true
		}
	}
	if !found {
		t.Errorf("platforms = %v, want Web present", dims.Platforms)
	}
}

func TestCollectDimensionsSkipsEmptyPlatform(t *testing.T) {
	dims := CollectDimensions([]store.Win{{ID: "a"}})
	if len(dims.Platforms) != 0 {
		t.Errorf("platforms = %v, want empty", dims.Platforms)
	}
}
