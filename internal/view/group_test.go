package view

import (
	"testing"

	"github.com/AtharulKhan/wins-analyzer/internal/store"
)

func TestGroupNoneIsSingleSentinelBucket(t *testing.T) {
	wins := Active(sampleWins())
	g := Group(wins, GroupNone)
	if len(g.Keys) != 1 || g.Keys[0] != UngroupedKey {
		t.Fatalf("keys = %v, want [%s]", g.Keys, UngroupedKey)
	}
	if g.Len() != len(wins) {
		t.Errorf("Len = %d, want %d", g.Len(), len(wins))
	}
}

func TestGroupByCategoryFansOutMultiValueWins(t *testing.T) {
	wins := Active(sampleWins())
	g := Group(wins, GroupCategory)

	// Win 3 carries "Tech, Writing" and must appear in both buckets.
	if len(g.Buckets["Tech"]) != 2 {
		t.Errorf("Tech bucket = %d wins, want 2", len(g.Buckets["Tech"]))
	}
	if len(g.Buckets["Writing"]) != 1 || g.Buckets["Writing"][0].ID != "3" {
		t.Errorf("Writing bucket = %v", ids(g.Buckets["Writing"]))
	}
	// Fan-out: 4 pairs from 3 wins.
	if g.Len() != 4 {
		t.Errorf("Len = %d, want 4", g.Len())
	}
}

func TestGroupKeysPreserveFirstSeenOrder(t *testing.T) {
	wins := Active(sampleWins())
	g := Group(wins, GroupCategory)
	want := []string{"Tech", "Health", "Writing"}
	if len(g.Keys) != len(want) {
		t.Fatalf("keys = %v, want %v", g.Keys, want)
	}
	for i := range want {
		if g.Keys[i] != want[i] {
			t.Fatalf("keys = %v, want %v", g.Keys, want)
		}
	}
}

func TestGroupBySubCategoryUsesUncategorizedBucket(t *testing.T) {
	wins := Active(sampleWins())
	g := Group(wins, GroupSubCategory)
	if len(g.Buckets[UncategorizedBucket]) != 1 || g.Buckets[UncategorizedBucket][0].ID != "2" {
		t.Errorf("Uncategorized bucket = %v", ids(g.Buckets[UncategorizedBucket]))
	}
	if len(g.Buckets["Backend"]) != 2 {
		t.Errorf("Backend bucket = %d wins, want 2", len(g.Buckets["Backend"]))
	}
}

func TestGroupByPlatformUsesUnknownForEmpty(t *testing.T) {
	wins := []store.Win{
		{ID: "a", Platform: "Web"},
		{ID: "b"},
	}
	g := Group(wins, GroupPlatform)
	if len(g.Buckets[UnknownPlatform]) != 1 || g.Buckets[UnknownPlatform][0].ID != "b" {
		t.Errorf("Unknown bucket = %v", ids(g.Buckets[UnknownPlatform]))
	}
}

func TestGroupByMonthLabels(t *testing.T) {
	wins := Active(sampleWins())
	g := Group(wins, GroupMonth)
	if len(g.Buckets["August 2026"]) != 2 {
		t.Errorf("August 2026 = %d wins, want 2", len(g.Buckets["August 2026"]))
	}
	if len(g.Buckets["July 2026"]) != 1 {
		t.Errorf("July 2026 = %d wins, want 1", len(g.Buckets["July 2026"]))
	}
}

func TestGroupUnknownKeyBehavesLikeNone(t *testing.T) {
	g := Group(Active(sampleWins()), GroupKey("orbit"))
	if len(g.Keys) != 1 || g.Keys[0] != UngroupedKey {
		t.Fatalf("keys = %v, want [%s]", g.Keys, UngroupedKey)
	}
}
