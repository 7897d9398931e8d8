package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/AtharulKhan/wins-analyzer/internal/store"
	"github.com/AtharulKhan/wins-analyzer/internal/view"
)

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
		{"test", 0, ""},
	}
	for _, tt := range tests {
		got := truncateStr(tt.input, tt.n)
		if got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestTruncateStrUTF8(t *testing.T) {
	got := truncateStr("日本語テスト", 5)
	want := "日本..."
	if got != want {
		t.Errorf("truncateStr(Japanese, 5) = %q, want %q", got, want)
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Now()

	tests := []struct {
		t    time.Time
		want string
	}{
		{now.Add(-30 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m"},
		{now.Add(-3 * time.Hour), "3h"},
		{now.Add(-2 * 24 * time.Hour), "2d"},
	}
	for _, tt := range tests {
		got := relativeTime(tt.t)
		if got != tt.want {
			t.Errorf("relativeTime(%v ago) = %q, want %q", now.Sub(tt.t), got, tt.want)
		}
	}
}

func TestRelativeTimeOld(t *testing.T) {
	old := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	got := relativeTime(old)
	if got != "Jun 15" {
		t.Errorf("relativeTime(old date) = %q, want Jun 15", got)
	}
}

func testSnapshot(group view.GroupKey) view.Snapshot {
	wins := []store.Win{
		{ID: "1", Title: "First", Category: "Tech", Date: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)},
		{ID: "2", Title: "Second", Category: "Tech, Health", Date: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)},
	}
	p := view.DefaultParams()
	p.Group = group
	return view.Compute(wins, p, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC))
}

func TestBuildRowsUngrouped(t *testing.T) {
	rows := buildRows(testSnapshot(view.GroupNone), view.GroupNone)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	for _, r := range rows {
		if r.header {
			t.Error("ungrouped list should have no header rows")
		}
	}
	if rows[0].win.ID != "1" {
		t.Errorf("first row = %q, want newest win", rows[0].win.ID)
	}
}

func TestBuildRowsGroupedInsertsHeaders(t *testing.T) {
	rows := buildRows(testSnapshot(view.GroupCategory), view.GroupCategory)

	// Tech(2), Health(1) buckets: 2 headers + 3 fan-out win rows.
	if len(rows) != 5 {
		t.Fatalf("got %d rows, want 5", len(rows))
	}
	if !rows[0].header || !strings.Contains(rows[0].label, "Tech (2)") {
		t.Errorf("rows[0] = %+v, want Tech header with count", rows[0])
	}
	if rows[1].header || rows[2].header {
		t.Error("bucket wins should follow their header")
	}
	if !rows[3].header || !strings.Contains(rows[3].label, "Health (1)") {
		t.Errorf("rows[3] = %+v, want Health header", rows[3])
	}
}

func TestRenderListRowMarksFavorite(t *testing.T) {
	r := listRow{win: store.Win{Title: "Starred", Category: "Tech", Date: time.Now(), IsFavorite: true}}
	out := renderListRow(r, false, 40)
	if !strings.Contains(out, "★") {
		t.Error("favorite row should carry a star")
	}
}

func TestRenderListEmpty(t *testing.T) {
	out := renderList(nil, 0, 10, 40)
	if !strings.Contains(out, "No wins found") {
		t.Errorf("empty list render = %q", out)
	}
}
