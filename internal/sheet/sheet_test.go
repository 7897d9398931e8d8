package sheet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestShapeWinFullRow(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	row := []string{"Shipped it", "Tech", "Backend, Search", "A summary", "Web", "2026-08-20", "https://example.com"}

	w := shapeWin(row, 3, now)
	if w.ID != "win-3-2026-08-20" {
		t.Errorf("ID = %q", w.ID)
	}
	if w.Title != "Shipped it" || w.Category != "Tech" {
		t.Errorf("title/category = %q/%q", w.Title, w.Category)
	}
	if w.SubCategories != "Backend, Search" || w.Platform != "Web" {
		t.Errorf("subcategories/platform = %q/%q", w.SubCategories, w.Platform)
	}
	if !w.Date.Equal(time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date = %v", w.Date)
	}
	if w.Link != "https://example.com" {
		t.Errorf("link = %q", w.Link)
	}
}

func TestShapeWinDefaults(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	w := shapeWin([]string{}, 0, now)
	if w.Title != "Untitled" {
		t.Errorf("title = %q, want Untitled", w.Title)
	}
	if w.Category != "Uncategorized" {
		t.Errorf("category = %q, want Uncategorized", w.Category)
	}
	if !w.Date.Equal(now) {
		t.Errorf("date = %v, want ingestion time", w.Date)
	}
	if w.ID != "win-0-" {
		t.Errorf("ID = %q", w.ID)
	}
}

func TestShapeWinShortRowNeverRejected(t *testing.T) {
	now := time.Now()
	w := shapeWin([]string{"Just a title"}, 7, now)
	if w.Title != "Just a title" {
		t.Errorf("title = %q", w.Title)
	}
	if w.Summary != "" || w.Link != "" {
		t.Errorf("missing cells should be empty, got summary=%q link=%q", w.Summary, w.Link)
	}
}

func TestParseDateLayouts(t *testing.T) {
	now := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2026-08-20", time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)},
		{"8/20/2026", time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)},
		{"Aug 20, 2026", time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)},
		{"August 20, 2026", time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)},
		{"not a date", now},
		{"", now},
	}
	for _, tt := range tests {
		if got := parseDate(tt.in, now); !got.Equal(tt.want) {
			t.Errorf("parseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFetchWinsShapesRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing api key, got query %q", r.URL.RawQuery)
		}
		w.Write([]byte(`{"values":[["First win","Tech","","","Web","2026-08-01",""],["","","","","","",""]]}`))
	}))
	defer srv.Close()

	c := NewClient("sheet-id", "test-key", "Master!A2:H", "Project Ideas", "A2:C")
	c.ValuesBase = srv.URL

	wins, err := c.FetchWins(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(wins) != 2 {
		t.Fatalf("got %d wins, want 2", len(wins))
	}
	if wins[0].Title != "First win" {
		t.Errorf("title = %q", wins[0].Title)
	}
	if wins[1].Title != "Untitled" || wins[1].Category != "Uncategorized" {
		t.Errorf("empty row not defaulted: %+v", wins[1])
	}
}

func TestFetchWinsNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient("sheet-id", "bad-key", "Master!A2:H", "Project Ideas", "A2:C")
	c.ValuesBase = srv.URL

	if _, err := c.FetchWins(context.Background()); err == nil {
		t.Fatal("expected error for 403 response")
	}
}
