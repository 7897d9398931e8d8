package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/AtharulKhan/wins-analyzer/internal/store"
)

func TestParseSince(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"90d", 90 * 24 * time.Hour, false},
		{"1d", 24 * time.Hour, false},
		{"24h", 24 * time.Hour, false},
		{"30m", 30 * time.Minute, false},
		{"banana", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parseSince(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseSince(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseSince(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseSince(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(48 * time.Hour); got != "2d" {
		t.Errorf("formatDuration(48h) = %q, want 2d", got)
	}
	if got := formatDuration(6 * time.Hour); got != "6h" {
		t.Errorf("formatDuration(6h) = %q, want 6h", got)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 << 20, "3.0 MB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	wins := []store.Win{
		{
			ID:       "win-0-2026-08-20",
			Title:    "Shipped, with a comma",
			Category: "Tech",
			Date:     time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
			Link:     "https://example.com",
		},
	}

	var b strings.Builder
	if err := writeCSV(&b, wins); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header + 1 record", len(lines))
	}
	if !strings.HasPrefix(lines[0], "id,title,category") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], `"Shipped, with a comma"`) {
		t.Errorf("record should quote the comma field: %q", lines[1])
	}
	if !strings.Contains(lines[1], "2026-08-20") {
		t.Errorf("record should carry the formatted date: %q", lines[1])
	}
}
