package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if cfg.Spreadsheet.ID == "" {
		t.Error("expected default spreadsheet id")
	}
	if cfg.RefreshInterval == "" {
		t.Error("expected refresh_interval to be set")
	}
	if err := validate(cfg); err != nil {
		t.Errorf("embedded defaults should validate: %v", err)
	}
}

func TestRefreshDuration(t *testing.T) {
	cfg := &Config{RefreshInterval: "30m"}
	d := cfg.RefreshDuration()
	if d.Minutes() != 30 {
		t.Errorf("expected 30m, got %v", d)
	}

	cfg.RefreshInterval = "invalid"
	d = cfg.RefreshDuration()
	if d.Hours() != 12 {
		t.Errorf("expected 12h default for invalid interval, got %v", d)
	}
}

func TestRetentionDuration(t *testing.T) {
	tests := []struct {
		input    string
		wantDays int
	}{
		{"90d", 90},
		{"30d", 30},
		{"720h", 30},
		{"", 365},        // default
		{"invalid", 365}, // fallback to default
	}
	for _, tt := range tests {
		cfg := &Config{Retention: tt.input}
		got := cfg.RetentionDuration()
		wantHours := float64(tt.wantDays * 24)
		if got.Hours() != wantHours {
			t.Errorf("RetentionDuration(%q) = %v, want %dd", tt.input, got, tt.wantDays)
		}
	}
}

func TestSheetsKeyPrefersConfig(t *testing.T) {
	t.Setenv("WINS_SHEETS_KEY", "env-key")

	cfg := &Config{}
	if got := cfg.SheetsKey(); got != "env-key" {
		t.Errorf("SheetsKey = %q, want env fallback", got)
	}

	cfg.Spreadsheet.APIKey = "config-key"
	if got := cfg.SheetsKey(); got != "config-key" {
		t.Errorf("SheetsKey = %q, want config value", got)
	}
}

func TestLoadMissingFileWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Spreadsheet.ID == "" {
		t.Error("expected defaults for missing file")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected defaults written to %s: %v", path, err)
	}
}

func TestLoadUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `refresh_interval: 1h
retention: 30d
spreadsheet:
  id: my-sheet
  wins_range: "Wins!A2:H"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Spreadsheet.ID != "my-sheet" {
		t.Errorf("id = %q", cfg.Spreadsheet.ID)
	}
	if cfg.RefreshDuration().Hours() != 1 {
		t.Errorf("refresh = %v", cfg.RefreshDuration())
	}
}

func TestValidateRejectsBadRanges(t *testing.T) {
	cfg := &Config{Spreadsheet: Spreadsheet{ID: "x", WinsRange: "A2:H"}}
	if err := validate(cfg); err == nil {
		t.Error("expected error for range without sheet name")
	}

	cfg = &Config{Spreadsheet: Spreadsheet{WinsRange: "Master!A2:H"}}
	if err := validate(cfg); err == nil {
		t.Error("expected error for missing spreadsheet id")
	}
}
