package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// Spreadsheet points at the source sheet. The wins range maps positionally
// to title, category, sub-categories, summary, platform, date, link.
type Spreadsheet struct {
	ID         string `yaml:"id"`
	APIKey     string `yaml:"api_key,omitempty"`
	WinsRange  string `yaml:"wins_range"`
	IdeasSheet string `yaml:"ideas_sheet"`
	IdeasRange string `yaml:"ideas_range"`
}

type Config struct {
	RefreshInterval string      `yaml:"refresh_interval"`
	Retention       string      `yaml:"retention"`
	Spreadsheet     Spreadsheet `yaml:"spreadsheet"`
}

// SheetsKey returns the resolved API key (config or env var).
func (c *Config) SheetsKey() string {
	if c.Spreadsheet.APIKey != "" {
		return c.Spreadsheet.APIKey
	}
	return os.Getenv("WINS_SHEETS_KEY")
}

func (c *Config) RefreshDuration() time.Duration {
	d, err := time.ParseDuration(c.RefreshInterval)
	if err != nil {
		return 12 * time.Hour
	}
	return d
}

// RetentionDuration parses the retention value, supporting "Nd" day
// syntax. Defaults to a year: wins are long-lived records, not news.
func (c *Config) RetentionDuration() time.Duration {
	if c.Retention == "" {
		return 365 * 24 * time.Hour
	}
	if len(c.Retention) > 1 && c.Retention[len(c.Retention)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(c.Retention, "%dd", &days); err == nil {
			return time.Duration(days) * 24 * time.Hour
		}
	}
	d, err := time.ParseDuration(c.Retention)
	if err != nil {
		return 365 * 24 * time.Hour
	}
	return d
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "wins-analyzer", "config.yaml")
}

func StorePath() string {
	return filepath.Join(xdg.CacheHome, "wins-analyzer", "wins.db")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if cfg.Spreadsheet.ID == "" {
		return fmt.Errorf("spreadsheet.id is required")
	}
	if cfg.Spreadsheet.WinsRange == "" {
		return fmt.Errorf("spreadsheet.wins_range is required")
	}
	if !strings.Contains(cfg.Spreadsheet.WinsRange, "!") {
		return fmt.Errorf("spreadsheet.wins_range %q must include a sheet name (e.g. Master!A2:H)", cfg.Spreadsheet.WinsRange)
	}
	return nil
}
