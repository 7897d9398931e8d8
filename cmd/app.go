package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/AtharulKhan/wins-analyzer/internal/config"
	"github.com/AtharulKhan/wins-analyzer/internal/sheet"
	"github.com/AtharulKhan/wins-analyzer/internal/store"
	"github.com/AtharulKhan/wins-analyzer/internal/tui"
)

func runApp(cmd *cobra.Command, args []string) error {
	cfg, db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	client := newSheetClient(cfg)

	// Refresh if needed
	if flagRefresh || db.NeedsRefresh(cfg.RefreshDuration()) {
		fmt.Println("Fetching wins from the spreadsheet...")
		if err := refresh(db, client); err != nil {
			fmt.Printf("  [warn] %v\n", err)
		}
	}

	// Parse --since
	var since time.Time
	if flagSince != "" {
		d, err := parseSince(flagSince)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		since = time.Now().Add(-d)
	}

	wins, err := db.GetWins(since)
	if err != nil {
		return fmt.Errorf("loading wins: %w", err)
	}

	return tui.Run(tui.RunOpts{
		Cfg:     cfg,
		DB:      db,
		Client:  client,
		Wins:    wins,
		Since:   since,
		Version: version,
	})
}

func openStore() (*config.Config, *store.Store, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	db, err := store.Open(config.StorePath())
	if err != nil {
		return nil, nil, fmt.Errorf("opening store: %w", err)
	}
	return cfg, db, nil
}

func newSheetClient(cfg *config.Config) *sheet.Client {
	return sheet.NewClient(
		cfg.Spreadsheet.ID,
		cfg.SheetsKey(),
		cfg.Spreadsheet.WinsRange,
		cfg.Spreadsheet.IdeasSheet,
		cfg.Spreadsheet.IdeasRange,
	)
}

// refresh replaces the cached collection with a fresh fetch. Mark sets
// survive: ids are stable across reloads.
func refresh(db *store.Store, client *sheet.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	wins, err := client.FetchWins(ctx)
	if err != nil {
		return err
	}
	if err := db.ReplaceWins(wins); err != nil {
		return fmt.Errorf("caching wins: %w", err)
	}
	db.SetLastRefresh()
	return nil
}

func parseSince(s string) (time.Duration, error) {
	if len(s) > 1 && s[len(s)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(s, "%dd", &days); err == nil {
			return time.Duration(days) * 24 * time.Hour, nil
		}
	}
	return time.ParseDuration(s)
}
