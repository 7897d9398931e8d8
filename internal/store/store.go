package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store holds the local sqlite cache: the last fetched win collection plus
// the persisted favorite/archived mark sets.
type Store struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	readDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	s := &Store{readDB: readDB, writeDB: writeDB}
	if err := s.init(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS wins (
			id             TEXT PRIMARY KEY,
			title          TEXT NOT NULL,
			category       TEXT NOT NULL DEFAULT 'Uncategorized',
			sub_categories TEXT NOT NULL DEFAULT '',
			summary        TEXT NOT NULL DEFAULT '',
			platform       TEXT NOT NULL DEFAULT '',
			date           DATETIME NOT NULL,
			link           TEXT NOT NULL DEFAULT '',
			fetched_at     DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_wins_date ON wins(date DESC);

		CREATE TABLE IF NOT EXISTS marks (
			kind TEXT NOT NULL,
			id   TEXT NOT NULL,
			PRIMARY KEY (kind, id)
		);

		CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	var errs []error
	if s.readDB != nil {
		errs = append(errs, s.readDB.Close())
	}
	if s.writeDB != nil {
		errs = append(errs, s.writeDB.Close())
	}
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// ReplaceWins swaps the cached collection for a freshly fetched one. A full
// reload replaces everything; there is no incremental patching.
func (s *Store) ReplaceWins(wins []Win) error {
	tx, err := s.writeDB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM wins"); err != nil {
		return fmt.Errorf("clearing wins: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO wins (id, title, category, sub_categories, summary, platform, date, link, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, w := range wins {
		_, err := stmt.Exec(w.ID, w.Title, w.Category, w.SubCategories, w.Summary, w.Platform, w.Date, w.Link, w.FetchedAt)
		if err != nil {
			return fmt.Errorf("inserting win %s: %w", w.ID, err)
		}
	}

	return tx.Commit()
}

// GetWins returns the cached collection ordered by date descending, with
// favorite/archived flags attached from the mark sets. A zero since imposes
// no lower bound.
func (s *Store) GetWins(since time.Time) ([]Win, error) {
	query := "SELECT id, title, category, sub_categories, summary, platform, date, link, fetched_at FROM wins"
	var args []interface{}
	if !since.IsZero() {
		query += " WHERE date >= ?"
		args = append(args, since)
	}
	query += " ORDER BY date DESC"

	rows, err := s.readDB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying wins: %w", err)
	}
	defer rows.Close()

	var wins []Win
	for rows.Next() {
		var w Win
		if err := rows.Scan(&w.ID, &w.Title, &w.Category, &w.SubCategories, &w.Summary, &w.Platform, &w.Date, &w.Link, &w.FetchedAt); err != nil {
			return nil, fmt.Errorf("scanning win: %w", err)
		}
		wins = append(wins, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	favs, err := s.markSet(MarkFavorite)
	if err != nil {
		return nil, err
	}
	arch, err := s.markSet(MarkArchived)
	if err != nil {
		return nil, err
	}
	for i := range wins {
		wins[i].IsFavorite = favs[wins[i].ID]
		wins[i].IsArchived = arch[wins[i].ID]
	}
	return wins, nil
}

func (s *Store) NeedsRefresh(interval time.Duration) bool {
	var value string
	err := s.readDB.QueryRow("SELECT value FROM meta WHERE key = 'last_refresh'").Scan(&value)
	if err != nil {
		return true
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return true
	}
	return time.Since(t) > interval
}

func (s *Store) SetLastRefresh() error {
	_, err := s.writeDB.Exec(`
		INSERT INTO meta (key, value) VALUES ('last_refresh', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, time.Now().Format(time.RFC3339))
	return err
}

// Prune removes wins older than the retention period, counting from the
// win's own date. Mark rows for pruned wins are removed too.
func (s *Store) Prune(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	res, err := s.writeDB.Exec("DELETE FROM wins WHERE date < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning wins: %w", err)
	}
	_, err = s.writeDB.Exec("DELETE FROM marks WHERE id NOT IN (SELECT id FROM wins)")
	if err != nil {
		return 0, fmt.Errorf("pruning marks: %w", err)
	}
	return res.RowsAffected()
}

// Stats returns the cached win count and the database file size.
func (s *Store) Stats(dbPath string) (int, int64, error) {
	var count int
	if err := s.readDB.QueryRow("SELECT COUNT(*) FROM wins").Scan(&count); err != nil {
		return 0, 0, err
	}
	info, err := os.Stat(dbPath)
	if err != nil {
		return count, 0, err
	}
	return count, info.Size(), nil
}
