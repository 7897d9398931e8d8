package store

import "fmt"

// Mark kinds for the persisted id-sets.
const (
	MarkFavorite = "favorite"
	MarkArchived = "archived"
)

// Marker is a persisted set of win ids. The engine treats archived
// membership as an implicit filter; favorite membership is display-only.
type Marker interface {
	Contains(id string) bool
	Add(id string) error
	Remove(id string) error
}

type markSet struct {
	s    *Store
	kind string
}

// Favorites returns the favorite id-set.
func (s *Store) Favorites() Marker { return &markSet{s: s, kind: MarkFavorite} }

// Archived returns the archived id-set.
func (s *Store) Archived() Marker { return &markSet{s: s, kind: MarkArchived} }

func (m *markSet) Contains(id string) bool {
	var one int
	err := m.s.readDB.QueryRow("SELECT 1 FROM marks WHERE kind = ? AND id = ?", m.kind, id).Scan(&one)
	return err == nil
}

func (m *markSet) Add(id string) error {
	_, err := m.s.writeDB.Exec("INSERT OR IGNORE INTO marks (kind, id) VALUES (?, ?)", m.kind, id)
	if err != nil {
		return fmt.Errorf("adding %s mark: %w", m.kind, err)
	}
	return nil
}

func (m *markSet) Remove(id string) error {
	_, err := m.s.writeDB.Exec("DELETE FROM marks WHERE kind = ? AND id = ?", m.kind, id)
	if err != nil {
		return fmt.Errorf("removing %s mark: %w", m.kind, err)
	}
	return nil
}

// Toggle flips membership and reports the new state.
func Toggle(m Marker, id string) (bool, error) {
	if m.Contains(id) {
		return false, m.Remove(id)
	}
	return true, m.Add(id)
}

func (s *Store) markSet(kind string) (map[string]bool, error) {
	rows, err := s.readDB.Query("SELECT id FROM marks WHERE kind = ?", kind)
	if err != nil {
		return nil, fmt.Errorf("querying %s marks: %w", kind, err)
	}
	defer rows.Close()

	set := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		set[id] = true
	}
	return set, rows.Err()
}
