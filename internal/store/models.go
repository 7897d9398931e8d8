package store

import (
	"strings"
	"time"
)

// Win is one achievement row from the spreadsheet. Category and
// SubCategories are comma-separated multi-value fields; IsFavorite and
// IsArchived come from the persisted mark sets, not from the sheet.
type Win struct {
	ID            string
	Title         string
	Category      string
	SubCategories string
	Summary       string
	Platform      string
	Date          time.Time
	Link          string
	FetchedAt     time.Time
	IsFavorite    bool
	IsArchived    bool
}

// ProjectIdea is one row from the "Project Ideas" sheet.
type ProjectIdea struct {
	Title    string
	Category string
	Summary  string
}

// SplitList splits a comma-separated multi-value field into trimmed,
// non-empty segments.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// CategoryList returns the win's categories as a set of trimmed strings.
func (w Win) CategoryList() []string {
	return SplitList(w.Category)
}

// SubCategoryList returns the win's sub-categories; may be empty.
func (w Win) SubCategoryList() []string {
	return SplitList(w.SubCategories)
}

// SearchText returns the lowercase haystack used by free-text search.
func (w Win) SearchText() string {
	return strings.ToLower(w.Title + " " + w.Category + " " + w.SubCategories + " " + w.Summary + " " + w.Platform)
}
