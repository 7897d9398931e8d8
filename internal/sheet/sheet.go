// Package sheet fetches win and project-idea rows from Google Sheets and
// shapes them into typed records. The transformation engine never touches
// the wire format; it only ever sees the []store.Win produced here.
package sheet

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/AtharulKhan/wins-analyzer/internal/store"
)

// Fetcher retrieves the full win collection from the source spreadsheet.
type Fetcher interface {
	FetchWins(ctx context.Context) ([]store.Win, error)
	FetchIdeas(ctx context.Context) ([]store.ProjectIdea, error)
}

const (
	defaultValuesBase = "https://sheets.googleapis.com"
	defaultGvizBase   = "https://docs.google.com"
)

// Client talks to the Sheets values API (wins) and the gviz endpoint
// (project ideas, which need no API key).
type Client struct {
	SpreadsheetID string
	APIKey        string
	WinsRange     string
	IdeasSheet    string
	IdeasRange    string

	// Overridable in tests.
	ValuesBase string
	GvizBase   string

	httpClient *http.Client
}

func NewClient(spreadsheetID, apiKey, winsRange, ideasSheet, ideasRange string) *Client {
	return &Client{
		SpreadsheetID: spreadsheetID,
		APIKey:        apiKey,
		WinsRange:     winsRange,
		IdeasSheet:    ideasSheet,
		IdeasRange:    ideasRange,
		ValuesBase:    defaultValuesBase,
		GvizBase:      defaultGvizBase,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
	}
}

type valuesResponse struct {
	Values [][]string `json:"values"`
}

// FetchWins pulls the wins range and shapes each row. A full fetch
// replaces the previous collection; row ids stay stable across reloads
// because they derive from row position and date, not fetch time.
func (c *Client) FetchWins(ctx context.Context) ([]store.Win, error) {
	u := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?key=%s",
		c.ValuesBase, c.SpreadsheetID, url.PathEscape(c.WinsRange), url.QueryEscape(c.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching wins: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching wins: sheets API returned %d", resp.StatusCode)
	}

	var body valuesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding wins response: %w", err)
	}

	now := time.Now()
	wins := make([]store.Win, 0, len(body.Values))
	for i, row := range body.Values {
		wins = append(wins, shapeWin(row, i, now))
	}
	return wins, nil
}

// shapeWin maps one positional row to a Win with the documented
// defaulting: missing title → "Untitled", category → "Uncategorized",
// unparseable date → ingestion now, other text fields → "". A malformed
// row is never rejected.
func shapeWin(row []string, index int, now time.Time) store.Win {
	title := cell(row, 0)
	category := cell(row, 1)
	dateStr := cell(row, 5)

	if title == "" {
		title = "Untitled"
	}
	if category == "" {
		category = "Uncategorized"
	}

	return store.Win{
		ID:            fmt.Sprintf("win-%d-%s", index, dateStr),
		Title:         title,
		Category:      category,
		SubCategories: cell(row, 2),
		Summary:       cell(row, 3),
		Platform:      cell(row, 4),
		Date:          parseDate(dateStr, now),
		Link:          cell(row, 6),
		FetchedAt:     now,
	}
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// dateLayouts covers the formats the sheet has used over time.
var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	time.RFC3339,
}

func parseDate(s string, now time.Time) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return now
}
