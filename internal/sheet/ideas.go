package sheet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/AtharulKhan/wins-analyzer/internal/store"
)

// The gviz endpoint answers with JSONP:
// google.visualization.Query.setResponse({...});
var jsonpPattern = regexp.MustCompile(`(?s)google\.visualization\.Query\.setResponse\((.*)\)`)

type gvizValue struct {
	V interface{} `json:"v"`
}

type gvizRow struct {
	C []*gvizValue `json:"c"`
}

type gvizResponse struct {
	Status string `json:"status"`
	Errors []struct {
		DetailedMessage string `json:"detailed_message"`
	} `json:"errors"`
	Table struct {
		Rows []gvizRow `json:"rows"`
	} `json:"table"`
}

// FetchIdeas pulls the project-ideas sheet through the gviz query
// endpoint and shapes each row to {title, category, summary} with the
// same defaulting rules as wins. Completely empty rows are dropped.
func (c *Client) FetchIdeas(ctx context.Context) ([]store.ProjectIdea, error) {
	u := fmt.Sprintf("%s/spreadsheets/d/%s/gviz/tq?sheet=%s&range=%s",
		c.GvizBase, c.SpreadsheetID, url.QueryEscape(c.IdeasSheet), url.QueryEscape(c.IdeasRange))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching ideas: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching ideas: gviz returned %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading ideas response: %w", err)
	}

	return parseIdeas(raw)
}

func parseIdeas(raw []byte) ([]store.ProjectIdea, error) {
	m := jsonpPattern.FindSubmatch(raw)
	if len(m) < 2 {
		return nil, fmt.Errorf("parsing ideas: response is not gviz JSONP")
	}

	var body gvizResponse
	if err := json.Unmarshal(m[1], &body); err != nil {
		return nil, fmt.Errorf("decoding ideas response: %w", err)
	}
	if body.Status == "error" {
		var msgs []string
		for _, e := range body.Errors {
			msgs = append(msgs, e.DetailedMessage)
		}
		return nil, fmt.Errorf("parsing ideas: gviz error: %s", strings.Join(msgs, ", "))
	}

	var ideas []store.ProjectIdea
	for _, row := range body.Table.Rows {
		idea := store.ProjectIdea{
			Title:    gvizCell(row.C, 0),
			Category: gvizCell(row.C, 1),
			Summary:  gvizCell(row.C, 2),
		}
		if idea.Title == "" && idea.Category == "" && idea.Summary == "" {
			continue
		}
		if idea.Title == "" {
			idea.Title = "Untitled"
		}
		if idea.Category == "" {
			idea.Category = "Uncategorized"
		}
		ideas = append(ideas, idea)
	}
	return ideas, nil
}

func gvizCell(cells []*gvizValue, i int) string {
	if i >= len(cells) || cells[i] == nil || cells[i].V == nil {
		return ""
	}
	if s, ok := cells[i].V.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", cells[i].V)
}
