package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/AtharulKhan/wins-analyzer/internal/store"
	"github.com/AtharulKhan/wins-analyzer/internal/view"
)

// listRow is one entry in the flattened list: either a group header or a
// win. Group fan-out means the same win can appear under several headers.
type listRow struct {
	header bool
	label  string
	win    store.Win
}

// buildRows flattens a snapshot into display rows, inserting a header per
// bucket when grouping is active.
func buildRows(snap view.Snapshot, group view.GroupKey) []listRow {
	if group == view.GroupNone {
		rows := make([]listRow, 0, len(snap.Wins))
		for _, w := range snap.Wins {
			rows = append(rows, listRow{win: w})
		}
		return rows
	}

	var rows []listRow
	for _, key := range snap.Grouped.Keys {
		bucket := snap.Grouped.Buckets[key]
		rows = append(rows, listRow{header: true, label: fmt.Sprintf("%s (%d)", key, len(bucket))})
		for _, w := range bucket {
			rows = append(rows, listRow{win: w})
		}
	}
	return rows
}

func relativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	default:
		return t.Format("Jan 2")
	}
}

func renderListRow(r listRow, selected bool, width int) string {
	if width < 10 {
		width = 30
	}

	// Headers take the same two lines as a win row so scroll math stays
	// uniform.
	if r.header {
		return groupHeaderStyle.Render(truncateStr(r.label, width-2)) + "\n"
	}

	star := ""
	if r.win.IsFavorite {
		star = itemFavoriteStyle.Render("★ ")
	}

	var title string
	if selected {
		title = itemSelectedStyle.Render("> ") + star + itemSelectedStyle.Render(truncateStr(r.win.Title, width-4))
	} else {
		title = "  " + star + itemTitleStyle.Render(truncateStr(r.win.Title, width-4))
	}

	meta := "  " + itemCategoryStyle.Render(truncateStr(r.win.Category, width/2)) +
		" " + itemTimeStyle.Render("· "+relativeTime(r.win.Date))

	return title + "\n" + meta
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func renderList(rows []listRow, cursor int, height int, width int) string {
	if len(rows) == 0 {
		return lipglossCenter("No wins found", width, height)
	}

	// Each row renders as 2 content lines + 1 blank line = 3 lines
	rowHeight := 3
	visible := height / rowHeight
	if visible < 1 {
		visible = 1
	}

	// Calculate scroll offset
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(rows) {
		end = len(rows)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderListRow(rows[i], i == cursor, width))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func lipglossCenter(s string, width, height int) string {
	pad := (width - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}
