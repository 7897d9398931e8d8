package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AtharulKhan/wins-analyzer/internal/store"
)

func renderPreview(win *store.Win, width, height, scroll int) string {
	if win == nil {
		return lipglossCenter("Select a win", width, height)
	}

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := win.Title
	if win.IsFavorite {
		title = "★ " + title
	}
	titleLine := previewTitleStyle.Width(contentWidth).Render(title)

	meta := previewMetaStyle.Render(
		fmt.Sprintf("%s · %s", win.Category, win.Date.Format("Jan 2, 2006")),
	)

	var extras []string
	if win.Platform != "" {
		extras = append(extras, "Platform: "+win.Platform)
	}
	if win.SubCategories != "" {
		extras = append(extras, "Sub-categories: "+win.SubCategories)
	}
	extraLine := itemTimeStyle.Render(strings.Join(extras, "  ·  "))

	body := win.Summary
	if body == "" {
		body = "(No summary available)"
	}
	bodyBlock := previewBodyStyle.Width(contentWidth).Render(wrapText(body, contentWidth))

	link := ""
	if win.Link != "" {
		link = previewLinkStyle.Width(contentWidth).Render("Open: " + win.Link)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, titleLine, meta, extraLine, "", bodyBlock, "", link)

	// Apply scroll offset
	lines := strings.Split(content, "\n")
	if scroll > 0 && scroll < len(lines) {
		lines = lines[scroll:]
	}

	// Pad to fill height
	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
