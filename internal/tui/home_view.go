package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AtharulKhan/wins-analyzer/internal/store"
)

var asciiLogo = []string{
	`██╗    ██╗██╗███╗   ██╗███████╗`,
	`██║    ██║██║████╗  ██║██╔════╝`,
	`██║ █╗ ██║██║██╔██╗ ██║███████╗`,
	`██║███╗██║██║██║╚██╗██║╚════██║`,
	`╚███╔███╔╝██║██║ ╚████║███████║`,
	` ╚══╝╚══╝ ╚═╝╚═╝  ╚═══╝╚══════╝`,
}

func renderHomeScreen(width, height int, recent []store.Win, total int, updateVersion string) string {
	logoStyle := lipgloss.NewStyle().Foreground(colorAccent)
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(colorText)

	var lines []string

	for _, l := range asciiLogo {
		lines = append(lines, logoStyle.Render(l))
	}
	lines = append(lines, "")
	lines = append(lines, helpDimStyle.Render(fmt.Sprintf("%d wins tracked", total)))
	lines = append(lines, "")

	lines = append(lines, keyStyle.Render("[e]")+"  "+labelStyle.Render("Browse wins"))
	lines = append(lines, keyStyle.Render("[d]")+"  "+labelStyle.Render("Dashboard"))
	lines = append(lines, "")
	lines = append(lines, keyStyle.Render("[q]")+"  "+labelStyle.Render("Quit"))

	if len(recent) > 0 {
		lines = append(lines, "")
		lines = append(lines, helpDimStyle.Render("Recent:"))
		for _, w := range recent {
			lines = append(lines, labelStyle.Render("  "+truncateStr(w.Title, 40))+
				helpDimStyle.Render("  "+relativeTime(w.Date)))
		}
	}

	if updateVersion != "" {
		lines = append(lines, "")
		lines = append(lines, logoStyle.Render("Update available: v"+updateVersion))
	}

	content := strings.Join(lines, "\n")
	contentHeight := strings.Count(content, "\n") + 1

	topPad := (height - contentHeight) / 3
	if topPad < 0 {
		topPad = 0
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		strings.Repeat("\n", topPad)+content)
}
