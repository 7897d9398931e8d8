package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(winCount int, filterLabel, sortLabel, groupLabel string, width int, searching, refreshing bool) string {
	left := fmt.Sprintf(" %d wins", winCount)
	if filterLabel != "All" {
		left += " · " + filterLabel
	}
	left += " · sort " + sortLabel
	if groupLabel != "none" {
		left += " · by " + groupLabel
	}

	right := " d dashboard  / search  f filter  ? help  q quit "

	if searching {
		right = " esc cancel  enter search "
	}
	if refreshing {
		left += " (refreshing...)"
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}

func renderBottomBar(hints string, width int) string {
	right := " " + hints + " "

	gap := width - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
