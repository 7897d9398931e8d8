package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	plot "github.com/chriskim06/drawille-go"

	"github.com/AtharulKhan/wins-analyzer/internal/stats"
	"github.com/AtharulKhan/wins-analyzer/internal/view"
)

const (
	barGlyph     = "█"
	maxBarWidth  = 40
	maxHistogram = 8
	chartHeight  = 8
)

// renderDashboard draws the analytics view: period counts, top
// categories, the category histogram, the trailing monthly series, the
// cumulative trend, and the keyword cloud. All numbers, sizes, and colors
// come precomputed from the snapshot; this function only maps them onto
// terminal styles.
func renderDashboard(snap view.Snapshot, width, height, scroll int) string {
	var sections []string

	sections = append(sections, renderOverview(snap))
	sections = append(sections, renderHistogram(snap.Categories, width))
	sections = append(sections, renderMonthly(snap.Monthly, width))
	sections = append(sections, renderCumulative(snap.Cumulative, width))
	sections = append(sections, renderKeywordCloud(snap.Keywords, width))

	content := strings.Join(sections, "\n\n")

	lines := strings.Split(content, "\n")
	if scroll > 0 {
		if scroll >= len(lines) {
			scroll = len(lines) - 1
		}
		lines = lines[scroll:]
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func renderOverview(snap view.Snapshot) string {
	p := snap.Periods

	cards := []struct {
		label string
		value string
	}{
		{"Total", fmt.Sprintf("%d", p.Total)},
		{"Last 7 days", fmt.Sprintf("%d", p.Last7Days)},
		{"Last 30 days", fmt.Sprintf("%d", p.Last30Days)},
		{"Last 90 days", fmt.Sprintf("%d", p.Last90Days)},
	}

	var parts []string
	for _, c := range cards {
		parts = append(parts,
			dashLabelStyle.Render(c.label)+" "+dashValueStyle.Render(c.value))
	}
	line := "  " + strings.Join(parts, dashLabelStyle.Render("  │  "))

	var tops []string
	for _, tc := range snap.TopCategories {
		tops = append(tops, fmt.Sprintf("%s: %s (%d)",
			dashLabelStyle.Render(tc.Title),
			lipgloss.NewStyle().Foreground(lipgloss.Color(tc.Color)).Bold(true).Render(tc.Name),
			tc.Count))
	}

	out := dashSectionStyle.Render("  Overview") + "\n\n" + line
	if len(tops) > 0 {
		out += "\n  " + strings.Join(tops, "   ")
	}
	return out
}

func renderHistogram(items []stats.CategoryItem, width int) string {
	out := dashSectionStyle.Render("  Categories") + "\n"
	if len(items) == 0 {
		return out + "\n  " + helpDimStyle.Render("No categories yet")
	}

	shown := items
	if len(shown) > maxHistogram {
		shown = shown[:maxHistogram]
	}

	labelWidth := 0
	for _, it := range shown {
		if w := lipgloss.Width(it.Name); w > labelWidth {
			labelWidth = w
		}
	}
	if labelWidth > 20 {
		labelWidth = 20
	}

	max := shown[0].Count
	barWidth := width - labelWidth - 12
	if barWidth > maxBarWidth {
		barWidth = maxBarWidth
	}
	if barWidth < 5 {
		barWidth = 5
	}

	total := 0
	for _, it := range items {
		total += it.Count
	}

	var lines []string
	for _, it := range shown {
		n := it.Count * barWidth / max
		if n < 1 {
			n = 1
		}
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(it.Color)).Render(strings.Repeat(barGlyph, n))
		lines = append(lines, fmt.Sprintf("  %-*s %s %d (%d%%)",
			labelWidth, truncateStr(it.Name, labelWidth), bar, it.Count, stats.Percentage(it.Count, total)))
	}
	return out + "\n" + strings.Join(lines, "\n")
}

func renderMonthly(points []stats.TimeSeriesPoint, width int) string {
	out := dashSectionStyle.Render("  Wins per month") + "\n"
	if len(points) == 0 {
		return out + "\n  " + helpDimStyle.Render("No activity yet")
	}

	max := 0
	for _, p := range points {
		if p.Count > max {
			max = p.Count
		}
	}
	if max == 0 {
		max = 1
	}

	barWidth := width - 22
	if barWidth > maxBarWidth {
		barWidth = maxBarWidth
	}
	if barWidth < 5 {
		barWidth = 5
	}

	var lines []string
	for _, p := range points {
		n := p.Count * barWidth / max
		bar := lipgloss.NewStyle().Foreground(colorPrimary).Render(strings.Repeat(barGlyph, n))
		lines = append(lines, fmt.Sprintf("  %-9s %s %d", p.Month, bar, p.Count))
	}
	return out + "\n" + strings.Join(lines, "\n")
}

func renderCumulative(points []stats.CumulativePoint, width int) string {
	out := dashSectionStyle.Render("  Cumulative wins") + "\n"
	if len(points) < 2 {
		return out + "\n  " + helpDimStyle.Render("Not enough history yet")
	}

	chartWidth := width - 6
	if chartWidth < 20 {
		chartWidth = 20
	}

	canvas := plot.NewCanvas(chartWidth, chartHeight)
	canvas.ShowAxis = false

	series := make([]float64, len(points))
	for i, p := range points {
		series[i] = float64(p.Cumulative)
	}
	canvas.Fill([][]float64{series})

	chart := canvas.String()
	var lines []string
	for _, l := range strings.Split(strings.TrimRight(chart, "\n"), "\n") {
		lines = append(lines, "  "+lipgloss.NewStyle().Foreground(colorGreen).Render(l))
	}

	first, last := points[0], points[len(points)-1]
	gap := chartWidth - len(first.Month) - len(last.Month)
	if gap < 1 {
		gap = 1
	}
	lines = append(lines, "  "+helpDimStyle.Render(
		first.Month+strings.Repeat(" ", gap)+fmt.Sprintf("%s (%d)", last.Month, last.Cumulative)))

	return out + "\n" + strings.Join(lines, "\n")
}

// renderKeywordCloud maps each keyword's precomputed hints onto styles:
// size ≥ 1.1 renders bold, opacity < 0.8 renders faint.
func renderKeywordCloud(items []stats.KeywordItem, width int) string {
	out := dashSectionStyle.Render("  Common themes") + "\n"
	if len(items) == 0 {
		return out + "\n  " + helpDimStyle.Render("Not enough repeated themes yet")
	}

	var words []string
	for _, it := range items {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(it.Color))
		if it.Size >= 1.1 {
			style = style.Bold(true)
		}
		if it.Opacity < 0.8 {
			style = style.Faint(true)
		}
		words = append(words, style.Render(fmt.Sprintf("%s (%d)", it.Word, it.Count)))
	}

	// Flow words into lines
	var lines []string
	line := " "
	for _, w := range words {
		if lipgloss.Width(line)+lipgloss.Width(w)+2 > width && line != " " {
			lines = append(lines, line)
			line = " "
		}
		line += " " + w
	}
	if strings.TrimSpace(line) != "" {
		lines = append(lines, line)
	}

	return out + "\n" + strings.Join(lines, "\n")
}
