package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AtharulKhan/wins-analyzer/internal/view"
)

// filterPanel is the interactive multi-dimension filter: category,
// sub-category, and platform are multi-select; the date dimension picks
// one preset.
type filterPanel struct {
	dims view.Dimensions

	dimCursor   int
	valueCursor int
	active      bool

	categories    map[string]bool
	subCategories map[string]bool
	platforms     map[string]bool
	datePreset    view.DatePreset
}

var dimensionNames = []string{"Category", "Sub-category", "Platform", "Date"}

func newFilterPanel(dims view.Dimensions) filterPanel {
	return filterPanel{
		dims:          dims,
		categories:    make(map[string]bool),
		subCategories: make(map[string]bool),
		platforms:     make(map[string]bool),
		datePreset:    view.DateAll,
	}
}

// setDims refreshes the selectable values after a reload, dropping
// selections that no longer exist.
func (f *filterPanel) setDims(dims view.Dimensions) {
	f.dims = dims
	prune := func(selected map[string]bool, values []string) {
		valid := make(map[string]bool, len(values))
		for _, v := range values {
			valid[v] = true
		}
		for v := range selected {
			if !valid[v] {
				delete(selected, v)
			}
		}
	}
	prune(f.categories, dims.Categories)
	prune(f.subCategories, dims.SubCategories)
	prune(f.platforms, dims.Platforms)
	f.clampCursor()
}

func (f *filterPanel) values() []string {
	switch f.dimCursor {
	case 0:
		return f.dims.Categories
	case 1:
		return f.dims.SubCategories
	case 2:
		return f.dims.Platforms
	default:
		presets := view.AllDatePresets()
		out := make([]string, len(presets))
		for i, p := range presets {
			out[i] = string(p)
		}
		return out
	}
}

func (f *filterPanel) selection() map[string]bool {
	switch f.dimCursor {
	case 0:
		return f.categories
	case 1:
		return f.subCategories
	case 2:
		return f.platforms
	default:
		return nil
	}
}

func (f *filterPanel) nextDimension() {
	f.dimCursor = (f.dimCursor + 1) % len(dimensionNames)
	f.valueCursor = 0
}

func (f *filterPanel) prevDimension() {
	f.dimCursor = (f.dimCursor + len(dimensionNames) - 1) % len(dimensionNames)
	f.valueCursor = 0
}

func (f *filterPanel) moveValue(delta int) {
	f.valueCursor += delta
	f.clampCursor()
}

func (f *filterPanel) clampCursor() {
	n := len(f.values())
	if n == 0 {
		f.valueCursor = 0
		return
	}
	if f.valueCursor < 0 {
		f.valueCursor = 0
	}
	if f.valueCursor >= n {
		f.valueCursor = n - 1
	}
}

// toggleCurrent flips the value under the cursor; on the date dimension
// it selects the preset instead.
func (f *filterPanel) toggleCurrent() {
	values := f.values()
	if len(values) == 0 {
		return
	}
	v := values[f.valueCursor]

	if sel := f.selection(); sel != nil {
		if sel[v] {
			delete(sel, v)
		} else {
			sel[v] = true
		}
		return
	}
	f.datePreset = view.ParseDatePreset(v)
}

func (f *filterPanel) reset() {
	f.categories = make(map[string]bool)
	f.subCategories = make(map[string]bool)
	f.platforms = make(map[string]bool)
	f.datePreset = view.DateAll
}

// params translates the panel state into engine filter parameters.
// Selected values come out in the dimension's listed order so results are
// deterministic.
func (f *filterPanel) params() view.FilterParams {
	pick := func(selected map[string]bool, values []string) []string {
		var out []string
		for _, v := range values {
			if selected[v] {
				out = append(out, v)
			}
		}
		return out
	}
	return view.FilterParams{
		Categories:    pick(f.categories, f.dims.Categories),
		SubCategories: pick(f.subCategories, f.dims.SubCategories),
		Platforms:     pick(f.platforms, f.dims.Platforms),
		Dates:         view.DateRange{Preset: f.datePreset},
	}
}

// activeCount reports how many filter constraints are in effect.
func (f *filterPanel) activeCount() int {
	n := len(f.categories) + len(f.subCategories) + len(f.platforms)
	if f.datePreset != view.DateAll {
		n++
	}
	return n
}

func (f *filterPanel) activeLabel() string {
	if f.activeCount() == 0 {
		return "All"
	}
	var parts []string
	for _, v := range f.dims.Categories {
		if f.categories[v] {
			parts = append(parts, v)
		}
	}
	for _, v := range f.dims.SubCategories {
		if f.subCategories[v] {
			parts = append(parts, v)
		}
	}
	for _, v := range f.dims.Platforms {
		if f.platforms[v] {
			parts = append(parts, v)
		}
	}
	if f.datePreset != view.DateAll {
		parts = append(parts, string(f.datePreset))
	}
	return strings.Join(parts, ", ")
}

// render draws one bar: the dimension tabs, then the values of the
// current dimension, highlighting selections and the cursor.
func (f *filterPanel) render(width int) string {
	sep := tabSeparatorStyle.Render(" · ")

	var parts []string
	for i, name := range dimensionNames {
		style := tabInactiveStyle
		if i == f.dimCursor && f.active {
			style = tabActiveStyle
		}
		parts = append(parts, style.Render(name))
	}
	parts = append(parts, tabSeparatorStyle.Render("→"))

	values := f.values()
	sel := f.selection()
	for i, v := range values {
		style := tabInactiveStyle
		selected := (sel != nil && sel[v]) || (sel == nil && view.DatePreset(v) == f.datePreset)
		if selected {
			style = tabActiveStyle
		}
		label := v
		if f.active && i == f.valueCursor {
			label = "[" + v + "]"
		}
		parts = append(parts, style.Render(label))
	}

	// Build row with · separators, stopping when we'd exceed width
	var row string
	for i, part := range parts {
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	barStyle := lipgloss.NewStyle().
		Background(colorTabBg).
		Width(width).
		PaddingLeft(1)
	return barStyle.Render(row)
}
