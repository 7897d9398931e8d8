package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AtharulKhan/wins-analyzer/internal/browser"
	"github.com/AtharulKhan/wins-analyzer/internal/config"
	"github.com/AtharulKhan/wins-analyzer/internal/sheet"
	"github.com/AtharulKhan/wins-analyzer/internal/store"
	"github.com/AtharulKhan/wins-analyzer/internal/update"
	"github.com/AtharulKhan/wins-analyzer/internal/view"
)

type focusPane int

const (
	focusList focusPane = iota
	focusPreview
)

type mode int

const (
	modeHome mode = iota
	modeNormal
	modeSearch
	modeFilter
	modeDashboard
	modeHelp
)

type App struct {
	cfg    *config.Config
	db     *store.Store
	client *sheet.Client

	wins   []store.Win
	params view.Params
	snap   view.Snapshot
	rows   []listRow

	cursor int
	focus  focusPane
	mode   mode

	width  int
	height int

	// Sub-components
	searchInput textinput.Model
	spinner     spinner.Model
	filter      filterPanel

	// State
	refreshing    bool
	since         time.Time
	previewScroll int
	dashScroll    int
	currentDate   string
	updateVersion string
	version       string
	err           error
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Cfg     *config.Config
	DB      *store.Store
	Client  *sheet.Client
	Wins    []store.Win
	Since   time.Time
	Version string
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Search wins..."
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	a := &App{
		cfg:         opts.Cfg,
		db:          opts.DB,
		client:      opts.Client,
		wins:        opts.Wins,
		params:      view.DefaultParams(),
		since:       opts.Since,
		searchInput: ti,
		spinner:     sp,
		filter:      newFilterPanel(view.CollectDimensions(opts.Wins)),
		currentDate: time.Now().Format("Jan 2"),
		mode:        modeHome,
		version:     opts.Version,
	}
	a.recompute()
	return a
}

func (a *App) Init() tea.Cmd {
	v := a.version
	return func() tea.Msg {
		result := update.Check(context.Background(), v)
		if result == nil {
			return nil
		}
		return updateAvailableMsg{version: result.LatestVersion}
	}
}

// recompute rebuilds the derived snapshot from the current collection and
// parameters. The engine is cheap and synchronous, so this runs on every
// parameter change; a fresh snapshot simply replaces the old one.
func (a *App) recompute() {
	p := a.params
	p.Filter = a.filter.params()
	p.Filter.Search = a.searchInput.Value()

	a.snap = view.Compute(a.wins, p, time.Now())
	a.rows = buildRows(a.snap, p.Group)
	a.snapCursor()
}

// snapCursor keeps the cursor in range and off header rows.
func (a *App) snapCursor() {
	if len(a.rows) == 0 {
		a.cursor = 0
		return
	}
	if a.cursor >= len(a.rows) {
		a.cursor = len(a.rows) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
	if !a.rows[a.cursor].header {
		return
	}
	if i := a.nextWinRow(a.cursor, 1); i >= 0 {
		a.cursor = i
	} else if i := a.nextWinRow(a.cursor, -1); i >= 0 {
		a.cursor = i
	}
}

// nextWinRow returns the index of the next non-header row in the given
// direction, or -1.
func (a *App) nextWinRow(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(a.rows); i += dir {
		if !a.rows[i].header {
			return i
		}
	}
	return -1
}

func (a *App) moveCursor(dir int) {
	if i := a.nextWinRow(a.cursor, dir); i >= 0 {
		a.cursor = i
		a.previewScroll = 0
	}
}

func (a *App) selectedWin() *store.Win {
	if a.cursor < 0 || a.cursor >= len(a.rows) || a.rows[a.cursor].header {
		return nil
	}
	return &a.rows[a.cursor].win
}

func (a *App) doRefresh() tea.Cmd {
	db := a.db
	client := a.client
	since := a.since
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		wins, err := client.FetchWins(ctx)
		if err != nil {
			return refreshDoneMsg{err: err}
		}
		if err := db.ReplaceWins(wins); err != nil {
			return refreshDoneMsg{err: err}
		}
		if err := db.SetLastRefresh(); err != nil {
			return refreshDoneMsg{err: err}
		}

		loaded, err := db.GetWins(since)
		if err != nil {
			return refreshDoneMsg{err: err}
		}
		return winsLoadedMsg{wins: loaded}
	}
}

func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(url); err != nil {
			return errMsg{err: err}
		}
		return nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error on any keypress
		a.err = nil
		return a.handleKey(msg)

	case winsLoadedMsg:
		a.refreshing = false
		a.wins = msg.wins
		a.filter.setDims(view.CollectDimensions(a.wins))
		a.recompute()
		return a, nil

	case refreshDoneMsg:
		a.refreshing = false
		a.err = msg.err
		return a, nil

	case errMsg:
		a.err = msg.err
		return a, nil

	case updateAvailableMsg:
		a.updateVersion = msg.version
		return a, nil

	case spinner.TickMsg:
		if a.refreshing {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeHome:
		return a.handleHomeKey(msg)
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeFilter:
		return a.handleFilterKey(msg)
	case modeDashboard:
		return a.handleDashboardKey(msg)
	case modeHelp:
		if msg.String() == "?" || msg.String() == "esc" || msg.String() == "q" {
			a.mode = modeNormal
		}
		return a, nil
	}

	// Normal mode
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.focus == focusList {
			a.moveCursor(1)
		} else {
			a.previewScroll++
		}
		return a, nil
	case "k", "up":
		if a.focus == focusList {
			a.moveCursor(-1)
		} else if a.previewScroll > 0 {
			a.previewScroll--
		}
		return a, nil
	case "tab":
		if a.focus == focusList {
			a.focus = focusPreview
		} else {
			a.focus = focusList
		}
		return a, nil
	case "o", "enter":
		if w := a.selectedWin(); w != nil && w.Link != "" {
			return a, openBrowserCmd(w.Link)
		}
		return a, nil
	case "/":
		a.mode = modeSearch
		a.searchInput.Focus()
		return a, textinput.Blink
	case "f":
		a.mode = modeFilter
		a.filter.active = true
		return a, nil
	case "s":
		a.params.Sort.Key = cycleSortKey(a.params.Sort.Key)
		a.recompute()
		return a, nil
	case "S":
		if a.params.Sort.Order == view.Ascending {
			a.params.Sort.Order = view.Descending
		} else {
			a.params.Sort.Order = view.Ascending
		}
		a.recompute()
		return a, nil
	case "g":
		a.params.Group = cycleGroupKey(a.params.Group)
		a.cursor = 0
		a.recompute()
		return a, nil
	case "F":
		return a, a.toggleMark(a.db.Favorites())
	case "x":
		return a, a.toggleMark(a.db.Archived())
	case "c":
		a.filter.reset()
		a.searchInput.SetValue("")
		a.recompute()
		return a, nil
	case "r":
		if !a.refreshing {
			a.refreshing = true
			return a, tea.Batch(a.doRefresh(), a.spinner.Tick)
		}
		return a, nil
	case "d":
		a.mode = modeDashboard
		a.dashScroll = 0
		return a, nil
	case "h":
		a.mode = modeHome
		return a, nil
	case "?":
		a.mode = modeHelp
		return a, nil
	}

	return a, nil
}

// toggleMark flips the selected win's membership in a mark set, updates
// the in-memory collection, and recomputes the snapshot.
func (a *App) toggleMark(m store.Marker) tea.Cmd {
	w := a.selectedWin()
	if w == nil {
		return nil
	}
	id := w.ID
	if _, err := store.Toggle(m, id); err != nil {
		a.err = err
		return nil
	}
	// Re-read flags from the store so both mark sets stay authoritative.
	favs := a.db.Favorites()
	arch := a.db.Archived()
	for i := range a.wins {
		if a.wins[i].ID == id {
			a.wins[i].IsFavorite = favs.Contains(id)
			a.wins[i].IsArchived = arch.Contains(id)
		}
	}
	a.recompute()
	return nil
}

func cycleSortKey(k view.SortKey) view.SortKey {
	keys := view.AllSortKeys()
	for i, key := range keys {
		if key == k {
			return keys[(i+1)%len(keys)]
		}
	}
	return keys[0]
}

func cycleGroupKey(k view.GroupKey) view.GroupKey {
	keys := view.AllGroupKeys()
	for i, key := range keys {
		if key == k {
			return keys[(i+1)%len(keys)]
		}
	}
	return keys[0]
}

func (a *App) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "e", "enter", "1":
		a.mode = modeNormal
		return a, nil
	case "d", "2":
		a.mode = modeDashboard
		a.dashScroll = 0
		return a, nil
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeNormal
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		a.recompute()
		return a, nil
	case "enter":
		a.mode = modeNormal
		a.searchInput.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	a.cursor = 0
	a.recompute()
	return a, cmd
}

func (a *App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "f":
		a.mode = modeNormal
		a.filter.active = false
		return a, nil
	case "tab", "down", "j":
		a.filter.nextDimension()
		return a, nil
	case "shift+tab", "up", "k":
		a.filter.prevDimension()
		return a, nil
	case "left", "h":
		a.filter.moveValue(-1)
		return a, nil
	case "right", "l":
		a.filter.moveValue(1)
		return a, nil
	case " ", "enter":
		a.filter.toggleCurrent()
		a.cursor = 0
		a.recompute()
		return a, nil
	case "c":
		a.filter.reset()
		a.cursor = 0
		a.recompute()
		return a, nil
	}
	return a, nil
}

func (a *App) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "d", "e":
		a.mode = modeNormal
		return a, nil
	case "j", "down":
		a.dashScroll++
		return a, nil
	case "k", "up":
		if a.dashScroll > 0 {
			a.dashScroll--
		}
		return a, nil
	case "r":
		if !a.refreshing {
			a.refreshing = true
			return a, tea.Batch(a.doRefresh(), a.spinner.Tick)
		}
		return a, nil
	case "h":
		a.mode = modeHome
		return a, nil
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) withBottomBar(content string, hints string) string {
	bar := renderBottomBar(hints, a.width)
	lines := splitToHeight(content, a.height-1)
	return lipgloss.JoinVertical(lipgloss.Left, lines, bar)
}

func splitToHeight(content string, height int) string {
	lines := strings.Split(content, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  wins-analyzer")
	}

	if a.mode == modeHome {
		recent := view.Recent(a.wins, 5)
		home := renderHomeScreen(a.width, a.height-1, recent, len(a.snap.Active), a.updateVersion)
		return a.withBottomBar(home, "e browse  d dashboard  q quit")
	}

	if a.mode == modeDashboard {
		dash := renderDashboard(a.snap, a.width, a.height-1, a.dashScroll)
		hints := "j/k scroll  r refresh  e browse  h home  q quit"
		if a.refreshing {
			hints = a.spinner.View() + " refreshing...  " + hints
		}
		return a.withBottomBar(dash, hints)
	}

	if a.mode == modeHelp {
		return a.withBottomBar(a.renderHelp(), "? close  h home  q quit")
	}

	// Layout calculations
	headerHeight := 1
	filterHeight := 1
	statusHeight := 1
	contentHeight := a.height - headerHeight - filterHeight - statusHeight - 4 // borders

	listWidth := int(float64(a.width) * 0.4)
	previewWidth := a.width - listWidth - 1 // gap

	if contentHeight < 3 {
		contentHeight = 3
	}

	// Header
	headerLeft := headerStyle.Render("wins-analyzer")
	headerRight := headerDateStyle.Render(a.currentDate)
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	// Filter bar (replaced by the search input while searching)
	filterBar := a.filter.render(a.width)
	if a.mode == modeSearch {
		filterBar = a.searchInput.View()
	}

	// List pane
	innerListW := listWidth - 4 // border + padding
	listContent := renderList(a.rows, a.cursor, contentHeight, innerListW)

	var listPane string
	if a.focus == focusList {
		listPane = listPaneActiveStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)
	} else {
		listPane = listPaneStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)
	}

	// Preview pane
	innerPreviewW := previewWidth - 4
	previewContent := renderPreview(a.selectedWin(), innerPreviewW, contentHeight, a.previewScroll)

	var previewPane string
	if a.focus == focusPreview {
		previewPane = previewPaneActiveStyle.Width(previewWidth - 2).Height(contentHeight).Render(previewContent)
	} else {
		previewPane = previewPaneStyle.Width(previewWidth - 2).Height(contentHeight).Render(previewContent)
	}

	// Join panes
	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, previewPane)

	// Status bar
	status := renderStatusBar(
		len(a.snap.Wins),
		a.filter.activeLabel(),
		string(a.params.Sort.Key)+" "+string(a.params.Sort.Order),
		string(a.params.Group),
		a.width,
		a.mode == modeSearch,
		a.refreshing,
	)

	if a.refreshing {
		status = a.spinner.View() + " " + status
	}

	// Error display
	if a.err != nil {
		status = lipgloss.NewStyle().Foreground(colorAccent).Render(a.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, filterBar, content, status)
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("wins-analyzer")
	dim := helpDimStyle

	help := title + dim.Render(" — Keyboard Shortcuts") + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓     Navigate the wins list\n" +
		"  tab           Switch focus between list and preview\n\n" +
		dim.Render("View") + "\n" +
		"  s             Cycle sort key (date, title, category, platform)\n" +
		"  S             Toggle sort order\n" +
		"  g             Cycle grouping (none, category, sub-category, platform, month)\n" +
		"  d             Open the dashboard\n\n" +
		dim.Render("Actions") + "\n" +
		"  o, enter      Open win link in browser\n" +
		"  F             Toggle favorite\n" +
		"  x             Archive / unarchive\n" +
		"  r             Refresh from the spreadsheet\n" +
		"  /             Search wins\n" +
		"  f             Filter mode\n" +
		"  c             Clear all filters\n\n" +
		dim.Render("Filter Mode") + "\n" +
		"  tab/j/k       Switch dimension\n" +
		"  ←/→, h/l     Move between values\n" +
		"  space/enter   Toggle value\n" +
		"  esc, f        Exit filter mode\n\n" +
		dim.Render("General") + "\n" +
		"  h             Go to home screen\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c    Quit"

	card := helpCardStyle.Render(help)

	return lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
