package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/0Draxy/promotronik/internal/browser"
	"github.com/0Draxy/promotronik/internal/dataset"
	"github.com/0Draxy/promotronik/internal/listing"
	"github.com/0Draxy/promotronik/internal/logging"
	"github.com/0Draxy/promotronik/internal/render"
	"github.com/0Draxy/promotronik/internal/session"
	"github.com/0Draxy/promotronik/internal/state"
	"github.com/0Draxy/promotronik/internal/view"
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeHelp
)

// RunOpts holds everything the TUI needs to start a session.
type RunOpts struct {
	Title    string
	Loader   *dataset.Loader
	Engine   *view.Engine
	Prefs    *state.Prefs
	Features session.Features
	Cards    render.Options
	Logger   *slog.Logger
	// Open launches a link; defaults to browser.Open.
	Open func(link string) error
}

type App struct {
	opts   RunOpts
	logger *slog.Logger

	sess    *session.Session
	loading bool
	mode    mode
	cursor  int
	theme   state.Theme
	styles  render.Styles

	width  int
	height int

	searchInput textinput.Model
	spinner     spinner.Model
	chips       chipBar
	list        listPane
}

func NewApp(opts RunOpts) *App {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Open == nil {
		opts.Open = browser.Open
	}
	if opts.Title == "" {
		opts.Title = "promotronik"
	}

	ti := textinput.New()
	ti.Placeholder = "Search listings..."
	ti.CharLimit = 100

	a := &App{
		opts:        opts,
		logger:      opts.Logger,
		loading:     true,
		searchInput: ti,
		spinner:     spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
	a.setTheme(opts.Prefs.Theme())
	return a
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadCmd(), a.spinner.Tick)
}

// loadCmd fetches the dataset off the event loop. The list stays empty, with
// the spinner running, until the fetch settles. Failures arrive as an empty
// list; the loader logs them.
func (a *App) loadCmd() tea.Cmd {
	loader := a.opts.Loader
	return func() tea.Msg {
		return datasetLoadedMsg{items: loader.Load(context.Background())}
	}
}

func openLinkCmd(open func(string) error, link string) tea.Cmd {
	return func() tea.Msg {
		if err := open(link); err != nil {
			return openFailedMsg{link: link, err: err}
		}
		return nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.redraw()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case datasetLoadedMsg:
		a.start(msg.items)
		return a, nil

	case openFailedMsg:
		a.logger.Warn("opening link", "link", msg.link, "err", msg.err)
		return a, nil

	case spinner.TickMsg:
		if a.loading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}
	return a, nil
}

func (a *App) start(items []listing.Item) {
	a.loading = false
	a.sess = session.New(items, a.opts.Engine, a.opts.Prefs, a.opts.Features)
	a.chips = newChipBar(a.sess.Chips())
	a.cursor = 0
	a.logger.Debug("session started", "items", len(items), "chips", len(a.sess.Chips()))
	a.redraw()
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return a, tea.Quit
	}
	if a.sess == nil {
		if key == "q" {
			return a, tea.Quit
		}
		return a, nil
	}

	switch a.mode {
	case modeHelp:
		if key == "?" || key == "esc" || key == "q" {
			a.mode = modeNormal
		}
		return a, nil
	case modeSearch:
		return a.handleSearchKey(msg)
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "j", "down":
		a.move(1)
	case "k", "up":
		a.move(-1)
	case "/":
		a.mode = modeSearch
		return a, a.searchInput.Focus()
	case "esc", "ctrl+u":
		return a, a.dispatch(session.SearchCleared{})
	case "s":
		return a, a.dispatch(session.SortChanged{Mode: a.sess.NextSort()})
	case "c":
		if host, ok := a.chips.next(); ok {
			return a, a.dispatch(session.ChipSelected{Host: host})
		}
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if host, ok := a.chips.selectIndex(int(key[0] - '0')); ok {
			return a, a.dispatch(session.ChipSelected{Host: host})
		}
	case "f", " ", "space":
		if link, ok := a.list.toggleAt(a.cursor); ok {
			return a, a.dispatch(session.FavoriteToggled{Link: link})
		}
	case "F":
		return a, a.dispatch(session.FavoritesOnlyToggled{})
	case "t":
		return a, a.dispatch(session.ThemeToggled{})
	case "o", "enter":
		if visible := a.sess.Visible(); a.cursor < len(visible) {
			return a, openLinkCmd(a.opts.Open, visible[a.cursor].Link)
		}
	case "?":
		a.mode = modeHelp
	}
	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+u":
		return a, a.dispatch(session.SearchCleared{})
	case "enter":
		a.mode = modeNormal
		a.searchInput.Blur()
		return a, nil
	case "up":
		a.move(-1)
		return a, nil
	case "down":
		a.move(1)
		return a, nil
	}

	before := a.searchInput.Value()
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	// cursor moves inside the field do not change the selection
	if term := a.searchInput.Value(); term != before {
		return a, tea.Batch(cmd, a.dispatch(session.SearchChanged{Term: term}))
	}
	return a, cmd
}

// dispatch feeds ev to the session and brings the view up to date. Write
// failures of preferences are logged, never shown.
func (a *App) dispatch(ev session.Event) tea.Cmd {
	u, err := a.sess.Dispatch(ev)
	if err != nil {
		a.logger.Warn("event failed", "event", ev.Kind().String(), "err", err)
	}

	if u.Reselected {
		if ev.Kind() == session.KindFavoriteToggled {
			a.cursor = clampCursor(a.cursor, len(a.sess.Visible()))
		} else {
			a.cursor = 0
		}
	}
	if u.Theme != a.theme {
		a.setTheme(u.Theme)
	}

	var cmd tea.Cmd
	if u.Refocus {
		a.searchInput.SetValue("")
		a.mode = modeSearch
		cmd = a.searchInput.Focus()
	}
	a.redraw()
	return cmd
}

func (a *App) move(delta int) {
	a.cursor = clampCursor(a.cursor+delta, len(a.sess.Visible()))
	a.redraw()
}

func (a *App) setTheme(t state.Theme) {
	a.theme = t
	a.styles = render.NewStyles(string(t))
	a.searchInput.Prompt = a.styles.Prompt.Render("/ ")
	a.spinner.Style = a.styles.Spinner
}

func (a *App) redraw() {
	if a.sess == nil {
		return
	}
	t := render.Terminal{
		Styles:    a.styles,
		Width:     a.width,
		Cursor:    a.cursor,
		Favorites: a.sess.Features().Favorites,
	}
	if a.height > 0 {
		t.Height = listHeight(a.height, len(a.chips.chips) > 0)
	}
	if err := a.list.redraw(a.sess, t, a.opts.Cards); err != nil {
		a.logger.Warn("rendering list", "err", err)
	}
}

func (a *App) View() string {
	if a.width == 0 {
		return a.styles.Header.Render(a.opts.Title)
	}
	if a.mode == modeHelp {
		return renderHelp(a.styles, a.opts.Title, a.width, a.height)
	}

	rows := []string{a.renderHeader()}
	if bar := a.chips.render(a.styles, a.width); bar != "" {
		rows = append(rows, bar)
	}
	rows = append(rows, " "+a.searchInput.View())

	body := a.list.body
	if a.loading {
		body = "  " + a.spinner.View() + " " + a.styles.Empty.Render("Loading listings")
	}
	rows = append(rows, fitLines(body, listHeight(a.height, len(a.chips.chips) > 0)))
	rows = append(rows, renderStatusBar(a.styles, a.status(), a.width))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (a *App) renderHeader() string {
	left := a.styles.Header.Render(a.opts.Title)
	right := a.theme.Glyph() + " "
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + fmt.Sprintf("%*s", gap, "") + right
}

func (a *App) status() statusInfo {
	info := statusInfo{
		searching: a.mode == modeSearch,
		loading:   a.loading,
		chipLabel: a.chips.activeLabel(),
	}
	if a.sess != nil {
		info.shown = len(a.sess.Visible())
		info.total = len(a.sess.Items())
		info.sortLabel = a.sess.State().Sort.Label()
		info.favoritesOnly = a.sess.FavoritesOnly()
	}
	return info
}

func fitLines(s string, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// Run starts the TUI and blocks until the user quits.
func Run(opts RunOpts) error {
	p := tea.NewProgram(NewApp(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
