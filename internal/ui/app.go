package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/five82/shelf/internal/catalog"
	"github.com/five82/shelf/internal/logtail"
	"github.com/five82/shelf/internal/prefs"
	"github.com/five82/shelf/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewHome View = iota
	ViewBooks
	ViewLogs
)

var viewOrder = []View{ViewHome, ViewBooks, ViewLogs}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Fetcher   catalog.Fetcher
	Covers    func(catalog.Book) string // cover image URL; placeholder when nil
	Store     *state.Store
	LogPath   string
	ThemeName string
	Genre     string
	PrefsPath string

	// OpenURL and CopyText default to the system browser and clipboard.
	OpenURL  func(string) error
	CopyText func(string) error
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	fetcher   catalog.Fetcher
	covers    func(catalog.Book) string
	store     *state.Store
	logPath   string
	prefsPath string
	openURL   func(string) error
	copyText  func(string) error
	keys      keyMap

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool
	notice      string // transient status line text

	// Data state
	snapshot state.Snapshot

	// Books state
	query       catalog.Query
	visible     []catalog.Book
	selectedRow int
	searchInput textinput.Model
	searching   bool

	// Home state
	homeViewport viewport.Model

	// Log state
	logViewport viewport.Model
	logEntries  []logtail.Entry
	logErr      error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Slate"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	covers := opts.Covers
	if covers == nil {
		covers = func(catalog.Book) string { return catalog.PlaceholderCover }
	}

	openURL := opts.OpenURL
	if openURL == nil {
		openURL = openBrowser
	}
	copyText := opts.CopyText
	if copyText == nil {
		copyText = copyToClipboard
	}

	genre := opts.Genre
	if !catalog.KnownGenre(genre) {
		genre = catalog.AllGenres
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search books or authors..."
	ti.CharLimit = 100

	m := Model{
		ctx:         ctx,
		fetcher:     opts.Fetcher,
		covers:      covers,
		store:       store,
		logPath:     opts.LogPath,
		prefsPath:   prefsPath,
		openURL:     openURL,
		copyText:    copyText,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(themeName),
		currentView: ViewBooks,
		snapshot:    store.Snapshot(),
		query:       catalog.Query{Genre: genre},
		searchInput: ti,
	}
	m.refilter()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return loadCmd(m.ctx, m.fetcher, m.store)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.updateHomeViewport()
		m.updateLogViewport()
		return m, nil

	case loadedMsg:
		m.snapshot = m.store.Snapshot()
		m.refilter()
		m.updateHomeViewport()
		return m, nil

	case logsMsg:
		m.logEntries = msg.entries
		m.logErr = msg.err
		m.updateLogViewport()
		m.logViewport.GotoBottom()
		return m, nil

	case noticeMsg:
		m.notice = string(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	// The search box owns the keyboard while focused
	if m.searching {
		return m.handleSearchInput(msg)
	}

	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		m.updateHomeViewport()
		m.updateLogViewport()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		return m.switchView(m.cycleView(1))

	case key.Matches(msg, m.keys.ShiftTab):
		return m.switchView(m.cycleView(-1))

	case key.Matches(msg, m.keys.ViewHome):
		return m.switchView(ViewHome)

	case key.Matches(msg, m.keys.ViewBooks):
		return m.switchView(ViewBooks)

	case key.Matches(msg, m.keys.ViewLogs):
		return m.switchView(ViewLogs)

	case key.Matches(msg, m.keys.Escape):
		if m.currentView == ViewBooks && m.query.Search != "" {
			m.searchInput.SetValue("")
			m.query.Search = ""
			m.refilter()
			return m, nil
		}
		m.currentView = ViewBooks
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		if m.currentView == ViewLogs {
			return m, readLogsCmd(m.logPath)
		}
		return m.reload()
	}

	switch m.currentView {
	case ViewHome:
		var cmd tea.Cmd
		m.homeViewport, cmd = m.homeViewport.Update(msg)
		return m, cmd
	case ViewBooks:
		return m.handleBooksKey(msg)
	case ViewLogs:
		var cmd tea.Cmd
		m.logViewport, cmd = m.logViewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// reload starts a fresh load unless one is already in flight.
func (m Model) reload() (tea.Model, tea.Cmd) {
	if m.snapshot.Loading {
		return m, nil
	}
	m.snapshot.Loading = true
	return m, loadCmd(m.ctx, m.fetcher, m.store)
}

func (m Model) switchView(v View) (tea.Model, tea.Cmd) {
	m.currentView = v
	if v == ViewLogs {
		return m, readLogsCmd(m.logPath)
	}
	return m, nil
}

func (m Model) cycleView(delta int) View {
	for i, v := range viewOrder {
		if v == m.currentView {
			n := len(viewOrder)
			return viewOrder[((i+delta)%n+n)%n]
		}
	}
	return ViewBooks
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Genre: m.query.SelectedGenre()}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		logrus.WithError(err).Warn("save prefs failed")
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// contentHeight is the space left after header, command bar and footer.
func (m Model) contentHeight() int {
	return max(m.height-3, 1)
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewHome:
		return m.renderHome()
	case ViewBooks:
		return m.renderBooks()
	case ViewLogs:
		return m.renderLogs()
	default:
		return ""
	}
}

// Messages

// loadedMsg signals that a load finished and the store holds the outcome.
type loadedMsg struct{}

type logsMsg struct {
	entries []logtail.Entry
	err     error
}

type noticeMsg string

// Commands

// loadCmd runs one load round-trip. Without a fetcher the store is settled
// with an empty result so the view leaves the loading state.
func loadCmd(ctx context.Context, fetcher catalog.Fetcher, store *state.Store) tea.Cmd {
	if fetcher == nil {
		return func() tea.Msg {
			store.Finish(state.Result{})
			return loadedMsg{}
		}
	}
	return func() tea.Msg {
		state.Load(ctx, fetcher, store)
		return loadedMsg{}
	}
}

const logTailLines = 400

func readLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return logsMsg{}
		}
		lines, err := logtail.Read(path, logTailLines)
		return logsMsg{entries: logtail.ParseAll(lines), err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if err != nil && m.ctx.Err() != nil {
		return nil
	}
	return err
}
