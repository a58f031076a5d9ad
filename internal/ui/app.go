package ui

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/five82/liftoff/internal/launches"
	"github.com/five82/liftoff/internal/logging"
	"github.com/five82/liftoff/internal/prefs"
	"github.com/five82/liftoff/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Source    state.Source
	Logger    logrus.FieldLogger
	LogFile   string // tailed by the log pane; empty disables it
	Prefs     prefs.Prefs
	PrefsPath string
	Clock     func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	source    state.Source
	log       logrus.FieldLogger
	logFile   string
	prefs     prefs.Prefs
	prefsPath string
	now       func() time.Time

	// UI state
	keys   keyMap
	theme  Theme
	width  int
	height int
	ready  bool

	// Data state
	view     *state.View
	selected int // index into the current page

	spinner spinner.Model
	dots    paginator.Model

	// Search box
	searching bool
	search    textinput.Model

	// Digits typed so far for a page jump, cleared by any other key.
	pageDigits string

	// Overlays
	showHelp    bool
	showLogs    bool
	logViewport viewport.Model
	logLines    []string
	logErr      error
}

// New creates a new Bubble Tea model. The dataset read starts in Init.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard() // stderr belongs to the alt screen
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	p := opts.Prefs
	if p.Theme == "" {
		p.Theme = prefs.Defaults().Theme
	}
	if p.Layout == "" {
		p.Layout = prefs.LayoutGrid
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	ti := textinput.New()
	ti.Placeholder = "Search mission names..."
	ti.Prompt = "/"
	ti.CharLimit = 80

	dots := paginator.New()
	dots.Type = paginator.Dots
	dots.PerPage = 1

	return Model{
		ctx:       ctx,
		source:    opts.Source,
		log:       log,
		logFile:   opts.LogFile,
		prefs:     p,
		prefsPath: opts.PrefsPath,
		now:       now,
		keys:      defaultKeyMap(),
		theme:     GetTheme(p.Theme),
		view:      state.NewView(state.WithClock(now)),
		spinner:   sp,
		search:    ti,
		dots:      dots,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		fetchLaunchesCmd(m.ctx, m.source, m.log),
	)
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
		m.resizeLogViewport()
		return m, nil

	case spinner.TickMsg:
		if !m.view.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case launchesMsg:
		m.view.Finish(state.LoadResult(msg))
		m.pageChanged()
		return m, nil

	case logTailMsg:
		m.logLines = msg.lines
		m.logErr = msg.err
		m.refreshLogViewport()
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
	if m.showLogs {
		return m.renderHeader() + "\n" + m.renderCommandBar() + "\n" + m.renderLogs()
	}
	return m.renderMain()
}

// handleKey processes keyboard input. Overlays and the search box take
// precedence over the main bindings.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || m.searching || m.showLogs || !key.Matches(msg, m.keys.GoToPage) {
		m.pageDigits = ""
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}
	if m.showLogs {
		return m.handleLogsKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleLayout):
		m.prefs = m.prefs.ToggleLayout()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		if m.logFile == "" {
			return m, nil
		}
		m.showLogs = true
		m.resizeLogViewport()
		return m, readLogCmd(m.logFile)

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.SetValue(m.view.SearchDraft())
		m.search.CursorEnd()
		cmd := m.search.Focus()
		return m, cmd
	}

	// Everything below needs a settled dataset.
	if m.view.Loading() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.CycleStatus):
		m.view.SetStatus(m.view.Criteria().Status.Next())
		m.filtersChanged()

	case key.Matches(msg, m.keys.CycleWindow):
		m.view.SetWindow(m.view.Criteria().Window.Next())
		m.filtersChanged()

	case key.Matches(msg, m.keys.ClearFilters):
		m.view.ClearFilters()
		m.search.SetValue("")
		m.filtersChanged()

	case key.Matches(msg, m.keys.NextPage):
		if m.view.NextPage() {
			m.pageChanged()
		}

	case key.Matches(msg, m.keys.PrevPage):
		if m.view.PreviousPage() {
			m.pageChanged()
		}

	case key.Matches(msg, m.keys.FirstPage):
		m.view.FirstPage()
		m.pageChanged()

	case key.Matches(msg, m.keys.LastPage):
		m.view.LastPage()
		m.pageChanged()

	case key.Matches(msg, m.keys.GoToPage):
		m.typePageDigit(msg.String())

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.view.Page().Items)-1 {
			m.selected++
		}

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	}

	return m, nil
}

// handleSearchKey edits the search draft. Enter commits it; esc abandons
// the edit and restores the committed text.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "enter":
		m.searching = false
		m.search.Blur()
		m.view.SetSearchTerm(m.search.Value())
		m.view.ApplySearch()
		m.filtersChanged()
		return m, nil

	case "esc":
		m.searching = false
		m.search.Blur()
		m.view.SetSearchTerm(m.view.Criteria().Text)
		m.search.SetValue(m.view.Criteria().Text)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.view.SetSearchTerm(m.search.Value())
	return m, cmd
}

// filtersChanged runs after any criteria change. The view has already
// returned to page 1.
func (m *Model) filtersChanged() {
	c := m.view.Criteria()
	m.log.WithFields(logrus.Fields{
		"search":  c.Text,
		"status":  c.Status.String(),
		"window":  c.Window.String(),
		"matches": m.view.Matches(),
	}).Debug("filters applied")
	m.pageChanged()
}

// pageChanged brings selection back to the first card and syncs the page dots.
func (m *Model) pageChanged() {
	m.selected = 0
	page := m.view.Page()
	m.dots.TotalPages = page.TotalPages
	m.dots.Page = page.Number - 1
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.log.WithError(err).Warn("save prefs failed")
	}
}

// selectedLaunch returns the highlighted launch on the current page.
func (m Model) selectedLaunch() (launches.Launch, bool) {
	items := m.view.Page().Items
	if m.selected < 0 || m.selected >= len(items) {
		return launches.Launch{}, false
	}
	return items[m.selected], true
}

// renderMain renders header, command bar, cards and the page bar.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderPageBar())
	return b.String()
}

// typePageDigit extends the page number being typed and jumps to it. A digit
// that would make the number invalid starts a new number instead, and the
// buffer is dropped once no further digit could name a page.
func (m *Model) typePageDigit(d string) {
	if len(d) != 1 || d[0] < '0' || d[0] > '9' {
		return
	}
	total := m.view.Page().TotalPages
	n, err := strconv.Atoi(m.pageDigits + d)
	if err != nil || n < 1 || n > total {
		m.pageDigits = ""
		n, _ = strconv.Atoi(d)
		if n < 1 || n > total {
			return
		}
	}
	m.pageDigits = strconv.Itoa(n)
	if n*10 > total {
		m.pageDigits = ""
	}
	if m.view.GoToPage(n) {
		m.pageChanged()
	}
}

// Messages

type launchesMsg state.LoadResult

type logTailMsg struct {
	lines []string
	err   error
}

// Commands

func fetchLaunchesCmd(ctx context.Context, src state.Source, log logrus.FieldLogger) tea.Cmd {
	return func() tea.Msg {
		return launchesMsg(state.Fetch(ctx, src, log))
	}
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is done.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Context = ctx
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
