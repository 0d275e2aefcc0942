package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/genreseek/internal/prefs"
	"github.com/five82/genreseek/internal/search"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *search.Store
	ThemeName string
	PrefsPath string
	Logger    *zap.Logger
}

// Model renders the search store's state and forwards user input to it.
type Model struct {
	// Configuration
	store       *search.Store
	updates     <-chan search.State
	unsubscribe func()
	prefsPath   string
	logger      *zap.Logger

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool
	notice string

	// Data state
	state search.State

	keys    keyMap
	help    help.Model
	input   textinput.Model
	spinner spinner.Model
}

// New creates a model subscribed to opts.Store. Call Close when done.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Defaults().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	updates, unsubscribe := opts.Store.Subscribe()

	input := textinput.New()
	input.Placeholder = "search genres"
	input.Prompt = "/ "
	input.CharLimit = 128
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		store:       opts.Store,
		updates:     updates,
		unsubscribe: unsubscribe,
		prefsPath:   prefsPath,
		logger:      logger,
		theme:       GetTheme(themeName),
		state:       opts.Store.State(),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		input:       input,
		spinner:     spin,
	}
}

// Close releases the store subscription.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForStateCmd(m.updates),
		sendCmd(m.store, search.ViewAppeared{}),
		textinput.Blink,
		m.spinner.Tick,
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
		m.input.Width = max(msg.Width-10, 10)
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case stateMsg:
		// The input owns the query. Snapshots can lag behind keystrokes.
		m.state = search.State(msg)
		return m, waitForStateCmd(m.updates)

	case storeClosedMsg:
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.renderMain()
}

// handleKey processes keyboard input. Everything that is not a global key
// goes to the query input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.notice = ""
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				m.logger.Warn("save prefs failed", zap.Error(err))
				m.notice = fmt.Sprintf("could not save theme: %v", err)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.state.Status.IsLoading() {
		// The input is hidden while loading.
		return m, nil
	}

	if key.Matches(msg, m.keys.ClearQuery) {
		if m.input.Value() != "" {
			m.input.SetValue("")
			m.store.Send(search.DidTypeQuery{Query: ""})
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.store.Send(search.DidTypeQuery{Query: after})
	}
	return m, cmd
}

// Messages

type stateMsg search.State

type storeClosedMsg struct{}

// Commands

func waitForStateCmd(updates <-chan search.State) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-updates
		if !ok {
			return storeClosedMsg{}
		}
		return stateMsg(s)
	}
}

func sendCmd(store *search.Store, action search.Action) tea.Cmd {
	return func() tea.Msg {
		store.Send(action)
		return nil
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or
// opts.Context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	defer m.Close()

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, programOpts...)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
