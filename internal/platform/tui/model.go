package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/parkour/internal/config"
	"github.com/vovakirdan/parkour/internal/core"
	"github.com/vovakirdan/parkour/internal/games/parkour"
)

// footerRows is the number of rows below the playfield used by the help line.
const footerRows = 1

// Options configures a terminal session.
type Options struct {
	// Start is the 0-based level to start at. Negative shows the menu.
	Start int

	// Preset is applied to every config delivered by Watcher.
	Preset config.DifficultyPreset

	// Watcher, when set, hot-reloads the config file.
	Watcher *config.Watcher

	Logger *log.Logger
}

// configMsg carries a reloaded configuration.
type configMsg struct{ cfg config.GameConfig }

// configErrMsg carries a failed reload.
type configErrMsg struct{ err error }

// Model is the Bubble Tea model for one game session.
type Model struct {
	ctrl   *parkour.Controller
	canvas *Canvas
	screen *core.Screen
	menu   levelMenu
	keys   KeyMap
	help   help.Model

	config  core.RuntimeConfig
	input   core.InputFrame
	preset  config.DifficultyPreset
	watcher *config.Watcher
	logger  *log.Logger

	status   string // Last reload result, shown under the help line
	quitting bool
}

// NewModel creates a session for cfg. A Start index outside the catalog
// is reported as parkour.ErrLevelOutOfRange.
func NewModel(cfg config.GameConfig, rt core.RuntimeConfig, opts Options) (Model, error) {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(rt.ScreenW, max(rt.ScreenH-footerRows, 1))
	canvas := NewCanvas(screen, cfg.World)
	ctrl := parkour.NewController(cfg, rt,
		parkour.WithRenderer(canvas),
		parkour.WithPresenter(canvas),
		parkour.WithLogger(logger),
	)

	h := help.New()
	h.Width = rt.ScreenW

	m := Model{
		ctrl:    ctrl,
		canvas:  canvas,
		screen:  screen,
		menu:    newLevelMenu(ctrl.Catalog(), rt.ScreenH),
		keys:    DefaultKeyMap(),
		help:    h,
		config:  rt,
		input:   core.NewInputFrame(),
		preset:  opts.Preset,
		watcher: opts.Watcher,
		logger:  logger,
	}

	if opts.Start >= 0 {
		if err := ctrl.StartAt(opts.Start); err != nil {
			return Model{}, err
		}
		m.menu.Select(opts.Start)
	}
	return m, nil
}

// Controller returns the game controller driven by this model.
func (m Model) Controller() *parkour.Controller {
	return m.ctrl
}

// Init starts the tick loop and the config watch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickInterval()), waitForConfig(m.watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case configMsg:
		cfg := msg.cfg
		config.ApplyPreset(&cfg, m.preset)
		m.ctrl.Reload(cfg)
		m.menu.setLevels(m.ctrl.Catalog())
		m.status = "config reloaded, applies at the next level start"
		return m, waitForConfig(m.watcher)

	case configErrMsg:
		m.logger.Warn("config reload failed", "error", msg.err)
		m.status = "config error: " + msg.err.Error()
		return m, waitForConfig(m.watcher)
	}

	return m, nil
}

// handleKey records the action for the next tick. On the menu the keys
// drive the level table instead.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.Action(msg)
	if isQuit {
		m.quitting = true
		m.ctrl.Dispose()
		return m, tea.Quit
	}

	if m.ctrl.Phase() == parkour.PhaseMenu {
		switch {
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			var cmd tea.Cmd
			m.menu, cmd = m.menu.Update(msg)
			return m, cmd
		case action == core.ActionConfirm, action == core.ActionJump:
			if err := m.ctrl.StartAt(m.menu.Selected()); err != nil {
				m.status = err.Error()
			}
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.input.Set(action)
	}
	return m, nil
}

// handleResize adapts the screen to the terminal. The game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerRows, 1))
	m.help.Width = msg.Width

	selected := m.menu.Selected()
	m.menu = newLevelMenu(m.ctrl.Catalog(), msg.Height)
	m.menu.Select(selected)
	return m, nil
}

// handleTick runs one simulation step with the actions since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.ctrl.Step(m.input)
	m.input.Clear()
	return m, tickCmd(m.config.TickInterval())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var out string
	switch screen, _ := m.canvas.Current(); screen {
	case parkour.ScreenMenu:
		out = m.menu.View(m.config.ScreenW, m.help.View(menuKeys{m.keys}))
	case parkour.ScreenVictory:
		out = victoryView(m.config.ScreenW, len(m.ctrl.Catalog()), m.help.View(menuKeys{m.keys}))
	default:
		m.canvas.world = m.ctrl.World()
		m.ctrl.Render()
		out = RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
	}

	if m.status != "" {
		out += "\n" + helpStyle.Render(m.status)
	}
	return out
}

// waitForConfig blocks until the watcher delivers a reload result.
func waitForConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case cfg, ok := <-w.Updates:
			if !ok {
				return nil
			}
			return configMsg{cfg: cfg}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configErrMsg{err: err}
		}
	}
}

// Run starts the Bubble Tea program for a local terminal.
func Run(cfg config.GameConfig, rt core.RuntimeConfig, opts Options) error {
	model, err := NewModel(cfg, rt, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
