package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
	"github.com/vovakirdan/canvas-arcade/internal/session"
	"github.com/vovakirdan/canvas-arcade/internal/storage"
)

// Options are the host choices shared by every game started from the TUI.
type Options struct {
	Store    *storage.Store // nil plays without persistence
	Logger   *log.Logger    // nil discards
	Game     registry.Options
	TickRate int
	Seed     int64 // 0 seeds every game from the clock
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// NewSession builds the game registered under id and wraps it in a session
// sized to the given screen.
func (o Options) NewSession(id string, width, height int) (*session.Session, error) {
	game, err := registry.Create(id, o.Game)
	if err != nil {
		return nil, err
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: o.TickRate,
		Seed:     o.Seed,
	}
	opts := []session.Option{session.WithLogger(o.logger())}
	if o.Store != nil {
		opts = append(opts, session.WithStore(o.Store))
	}
	return session.New(game, cfg, opts...), nil
}

// Model is the Bubble Tea model for one running session.
type Model struct {
	session    *session.Session
	presenter  *Presenter
	keys       *KeyMapper
	pointer    *Pointer
	inputFrame core.InputFrame
	loop       uint64
	standalone bool // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a model driving s.
func NewModel(s *session.Session) Model {
	return Model{
		session:    s,
		presenter:  &Presenter{},
		keys:       NewKeyMapper(),
		pointer:    &Pointer{},
		inputFrame: core.NewInputFrame(),
		loop:       nextLoopID(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.loop, m.session.Config().TickRate)
}

// Update handles input and ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.pointer.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		m.session.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		m.session.Tick(m.inputFrame)
		m.inputFrame.Clear()
		return m, tickCmd(m.loop, m.session.Config().TickRate)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		if m.session.Lifecycle() == core.Running {
			m.session.Pause()
			return m, nil
		}
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// saveScreenshot writes the current frame as plain text under
// ~/.arcade/screenshots.
func (m Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.session.Game().ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.session.Frame().String()), 0o600)
}

// View renders the last presented frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.session.Render(m.presenter)
	return m.presenter.Frame()
}

// Session returns the driven session.
func (m Model) Session() *session.Session { return m.session }

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one game in the terminal until the player quits or backs out.
func Run(id string, opts Options, width, height int) error {
	s, err := opts.NewSession(id, width, height)
	if err != nil {
		return err
	}
	model := NewModel(s)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
