package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type screenKind int

const (
	screenMenu screenKind = iota
	screenGame
	screenScores
)

// ArcadeModel manages the full arcade flow: menu -> game or scoreboard ->
// menu. It serves both the local menu command and SSH sessions.
type ArcadeModel struct {
	opts       Options
	width      int
	height     int
	screen     screenKind
	menu       MenuModel
	game       Model
	scoreboard ScoreboardModel
	err        error
	quitting   bool
}

// NewArcadeModel creates the arcade starting at the menu.
func NewArcadeModel(opts Options, width, height int) ArcadeModel {
	return ArcadeModel{
		opts:   opts,
		width:  width,
		height: height,
		menu:   NewMenuModel(width, height),
	}
}

// Init implements tea.Model.
func (m ArcadeModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen and switches screens.
func (m ArcadeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = wsm.Width, wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m ArcadeModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scoreboard = NewScoreboardModel(m.opts.Store, m.width, m.height)
		m.screen = screenScores
		m.menu = NewMenuModel(m.width, m.height)
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		id := m.menu.Selected().ID
		m.menu = NewMenuModel(m.width, m.height)

		s, err := m.opts.NewSession(id, m.width, m.height)
		if err != nil {
			m.err = err
			m.opts.logger().Error("start game", "game", id, "err", err)
			return m, nil
		}
		m.err = nil
		m.game = NewModel(s)
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame forwards to the running game and returns to the menu when it
// asks to go back.
func (m ArcadeModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = game
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.game = Model{}
		m.screen = screenMenu
		m.menu = NewMenuModel(m.width, m.height)
		return m, nil
	}
	return m, cmd
}

func (m ArcadeModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		m.screen = screenMenu
		return m, nil
	}
	return m, cmd
}

// View renders the active screen.
func (m ArcadeModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scoreboard.View()
	}
	view := m.menu.View()
	if m.err != nil {
		view += "\n" + centerText(m.err.Error(), m.width)
	}
	return view
}

// Err is the last failure to start a game, if any.
func (m ArcadeModel) Err() error {
	return m.err
}

// RunArcade runs the menu in the local terminal.
func RunArcade(opts Options, width, height int) error {
	p := tea.NewProgram(
		NewArcadeModel(opts, width, height),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
