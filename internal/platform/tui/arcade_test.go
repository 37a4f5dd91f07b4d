package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func updateArcade(t *testing.T, m ArcadeModel, msg tea.Msg) (ArcadeModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(ArcadeModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestArcadeSelectAndReturn(t *testing.T) {
	m := NewArcadeModel(Options{Seed: 1}, 80, 24)

	m, cmd := updateArcade(t, m, keyMsg("enter"))
	if m.screen != screenGame {
		t.Fatalf("screen = %v, want game (err %v)", m.screen, m.Err())
	}
	if cmd == nil {
		t.Error("starting a game should schedule a tick")
	}

	m, _ = updateArcade(t, m, keyMsg("esc"))
	if m.screen != screenMenu {
		t.Errorf("screen = %v, want menu after Back on a fresh game", m.screen)
	}
	if m.menu.Selected() != nil {
		t.Error("menu should be reset")
	}
}

func TestArcadeScoreboardWithoutStore(t *testing.T) {
	m := NewArcadeModel(Options{}, 80, 24)

	m, _ = updateArcade(t, m, keyMsg("tab"))
	if m.screen != screenScores {
		t.Fatalf("screen = %v, want scores", m.screen)
	}
	if len(m.scoreboard.Scores()) != 0 {
		t.Error("no store means no scores")
	}
	if m.View() == "" {
		t.Error("scoreboard should render")
	}

	m, _ = updateArcade(t, m, keyMsg("esc"))
	if m.screen != screenMenu {
		t.Errorf("screen = %v, want menu", m.screen)
	}
}

func TestArcadeQuitFromMenu(t *testing.T) {
	m := NewArcadeModel(Options{}, 80, 24)

	m, cmd := updateArcade(t, m, keyMsg("q"))
	if !m.quitting || cmd == nil {
		t.Error("q should quit")
	}
}

func TestArcadeResizeReachesGame(t *testing.T) {
	m := NewArcadeModel(Options{Seed: 1}, 80, 24)
	m, _ = updateArcade(t, m, keyMsg("enter"))

	m, _ = updateArcade(t, m, tea.WindowSizeMsg{Width: 90, Height: 28})
	if cfg := m.game.Session().Config(); cfg.ScreenW != 90 || cfg.ScreenH != 28 {
		t.Errorf("game screen = %dx%d, want 90x28", cfg.ScreenW, cfg.ScreenH)
	}

	m, _ = updateArcade(t, m, keyMsg("esc"))
	if m.menu.width != 90 {
		t.Errorf("menu width = %d, want 90", m.menu.width)
	}
}
