package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"w", core.ActionUp, false},
		{"up", core.ActionUp, false},
		{"s", core.ActionDown, false},
		{"down", core.ActionDown, false},
		{"a", core.ActionLeft, false},
		{"left", core.ActionLeft, false},
		{"d", core.ActionRight, false},
		{"right", core.ActionRight, false},
		{" ", core.ActionLaunch, false},
		{"enter", core.ActionConfirm, false},
		{"esc", core.ActionBack, false},
		{"b", core.ActionBack, false},
		{"p", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	for _, tt := range tests {
		action, quit := km.MapKey(keyMsg(tt.key))
		if action != tt.action || quit != tt.quit {
			t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.key, action, quit, tt.action, tt.quit)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(keyMsg("left"), &frame) {
		t.Error("left should not quit")
	}
	km.MapKeyToFrame(keyMsg(" "), &frame)
	km.MapKeyToFrame(keyMsg("x"), &frame)

	if !frame.Has(core.ActionLeft) || !frame.Has(core.ActionLaunch) {
		t.Errorf("frame actions = %v, want Left and Launch", frame.Actions)
	}
	if frame.Has(core.ActionNone) {
		t.Error("unmapped keys should not be recorded")
	}
	if !km.MapKeyToFrame(keyMsg("q"), &frame) {
		t.Error("q should quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := map[string]MenuAction{
		"k":     MenuActionUp,
		"up":    MenuActionUp,
		"j":     MenuActionDown,
		"down":  MenuActionDown,
		"enter": MenuActionSelect,
		" ":     MenuActionSelect,
		"esc":   MenuActionBack,
		"tab":   MenuActionScoreboard,
		"q":     MenuActionQuit,
		"x":     MenuActionNone,
	}
	for key, want := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(key)); got != want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", key, got, want)
		}
	}
}

func mouse(x, y int, action tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestPointerTap(t *testing.T) {
	var p Pointer
	frame := core.NewInputFrame()

	p.MapMouseToFrame(mouse(4, 7, tea.MouseActionPress), &frame)
	if len(frame.Gestures) != 0 {
		t.Fatal("press alone should not produce a gesture")
	}
	p.MapMouseToFrame(mouse(4, 7, tea.MouseActionRelease), &frame)

	if len(frame.Gestures) != 1 {
		t.Fatalf("got %d gestures, want 1", len(frame.Gestures))
	}
	g := frame.Gestures[0]
	if g.Kind != core.GestureTap || g.At != core.V(4, 7) {
		t.Errorf("gesture = %+v, want tap at (4,7)", g)
	}
}

func TestPointerSwipe(t *testing.T) {
	var p Pointer
	frame := core.NewInputFrame()

	p.MapMouseToFrame(mouse(2, 5, tea.MouseActionPress), &frame)
	p.MapMouseToFrame(mouse(5, 5, tea.MouseActionMotion), &frame)
	p.MapMouseToFrame(mouse(8, 5, tea.MouseActionRelease), &frame)

	if len(frame.Gestures) != 1 {
		t.Fatalf("got %d gestures, want 1", len(frame.Gestures))
	}
	g := frame.Gestures[0]
	if g.Kind != core.GestureSwipe {
		t.Fatalf("kind = %v, want swipe", g.Kind)
	}
	if g.At != core.V(2, 5) || g.Dir != core.V(1, 0) || g.Magnitude != 6 {
		t.Errorf("swipe = %+v, want from (2,5) right by 6", g)
	}
	if dx, dy := g.Dominant(); dx != 1 || dy != 0 {
		t.Errorf("Dominant() = (%d,%d), want (1,0)", dx, dy)
	}
}

func TestPointerReleaseWithoutPress(t *testing.T) {
	var p Pointer
	frame := core.NewInputFrame()

	p.MapMouseToFrame(mouse(1, 1, tea.MouseActionRelease), &frame)
	p.MapMouseToFrame(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, &frame)
	p.MapMouseToFrame(mouse(1, 1, tea.MouseActionRelease), &frame)

	if len(frame.Gestures) != 0 {
		t.Errorf("got %d gestures, want none", len(frame.Gestures))
	}
}
