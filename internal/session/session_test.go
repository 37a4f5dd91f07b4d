package session

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// countGame scores one point per step and ends at limit.
type countGame struct {
	limit  int
	score  int
	lives  int
	steps  int
	resets int
	seed   int64
}

func (g *countGame) ID() string    { return "count" }
func (g *countGame) Title() string { return "Counter" }

func (g *countGame) Reset(cfg core.RuntimeConfig) {
	g.score, g.lives, g.steps = 0, 3, 0
	g.resets++
	g.seed = cfg.Seed
}

func (g *countGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.score++
	if in.Has(core.ActionDown) {
		g.lives--
	}
	return core.StepResult{State: g.State()}
}

func (g *countGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "count")
}

func (g *countGame) State() core.GameState {
	st := core.GameState{Score: g.score, Lives: g.lives, Phase: core.Running}
	if g.limit > 0 && g.score >= g.limit {
		st.Phase = core.Over
		st.Outcome = core.OutcomeWin
	}
	return st
}

func (g *countGame) Autopilot() core.InputFrame {
	return core.Frame(core.ActionUp)
}

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	return cfg
}

func TestSessionStartsOnInput(t *testing.T) {
	g := &countGame{}
	s := New(g, testConfig())

	if s.Lifecycle() != core.NotStarted {
		t.Fatalf("lifecycle = %v, expected not-started", s.Lifecycle())
	}
	s.Tick(core.NewInputFrame())
	s.Tick(core.Frame(core.ActionPause))
	if g.steps != 0 {
		t.Errorf("game stepped %d times before start", g.steps)
	}

	st := s.Tick(core.Frame(core.ActionLaunch))
	if st.Phase != core.Running || g.steps != 1 {
		t.Errorf("Launch should start and step once, phase=%v steps=%d", st.Phase, g.steps)
	}
}

func TestSessionGestureStarts(t *testing.T) {
	s := New(&countGame{}, testConfig())
	in := core.NewInputFrame()
	in.AddGesture(core.Tap(core.V(1, 1)))
	if s.Tick(in).Phase != core.Running {
		t.Error("a tap should start the game")
	}
}

func TestSessionPauseStopsSteps(t *testing.T) {
	g := &countGame{}
	s := New(g, testConfig())
	s.Start()
	s.Tick(core.NewInputFrame())

	s.Tick(core.Frame(core.ActionPause))
	if s.Lifecycle() != core.Paused {
		t.Fatalf("lifecycle = %v, expected paused", s.Lifecycle())
	}
	for range 5 {
		s.Tick(core.Frame(core.ActionUp))
	}
	if g.steps != 1 {
		t.Errorf("paused session stepped the game: steps=%d", g.steps)
	}
	if !strings.Contains(s.Frame().String(), "PAUSED") {
		t.Error("paused frame should still render, with the pause overlay")
	}

	s.Tick(core.Frame(core.ActionPause))
	s.Tick(core.NewInputFrame())
	if s.Lifecycle() != core.Running || g.steps != 2 {
		t.Errorf("resume failed: lifecycle=%v steps=%d", s.Lifecycle(), g.steps)
	}
}

func TestSessionTriggers(t *testing.T) {
	s := New(&countGame{}, testConfig())

	s.Pause()
	if s.Lifecycle() != core.NotStarted {
		t.Error("Pause before Start should be ignored")
	}
	s.Start()
	s.TogglePause()
	if s.Lifecycle() != core.Paused {
		t.Error("TogglePause should pause a running game")
	}
	s.TogglePause()
	if s.Lifecycle() != core.Running {
		t.Error("TogglePause should resume a paused game")
	}
	s.Resume()
	if s.Lifecycle() != core.Running {
		t.Error("Resume on a running game is a no-op")
	}
}

func TestSessionRestartTwice(t *testing.T) {
	g := &countGame{}
	s := New(g, testConfig())
	s.Start()
	for range 4 {
		s.Tick(core.Frame(core.ActionDown))
	}

	s.Restart()
	s.Restart()

	st := s.State()
	if st.Score != 0 || st.Lives != 3 || st.Phase != core.NotStarted {
		t.Errorf("after two restarts: %+v", st)
	}
	if s.Ticks() != 0 {
		t.Errorf("Ticks = %d, expected 0", s.Ticks())
	}
}

func TestSessionRestartSeedsAreDeterministic(t *testing.T) {
	seeds := func() []int64 {
		g := &countGame{}
		s := New(g, testConfig())
		out := []int64{g.seed}
		for range 3 {
			s.Restart()
			out = append(out, g.seed)
		}
		return out
	}
	a, b := seeds(), seeds()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seed %d differs: %d vs %d", i, a[i], b[i])
		}
	}
	if a[0] != 42 {
		t.Errorf("first game should use the configured seed, got %d", a[0])
	}
	if a[1] == a[2] {
		t.Error("restarts should draw fresh seeds")
	}
}

func TestSessionRestartAction(t *testing.T) {
	g := &countGame{limit: 2}
	s := New(g, testConfig())
	s.Start()
	s.Tick(core.NewInputFrame())
	s.Tick(core.NewInputFrame())
	if s.Lifecycle() != core.Over {
		t.Fatalf("lifecycle = %v, expected over", s.Lifecycle())
	}

	s.Tick(core.Frame(core.ActionUp))
	if g.steps != 2 {
		t.Error("a finished game must not step")
	}
	if st := s.Tick(core.Frame(core.ActionRestart)); st.Phase != core.NotStarted || st.Score != 0 {
		t.Errorf("restart from over: %+v", st)
	}
}

func TestSessionHighScore(t *testing.T) {
	store := NewMemoryStore()
	if err := store.SetHighScore("count-high-score", 3); err != nil {
		t.Fatal(err)
	}

	g := &countGame{limit: 5}
	s := New(g, testConfig(), WithStore(store))
	if s.HighScore() != 3 {
		t.Fatalf("HighScore = %d, expected the stored 3", s.HighScore())
	}

	s.Start()
	for range 3 {
		s.Tick(core.NewInputFrame())
	}
	if v, _, _ := store.HighScore(s.Key()); v != 3 {
		t.Errorf("stored = %d, should not change until exceeded", v)
	}

	s.Tick(core.NewInputFrame())
	if v, _, _ := store.HighScore(s.Key()); v != 4 {
		t.Errorf("stored = %d, expected 4 written immediately", v)
	}

	s.Tick(core.NewInputFrame())
	if !strings.Contains(s.Frame().String(), "NEW HIGH SCORE!") {
		t.Error("over overlay should announce the new high score")
	}
	if h := store.History("count"); len(h) != 1 || h[0] != 5 {
		t.Errorf("history = %v, expected [5]", h)
	}

	s.Tick(core.NewInputFrame())
	if h := store.History("count"); len(h) != 1 {
		t.Errorf("a finished game is recorded once, history = %v", h)
	}
}

func TestSessionsSharingStoreKeepBest(t *testing.T) {
	store := NewMemoryStore()
	a := New(&countGame{limit: 50}, testConfig(), WithStore(store))
	b := New(&countGame{limit: 40}, testConfig(), WithStore(store))

	a.Start()
	b.Start()
	for range 50 {
		a.Tick(core.NewInputFrame())
	}
	for range 40 {
		b.Tick(core.NewInputFrame())
	}

	if v, _, _ := store.HighScore(a.Key()); v != 50 {
		t.Errorf("stored = %d, a later lower finish must not replace 50", v)
	}
	if b.HighScore() != 40 {
		t.Errorf("b tracks its own best in memory, got %d", b.HighScore())
	}
}

type failingStore struct{ sets int }

func (f *failingStore) HighScore(string) (int, bool, error) {
	return 0, false, errors.New("disk on fire")
}

func (f *failingStore) SetHighScore(string, int) error {
	f.sets++
	return errors.New("disk on fire")
}

func TestSessionSurvivesStoreFailure(t *testing.T) {
	store := &failingStore{}
	s := New(&countGame{}, testConfig(), WithStore(store))
	s.Start()
	s.Tick(core.NewInputFrame())

	if s.HighScore() != 1 {
		t.Errorf("HighScore = %d, expected in-memory tracking to continue", s.HighScore())
	}
	if store.sets != 1 {
		t.Errorf("SetHighScore calls = %d, expected 1", store.sets)
	}
}

func TestSessionResize(t *testing.T) {
	g := &countGame{}
	s := New(g, testConfig())
	s.Resize(100, 30)
	if f := s.Frame(); f.Width() != 100 || f.Height() != 30 {
		t.Errorf("frame = %dx%d, expected 100x30", f.Width(), f.Height())
	}
	if s.Lifecycle() != core.NotStarted || g.resets != 2 {
		t.Errorf("resize before start should rebuild the game: resets=%d", g.resets)
	}
}

func TestLoopMaxTicks(t *testing.T) {
	g := &countGame{}
	s := New(g, testConfig())
	var frames int
	loop := &Loop{
		Session:     s,
		Input:       &AutopilotInput{Game: g},
		Renderer:    RendererFunc(func(*core.Screen, core.GameState) { frames++ }),
		MaxTicks:    10,
		RenderEvery: 5,
	}
	st, err := loop.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if st.Score != 10 {
		t.Errorf("score = %d, expected 10 steps", st.Score)
	}
	if frames != 2 {
		t.Errorf("frames = %d, expected 2", frames)
	}
}

func TestLoopStopsWhenOver(t *testing.T) {
	s := New(&countGame{limit: 7}, testConfig())
	loop := &Loop{Session: s, Input: &AutopilotInput{Game: s.Game()}, MaxTicks: 100, StopWhenOver: true}
	st, err := loop.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if st.Phase != core.Over || st.Score != 7 {
		t.Errorf("final state %+v, expected over at 7", st)
	}
}

func TestLoopCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	loop := &Loop{Session: New(&countGame{}, testConfig()), TickRate: 1000}
	if _, err := loop.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, expected context.Canceled", err)
	}
}

func TestTextRenderer(t *testing.T) {
	var sb strings.Builder
	r := &TextRenderer{W: &sb}
	s := New(&countGame{}, testConfig())
	s.Render(r)
	if r.Err() != nil {
		t.Fatal(r.Err())
	}
	if !strings.Contains(sb.String(), "count") || !strings.Contains(sb.String(), "[not-started]") {
		t.Errorf("unexpected output:\n%s", sb.String())
	}
}
