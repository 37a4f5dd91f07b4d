// Package session drives a single player's game. A Session owns the
// lifecycle state machine (NotStarted, Running, Paused, Over), tracks the
// high score against a HighScoreStore and produces frames for a Renderer.
// Games stay pure: they never see pausing, persistence or the clock.
package session

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

// Session is not safe for concurrent use; hosts drive it from one goroutine.
type Session struct {
	game    registry.Game
	cfg     core.RuntimeConfig
	store   HighScoreStore
	history ScoreRecorder
	logger  *log.Logger
	seeds   *rand.Rand

	screen    *core.Screen
	lifecycle core.Lifecycle
	highScore int
	startHigh int // high score when the current game began
	ticks     int
	recorded  bool
}

// Option configures a Session.
type Option func(*Session)

// WithStore persists high scores. If the store also implements
// ScoreRecorder, finished games are recorded in its history.
func WithStore(store HighScoreStore) Option {
	return func(s *Session) {
		s.store = store
		if rec, ok := store.(ScoreRecorder); ok && s.history == nil {
			s.history = rec
		}
	}
}

// WithRecorder records finished games in rec.
func WithRecorder(rec ScoreRecorder) Option {
	return func(s *Session) { s.history = rec }
}

// WithLogger sets the session logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// New resets game for cfg and reads the stored high score once. A zero seed
// is replaced by the current time.
func New(game registry.Game, cfg core.RuntimeConfig, opts ...Option) *Session {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	s := &Session{
		game:   game,
		cfg:    cfg,
		seeds:  rand.New(rand.NewSource(cfg.Seed)),
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	s.logger = s.logger.With("game", game.ID())

	s.loadHighScore()
	game.Reset(cfg)
	s.startHigh = s.highScore
	return s
}

// loadHighScore reads the stored high score. A failing store is logged and
// the session plays on without it.
func (s *Session) loadHighScore() {
	if s.store == nil {
		return
	}
	v, ok, err := s.store.HighScore(s.Key())
	if err != nil {
		s.logger.Warn("high score unavailable, playing without it", "err", err)
		return
	}
	if ok {
		s.highScore = v
	}
}

// Key is the high-score key of this session's game.
func (s *Session) Key() string {
	return HighScoreKey(s.game.ID())
}

// Game returns the driven game.
func (s *Session) Game() registry.Game {
	return s.game
}

// Config returns the runtime configuration.
func (s *Session) Config() core.RuntimeConfig {
	return s.cfg
}

// Lifecycle returns the current lifecycle state.
func (s *Session) Lifecycle() core.Lifecycle {
	return s.lifecycle
}

// HighScore returns the best score seen by this session.
func (s *Session) HighScore() int {
	return s.highScore
}

// Ticks counts the simulation steps of the current game.
func (s *Session) Ticks() int {
	return s.ticks
}

// Start begins a game that has not started yet.
func (s *Session) Start() {
	if s.lifecycle == core.NotStarted {
		s.transition(core.Running)
	}
}

// Pause suspends a running game.
func (s *Session) Pause() {
	if s.lifecycle == core.Running {
		s.transition(core.Paused)
	}
}

// Resume continues a paused game.
func (s *Session) Resume() {
	if s.lifecycle == core.Paused {
		s.transition(core.Running)
	}
}

// TogglePause switches between running and paused.
func (s *Session) TogglePause() {
	switch s.lifecycle {
	case core.Running:
		s.Pause()
	case core.Paused:
		s.Resume()
	}
}

// Restart replaces the game state with a fresh one and returns to
// NotStarted. Each restart draws a new seed from the session seed, so a
// seeded session replays the same sequence of games.
func (s *Session) Restart() {
	s.cfg.Seed = s.seeds.Int63()
	s.game.Reset(s.cfg)
	s.ticks = 0
	s.recorded = false
	s.startHigh = s.highScore
	s.transition(core.NotStarted)
}

func (s *Session) transition(to core.Lifecycle) {
	if s.lifecycle == to {
		return
	}
	s.logger.Debug("lifecycle", "from", s.lifecycle, "to", to, "tick", s.ticks)
	s.lifecycle = to
}

// Tick applies one frame of input. Restart works in every phase, Pause
// toggles between Running and Paused, and any movement, Launch or gesture
// starts a fresh game. Only a Running session steps the game.
func (s *Session) Tick(in core.InputFrame) core.GameState {
	if in.Has(core.ActionRestart) && s.lifecycle != core.NotStarted {
		s.Restart()
		return s.State()
	}

	switch s.lifecycle {
	case core.NotStarted:
		if !startsGame(in) {
			return s.State()
		}
		s.Start()
	case core.Paused:
		if in.Has(core.ActionPause) {
			s.Resume()
		}
		return s.State()
	case core.Over:
		return s.State()
	}

	if in.Has(core.ActionPause) {
		s.Pause()
		return s.State()
	}

	st := s.game.Step(in).State
	s.ticks++
	s.observe(st.Score)
	if st.IsOver() {
		s.finish(st)
	}
	return s.State()
}

func startsGame(in core.InputFrame) bool {
	for _, a := range []core.Action{core.ActionLaunch, core.ActionConfirm,
		core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if in.Has(a) {
			return true
		}
	}
	return len(in.Gestures) > 0
}

// observe writes a new high score as soon as it is exceeded.
func (s *Session) observe(score int) {
	if score <= s.highScore {
		return
	}
	s.highScore = score
	if s.store == nil {
		return
	}
	if err := s.store.SetHighScore(s.Key(), score); err != nil {
		s.logger.Warn("save high score", "score", score, "err", err)
	}
}

// finish moves to Over and records the final score once per game.
func (s *Session) finish(st core.GameState) {
	s.transition(core.Over)
	s.logger.Info("game over",
		"score", st.Score,
		"outcome", st.Outcome,
		"ticks", s.ticks,
		"high", s.highScore,
		"new_high", st.Score > s.startHigh)

	if s.history == nil || s.recorded {
		return
	}
	s.recorded = true
	if _, err := s.history.SaveScore(s.game.ID(), st.Score); err != nil {
		s.logger.Warn("save score", "score", st.Score, "err", err)
	}
}

// State reports the game state with the session phase and high score.
func (s *Session) State() core.GameState {
	st := s.game.State()
	st.Phase = s.lifecycle
	st.HighScore = s.highScore
	return st
}

// Resize adapts to a new screen. A game that has not started is rebuilt
// with the same seed; a game in progress restarts; a finished game keeps
// its final state until restarted.
func (s *Session) Resize(width, height int) {
	if width == s.cfg.ScreenW && height == s.cfg.ScreenH {
		return
	}
	s.cfg.ScreenW, s.cfg.ScreenH = width, height
	s.screen.Resize(width, height)

	switch s.lifecycle {
	case core.NotStarted:
		s.game.Reset(s.cfg)
	case core.Running, core.Paused:
		s.Restart()
	}
}

// Frame renders the game and the lifecycle overlay into the session's
// screen. The buffer is reused between calls.
func (s *Session) Frame() *core.Screen {
	s.screen.Clear()
	s.game.Render(s.screen)
	s.drawOverlay(s.screen)
	return s.screen
}

// Render presents the current frame.
func (s *Session) Render(r Renderer) {
	r.Present(s.Frame(), s.State())
}
