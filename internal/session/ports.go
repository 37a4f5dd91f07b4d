package session

import (
	"fmt"
	"io"
	"sync"

	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

// Renderer receives one read-only frame per tick. Implementations must not
// keep the screen past the call.
type Renderer interface {
	Present(screen *core.Screen, state core.GameState)
}

// InputSource yields the player's input for the next tick.
type InputSource interface {
	Poll() core.InputFrame
}

// HighScoreStore persists the best score per key.
type HighScoreStore interface {
	HighScore(key string) (int, bool, error)
	SetHighScore(key string, score int) error
}

// ScoreRecorder keeps the history of finished games.
type ScoreRecorder interface {
	SaveScore(gameID string, score int) (int64, error)
}

// HighScoreKey is the persistence key for a game's best score.
func HighScoreKey(gameID string) string {
	return gameID + "-high-score"
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(screen *core.Screen, state core.GameState)

// Present calls f.
func (f RendererFunc) Present(screen *core.Screen, state core.GameState) {
	f(screen, state)
}

// InputFunc adapts a function to InputSource.
type InputFunc func() core.InputFrame

// Poll calls f.
func (f InputFunc) Poll() core.InputFrame {
	return f()
}

// NoInput never presses anything.
var NoInput InputSource = InputFunc(core.NewInputFrame)

// AutopilotInput lets the game drive itself through registry.Autopilot.
// The first poll also carries Launch so a fresh session starts. Games
// without an autopilot only ever receive that Launch.
type AutopilotInput struct {
	Game    registry.Game
	started bool
}

// Poll asks the game for its autopilot input, or returns an empty frame.
func (a *AutopilotInput) Poll() core.InputFrame {
	in := core.NewInputFrame()
	if pilot, ok := a.Game.(registry.Autopilot); ok {
		in = pilot.Autopilot()
	}
	if !a.started {
		in.Set(core.ActionLaunch)
		a.started = true
	}
	return in
}

// TextRenderer writes plain frames to W, separated by a form feed, for
// headless runs. Write errors are kept and reported by Err.
type TextRenderer struct {
	W   io.Writer
	err error
}

// Present writes the frame. After the first write error it does nothing.
func (r *TextRenderer) Present(screen *core.Screen, state core.GameState) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.W, "%s\n[%s] score=%d high=%d\n\f\n",
		screen.String(), state.Phase, state.Score, state.HighScore)
}

// Err returns the first write error.
func (r *TextRenderer) Err() error {
	return r.err
}

// MemoryStore is a HighScoreStore and ScoreRecorder kept in memory.
type MemoryStore struct {
	mu      sync.Mutex
	scores  map[string]int
	history map[string][]int
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scores: make(map[string]int), history: make(map[string][]int)}
}

// HighScore returns the score stored under key.
func (m *MemoryStore) HighScore(key string) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.scores[key]
	return v, ok, nil
}

// SetHighScore keeps the larger of score and the stored value.
func (m *MemoryStore) SetHighScore(key string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if prev, ok := m.scores[key]; ok && prev >= score {
		return nil
	}
	m.scores[key] = score
	return nil
}

// SaveScore appends score to the history of gameID.
func (m *MemoryStore) SaveScore(gameID string, score int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history[gameID] = append(m.history[gameID], score)
	return int64(len(m.history[gameID])), nil
}

// History returns the recorded final scores of a game, oldest first.
func (m *MemoryStore) History(gameID string) []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.history[gameID]...)
}
