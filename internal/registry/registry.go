// Package registry is the catalogue of playable simulations. Game packages
// register a factory from init(); hosts discover and build games by ID
// without importing any game directly.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the capability set every simulation provides. Implementations are
// pure logic: no terminal, no clock, no I/O. The session drives them one
// fixed tick at a time.
type Game interface {
	// ID is the stable identifier used on the command line and as the
	// high-score key prefix.
	ID() string

	Title() string

	// Reset rebuilds the initial state for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by exactly one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the playfield and HUD into a pre-cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// Autopilot is implemented by games that can play themselves. The returned
// frame is fed to Step in place of player input.
type Autopilot interface {
	Autopilot() core.InputFrame
}

// Options carry host choices into a factory.
type Options struct {
	ConfigPath string // custom YAML file; empty uses the search path
	Difficulty string // preset name; empty keeps the file values
}

// Factory builds a fresh game. It fails only when the chosen configuration
// cannot be loaded.
type Factory func(opts Options) (Game, error)

// GameInfo describes a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game. It panics on a duplicate ID since that is a
// programming error caught at startup.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Lookup returns the metadata of one game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create builds a new instance of the game registered under id.
func Create(id string, opts Options) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	g, err := e.factory(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return g, nil
}

// Exists reports whether a game is registered under id.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
