// Package bounce is a single ball bouncing around the screen. Arrow keys
// nudge it and every wall contact scores.
package bounce

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

const (
	BallChar  = '●'
	TrailChar = '·'

	hudRows    = 1
	ballRadius = 0.5
)

// Game implements the Bounce toy.
type Game struct {
	cfg     config.BounceConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	bounds  core.Bounds

	ball    core.Ball
	trail   core.Trail
	bounces int
}

// New creates a Bounce game.
func New(cfg config.BounceConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "bounce" }

// Title returns the display name.
func (g *Game) Title() string { return "Bounce" }

// Reset places the ball for a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.bounds = core.Bounds{
		MinX: ballRadius,
		MinY: hudRows + ballRadius,
		MaxX: math.Max(ballRadius, float64(runtime.ScreenW)-ballRadius),
		MaxY: math.Max(hudRows+ballRadius, float64(runtime.ScreenH)-ballRadius),
	}
	g.ball = core.Ball{
		Pos:    core.V((g.bounds.MinX+g.bounds.MaxX)/2, (g.bounds.MinY+g.bounds.MaxY)/2),
		Radius: ballRadius,
	}
	g.kick()
	g.trail = core.NewTrail(g.cfg.TrailLength)
	g.bounces = 0
}

// kick sends the ball off in a random direction at the configured speed.
func (g *Game) kick() {
	g.ball.Vel = core.FromAngle(g.rng.Float64()*2*math.Pi, g.cfg.Speed)
}

// Step advances the ball by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	nudge := core.Vec2{}
	if in.Has(core.ActionLeft) {
		nudge.X -= g.cfg.Nudge
	}
	if in.Has(core.ActionRight) {
		nudge.X += g.cfg.Nudge
	}
	if in.Has(core.ActionUp) {
		nudge.Y -= g.cfg.Nudge
	}
	if in.Has(core.ActionDown) {
		nudge.Y += g.cfg.Nudge
	}
	for _, gesture := range in.Gestures {
		if gesture.Kind == core.GestureSwipe {
			nudge = nudge.Add(gesture.Dir.Scale(g.cfg.Nudge))
		}
	}
	if in.Has(core.ActionLaunch) {
		g.kick()
	}

	g.ball.Vel = g.ball.Vel.Add(nudge)
	g.ball.Vel.Y += g.cfg.Gravity
	if g.cfg.MaxSpeed > 0 && g.ball.Speed() > g.cfg.MaxSpeed {
		g.ball.Vel = g.ball.Vel.WithLen(g.cfg.MaxSpeed)
	}

	g.ball.Move(1)
	g.trail.Push(g.ball.Pos)

	var hit core.WallHit
	g.ball.Pos, g.ball.Vel, hit = core.Reflect(g.ball.Pos, g.ball.Vel, g.bounds, g.cfg.Elasticity)
	if hit.Any() {
		g.bounces++
	}
	return core.StepResult{State: g.State()}
}

// State scores wall contacts. The toy never ends.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.bounces, Phase: core.Running}
}

// Render draws the trail and the ball.
func (g *Game) Render(dst *core.Screen) {
	for _, p := range g.trail.Points() {
		x, y := p.Cell()
		dst.SetColored(x, y, TrailChar, core.ColorGray)
	}
	x, y := g.ball.Pos.Cell()
	dst.SetColored(x, y, BallChar, core.Palette(g.bounces))
	dst.DrawText(1, 0, fmt.Sprintf("Bounces: %d  Speed: %.2f", g.bounces, g.ball.Speed()))
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          "bounce",
		Title:       "Bounce",
		Description: "A ball, four walls and a nudge",
	}, func(opts registry.Options) (registry.Game, error) {
		if _, err := config.ParsePreset(opts.Difficulty); err != nil {
			return nil, err
		}
		cfg, err := config.LoadBounce(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		return New(cfg), nil
	})
}
