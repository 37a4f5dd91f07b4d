// Package particles is a sandbox of bouncing particles that fall under
// gravity, leave short trails and push each other apart.
package particles

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

const (
	ParticleChar = '●'
	TrailChar    = '·'

	hudRows = 1

	// autoBurstEvery is the autopilot's burst cadence in ticks.
	autoBurstEvery = 90
)

// Particle is one moving point with its recent positions.
type Particle struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Trail core.Trail
	Color core.Color
}

// Game implements the Particles toy.
type Game struct {
	cfg     config.ParticlesConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	bounds  core.Bounds

	particles []*Particle
	spawned   int
	tickCount int
}

// New creates a Particles game.
func New(cfg config.ParticlesConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "particles" }

// Title returns the display name.
func (g *Game) Title() string { return "Particles" }

// Reset spawns a fresh set of particles.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.bounds = core.Bounds{
		MinX: 0,
		MinY: hudRows,
		MaxX: float64(max(0, runtime.ScreenW-1)),
		MaxY: float64(max(hudRows, runtime.ScreenH-1)),
	}
	g.particles = g.particles[:0]
	g.spawned = 0
	g.tickCount = 0

	for range g.cfg.Initial {
		pos := core.V(
			g.bounds.MinX+g.rng.Float64()*(g.bounds.MaxX-g.bounds.MinX),
			g.bounds.MinY+g.rng.Float64()*(g.bounds.MaxY-g.bounds.MinY),
		)
		g.Spawn(pos, core.FromAngle(g.rng.Float64()*2*math.Pi, g.rng.Float64()*g.cfg.BurstSpeed))
	}
}

// Spawn adds a particle. At the cap the oldest particle makes room.
func (g *Game) Spawn(pos, vel core.Vec2) {
	limit := max(1, g.cfg.MaxParticles)
	if len(g.particles) >= limit {
		n := copy(g.particles, g.particles[len(g.particles)-limit+1:])
		g.particles = g.particles[:n]
	}
	pos, _, _ = core.Reflect(pos, core.Vec2{}, g.bounds, 1)
	g.particles = append(g.particles, &Particle{
		Pos:   pos,
		Vel:   vel,
		Trail: core.NewTrail(g.cfg.TrailLength),
		Color: core.Palette(g.spawned),
	})
	g.spawned++
}

// Burst spawns burst_size particles from pos, spread evenly around a random
// starting angle.
func (g *Game) Burst(pos core.Vec2) {
	n := max(1, g.cfg.BurstSize)
	offset := g.rng.Float64() * 2 * math.Pi
	for i := range n {
		angle := offset + 2*math.Pi*float64(i)/float64(n)
		g.Spawn(pos, core.FromAngle(angle, g.cfg.BurstSpeed))
	}
}

func (g *Game) center() core.Vec2 {
	return core.V((g.bounds.MinX+g.bounds.MaxX)/2, (g.bounds.MinY+g.bounds.MaxY)/2)
}

// Step advances every particle by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tickCount++
	g.handleInput(in)
	g.repel()
	for _, p := range g.particles {
		g.move(p)
	}
	return core.StepResult{State: g.State()}
}

// handleInput bursts on Launch, drops a resting particle on a tap and
// throws one along a swipe.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionLaunch) {
		g.Burst(g.center())
	}
	for _, gesture := range in.Gestures {
		switch gesture.Kind {
		case core.GestureTap:
			x, y := gesture.At.Cell()
			g.Spawn(core.V(float64(x)+0.5, float64(y)+0.5), core.Vec2{})
		case core.GestureSwipe:
			g.Spawn(gesture.At, gesture.Dir.Scale(gesture.Magnitude*g.cfg.SwipeScale))
		}
	}
}

// move runs one tick of the per-particle rules: gravity, integration, trail,
// wall reflection with elasticity and then friction.
func (g *Game) move(p *Particle) {
	p.Vel.Y += g.cfg.Gravity
	p.Pos = core.Integrate(p.Pos, p.Vel, 1)
	p.Trail.Push(p.Pos)
	p.Pos, p.Vel, _ = core.Reflect(p.Pos, p.Vel, g.bounds, g.cfg.Elasticity)
	p.Vel = p.Vel.Scale(g.cfg.Friction)
}

// repel pushes every pair closer than interaction_radius apart with equal
// and opposite impulses of fixed size. Coincident particles are split along
// the x axis.
func (g *Game) repel() {
	radius := g.cfg.InteractionRadius
	for i, a := range g.particles {
		for _, b := range g.particles[i+1:] {
			d := b.Pos.Sub(a.Pos)
			dist := d.Len()
			if dist >= radius {
				continue
			}
			n := core.V(1, 0)
			if dist > 0 {
				n = d.Scale(1 / dist)
			}
			impulse := n.Scale(g.cfg.Repulsion)
			a.Vel = a.Vel.Sub(impulse)
			b.Vel = b.Vel.Add(impulse)
		}
	}
}

// Autopilot fires a burst from the centre every few seconds.
func (g *Game) Autopilot() core.InputFrame {
	in := core.NewInputFrame()
	if g.tickCount%autoBurstEvery == 0 {
		in.Set(core.ActionLaunch)
	}
	return in
}

// Particles returns the live particles, oldest first.
func (g *Game) Particles() []*Particle {
	return g.particles
}

// State reports the live particle count as the score. The toy never ends.
func (g *Game) State() core.GameState {
	return core.GameState{Score: len(g.particles), Phase: core.Running}
}

// Render draws the particles and their trails.
func (g *Game) Render(dst *core.Screen) {
	for _, p := range g.particles {
		for _, pt := range p.Trail.Points() {
			x, y := pt.Cell()
			dst.SetColored(x, y, TrailChar, core.ColorGray)
		}
	}
	for _, p := range g.particles {
		x, y := p.Pos.Cell()
		dst.SetColored(x, y, ParticleChar, p.Color)
	}
	dst.DrawText(1, 0, fmt.Sprintf("Particles: %d/%d", len(g.particles), g.cfg.MaxParticles))
	help := "SPACE burst  click spawn  drag fling"
	dst.DrawTextColored(dst.Width()-len(help)-1, 0, help, core.ColorGray)
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          "particles",
		Title:       "Particles",
		Description: "Gravity, trails and repulsion sandbox",
	}, func(opts registry.Options) (registry.Game, error) {
		if _, err := config.ParsePreset(opts.Difficulty); err != nil {
			return nil, err
		}
		cfg, err := config.LoadParticles(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		return New(cfg), nil
	})
}
