// Package breakout implements a brick breaker: a paddle at the bottom, a
// ball, and a grid of bricks that disappear when hit.
package breakout

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
	BrickChar  = '█'
)

const (
	hudRows    = 1
	ballRadius = 0.5

	minScreenW = 30
	minScreenH = 15
)

// Game implements the Breakout game logic.
type Game struct {
	cfg        config.BreakoutConfig
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig
	rng        *rand.Rand

	field    core.RectF
	paddle   core.Paddle
	ball     core.Ball
	attached bool

	levels     []Level
	levelIndex int
	bricks     []Brick

	score     int
	lives     int
	tickCount int
	over      bool
	outcome   core.Outcome

	tooSmall bool
}

// New creates a Breakout game playing the built-in levels.
func New(cfg config.BreakoutConfig) *Game {
	levels := BuiltinLevels()
	if n := cfg.Gameplay.Levels; n > 0 && n < len(levels) {
		levels = levels[:n]
	}
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		levels:     levels,
	}
}

// WithLevels replaces the level list, mainly for tests and custom layouts.
func (g *Game) WithLevels(levels ...Level) *Game {
	g.levels = levels
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string { return "breakout" }

// Title returns the display name.
func (g *Game) Title() string { return "Breakout" }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
	g.field = core.RectF{
		Y: hudRows,
		W: float64(runtime.ScreenW),
		H: float64(max(1, runtime.ScreenH-hudRows)),
	}

	w := math.Min(g.cfg.Paddle.Width, g.field.W)
	g.paddle = core.Paddle{
		Pos:   core.V(g.field.Center().X-w/2, g.field.Bottom()-g.cfg.Paddle.Offset-1),
		W:     w,
		H:     1,
		Speed: g.cfg.Paddle.Speed,
	}

	g.score = 0
	g.lives = max(1, g.cfg.Gameplay.Lives)
	g.tickCount = 0
	g.over = false
	g.outcome = core.OutcomeNone

	g.levelIndex = core.Clamp(g.cfg.Gameplay.StartLevel, 0, max(0, len(g.levels)-1))
	g.loadLevel()
}

// brickArea is the region bricks are laid out in, one row below the HUD.
func (g *Game) brickArea() core.RectF {
	return core.RectF{X: g.field.X, Y: g.field.Y + 1, W: g.field.W, H: g.field.H / 2}
}

// loadLevel lays out the level at levelIndex, skipping layouts with no
// bricks. Running out of levels wins the game.
func (g *Game) loadLevel() {
	g.bricks = nil
	for ; g.levelIndex < len(g.levels); g.levelIndex++ {
		if g.levels[g.levelIndex].BrickCount() > 0 {
			g.bricks = g.levels[g.levelIndex].Layout(g.brickArea())
			g.attach()
			return
		}
	}
	g.levelIndex = max(0, len(g.levels)-1)
	g.over, g.outcome = true, core.OutcomeWin
	g.attach()
}

// attach parks the ball on top of the paddle until the next launch.
func (g *Game) attach() {
	g.attached = true
	g.ball = core.Ball{
		Pos:    core.V(g.paddle.CenterX(), g.paddle.Pos.Y-ballRadius),
		Radius: ballRadius,
	}
}

// launchSpeed is the ball speed for the current difficulty level.
func (g *Game) launchSpeed() float64 {
	speed := g.difficulty.Speed(g.cfg.Physics.BallSpeed, g.score, g.tickCount)
	return core.GrowSpeed(speed, 1, g.cfg.Physics.MaxBallSpeed)
}

// launch frees the ball upwards at a random angle within launch_angle of
// vertical.
func (g *Game) launch() {
	spread := g.cfg.Physics.LaunchAngle * math.Pi / 180
	angle := (g.rng.Float64()*2 - 1) * spread
	g.ball.Vel = core.Deflect(angle, g.launchSpeed(), core.V(0, -1))
	g.attached = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.over || g.tooSmall {
		return core.StepResult{State: g.State()}
	}
	g.tickCount++

	g.updatePaddle(in)

	if g.attached {
		g.ball.Pos.X = g.paddle.CenterX()
		if in.Has(core.ActionLaunch) || len(in.Taps()) > 0 {
			g.launch()
		}
		return core.StepResult{State: g.State()}
	}

	g.updateBall()
	return core.StepResult{State: g.State()}
}

// updatePaddle moves the paddle with the arrows or by the horizontal extent
// of a swipe.
func (g *Game) updatePaddle(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.paddle.Pos.X -= g.paddle.Speed
	}
	if in.Has(core.ActionRight) {
		g.paddle.Pos.X += g.paddle.Speed
	}
	for _, gesture := range in.Gestures {
		if gesture.Kind == core.GestureSwipe {
			g.paddle.Pos.X += gesture.Dir.X * gesture.Magnitude
		}
	}
	g.paddle.ClampX(g.field.X, g.field.Right())
}

// updateBall moves the free ball and resolves walls, paddle, bricks and
// the bottom edge, in that order.
func (g *Game) updateBall() {
	g.ball.Move(1)

	r := g.ball.Radius
	walls := core.Bounds{
		MinX: g.field.X + r,
		MaxX: g.field.Right() - r,
		MinY: g.field.Y + r,
		MaxY: math.Inf(1),
	}
	g.ball.Pos, g.ball.Vel, _ = core.Reflect(g.ball.Pos, g.ball.Vel, walls, 1)

	if !g.bouncePaddle() {
		g.hitBrick()
	}
	if g.over {
		return
	}

	if g.ball.Pos.Y-r > g.field.Bottom() {
		g.loseLife()
	}
}

// bouncePaddle sends a falling ball that touches the paddle back up, aimed
// by where it landed and sped up.
func (g *Game) bouncePaddle() bool {
	if g.ball.Vel.Y <= 0 || !core.CircleIntersectsRect(g.ball.Pos, g.ball.Radius, g.paddle.Rect()) {
		return false
	}
	angle := core.BounceAngle(g.ball.Pos.X, g.paddle.Pos.X, g.paddle.W)
	speed := core.GrowSpeed(g.ball.Speed(), g.cfg.Physics.SpeedGrowth, g.cfg.Physics.MaxBallSpeed)
	g.ball.Vel = core.Deflect(angle, speed, core.V(0, -1))
	g.ball.Pos.Y = g.paddle.Pos.Y - g.ball.Radius
	return true
}

// hitBrick resolves at most one brick per tick: the first visible brick the
// ball overlaps is hidden and the ball bounces along its least-penetration
// axis.
func (g *Game) hitBrick() bool {
	for i := range g.bricks {
		b := &g.bricks[i]
		if !b.Visible || !core.CircleIntersectsRect(g.ball.Pos, g.ball.Radius, b.Rect) {
			continue
		}

		switch core.PenetrationAxis(g.ball.Pos, b.Rect) {
		case core.AxisHorizontal:
			g.ball.Vel.X = -g.ball.Vel.X
		case core.AxisVertical:
			g.ball.Vel.Y = -g.ball.Vel.Y
		}
		b.Visible = false
		g.score += b.Points

		if countVisible(g.bricks) == 0 {
			g.nextLevel()
		}
		return true
	}
	return false
}

// loseLife ends the game on the last ball, otherwise re-attaches it.
func (g *Game) loseLife() {
	g.lives--
	if g.lives <= 0 {
		g.over, g.outcome = true, core.OutcomeLose
		return
	}
	g.attach()
}

// nextLevel loads the following layout, or wins the game after the last one.
func (g *Game) nextLevel() {
	g.levelIndex++
	g.loadLevel()
}

// Autopilot keeps the paddle under the ball and launches it straight away.
func (g *Game) Autopilot() core.InputFrame {
	in := core.NewInputFrame()
	if g.attached {
		in.Set(core.ActionLaunch)
	}
	switch move := core.Track(g.paddle.CenterX(), g.ball.Pos.X, g.paddle.Speed); {
	case move < 0:
		in.Set(core.ActionLeft)
	case move > 0:
		in.Set(core.ActionRight)
	}
	return in
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score: g.score,
		Lives: g.lives,
		Level: g.levelIndex + 1,
		Phase: core.Running,
	}
	if g.over {
		st.Phase = core.Over
		st.Outcome = g.outcome
	}
	return st
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawTextCenteredColored(dst.Height()/2-1, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.lives))
	level := fmt.Sprintf("Level: %d/%d", g.levelIndex+1, max(1, len(g.levels)))
	dst.DrawText(dst.Width()-len(level)-1, 0, level)

	for _, b := range g.bricks {
		if !b.Visible {
			continue
		}
		cells := b.Rect.Cells()
		cells.W = max(1, cells.W-1) // leave a gap between neighbours
		dst.DrawRectColored(cells, BrickChar, core.Palette(b.Row))
	}

	dst.DrawRectColored(g.paddle.Rect().Cells(), PaddleChar, core.ColorBrightCyan)

	x, y := g.ball.Pos.Cell()
	dst.SetColored(x, y, BallChar, core.ColorBrightWhite)

	if g.attached {
		dst.DrawTextCenteredColored(dst.Height()-1, "Press SPACE to launch", core.ColorGray)
	}
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          "breakout",
		Title:       "Breakout",
		Description: "Clear the bricks without dropping the ball",
	}, func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadBreakout(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		preset, err := config.ParsePreset(opts.Difficulty)
		if err != nil {
			return nil, err
		}
		config.ApplyBreakoutPreset(&cfg, preset)
		return New(cfg), nil
	})
}
