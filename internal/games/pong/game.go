// Package pong is single-player Pong against a greedy AI paddle. The player
// holds the left paddle, the AI the right one, and the first side to reach
// the win score takes the match.
package pong

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'

	hudRows    = 1
	ballRadius = 0.5
)

const (
	msgPlayerScores = "PLAYER SCORES!"
	msgAIScores     = "AI SCORES!"
)

// Game implements Pong against a computer paddle.
type Game struct {
	cfg        config.PongConfig
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig
	rng        *rand.Rand

	field  core.RectF
	player core.Paddle
	cpu    core.Paddle
	ball   core.Ball

	playerScore int
	cpuScore    int
	over        bool
	outcome     core.Outcome

	serving    bool
	serveDelay int

	message      string
	messageTicks int
	tickCount    int
}

// New creates a Pong game.
func New(cfg config.PongConfig) *Game {
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "pong" }

// Title returns the display name.
func (g *Game) Title() string { return "Pong" }

// Reset initializes or restarts the match.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.field = core.RectF{
		Y: hudRows,
		W: float64(runtime.ScreenW),
		H: float64(max(1, runtime.ScreenH-hudRows)),
	}

	h := math.Min(g.cfg.Paddles.Height, g.field.H)
	top := g.field.Center().Y - h/2
	g.player = core.Paddle{
		Pos:   core.V(g.cfg.Paddles.Offset, top),
		W:     g.cfg.Paddles.Width,
		H:     h,
		Speed: g.cfg.Paddles.Speed,
	}
	g.cpu = g.player
	g.cpu.Pos.X = g.field.Right() - g.cfg.Paddles.Offset - g.cfg.Paddles.Width

	g.playerScore, g.cpuScore = 0, 0
	g.over = false
	g.outcome = core.OutcomeNone
	g.message, g.messageTicks = "", 0
	g.tickCount = 0

	dir := 1.0
	if g.rng.Intn(2) == 0 {
		dir = -1
	}
	g.serve(dir)
}

// serve centres the ball and aims it towards dir (+1 is the AI side) at a
// random angle within the configured serve angle of horizontal. The ball
// waits serve_delay ticks before moving.
func (g *Game) serve(dir float64) {
	g.serving = true
	g.serveDelay = g.cfg.Gameplay.ServeDelay

	spread := g.cfg.Physics.ServeAngle * math.Pi / 180
	angle := (g.rng.Float64()*2 - 1) * spread
	g.ball = core.Ball{
		Pos:    g.field.Center(),
		Vel:    core.Deflect(angle, g.cfg.Physics.BallSpeed, core.V(dir, 0)),
		Radius: ballRadius,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.over {
		return core.StepResult{State: g.State()}
	}
	g.tickCount++

	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}

	if in.Has(core.ActionUp) {
		g.player.Pos.Y -= g.player.Speed
	}
	if in.Has(core.ActionDown) {
		g.player.Pos.Y += g.player.Speed
	}
	g.player.ClampY(g.field.Y, g.field.Bottom())

	g.updateCPU()

	if g.serving {
		g.serveDelay--
		if g.serveDelay <= 0 {
			g.serving = false
		}
		return core.StepResult{State: g.State()}
	}

	g.updateBall()
	return core.StepResult{State: g.State()}
}

// aiSpeed is the AI paddle step for the current difficulty level.
func (g *Game) aiSpeed() float64 {
	return g.difficulty.Lerp(g.cfg.CPU.MinSkill, g.cfg.CPU.MaxSkill, g.playerScore, g.tickCount)
}

// updateCPU moves the AI paddle centre towards the ball, holding still while
// the gap is within one step.
func (g *Game) updateCPU() {
	g.cpu.Pos.Y += core.Track(g.cpu.CenterY(), g.ball.Pos.Y, g.aiSpeed())
	g.cpu.ClampY(g.field.Y, g.field.Bottom())
}

func (g *Game) updateBall() {
	prevX := g.ball.Pos.X
	g.ball.Move(g.cfg.Physics.SpeedScale)

	walls := core.Bounds{
		MinX: math.Inf(-1),
		MaxX: math.Inf(1),
		MinY: g.field.Y,
		MaxY: g.field.Bottom() - 1,
	}
	g.ball.Pos, g.ball.Vel, _ = core.Reflect(g.ball.Pos, g.ball.Vel, walls, 1)

	switch {
	case g.ball.Vel.X < 0:
		g.returnBall(g.player, g.player.Rect().Right(), 1, prevX)
	case g.ball.Vel.X > 0:
		g.returnBall(g.cpu, g.cpu.Pos.X, -1, prevX)
	}

	switch {
	case g.ball.Pos.X < g.field.X:
		g.point(false)
	case g.ball.Pos.X > g.field.Right():
		g.point(true)
	}
}

// returnBall bounces the ball off paddle p if it crossed the paddle face
// this tick within the paddle's vertical span. normalX is the direction the
// ball leaves in.
func (g *Game) returnBall(p core.Paddle, face, normalX, prevX float64) bool {
	x := g.ball.Pos.X
	crossed := (normalX > 0 && prevX >= face && x <= face) ||
		(normalX < 0 && prevX <= face && x >= face)
	if !crossed {
		return false
	}
	y := g.ball.Pos.Y
	if y < p.Pos.Y-g.ball.Radius || y > p.Pos.Y+p.H+g.ball.Radius {
		return false
	}

	g.ball.Pos.X = face
	angle := core.BounceAngle(y, p.Pos.Y, p.H)
	speed := core.GrowSpeed(g.ball.Speed(), g.cfg.Physics.SpeedGrowth, g.cfg.Physics.MaxBallSpeed)
	g.ball.Vel = core.Deflect(angle, speed, core.V(normalX, 0))
	return true
}

// point awards a point and either ends the match or serves towards the side
// that conceded.
func (g *Game) point(toPlayer bool) {
	g.messageTicks = g.runtime.TicksFor(g.cfg.Gameplay.MessageSeconds)
	if toPlayer {
		g.playerScore++
		g.message = msgPlayerScores
	} else {
		g.cpuScore++
		g.message = msgAIScores
	}

	switch {
	case g.playerScore >= g.cfg.Gameplay.WinScore:
		g.over, g.outcome = true, core.OutcomeWin
	case g.cpuScore >= g.cfg.Gameplay.WinScore:
		g.over, g.outcome = true, core.OutcomeLose
	case toPlayer:
		g.serve(1)
	default:
		g.serve(-1)
	}
}

// Autopilot steers the player paddle with the same greedy rule as the AI.
func (g *Game) Autopilot() core.InputFrame {
	in := core.NewInputFrame()
	switch move := core.Track(g.player.CenterY(), g.ball.Pos.Y, g.player.Speed); {
	case move < 0:
		in.Set(core.ActionUp)
	case move > 0:
		in.Set(core.ActionDown)
	}
	return in
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	centerX := dst.Width() / 2
	for y := int(g.field.Y); y < dst.Height(); y += 2 {
		dst.SetColored(centerX, y, NetChar, core.ColorGray)
	}

	drawPaddle(dst, g.player, core.ColorBrightCyan)
	drawPaddle(dst, g.cpu, core.ColorBrightRed)

	if !g.serving || (g.serveDelay/10)%2 == 0 {
		x, y := g.ball.Pos.Cell()
		dst.SetColored(x, y, BallChar, core.ColorBrightYellow)
	}

	dst.DrawTextColored(1, 0, "PLAYER", core.ColorBrightCyan)
	dst.DrawTextColored(dst.Width()-3, 0, "AI", core.ColorBrightRed)
	dst.DrawText(centerX-5, 0, fmt.Sprintf("%2d", g.playerScore))
	dst.DrawText(centerX+4, 0, fmt.Sprintf("%d", g.cpuScore))

	if g.message != "" {
		dst.DrawTextCenteredColored(int(g.field.Y)+2, g.message, core.ColorYellow)
	}
}

func drawPaddle(dst *core.Screen, p core.Paddle, c core.Color) {
	dst.DrawRectColored(core.NewRect(int(p.Pos.X), int(p.Pos.Y), int(p.W), int(p.H)), PaddleChar, c)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{Score: g.playerScore, Phase: core.Running}
	if g.over {
		st.Phase = core.Over
		st.Outcome = g.outcome
	}
	return st
}

// Message returns the status line currently shown, if any.
func (g *Game) Message() string {
	return g.message
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          "pong",
		Title:       "Pong",
		Description: "First to seven against a tracking AI paddle",
	}, func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadPong(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		preset, err := config.ParsePreset(opts.Difficulty)
		if err != nil {
			return nil, err
		}
		config.ApplyPongPreset(&cfg, preset)
		return New(cfg), nil
	})
}
