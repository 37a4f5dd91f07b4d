package pong

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
)

func newGame(t *testing.T, mutate func(*config.PongConfig), w, h int) *Game {
	t.Helper()
	cfg := config.DefaultPongConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g := New(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 60, Seed: 7})
	return g
}

// launch skips the serve delay.
func launch(g *Game) {
	g.serving = false
	g.serveDelay = 0
}

func assertPaddleInField(t *testing.T, g *Game, p core.Paddle, tick int) {
	t.Helper()
	rel := p.Pos.Y - g.field.Y
	if rel < 0 || rel > g.field.H-p.H {
		t.Fatalf("tick %d: paddle at %v outside [0, %v]", tick, rel, g.field.H-p.H)
	}
}

func TestPaddlesStayInField(t *testing.T) {
	g := newGame(t, nil, 80, 24)
	rng := rand.New(rand.NewSource(1))
	for i := range 3000 {
		in := core.NewInputFrame()
		switch rng.Intn(3) {
		case 0:
			in.Set(core.ActionUp)
		case 1:
			in.Set(core.ActionDown)
		}
		g.Step(in)
		assertPaddleInField(t, g, g.player, i)
		assertPaddleInField(t, g, g.cpu, i)
		if g.over {
			g.Reset(g.runtime)
		}
	}
}

func TestCentreHitTravelsStraight(t *testing.T) {
	g := newGame(t, func(c *config.PongConfig) { c.Paddles.Height = 100 }, 80, 121)
	launch(g)
	g.player.Pos.Y = 10
	g.ball.Pos = core.V(3.3, 60)
	g.ball.Vel = core.V(-0.5, 0.0)

	g.updateBall()

	if g.ball.Vel.Y != 0 {
		t.Errorf("dy = %v, expected 0 for a centre hit", g.ball.Vel.Y)
	}
	if g.ball.Vel.X <= 0 {
		t.Errorf("dx = %v, expected the ball to head back right", g.ball.Vel.X)
	}
}

func TestPaddleBounceGrowsSpeed(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
		want  float64
	}{
		{"grows", 0.5, 0.525},
		{"capped", 1.45, 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGame(t, nil, 80, 24)
			launch(g)
			g.player.Pos.Y = 8
			g.ball.Pos = core.V(3+tt.speed*0.5, 9)
			g.ball.Vel = core.V(-tt.speed, 0)

			g.updateBall()

			if got := g.ball.Speed(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("speed = %v, expected %v", got, tt.want)
			}
			if g.ball.Vel.X <= 0 {
				t.Error("ball should be returned")
			}
		})
	}
}

func TestMissScoresAndShowsMessage(t *testing.T) {
	g := newGame(t, nil, 80, 24)
	launch(g)
	g.player.Pos.Y = 1
	g.ball.Pos = core.V(0.2, 20)
	g.ball.Vel = core.V(-0.5, 0)

	g.updateBall()

	if g.cpuScore != 1 || g.playerScore != 0 {
		t.Fatalf("score %d-%d, expected 0-1", g.playerScore, g.cpuScore)
	}
	if g.Message() != msgAIScores {
		t.Errorf("message = %q", g.Message())
	}
	if !g.serving || g.ball.Pos != g.field.Center() {
		t.Error("a point should re-serve from the centre")
	}
	if g.ball.Vel.X >= 0 {
		t.Error("the serve should go towards the side that conceded")
	}

	g.serveDelay = 1 << 20 // keep the ball parked while the message times out
	ticks := g.runtime.TicksFor(g.cfg.Gameplay.MessageSeconds)
	for range ticks - 1 {
		g.Step(core.NewInputFrame())
	}
	if g.Message() == "" {
		t.Error("message expired early")
	}
	g.Step(core.NewInputFrame())
	if g.Message() != "" {
		t.Errorf("message %q should expire after %d ticks", g.Message(), ticks)
	}
}

func TestServeAngle(t *testing.T) {
	g := newGame(t, nil, 80, 24)
	limit := g.cfg.Physics.ServeAngle*math.Pi/180 + 1e-9
	for range 200 {
		g.serve(1)
		angle := math.Atan2(g.ball.Vel.Y, g.ball.Vel.X)
		if math.Abs(angle) > limit {
			t.Fatalf("serve angle %v exceeds %v", angle, limit)
		}
		if g.serveDelay != g.cfg.Gameplay.ServeDelay {
			t.Fatalf("serve delay = %d", g.serveDelay)
		}
	}
}

func TestMatchEnds(t *testing.T) {
	g := newGame(t, nil, 80, 24)
	g.playerScore = g.cfg.Gameplay.WinScore - 1
	g.point(true)
	if st := g.State(); st.Phase != core.Over || st.Outcome != core.OutcomeWin {
		t.Errorf("player at win score: %+v", st)
	}

	g.Reset(g.runtime)
	g.cpuScore = g.cfg.Gameplay.WinScore - 1
	g.point(false)
	if st := g.State(); st.Phase != core.Over || st.Outcome != core.OutcomeLose {
		t.Errorf("AI at win score: %+v", st)
	}

	before := g.ball
	g.Step(core.Frame(core.ActionUp))
	if g.ball != before {
		t.Error("a finished match must not move")
	}
}

func TestAIHoldsWithinStep(t *testing.T) {
	g := newGame(t, func(c *config.PongConfig) {
		c.CPU.MinSkill, c.CPU.MaxSkill = 0.6, 0.6
	}, 80, 24)

	start := g.cpu.Pos.Y
	g.ball.Pos.Y = g.cpu.CenterY() + 0.5
	g.updateCPU()
	if g.cpu.Pos.Y != start {
		t.Errorf("AI moved %v for an offset below its step", g.cpu.Pos.Y-start)
	}

	g.ball.Pos.Y = g.cpu.CenterY() + 5
	g.updateCPU()
	if math.Abs(g.cpu.Pos.Y-start-0.6) > 1e-9 {
		t.Errorf("AI moved %v, expected exactly 0.6", g.cpu.Pos.Y-start)
	}
}

func TestSpeedScale(t *testing.T) {
	g := newGame(t, func(c *config.PongConfig) { c.Physics.SpeedScale = 2 }, 80, 24)
	launch(g)
	g.ball.Pos = core.V(40, 12)
	g.ball.Vel = core.V(0.5, 0)
	g.updateBall()
	if g.ball.Pos.X != 41 {
		t.Errorf("x = %v, expected 41 with speed scale 2", g.ball.Pos.X)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newGame(t, nil, 80, 24)
		for range 2000 {
			g.Step(g.Autopilot())
		}
		return g.Snapshot()
	}
	a, b := run(), run()
	if a != b {
		t.Errorf("same seed diverged:\n%+v\n%+v", a, b)
	}
	if a.Hash() != b.Hash() {
		t.Error("equal snapshots should hash equal")
	}
	if a.Tick != 2000 && !a.Over {
		t.Errorf("tick = %d, want 2000 unless the match ended", a.Tick)
	}
}

func TestRenderDrawsNetAndScores(t *testing.T) {
	g := newGame(t, nil, 80, 24)
	s := core.NewScreen(80, 24)
	g.Render(s)
	if s.Get(40, 1) != NetChar {
		t.Errorf("net missing, got %q", s.Get(40, 1))
	}
	if s.Get(int(g.player.Pos.X), int(g.player.Pos.Y)) != PaddleChar {
		t.Error("player paddle not drawn")
	}
}
