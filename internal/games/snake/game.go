// Package snake implements Snake on a fixed board, plus a "snake_rival"
// variant in which an AI snake competes for the same food.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

// Rival is the AI snake. A dead rival is off the board until respawnIn
// reaches zero.
type Rival struct {
	Body  Body
	Dir   Direction
	Alive bool
	Score int

	moveTicker int
	respawnIn  int
}

func (r *Rival) alive() bool {
	return r != nil && r.Alive
}

func (r *Rival) occupies(p Point) bool {
	return r.alive() && r.Body.Contains(p)
}

// Game implements Snake, alone or against a rival snake.
type Game struct {
	cfg       config.SnakeConfig
	withRival bool
	rng       *rand.Rand
	tick      uint64
	board     board

	snake      Body
	direction  Direction
	nextDir    Direction
	moveEvery  int
	moveTicker int
	score      int

	food    Point
	hasFood bool
	rival   *Rival

	over    bool
	outcome core.Outcome
}

// New creates a single-player Snake game.
func New(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg}
}

// NewRival creates the variant with an AI rival.
func NewRival(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg, withRival: true}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.withRival {
		return "snake_rival"
	}
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.withRival {
		return "Snake vs Rival"
	}
	return "Snake"
}

// Reset places a snake of the configured length in the middle of the board,
// heading right with its body trailing to the left.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.board = board{width: max(1, g.cfg.Board.Width), height: max(1, g.cfg.Board.Height)}

	length := max(1, g.cfg.Length)
	head := Point{X: g.board.width / 2, Y: g.board.height / 2}
	g.snake = make(Body, length)
	for i := range g.snake {
		g.snake[i] = Point{X: head.X - i, Y: head.Y}
	}
	g.direction = DirRight
	g.nextDir = DirRight
	g.moveEvery = max(1, g.cfg.Speed.MoveTicks)
	g.moveTicker = 0
	g.score = 0
	g.over = false
	g.outcome = core.OutcomeNone

	g.rival = nil
	if g.withRival {
		g.rival = &Rival{}
		g.hasFood = false
		g.respawnRival()
	}
	g.placeFood()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.over {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	g.processInput(in)

	g.moveTicker++
	if g.moveTicker >= g.moveEvery {
		g.moveTicker = 0
		g.movePlayer()
	}

	if g.rival != nil && !g.over {
		g.stepRival()
	}
	return core.StepResult{State: g.State()}
}

// processInput queues a heading from the arrows or from the dominant axis of
// a swipe. A reversal onto the neck is ignored.
func (g *Game) processInput(in core.InputFrame) {
	next := g.nextDir
	switch {
	case in.Has(core.ActionUp):
		next = DirUp
	case in.Has(core.ActionDown):
		next = DirDown
	case in.Has(core.ActionLeft):
		next = DirLeft
	case in.Has(core.ActionRight):
		next = DirRight
	}
	for _, gesture := range in.Gestures {
		if d, ok := directionOf(gesture.Dominant()); ok {
			next = d
		}
	}
	if !next.IsOpposite(g.direction) {
		g.nextDir = next
	}
}

// movePlayer advances the player one cell. Hitting a wall, its own body or
// the rival ends the game.
func (g *Game) movePlayer() {
	if !g.nextDir.IsOpposite(g.direction) {
		g.direction = g.nextDir
	}

	head := g.snake.Head().Step(g.direction)
	eating := g.hasFood && head == g.food
	if !g.board.contains(head) || g.snake.Blocks(head, eating) || g.rival.occupies(head) {
		g.over = true
		return
	}

	g.snake = g.snake.Advance(head, eating)
	if eating {
		g.score++
		g.moveEvery = max(g.cfg.Speed.MinMoveTicks, g.moveEvery-1, 1)
		g.placeFood()
	}
}

// occupied reports whether either snake covers p.
func (g *Game) occupied(p Point) bool {
	return g.snake.Contains(p) || g.rival.occupies(p)
}

// placeFood moves the food to a free cell. A full board ends the game as a
// win.
func (g *Game) placeFood() {
	g.food, g.hasFood = PlaceFood(g.rng, g.board.width, g.board.height, g.occupied, placementAttempts)
	if !g.hasFood {
		g.over = true
		g.outcome = core.OutcomeWin
	}
}

// stepRival moves the rival on its own timer, or counts down its respawn.
func (g *Game) stepRival() {
	r := g.rival
	if !r.Alive {
		r.respawnIn--
		if r.respawnIn <= 0 {
			g.respawnRival()
		}
		return
	}

	r.moveTicker++
	if r.moveTicker < max(1, g.cfg.Rival.MoveTicks) {
		return
	}
	r.moveTicker = 0

	dir, ok := ChooseMove(r.Body, r.Dir, g.board, g.food, g.hasFood, g.snake.Contains)
	if !ok {
		g.killRival()
		return
	}
	head := r.Body.Head().Step(dir)
	if g.snake.Contains(head) {
		g.killRival()
		return
	}

	eating := g.hasFood && head == g.food
	r.Body = r.Body.Advance(head, eating)
	r.Dir = dir
	if eating {
		r.Score++
		g.placeFood()
	}
}

// killRival removes the rival and schedules its respawn.
func (g *Game) killRival() {
	r := g.rival
	r.Alive = false
	r.Body = nil
	r.moveTicker = 0
	r.respawnIn = max(1, g.cfg.Rival.RespawnDelay)
}

// respawnRival tries random heads far enough from the player. The body
// trails away from the board centre so the rival starts facing inwards. When
// every attempt fails the timer starts over.
func (g *Game) respawnRival() bool {
	r := g.rival
	length := max(1, g.cfg.Length)
	player := g.snake.Head()

	for range max(1, g.cfg.Rival.RespawnAttempts) {
		head := Point{X: g.rng.Intn(g.board.width), Y: g.rng.Intn(g.board.height)}
		if manhattan(head, player) < g.cfg.Rival.RespawnMinDistance {
			continue
		}
		dir := DirRight
		if head.X >= g.board.width/2 {
			dir = DirLeft
		}
		body := make(Body, length)
		for i := range body {
			body[i] = Point{X: head.X - i*dir.Delta().X, Y: head.Y}
		}
		if !g.spawnable(body) {
			continue
		}
		*r = Rival{Body: body, Dir: dir, Alive: true, Score: r.Score}
		return true
	}

	r.respawnIn = max(1, g.cfg.Rival.RespawnDelay)
	return false
}

// spawnable reports whether body fits on free cells.
func (g *Game) spawnable(body Body) bool {
	for _, p := range body {
		if !g.board.contains(p) || g.snake.Contains(p) || (g.hasFood && p == g.food) {
			return false
		}
	}
	return true
}

// Autopilot steers the player with the rival's move scorer.
func (g *Game) Autopilot() core.InputFrame {
	in := core.NewInputFrame()
	dir, ok := ChooseMove(g.snake, g.direction, g.board, g.food, g.hasFood, g.rival.occupies)
	if !ok {
		return in
	}
	switch dir {
	case DirUp:
		in.Set(core.ActionUp)
	case DirDown:
		in.Set(core.ActionDown)
	case DirLeft:
		in.Set(core.ActionLeft)
	case DirRight:
		in.Set(core.ActionRight)
	}
	return in
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{Score: g.score, Phase: core.Running}
	if g.over {
		st.Phase = core.Over
		st.Outcome = g.outcome
	}
	return st
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Score: %d  Length: %d", g.Title(), g.score, len(g.snake))
	if r := g.rival; r != nil {
		status := fmt.Sprintf("%d", r.Score)
		if !r.Alive {
			status += " (respawning)"
		}
		hud += "  Rival: " + status
	}
	dst.DrawText(0, 0, hud)

	frame := core.NewRect(0, 1, g.board.width+2, g.board.height+2)
	if frame.W > dst.Width() || frame.Bottom() > dst.Height() {
		dst.DrawTextCenteredColored(dst.Height()/2, "Window too small", core.ColorYellow)
		return
	}
	frame.X = (dst.Width() - frame.W) / 2
	dst.DrawBoxColored(frame, core.ColorGray)

	cell := func(p Point, r rune, c core.Color) {
		dst.SetColored(frame.X+1+p.X, frame.Y+1+p.Y, r, c)
	}
	if g.hasFood {
		cell(g.food, '*', core.ColorBrightRed)
	}
	if g.rival.alive() {
		for i, seg := range g.rival.Body {
			r := '+'
			if i == 0 {
				r = '@'
			}
			cell(seg, r, core.ColorBrightMagenta)
		}
	}
	for i, seg := range g.snake {
		r := 'o'
		if i == 0 {
			r = 'O'
		}
		cell(seg, r, core.ColorBrightGreen)
	}
}

func init() {
	factory := func(build func(config.SnakeConfig) *Game) registry.Factory {
		return func(opts registry.Options) (registry.Game, error) {
			cfg, err := config.LoadSnake(opts.ConfigPath)
			if err != nil {
				return nil, err
			}
			preset, err := config.ParsePreset(opts.Difficulty)
			if err != nil {
				return nil, err
			}
			config.ApplySnakePreset(&cfg, preset)
			return build(cfg), nil
		}
	}
	registry.Register(registry.GameInfo{
		ID:          "snake",
		Title:       "Snake",
		Description: "Eat, grow, avoid the walls and yourself",
	}, factory(New))
	registry.Register(registry.GameInfo{
		ID:          "snake_rival",
		Title:       "Snake vs Rival",
		Description: "Race an AI snake for the same food",
	}, factory(NewRival))
}
