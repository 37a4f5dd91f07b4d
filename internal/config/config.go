// Package config loads per-game YAML configuration and computes difficulty
// levels for the arcade simulations.
package config

// PongConfig tunes the Pong simulation.
type PongConfig struct {
	Physics    PongPhysics      `yaml:"physics"`
	Paddles    PongPaddles      `yaml:"paddles"`
	Gameplay   PongGameplay     `yaml:"gameplay"`
	CPU        PongCPU          `yaml:"cpu"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PongPhysics holds ball speeds and spin, in cells per tick.
type PongPhysics struct {
	BallSpeed    float64 `yaml:"ball_speed"`     // launch speed, cells per tick
	SpeedScale   float64 `yaml:"speed_scale"`    // global multiplier applied when integrating
	SpeedGrowth  float64 `yaml:"speed_growth"`   // factor applied on every paddle return
	MaxBallSpeed float64 `yaml:"max_ball_speed"` // cap for speed growth
	ServeAngle   float64 `yaml:"serve_angle"`    // max launch deviation from horizontal, degrees
}

// PongPaddles sizes and places both paddles.
type PongPaddles struct {
	Height float64 `yaml:"height"`
	Width  float64 `yaml:"width"`
	Offset float64 `yaml:"offset"` // distance from the side walls
	Speed  float64 `yaml:"speed"`  // player paddle, cells per tick
}

// PongGameplay holds match rules.
type PongGameplay struct {
	WinScore       int     `yaml:"win_score"`
	ServeDelay     int     `yaml:"serve_delay"` // ticks between a point and the next serve
	MessageSeconds float64 `yaml:"message_seconds"`
}

// PongCPU bounds the AI tracking speed. The difficulty level picks a value
// between MinSkill (level 0) and MaxSkill (level 1).
type PongCPU struct {
	MinSkill float64 `yaml:"min_skill"`
	MaxSkill float64 `yaml:"max_skill"`
}

// SnakeConfig tunes both snake variants.
type SnakeConfig struct {
	Board  SnakeBoard `yaml:"board"`
	Speed  SnakeSpeed `yaml:"speed"`
	Rival  SnakeRival `yaml:"rival"`
	Length int        `yaml:"initial_length"`
}

// SnakeBoard is the board size in cells.
type SnakeBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeSpeed controls how fast the player snake moves.
type SnakeSpeed struct {
	MoveTicks    int `yaml:"move_ticks"`     // ticks between player moves at the start
	MinMoveTicks int `yaml:"min_move_ticks"` // floor for the speed-up on eating
}

// SnakeRival configures the computer-controlled snake.
type SnakeRival struct {
	MoveTicks          int `yaml:"move_ticks"`
	RespawnDelay       int `yaml:"respawn_delay"` // ticks
	RespawnMinDistance int `yaml:"respawn_min_distance"`
	RespawnAttempts    int `yaml:"respawn_attempts"`
}

// BreakoutConfig tunes Brick Breaker.
type BreakoutConfig struct {
	Physics    BreakoutPhysics  `yaml:"physics"`
	Paddle     BreakoutPaddle   `yaml:"paddle"`
	Gameplay   BreakoutGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BreakoutPhysics holds ball speeds and growth.
type BreakoutPhysics struct {
	BallSpeed    float64 `yaml:"ball_speed"`
	SpeedGrowth  float64 `yaml:"speed_growth"`
	MaxBallSpeed float64 `yaml:"max_ball_speed"`
	LaunchAngle  float64 `yaml:"launch_angle"` // max launch deviation from vertical, degrees
}

// BreakoutPaddle sizes and places the paddle.
type BreakoutPaddle struct {
	Width  float64 `yaml:"width"`
	Speed  float64 `yaml:"speed"`
	Offset float64 `yaml:"offset"` // rows above the bottom edge
}

// BreakoutGameplay holds lives and level selection.
type BreakoutGameplay struct {
	Lives      int `yaml:"lives"`
	Levels     int `yaml:"levels"` // how many built-in layouts to play, 0 for all
	StartLevel int `yaml:"start_level"`
}

// ParticlesConfig tunes the particle toy.
type ParticlesConfig struct {
	Gravity           float64 `yaml:"gravity"`
	Elasticity        float64 `yaml:"elasticity"`
	Friction          float64 `yaml:"friction"`
	TrailLength       int     `yaml:"trail_length"`
	InteractionRadius float64 `yaml:"interaction_radius"`
	Repulsion         float64 `yaml:"repulsion"`
	MaxParticles      int     `yaml:"max_particles"`
	Initial           int     `yaml:"initial"`
	BurstSize         int     `yaml:"burst_size"`
	BurstSpeed        float64 `yaml:"burst_speed"`
	SwipeScale        float64 `yaml:"swipe_scale"` // velocity per cell of swipe length
}

// BounceConfig tunes the bouncing-ball toy.
type BounceConfig struct {
	Speed       float64 `yaml:"speed"`
	MaxSpeed    float64 `yaml:"max_speed"`
	Nudge       float64 `yaml:"nudge"`
	Gravity     float64 `yaml:"gravity"`
	Elasticity  float64 `yaml:"elasticity"`
	TrailLength int     `yaml:"trail_length"`
}

// DifficultyConfig describes how the difficulty level evolves during play.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig picks what drives the difficulty level up.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time" or "none"
	MaxAt int    `yaml:"max_at"` // score or ticks at which the level reaches 1.0
}

// ScalingConfig maps the difficulty level to game parameters.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // extra speed fraction at level 1.0
}

// DifficultyPreset is a named difficulty chosen on the command line.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the valid preset names in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// InitialLevelForPreset returns the starting level of a preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	}
	return 0.0
}
