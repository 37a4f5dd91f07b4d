package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/particles.yaml
var defaultParticlesYAML []byte

//go:embed defaults/bounce.yaml
var defaultBounceYAML []byte

// DefaultPongConfig mirrors defaults/pong.yaml.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Physics: PongPhysics{
			BallSpeed:    0.6,
			SpeedScale:   1.0,
			SpeedGrowth:  1.05,
			MaxBallSpeed: 1.5,
			ServeAngle:   30,
		},
		Paddles: PongPaddles{
			Height: 5,
			Width:  1,
			Offset: 2,
			Speed:  1.0,
		},
		Gameplay: PongGameplay{
			WinScore:       7,
			ServeDelay:     60,
			MessageSeconds: 3,
		},
		CPU: PongCPU{
			MinSkill: 0.6,
			MaxSkill: 0.9,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.3,
			Progression:  ProgressionConfig{Type: "none"},
		},
	}
}

// DefaultSnakeConfig mirrors defaults/snake.yaml.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{Width: 20, Height: 20},
		Speed: SnakeSpeed{MoveTicks: 8, MinMoveTicks: 3},
		Rival: SnakeRival{
			MoveTicks:          10,
			RespawnDelay:       180,
			RespawnMinDistance: 5,
			RespawnAttempts:    100,
		},
		Length: 3,
	}
}

// DefaultBreakoutConfig mirrors defaults/breakout.yaml.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Physics: BreakoutPhysics{
			BallSpeed:    0.5,
			SpeedGrowth:  1.02,
			MaxBallSpeed: 1.0,
			LaunchAngle:  15,
		},
		Paddle: BreakoutPaddle{
			Width:  8,
			Speed:  1.5,
			Offset: 2,
		},
		Gameplay: BreakoutGameplay{
			Lives:  3,
			Levels: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.3,
			Progression:  ProgressionConfig{Type: "score", MaxAt: 500},
			Scaling:      ScalingConfig{SpeedMultiplier: 0.5},
		},
	}
}

// DefaultParticlesConfig mirrors defaults/particles.yaml.
func DefaultParticlesConfig() ParticlesConfig {
	return ParticlesConfig{
		Gravity:           0.02,
		Elasticity:        0.8,
		Friction:          0.995,
		TrailLength:       6,
		InteractionRadius: 2.5,
		Repulsion:         0.02,
		MaxParticles:      150,
		Initial:           20,
		BurstSize:         12,
		BurstSpeed:        0.8,
		SwipeScale:        0.1,
	}
}

// DefaultBounceConfig mirrors defaults/bounce.yaml.
func DefaultBounceConfig() BounceConfig {
	return BounceConfig{
		Speed:       0.6,
		MaxSpeed:    1.5,
		Nudge:       0.1,
		Elasticity:  1.0,
		TrailLength: 6,
	}
}
