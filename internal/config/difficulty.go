package config

import "math"

// DifficultyManager turns score and elapsed ticks into a difficulty level in
// [0, 1] and derives tuned values from it.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a manager with the initial level clamped to [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = clampF(cfg.InitialLevel, 0, 1)
	return &DifficultyManager{cfg: cfg}
}

// Progressive reports whether the level moves during play.
func (d *DifficultyManager) Progressive() bool {
	switch d.cfg.Progression.Type {
	case "score", "time":
		return d.cfg.Enabled
	}
	return false
}

// Level interpolates from the initial level to 1.0 as score or ticks
// approach the configured max_at.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.Progressive() {
		return d.cfg.InitialLevel
	}

	maxAt := float64(max(1, d.cfg.Progression.MaxAt))
	progress := float64(ticks) / maxAt
	if d.cfg.Progression.Type == "score" {
		progress = float64(score) / maxAt
	}
	progress = clampF(progress, 0, 1)
	return d.cfg.InitialLevel + progress*(1-d.cfg.InitialLevel)
}

// Lerp maps the current level onto [lo, hi].
func (d *DifficultyManager) Lerp(lo, hi float64, score, ticks int) float64 {
	return lo + (hi-lo)*d.Level(score, ticks)
}

// Speed scales base by up to 1+speed_multiplier at level 1.0.
func (d *DifficultyManager) Speed(base float64, score, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

func clampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
