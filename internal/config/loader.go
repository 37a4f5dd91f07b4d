package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// load resolves a game config by searching, in order: customPath,
// ~/.arcade/configs/<name>, ./configs/<name>, the embedded default and
// finally the hardcoded fallback. Values are decoded over the fallback, so a
// file only needs the keys it changes.
//
// A customPath directory holds one <name> file per game; games without one
// continue down the search path. A customPath file is decoded strictly so
// that a file written for another game is rejected instead of silently
// yielding defaults. Only an explicit customPath can fail; unreadable files
// on the search path are skipped.
func load[T any](name, customPath string, embedded []byte, fallback func() T) (T, error) {
	paths := searchPaths(name)
	if customPath != "" {
		info, err := os.Stat(customPath)
		switch {
		case err != nil:
			return fallback(), fmt.Errorf("config: read %s: %w", customPath, err)
		case info.IsDir():
			paths = append([]string{filepath.Join(customPath, name)}, paths...)
		default:
			return loadStrict(customPath, fallback)
		}
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := fallback()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil
	}
	return cfg, nil
}

// loadStrict decodes path over the fallback, rejecting unknown keys. An
// empty file keeps the fallback.
func loadStrict[T any](path string, fallback func() T) (T, error) {
	cfg := fallback()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return fallback(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// searchPaths lists the user and working-directory locations for name.
func searchPaths(name string) []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".arcade", "configs", name))
	}
	return append(paths, filepath.Join("configs", name))
}

// LoadPong loads the Pong configuration.
func LoadPong(customPath string) (PongConfig, error) {
	return load("pong.yaml", customPath, defaultPongYAML, DefaultPongConfig)
}

// LoadSnake loads the Snake configuration, shared by both snake modes.
func LoadSnake(customPath string) (SnakeConfig, error) {
	return load("snake.yaml", customPath, defaultSnakeYAML, DefaultSnakeConfig)
}

// LoadBreakout loads the Breakout configuration.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	return load("breakout.yaml", customPath, defaultBreakoutYAML, DefaultBreakoutConfig)
}

// LoadParticles loads the Particles configuration.
func LoadParticles(customPath string) (ParticlesConfig, error) {
	return load("particles.yaml", customPath, defaultParticlesYAML, DefaultParticlesConfig)
}

// LoadBounce loads the Bounce configuration.
func LoadBounce(customPath string) (BounceConfig, error) {
	return load("bounce.yaml", customPath, defaultBounceYAML, DefaultBounceConfig)
}

// ParsePreset validates a preset name. The empty string means "keep the
// file's values" and is returned unchanged.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return "", nil
	}
	p := DifficultyPreset(strings.ToLower(name))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

func applyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		d.Enabled = false
	default:
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}

// ApplyPongPreset sets the AI starting level. Fixed freezes the AI at the
// file's initial level.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)
}

// ApplyBreakoutPreset also trades lives and paddle width for ball speed.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 10
		cfg.Physics.BallSpeed = 0.4
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 6
		cfg.Physics.BallSpeed = 0.7
	}
}

// ApplySnakePreset changes the starting pace of both snakes.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.MoveTicks += 2
		cfg.Rival.MoveTicks += 4
	case DifficultyHard:
		cfg.Speed.MoveTicks = max(cfg.Speed.MinMoveTicks, cfg.Speed.MoveTicks-2)
		cfg.Rival.MoveTicks = max(1, cfg.Rival.MoveTicks-4)
	}
}
