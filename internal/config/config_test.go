package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	check := func(name string, embedded []byte, zero, want any) {
		t.Helper()
		if err := yaml.Unmarshal(embedded, zero); err != nil {
			t.Fatalf("%s: embedded yaml: %v", name, err)
		}
		got := reflect.ValueOf(zero).Elem().Interface()
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s: embedded defaults drifted from hardcoded\n got: %+v\nwant: %+v", name, got, want)
		}
	}
	check("pong", defaultPongYAML, &PongConfig{}, DefaultPongConfig())
	check("snake", defaultSnakeYAML, &SnakeConfig{}, DefaultSnakeConfig())
	check("breakout", defaultBreakoutYAML, &BreakoutConfig{}, DefaultBreakoutConfig())
	check("particles", defaultParticlesYAML, &ParticlesConfig{}, DefaultParticlesConfig())
	check("bounce", defaultBounceYAML, &BounceConfig{}, DefaultBounceConfig())
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.yaml")
	data := []byte("gameplay:\n  win_score: 3\ncpu:\n  max_skill: 1.2\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPong(path)
	if err != nil {
		t.Fatalf("LoadPong: %v", err)
	}
	if cfg.Gameplay.WinScore != 3 || cfg.CPU.MaxSkill != 1.2 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Paddles.Height != DefaultPongConfig().Paddles.Height {
		t.Errorf("unset keys should keep their default, paddle height = %v", cfg.Paddles.Height)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(bad); err == nil {
		t.Error("malformed custom file should be an error")
	}
}

func TestLoadCustomPathRejectsOtherGame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.yaml")
	data := []byte("paddles:\n  height: 6\ncpu:\n  max_skill: 1.2\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadBreakout(path); err == nil {
		t.Error("a pong file passed to breakout should be an error")
	}
	if _, err := LoadPong(path); err != nil {
		t.Errorf("LoadPong: %v", err)
	}

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadSnake(empty)
	if err != nil {
		t.Fatalf("an empty file means no overrides: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSnakeConfig()) {
		t.Errorf("empty file should keep defaults: %+v", cfg)
	}
}

func TestLoadCustomDirectory(t *testing.T) {
	dir := t.TempDir()
	data := []byte("gameplay:\n  win_score: 4\n")
	if err := os.WriteFile(filepath.Join(dir, "pong.yaml"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	pong, err := LoadPong(dir)
	if err != nil {
		t.Fatalf("LoadPong: %v", err)
	}
	if pong.Gameplay.WinScore != 4 {
		t.Errorf("pong.yaml from the directory not applied, win_score = %d", pong.Gameplay.WinScore)
	}

	// breakout has no file there and falls back down the search path
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	breakout, err := LoadBreakout(dir)
	if err != nil {
		t.Fatalf("LoadBreakout: %v", err)
	}
	if !reflect.DeepEqual(breakout, DefaultBreakoutConfig()) {
		t.Errorf("breakout should use its defaults: %+v", breakout)
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"easy", "Normal", "HARD", "fixed", ""} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q): %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should be rejected")
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&cfg, DifficultyEasy)
	if cfg.Gameplay.Lives != 5 || cfg.Difficulty.InitialLevel != 0 {
		t.Errorf("easy preset not applied: lives=%d level=%v", cfg.Gameplay.Lives, cfg.Difficulty.InitialLevel)
	}

	cfg = DefaultBreakoutConfig()
	ApplyBreakoutPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultBreakoutConfig()
	ApplyBreakoutPreset(&cfg, "")
	if !reflect.DeepEqual(cfg, DefaultBreakoutConfig()) {
		t.Error("empty preset should leave the config untouched")
	}
}

func TestDifficultyLevel(t *testing.T) {
	tests := []struct {
		name  string
		cfg   DifficultyConfig
		score int
		ticks int
		want  float64
	}{
		{"none stays at initial", DifficultyConfig{Enabled: true, InitialLevel: 0.3, Progression: ProgressionConfig{Type: "none"}}, 999, 999, 0.3},
		{"disabled stays at initial", DifficultyConfig{InitialLevel: 0.5, Progression: ProgressionConfig{Type: "score", MaxAt: 10}}, 10, 0, 0.5},
		{"score halfway", DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "score", MaxAt: 10}}, 5, 0, 0.5},
		{"time saturates", DifficultyConfig{Enabled: true, InitialLevel: 0.5, Progression: ProgressionConfig{Type: "time", MaxAt: 100}}, 0, 500, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewDifficultyManager(tt.cfg).Level(tt.score, tt.ticks); got != tt.want {
				t.Errorf("Level = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestDifficultyLerp(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{InitialLevel: 0.5})
	if got := dm.Lerp(0, 2, 0, 0); got != 1 {
		t.Errorf("Lerp = %v, expected 1", got)
	}
	if got := dm.Speed(2, 0, 0); got != 2 {
		t.Errorf("Speed without multiplier = %v, expected 2", got)
	}
}
