package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	embedded, err := Parse(defaultParkourYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) error = %v", err)
	}
	if !reflect.DeepEqual(embedded, DefaultGameConfig()) {
		t.Errorf("embedded YAML and DefaultGameConfig() disagree:\n%+v\n%+v", embedded, DefaultGameConfig())
	}
}

func TestDefaultCatalog(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	targets := []int{12, 14, 16, 18, 8, 22}
	if len(cfg.Levels) != len(targets) {
		t.Fatalf("len(Levels) = %d, expected %d", len(cfg.Levels), len(targets))
	}
	for i, want := range targets {
		if cfg.Levels[i].Target != want {
			t.Errorf("level %d target = %d, expected %d", i+1, cfg.Levels[i].Target, want)
		}
	}
	if !cfg.Levels[4].DressUp || len(cfg.Levels[4].Items) != 8 {
		t.Errorf("level 5 should be a dress-up level with 8 items")
	}
	if cfg.Timing.IntroDelay != 2*time.Second {
		t.Errorf("IntroDelay = %v, expected 2s", cfg.Timing.IntroDelay)
	}
	if got := cfg.World.DeathY(); got != 560 {
		t.Errorf("DeathY() = %v, expected 560", got)
	}
}

func TestDefaultYAMLIsCopy(t *testing.T) {
	a := DefaultYAML()
	a[0] = 'X'
	if DefaultYAML()[0] == 'X' {
		t.Error("DefaultYAML() should return a copy")
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  gravity: 0.7\ntiming:\n  intro_delay: 500ms\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Physics.Gravity != 0.7 {
		t.Errorf("Gravity = %v, expected 0.7", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpVelocity != -11.5 {
		t.Errorf("JumpVelocity = %v, expected default -11.5", cfg.Physics.JumpVelocity)
	}
	if cfg.Timing.IntroDelay != 500*time.Millisecond {
		t.Errorf("IntroDelay = %v, expected 500ms", cfg.Timing.IntroDelay)
	}
	if len(cfg.Levels) != 6 {
		t.Errorf("missing levels should keep the default catalog, got %d", len(cfg.Levels))
	}
}

func TestParseReplacesCatalog(t *testing.T) {
	data := []byte(`
levels:
  - name: Only
    emoji: "x"
    target: 3
    speed: 2
    theme: { bg_top: "#000000", bg_bottom: "#111111", platform: "#222222", platform_light: "#333333" }
    gap_min: 50
    gap_max: 60
    plat_min: 100
    plat_max: 120
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(cfg.Levels) != 1 || cfg.Levels[0].Name != "Only" {
		t.Errorf("Levels = %+v, expected the single custom level", cfg.Levels)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"empty catalog", func(c *GameConfig) { c.Levels = nil }},
		{"gap range inverted", func(c *GameConfig) { c.Levels[0].GapMin = 200 }},
		{"width range inverted", func(c *GameConfig) { c.Levels[1].PlatMax = 10 }},
		{"zero target", func(c *GameConfig) { c.Levels[2].Target = 0 }},
		{"negative speed", func(c *GameConfig) { c.Levels[3].Speed = -1 }},
		{"dress-up without items", func(c *GameConfig) { c.Levels[4].Items = nil }},
		{"dress-up target above slots", func(c *GameConfig) { c.Levels[4].Target = 9 }},
		{"duplicate slot", func(c *GameConfig) { c.Levels[4].Items[1].Slot = "dress" }},
		{"height band inverted", func(c *GameConfig) { c.Generator.MinY = 500 }},
		{"bad colour", func(c *GameConfig) { c.Levels[0].Theme.Platform = "pink" }},
		{"non-negative jump velocity", func(c *GameConfig) { c.Physics.JumpVelocity = 5 }},
		{"zero pool", func(c *GameConfig) { c.Generator.PoolSize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestDefaultGameConfigIsFresh(t *testing.T) {
	a := DefaultGameConfig()
	a.Levels[4].Items[0].Slot = "changed"
	b := DefaultGameConfig()
	if b.Levels[4].Items[0].Slot != "dress" {
		t.Error("DefaultGameConfig() should build a fresh catalog each call")
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultGameConfig()

	tests := []struct {
		preset    DifficultyPreset
		speedMul  float64
		checkGaps func(orig, got LevelConfig) bool
	}{
		{DifficultyNormal, 1.0, func(o, g LevelConfig) bool { return o.GapMin == g.GapMin && o.GapMax == g.GapMax }},
		{DifficultyEasy, 0.85, func(o, g LevelConfig) bool { return g.GapMax < o.GapMax && g.GapMax >= g.GapMin }},
		{DifficultyHard, 1.15, func(o, g LevelConfig) bool { return g.GapMin > o.GapMin && g.GapMin <= g.GapMax }},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultGameConfig()
			ApplyPreset(&cfg, tt.preset)
			for i := range cfg.Levels {
				want := base.Levels[i].Speed * tt.speedMul
				if diff := cfg.Levels[i].Speed - want; diff > 1e-9 || diff < -1e-9 {
					t.Errorf("level %d speed = %v, expected %v", i+1, cfg.Levels[i].Speed, want)
				}
				if !tt.checkGaps(base.Levels[i], cfg.Levels[i]) {
					t.Errorf("level %d gaps = [%v, %v], unexpected for %s", i+1, cfg.Levels[i].GapMin, cfg.Levels[i].GapMax, tt.preset)
				}
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %s produced invalid config: %v", tt.preset, err)
			}
		})
	}
}

func TestApplyPresetCopiesCatalog(t *testing.T) {
	cfg := DefaultGameConfig()
	levels := cfg.Levels
	ApplyPreset(&cfg, DifficultyHard)
	if levels[0].Speed != 3.0 {
		t.Error("ApplyPreset should not modify the previous catalog slice")
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
		ok   bool
	}{
		{"", DifficultyNormal, true},
		{"normal", DifficultyNormal, true},
		{"easy", DifficultyEasy, true},
		{"hard", DifficultyHard, true},
		{"nightmare", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseDifficulty(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseDifficulty(%q) = %q, %v, expected %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("player:\n  x: 150\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Player.X != 150 {
		t.Errorf("Player.X = %v, expected 150", cfg.Player.X)
	}
	if Locate(path) != path {
		t.Errorf("Locate(%q) = %q", path, Locate(path))
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("levels: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() of an empty catalog = %v, expected ErrInvalidConfig", err)
	}
}

func TestLevelGoal(t *testing.T) {
	levels := DefaultLevels()
	if got := levels[0].Goal(); got != "Collect 12 ♥️" {
		t.Errorf("Goal() = %q", got)
	}
	if got := levels[4].Goal(); got != "Collect 8 outfit pieces and dress her up!" {
		t.Errorf("Goal() = %q", got)
	}
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := NewWatcher(ctx, path)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}

	if err := os.WriteFile(path, []byte("physics:\n  gravity: 0.9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Updates:
		if cfg.Physics.Gravity != 0.9 {
			t.Errorf("reloaded Gravity = %v, expected 0.9", cfg.Physics.Gravity)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error = %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	cancel()
	for range w.Updates {
	}
}
