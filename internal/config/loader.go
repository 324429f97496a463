package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/parkour/internal/core"
)

// FileName is the configuration file name looked up in the search path.
const FileName = "parkour.yaml"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Load loads the game configuration and validates it.
// Search order: customPath -> ~/.parkour/parkour.yaml -> ./configs/parkour.yaml -> embedded default
func Load(customPath string) (GameConfig, error) {
	// A custom path must exist and parse
	if customPath != "" {
		return LoadFile(customPath)
	}

	// User and local files are skipped when unreadable or malformed
	for _, path := range searchPaths() {
		cfg, err := LoadFile(path)
		if err == nil {
			return cfg, nil
		}
	}

	return Embedded(), nil
}

// LoadFile reads, parses and validates a single configuration file.
func LoadFile(path string) (GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GameConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return GameConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
// Keys missing from data keep their default values; a levels list replaces the
// whole catalog.
func Parse(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	cfg.Levels = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Levels == nil {
		cfg.Levels = DefaultLevels()
	}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// Embedded returns the embedded default configuration.
func Embedded() GameConfig {
	cfg, err := Parse(defaultParkourYAML)
	if err != nil {
		return DefaultGameConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// Locate returns the file Load would read, or "" when the embedded default
// is used.
func Locate(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func searchPaths() []string {
	var paths []string
	if p := userConfigPath(FileName); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", FileName))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".parkour", filename)
}

// Validate checks the configuration for values the simulation cannot run with.
func (c GameConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("%w: world size %gx%g", ErrInvalidConfig, c.World.Width, c.World.Height)
	}
	if c.Physics.JumpVelocity >= 0 || c.Physics.DoubleJumpVelocity >= 0 {
		return fmt.Errorf("%w: jump velocities must be negative", ErrInvalidConfig)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("%w: player size %gx%g", ErrInvalidConfig, c.Player.Width, c.Player.Height)
	}
	g := c.Generator
	if g.MinY > g.MaxY {
		return fmt.Errorf("%w: generator min_y %g > max_y %g", ErrInvalidConfig, g.MinY, g.MaxY)
	}
	if g.CollectChance < 0 || g.CollectChance > 1 {
		return fmt.Errorf("%w: collect_chance %g outside [0, 1]", ErrInvalidConfig, g.CollectChance)
	}
	if g.PoolSize < 1 || g.Ahead < 0 {
		return fmt.Errorf("%w: pool_size must be positive", ErrInvalidConfig)
	}
	if c.Timing.IntroDelay < 0 {
		return fmt.Errorf("%w: negative intro_delay", ErrInvalidConfig)
	}
	if len(c.Levels) == 0 {
		return fmt.Errorf("%w: level catalog is empty", ErrInvalidConfig)
	}
	for i, lvl := range c.Levels {
		if err := lvl.Validate(); err != nil {
			return fmt.Errorf("level %d (%s): %w", i+1, lvl.Name, err)
		}
	}
	return nil
}

// Validate checks a single catalog entry.
func (l LevelConfig) Validate() error {
	if l.Target <= 0 {
		return fmt.Errorf("%w: target must be positive, got %d", ErrInvalidConfig, l.Target)
	}
	if l.Speed <= 0 {
		return fmt.Errorf("%w: speed must be positive, got %g", ErrInvalidConfig, l.Speed)
	}
	if l.GapMin < 0 || l.GapMin > l.GapMax {
		return fmt.Errorf("%w: gap range [%g, %g]", ErrInvalidConfig, l.GapMin, l.GapMax)
	}
	if l.PlatMin <= 0 || l.PlatMin > l.PlatMax {
		return fmt.Errorf("%w: platform width range [%g, %g]", ErrInvalidConfig, l.PlatMin, l.PlatMax)
	}
	for _, hex := range []string{l.Theme.BgTop, l.Theme.BgBottom, l.Theme.Platform, l.Theme.PlatformLight} {
		if _, err := core.ParseColor(hex); err != nil {
			return fmt.Errorf("%w: theme: %v", ErrInvalidConfig, err)
		}
	}
	if !l.DressUp {
		return nil
	}
	if len(l.Items) == 0 {
		return fmt.Errorf("%w: dress-up level has no items", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(l.Items))
	for _, item := range l.Items {
		if item.Slot == "" {
			return fmt.Errorf("%w: dress-up item without slot", ErrInvalidConfig)
		}
		if seen[item.Slot] {
			return fmt.Errorf("%w: duplicate slot %q", ErrInvalidConfig, item.Slot)
		}
		seen[item.Slot] = true
	}
	if l.Target > len(seen) {
		return fmt.Errorf("%w: target %d exceeds %d unique slots", ErrInvalidConfig, l.Target, len(seen))
	}
	return nil
}

// ApplyPreset scales every level of the catalog for a difficulty preset.
// Normal leaves the catalog untouched.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	levels := make([]LevelConfig, len(cfg.Levels))
	copy(levels, cfg.Levels)

	for i := range levels {
		l := &levels[i]
		switch preset {
		case DifficultyEasy:
			l.Speed *= 0.85
			l.GapMax = max(l.GapMax*0.9, l.GapMin)
		case DifficultyHard:
			l.Speed *= 1.15
			l.GapMin = min(l.GapMin*1.1, l.GapMax)
		}
	}
	cfg.Levels = levels
}
