// Package config provides YAML-based game configuration loading, the level
// catalog, and difficulty presets for the parkour runner.
package config

import (
	"strconv"
	"time"
)

// GameConfig contains all tunable parameters of the runner, including the
// ordered level catalog.
type GameConfig struct {
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Generator GeneratorConfig `yaml:"generator"`
	Effects   EffectsConfig   `yaml:"effects"`
	Timing    TimingConfig    `yaml:"timing"`
	Levels    []LevelConfig   `yaml:"levels"`
}

// WorldConfig defines the fixed world dimensions in pixels.
type WorldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	DeathMargin float64 `yaml:"death_margin"` // Player dies below Height + DeathMargin
	CleanupX    float64 `yaml:"cleanup_x"`    // Entities left of this x are discarded
}

// DeathY returns the vertical position past which the player is lost.
func (w WorldConfig) DeathY() float64 {
	return w.Height + w.DeathMargin
}

// PhysicsConfig defines the per-frame physics constants.
type PhysicsConfig struct {
	Gravity            float64 `yaml:"gravity"`
	JumpVelocity       float64 `yaml:"jump_velocity"`        // Negative = upward
	DoubleJumpVelocity float64 `yaml:"double_jump_velocity"` // Negative = upward, smaller magnitude
	LandingTolerance   float64 `yaml:"landing_tolerance"`    // Extra depth of the platform top band
	LandingSink        float64 `yaml:"landing_sink"`         // How far the sprite's feet sink into a platform
}

// PlayerConfig defines the player's size, start position and pickup reach.
type PlayerConfig struct {
	X             float64     `yaml:"x"`
	StartY        float64     `yaml:"start_y"`
	Width         float64     `yaml:"width"`
	Height        float64     `yaml:"height"`
	Hitbox        InsetConfig `yaml:"hitbox"`
	PickupRadius  float64     `yaml:"pickup_radius"`
	PickupOffset  float64     `yaml:"pickup_offset"` // Pickup origin relative to the player's top-left
	AnimationRate float64     `yaml:"animation_rate"`
}

// InsetConfig describes how the hitbox differs from the visual bounds.
// Positive values shrink the box on that side, negative values grow it.
type InsetConfig struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// GeneratorConfig defines the procedural platform generator.
type GeneratorConfig struct {
	MinY            float64        `yaml:"min_y"`
	MaxY            float64        `yaml:"max_y"`
	MaxStep         float64        `yaml:"max_step"` // Max height change between consecutive platforms
	PlatformHeight  float64        `yaml:"platform_height"`
	CollectChance   float64        `yaml:"collect_chance"`
	CollectLift     float64        `yaml:"collect_lift"`   // Collectible height above the platform
	CollectJitter   float64        `yaml:"collect_jitter"` // Extra random upward offset
	InitialPlatform PlatformConfig `yaml:"initial_platform"`
	Ahead           int            `yaml:"ahead"`     // Platforms generated at level start
	PoolSize        int            `yaml:"pool_size"` // Platforms kept alive while playing
}

// PlatformConfig is a fixed platform placement.
type PlatformConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Width float64 `yaml:"width"`
}

// EffectsConfig defines decorative feedback parameters.
type EffectsConfig struct {
	PickupParticles    int     `yaml:"pickup_particles"`
	NewItemParticles   int     `yaml:"new_item_particles"`
	DuplicateParticles int     `yaml:"duplicate_particles"`
	TrailChance        float64 `yaml:"trail_chance"`
	Decorations        int     `yaml:"decorations"`
	FlashFrames        int     `yaml:"flash_frames"`
	BobAmplitude       float64 `yaml:"bob_amplitude"`
	BobFrequency       float64 `yaml:"bob_frequency"`
}

// TimingConfig defines timed transitions.
type TimingConfig struct {
	IntroDelay time.Duration `yaml:"intro_delay"`
}

// LevelConfig is one entry of the level catalog. It is never mutated once a
// level is running.
type LevelConfig struct {
	Name        string        `yaml:"name"`
	Emoji       string        `yaml:"emoji"`
	Glyph       string        `yaml:"glyph"` // Single-column stand-in for the collectible emoji
	Target      int           `yaml:"target"`
	Speed       float64       `yaml:"speed"`
	Theme       ThemeConfig   `yaml:"theme"`
	GapMin      float64       `yaml:"gap_min"`
	GapMax      float64       `yaml:"gap_max"`
	PlatMin     float64       `yaml:"plat_min"`
	PlatMax     float64       `yaml:"plat_max"`
	Decorations []string      `yaml:"decorations"`
	DressUp     bool          `yaml:"dress_up"`
	Items       []DressUpItem `yaml:"items,omitempty"`
}

// Goal returns the human-readable level goal shown on the intro screen.
func (l LevelConfig) Goal() string {
	if l.DressUp {
		return "Collect " + strconv.Itoa(l.Target) + " outfit pieces and dress her up!"
	}
	return "Collect " + strconv.Itoa(l.Target) + " " + l.Emoji
}

// ThemeConfig holds the level colours as "#rrggbb" strings.
type ThemeConfig struct {
	BgTop         string `yaml:"bg_top"`
	BgBottom      string `yaml:"bg_bottom"`
	Platform      string `yaml:"platform"`
	PlatformLight string `yaml:"platform_light"`
}

// DressUpItem is one cosmetic slot of a dress-up level.
type DressUpItem struct {
	Slot  string `yaml:"slot"`
	Name  string `yaml:"name"`
	Emoji string `yaml:"emoji"`
	Glyph string `yaml:"glyph"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a CLI string to a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyHard:
		return DifficultyHard, true
	default:
		return "", false
	}
}
