package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/parkour.yaml
var defaultParkourYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultParkourYAML))
	copy(out, defaultParkourYAML)
	return out
}

// DefaultGameConfig returns the hardcoded default configuration. It mirrors
// defaults/parkour.yaml and is used when the embedded file cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		World: WorldConfig{
			Width:       800,
			Height:      500,
			DeathMargin: 60,
			CleanupX:    -50,
		},
		Physics: PhysicsConfig{
			Gravity:            0.55,
			JumpVelocity:       -11.5,
			DoubleJumpVelocity: -10,
			LandingTolerance:   8,
			LandingSink:        6,
		},
		Player: PlayerConfig{
			X:             120,
			StartY:        300,
			Width:         30,
			Height:        42,
			Hitbox:        InsetConfig{Left: 4, Top: -6, Right: 4, Bottom: 2},
			PickupRadius:  30,
			PickupOffset:  15,
			AnimationRate: 0.15,
		},
		Generator: GeneratorConfig{
			MinY:            180,
			MaxY:            420,
			MaxStep:         60,
			PlatformHeight:  14,
			CollectChance:   0.7,
			CollectLift:     40,
			CollectJitter:   20,
			InitialPlatform: PlatformConfig{X: 40, Y: 370, Width: 220},
			Ahead:           12,
			PoolSize:        14,
		},
		Effects: EffectsConfig{
			PickupParticles:    12,
			NewItemParticles:   20,
			DuplicateParticles: 8,
			TrailChance:        0.4,
			Decorations:        10,
			FlashFrames:        30,
			BobAmplitude:       6,
			BobFrequency:       3,
		},
		Timing: TimingConfig{
			IntroDelay: 2 * time.Second,
		},
		Levels: DefaultLevels(),
	}
}

// DefaultLevels returns the built-in six-level catalog.
func DefaultLevels() []LevelConfig {
	return []LevelConfig{
		{
			Name: "Hearts World", Emoji: "♥️", Glyph: "♥",
			Target: 12, Speed: 3.0,
			Theme:  ThemeConfig{BgTop: "#ffe0ec", BgBottom: "#ffb6c1", Platform: "#ff69b4", PlatformLight: "#ffb6c1"},
			GapMin: 80, GapMax: 150, PlatMin: 90, PlatMax: 180,
			Decorations: []string{"♥️", "💕", "💗", "💖"},
		},
		{
			Name: "Bows World", Emoji: "🎀", Glyph: "ɷ",
			Target: 14, Speed: 3.3,
			Theme:  ThemeConfig{BgTop: "#f3e5f5", BgBottom: "#ce93d8", Platform: "#ab47bc", PlatformLight: "#ce93d8"},
			GapMin: 90, GapMax: 160, PlatMin: 85, PlatMax: 170,
			Decorations: []string{"🎀", "🎀", "✨", "💜"},
		},
		{
			Name: "Cupcakes and Sparkles", Emoji: "🧁", Glyph: "♣",
			Target: 16, Speed: 3.6,
			Theme:  ThemeConfig{BgTop: "#fce4ec", BgBottom: "#f48fb1", Platform: "#ec407a", PlatformLight: "#f48fb1"},
			GapMin: 95, GapMax: 170, PlatMin: 80, PlatMax: 160,
			Decorations: []string{"🧁", "✨", "🍰", "❤️"},
		},
		{
			Name: "Colorful Candy", Emoji: "🍭", Glyph: "¶",
			Target: 18, Speed: 3.9,
			Theme:  ThemeConfig{BgTop: "#e8f5e9", BgBottom: "#a5d6a7", Platform: "#66bb6a", PlatformLight: "#a5d6a7"},
			GapMin: 100, GapMax: 175, PlatMin: 75, PlatMax: 155,
			Decorations: []string{"🍭", "🍬", "🌈", "⭐"},
		},
		{
			Name: "Dress Her Up", Emoji: "👗", Glyph: "✦",
			Target: 8, Speed: 3.8,
			Theme:  ThemeConfig{BgTop: "#fff8e1", BgBottom: "#ffe082", Platform: "#ffb300", PlatformLight: "#ffe082"},
			GapMin: 90, GapMax: 165, PlatMin: 80, PlatMax: 160,
			Decorations: []string{"✨", "💫", "⭐", "🌟"},
			DressUp:     true,
			Items: []DressUpItem{
				{Slot: "dress", Name: "Dress", Emoji: "👗", Glyph: "D"},
				{Slot: "shoes", Name: "Shoes", Emoji: "👠", Glyph: "S"},
				{Slot: "bag", Name: "Bag", Emoji: "👜", Glyph: "B"},
				{Slot: "ring", Name: "Ring", Emoji: "💍", Glyph: "R"},
				{Slot: "crown", Name: "Crown", Emoji: "👑", Glyph: "C"},
				{Slot: "makeup", Name: "Makeup", Emoji: "💄", Glyph: "M"},
				{Slot: "glasses", Name: "Glasses", Emoji: "🕶️", Glyph: "G"},
				{Slot: "necklace", Name: "Necklace", Emoji: "📿", Glyph: "N"},
			},
		},
		{
			Name: "Fashion World", Emoji: "👗", Glyph: "♦",
			Target: 22, Speed: 4.4,
			Theme:  ThemeConfig{BgTop: "#f3e5f5", BgBottom: "#ba68c8", Platform: "#8e24aa", PlatformLight: "#ba68c8"},
			GapMin: 110, GapMax: 190, PlatMin: 65, PlatMax: 145,
			Decorations: []string{"👗", "👠", "💎", "💄"},
		},
	}
}
