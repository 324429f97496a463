package parkour

import (
	"fmt"

	"github.com/vovakirdan/parkour/internal/config"
	"github.com/vovakirdan/parkour/internal/core"
)

// Level is the catalog entry currently being played, with its theme colours
// resolved. It is built once per level start and never mutated.
type Level struct {
	Index int
	config.LevelConfig
	Theme Theme
}

// Theme holds the resolved level colours.
type Theme struct {
	BgTop         core.Color
	BgBottom      core.Color
	Platform      core.Color
	PlatformLight core.Color
}

func newLevel(index int, lc config.LevelConfig) *Level {
	// Colours were checked by config validation; a bad value renders white.
	parse := func(s string) core.Color {
		c, _ := core.ParseColor(s)
		return c
	}
	return &Level{
		Index:       index,
		LevelConfig: lc,
		Theme: Theme{
			BgTop:         parse(lc.Theme.BgTop),
			BgBottom:      parse(lc.Theme.BgBottom),
			Platform:      parse(lc.Theme.Platform),
			PlatformLight: parse(lc.Theme.PlatformLight),
		},
	}
}

// Number returns the 1-based level number shown to the player.
func (l *Level) Number() int {
	return l.Index + 1
}

// ScoreText formats progress towards the target, e.g. "♥️ 3 / 12" or
// "👗 2 / 8 items". symbol overrides the level emoji when non-empty.
func (l *Level) ScoreText(score int, symbol string) string {
	if symbol == "" {
		symbol = l.Emoji
	}
	if l.DressUp {
		return fmt.Sprintf("%s %d / %d items", symbol, score, l.Target)
	}
	return fmt.Sprintf("%s %d / %d", symbol, score, l.Target)
}
