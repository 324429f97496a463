package parkour

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/parkour/internal/config"
	"github.com/vovakirdan/parkour/internal/core"
)

// Generator places platforms ahead of the camera. Each new platform follows
// the previous one after a random gap, at a random height step clamped to the
// playable band. Generation never fails.
type Generator struct {
	rng     *rand.Rand
	cfg     config.GeneratorConfig
	level   *Level
	itemIdx int // Next dress-up item, cycling round-robin
}

// NewGenerator creates a generator for one level.
func NewGenerator(rng *rand.Rand, cfg config.GeneratorConfig, level *Level) *Generator {
	return &Generator{
		rng:   rng,
		cfg:   cfg,
		level: level,
	}
}

// Initial returns the wide starting platform under the spawn point. It never
// carries a collectible.
func (g *Generator) Initial() *Platform {
	ip := g.cfg.InitialPlatform
	return g.platform(ip.X, ip.Y, ip.Width)
}

// Next returns the platform following prev and, with the configured
// probability, a collectible floating above its centre.
func (g *Generator) Next(prev *Platform) (*Platform, *Collectible) {
	lvl := g.level
	gap := uniform(g.rng, lvl.GapMin, lvl.GapMax)
	width := uniform(g.rng, lvl.PlatMin, lvl.PlatMax)
	y := core.ClampF(prev.Y+uniform(g.rng, -g.cfg.MaxStep, g.cfg.MaxStep), g.cfg.MinY, g.cfg.MaxY)

	p := g.platform(prev.Right()+gap, y, width)
	if g.rng.Float64() >= g.cfg.CollectChance {
		return p, nil
	}
	return p, g.collectible(p)
}

func (g *Generator) platform(x, y, w float64) *Platform {
	return &Platform{
		X:     x,
		Y:     y,
		W:     w,
		H:     g.cfg.PlatformHeight,
		Color: g.level.Theme.Platform,
		Light: g.level.Theme.PlatformLight,
	}
}

func (g *Generator) collectible(p *Platform) *Collectible {
	y := p.Y - g.cfg.CollectLift - uniform(g.rng, 0, g.cfg.CollectJitter)
	c := &Collectible{
		X:     p.X + p.W/2,
		Y:     y,
		BaseY: y,
		Phase: uniform(g.rng, 0, 2*math.Pi),
		Emoji: g.level.Emoji,
		Glyph: g.level.Glyph,
	}
	if g.level.DressUp && len(g.level.Items) > 0 {
		item := g.level.Items[g.itemIdx%len(g.level.Items)]
		g.itemIdx++
		c.Emoji = item.Emoji
		c.Glyph = item.Glyph
		c.Slot = item.Slot
	}
	return c
}
