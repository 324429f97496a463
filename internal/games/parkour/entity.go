package parkour

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/parkour/internal/core"
)

// Entity is one of the passive world objects moved by the scroll each frame:
// *Platform, *Collectible, *Particle, *TrailDot or *Decoration.
type Entity interface {
	isEntity()
	// Update advances the entity by one frame.
	Update(f *Frame)
	// Alive reports whether the entity should be kept after this frame.
	Alive(f *Frame) bool
}

// Frame carries the per-frame values every entity update needs.
type Frame struct {
	Speed    float64 // Scroll speed in pixels per frame
	Time     float64 // Seconds since the level started
	CleanupX float64 // Entities left of this x are discarded

	WorldW float64
	WorldH float64

	BobAmplitude float64
	BobFrequency float64

	rng *rand.Rand
}

// advance updates every entity in place and drops the ones that are no longer
// alive. The backing array is reused.
func advance[E Entity](f *Frame, list []E) []E {
	kept := list[:0]
	for _, e := range list {
		e.Update(f)
		if e.Alive(f) {
			kept = append(kept, e)
		}
	}
	clear(list[len(kept):])
	return kept
}

// Platform is a solid, fixed-height surface the player can land on.
type Platform struct {
	X, Y, W, H float64
	Color      core.Color
	Light      core.Color
}

func (*Platform) isEntity() {}

// Update scrolls the platform left.
func (p *Platform) Update(f *Frame) {
	p.X -= f.Speed
}

// Alive reports whether the right edge is still past the cleanup line.
func (p *Platform) Alive(f *Frame) bool {
	return p.Right() > f.CleanupX
}

// Right returns the x coordinate of the right edge.
func (p *Platform) Right() float64 {
	return p.X + p.W
}

// Rect returns the platform bounds.
func (p *Platform) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Collectible is a bobbing pickup. On dress-up levels Slot names the outfit
// piece it carries. A collected pickup stays in the world, invisible, until
// it scrolls past the cleanup line.
type Collectible struct {
	X, Y      float64
	BaseY     float64
	Phase     float64
	Emoji     string
	Glyph     string
	Slot      string
	Collected bool
}

func (*Collectible) isEntity() {}

// Update scrolls the pickup and applies the bobbing offset.
func (c *Collectible) Update(f *Frame) {
	c.X -= f.Speed
	c.Y = c.BaseY + math.Sin(f.Time*f.BobFrequency+c.Phase)*f.BobAmplitude
}

// Alive reports whether the pickup is still past the cleanup line.
func (c *Collectible) Alive(f *Frame) bool {
	return c.X > f.CleanupX
}

// Pos returns the pickup centre.
func (c *Collectible) Pos() core.Vec {
	return core.Vec{X: c.X, Y: c.Y}
}

// Particle is a short-lived sparkle emitted by a pickup.
type Particle struct {
	X, Y   float64
	VX, VY float64
	R      float64
	Life   float64
	Decay  float64
	Color  core.Color
}

func (*Particle) isEntity() {}

// Update drifts the particle with a fraction of the scroll, applies its
// velocity and a light gravity, and fades it.
func (p *Particle) Update(f *Frame) {
	p.X -= f.Speed * 0.3
	p.X += p.VX
	p.Y += p.VY
	p.VY += 0.1
	p.Life -= p.Decay
}

// Alive reports whether the particle has life left.
func (p *Particle) Alive(*Frame) bool {
	return p.Life > 0
}

// TrailDot is a sparkle left behind the player's feet.
type TrailDot struct {
	X, Y  float64
	R     float64
	Life  float64
	Decay float64
	Color core.Color
}

func (*TrailDot) isEntity() {}

// Update scrolls and fades the dot.
func (d *TrailDot) Update(f *Frame) {
	d.X -= f.Speed
	d.Life -= d.Decay
}

// Alive reports whether the dot has life left.
func (d *TrailDot) Alive(*Frame) bool {
	return d.Life > 0
}

// Decoration is a floating background emoji with parallax scrolling.
// Decorations never expire; they wrap around to the right edge.
type Decoration struct {
	X, Y        float64
	Size        float64
	SpeedFactor float64
	Phase       float64
	Alpha       float64
	Emoji       string
}

func (*Decoration) isEntity() {}

const decoWrapMargin = 30

// Update scrolls the decoration at its parallax factor and wraps it to the
// right edge at a new height once it leaves the screen.
func (d *Decoration) Update(f *Frame) {
	d.X -= f.Speed * d.SpeedFactor
	if d.X < -decoWrapMargin {
		d.X = f.WorldW + decoWrapMargin
		d.Y = uniform(f.rng, 20, f.WorldH*0.6)
	}
}

// Alive always reports true.
func (d *Decoration) Alive(*Frame) bool {
	return true
}

// FloatY returns the vertical float offset at time t.
func (d *Decoration) FloatY(t float64) float64 {
	return math.Sin(t*1.5+d.Phase) * 8
}

// uniform returns a random float64 in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// pick returns a random element of choices.
func pick[T any](rng *rand.Rand, choices []T) T {
	return choices[rng.Intn(len(choices))]
}
