package parkour

import (
	"github.com/vovakirdan/parkour/internal/config"
	"github.com/vovakirdan/parkour/internal/core"
)

// PlayerState is the movement state of the player.
type PlayerState int

const (
	StateGrounded PlayerState = iota
	StateAirborneSingle
	StateAirborneDouble
	StateDead
)

// String returns a human-readable name for the state.
func (s PlayerState) String() string {
	switch s {
	case StateGrounded:
		return "grounded"
	case StateAirborneSingle:
		return "airborne-single"
	case StateAirborneDouble:
		return "airborne-double"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// JumpResult reports what a jump request did.
type JumpResult int

const (
	JumpNone JumpResult = iota
	JumpSingle
	JumpDouble
)

// Player is the runner. It stays at a fixed x while the world scrolls past.
type Player struct {
	X, Y  float64
	W, H  float64
	VY    float64
	Frame float64 // Animation phase

	onGround      bool
	canDoubleJump bool
	hasDoubled    bool
	alive         bool

	physics config.PhysicsConfig
	body    config.PlayerConfig
	deathY  float64
}

// NewPlayer creates a player at its spawn position.
func NewPlayer(cfg config.GameConfig) *Player {
	p := &Player{
		physics: cfg.Physics,
		body:    cfg.Player,
		deathY:  cfg.World.DeathY(),
	}
	p.Reset()
	return p
}

// Reset puts the player back at the spawn point, falling, with no double
// jump available until the first landing.
func (p *Player) Reset() {
	p.X = p.body.X
	p.Y = p.body.StartY
	p.W = p.body.Width
	p.H = p.body.Height
	p.VY = 0
	p.Frame = 0
	p.onGround = false
	p.canDoubleJump = false
	p.hasDoubled = false
	p.alive = true
}

// Jump applies a jump or double jump if the state allows it.
func (p *Player) Jump() JumpResult {
	if !p.alive {
		return JumpNone
	}
	if p.onGround {
		p.VY = p.physics.JumpVelocity
		p.onGround = false
		p.canDoubleJump = true
		p.hasDoubled = false
		return JumpSingle
	}
	if p.canDoubleJump && !p.hasDoubled {
		p.VY = p.physics.DoubleJumpVelocity
		p.hasDoubled = true
		return JumpDouble
	}
	return JumpNone
}

// Update applies gravity, integrates the position and advances the animation.
// Ground contact is cleared; Land restores it for this frame.
func (p *Player) Update() {
	p.VY += p.physics.Gravity
	p.Y += p.VY
	p.Frame += p.body.AnimationRate
	if p.Y > p.deathY {
		p.alive = false
	}
	p.onGround = false
}

// Hitbox returns the collision box. It is narrower than the sprite and
// extends above the head.
func (p *Player) Hitbox() core.Rect {
	in := p.body.Hitbox
	return core.NewRect(
		p.X+in.Left,
		p.Y+in.Top,
		p.W-in.Left-in.Right,
		p.H-in.Top-in.Bottom,
	)
}

// Land snaps the player onto pl if the hitbox bottom is within the platform's
// top band while falling or at rest. It reports whether a landing happened.
func (p *Player) Land(pl *Platform) bool {
	if !p.alive || p.VY < 0 {
		return false
	}
	hb := p.Hitbox()
	if !hb.OverlapsX(pl.Rect()) {
		return false
	}
	bottom := hb.Bottom()
	if bottom < pl.Y || bottom > pl.Y+pl.H+p.physics.LandingTolerance {
		return false
	}

	p.Y = pl.Y - p.H + p.physics.LandingSink
	p.VY = 0
	p.onGround = true
	p.canDoubleJump = true
	p.hasDoubled = false
	return true
}

// PickupPoint returns the point used for pickup distance tests.
func (p *Player) PickupPoint() core.Vec {
	return core.Vec{X: p.X + p.body.PickupOffset, Y: p.Y + p.body.PickupOffset}
}

// InReach reports whether c is close enough to be picked up.
func (p *Player) InReach(c *Collectible) bool {
	return core.Dist(p.PickupPoint(), c.Pos()) < p.body.PickupRadius
}

// State returns the current movement state.
func (p *Player) State() PlayerState {
	switch {
	case !p.alive:
		return StateDead
	case p.onGround:
		return StateGrounded
	case p.hasDoubled:
		return StateAirborneDouble
	default:
		return StateAirborneSingle
	}
}

// Alive reports whether the player is still above the death line.
func (p *Player) Alive() bool {
	return p.alive
}

// Grounded reports whether the player stood on a platform this frame.
func (p *Player) Grounded() bool {
	return p.onGround
}

// CanDoubleJump reports whether a double jump is currently available.
func (p *Player) CanDoubleJump() bool {
	return p.alive && !p.onGround && p.canDoubleJump && !p.hasDoubled
}
