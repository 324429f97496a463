package parkour

import (
	"math"
	"testing"

	"github.com/vovakirdan/parkour/internal/config"
)

func newTestPlayer() *Player {
	return NewPlayer(config.DefaultGameConfig())
}

func TestPlayerSpawn(t *testing.T) {
	p := newTestPlayer()

	if p.X != 120 || p.Y != 300 {
		t.Errorf("spawn = (%v, %v), expected (120, 300)", p.X, p.Y)
	}
	if p.State() != StateAirborneSingle {
		t.Errorf("State() = %v, expected airborne-single", p.State())
	}
	// No double jump before the first landing
	if got := p.Jump(); got != JumpNone {
		t.Errorf("Jump() at spawn = %v, expected JumpNone", got)
	}
	if p.VY != 0 {
		t.Errorf("failed jump changed VY to %v", p.VY)
	}
}

func TestPlayerJumpStateMachine(t *testing.T) {
	p := newTestPlayer()
	p.onGround = true

	if got := p.Jump(); got != JumpSingle {
		t.Fatalf("Jump() from ground = %v, expected JumpSingle", got)
	}
	if p.VY != -11.5 {
		t.Errorf("VY after jump = %v, expected -11.5", p.VY)
	}
	if p.State() != StateAirborneSingle || !p.CanDoubleJump() {
		t.Errorf("after jump: state %v, canDouble %v", p.State(), p.CanDoubleJump())
	}

	if got := p.Jump(); got != JumpDouble {
		t.Fatalf("Jump() in air = %v, expected JumpDouble", got)
	}
	if p.VY != -10 {
		t.Errorf("VY after double jump = %v, expected -10", p.VY)
	}
	if p.State() != StateAirborneDouble {
		t.Errorf("State() = %v, expected airborne-double", p.State())
	}

	p.VY = 3
	if got := p.Jump(); got != JumpNone {
		t.Errorf("third Jump() = %v, expected JumpNone", got)
	}
	if p.VY != 3 || p.State() != StateAirborneDouble {
		t.Errorf("third jump should be a no-op, VY=%v state=%v", p.VY, p.State())
	}
}

func TestPlayerHitbox(t *testing.T) {
	p := newTestPlayer()
	hb := p.Hitbox()

	if hb.X != 124 || hb.Y != 294 || hb.W != 22 || hb.H != 46 {
		t.Errorf("Hitbox() = %+v, expected {124 294 22 46}", hb)
	}
}

func TestPlayerLand(t *testing.T) {
	tests := []struct {
		name    string
		y, vy   float64
		platX   float64
		landed  bool
		resultY float64
	}{
		{"falling into band", 335, 2, 0, true, 334},
		{"resting on top", 330, 0, 0, true, 334},
		{"deepest band edge", 352, 1, 0, true, 334},
		{"rising through platform", 335, -1, 0, false, 335},
		{"above band", 320, 2, 0, false, 320},
		{"below band", 360, 2, 0, false, 360},
		{"not under player", 335, 2, 200, false, 335},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer()
			p.Y, p.VY = tt.y, tt.vy
			pl := &Platform{X: tt.platX, Y: 370, W: 300, H: 14}

			if got := p.Land(pl); got != tt.landed {
				t.Errorf("Land() = %v, expected %v", got, tt.landed)
			}
			if p.Y != tt.resultY {
				t.Errorf("Y = %v, expected %v", p.Y, tt.resultY)
			}
			if tt.landed && (p.VY != 0 || p.State() != StateGrounded) {
				t.Errorf("landing should ground the player, VY=%v state=%v", p.VY, p.State())
			}
		})
	}
}

func TestPlayerLandRestoresDoubleJump(t *testing.T) {
	p := newTestPlayer()
	p.onGround = true
	p.Jump()
	p.Jump()

	p.Y, p.VY = 335, 2
	if !p.Land(&Platform{X: 0, Y: 370, W: 300, H: 14}) {
		t.Fatal("expected landing")
	}

	if p.Jump() != JumpSingle {
		t.Fatal("jump from ground after landing should be a single jump")
	}
	if p.Jump() != JumpDouble {
		t.Error("double jump should be available again after landing")
	}
}

func TestPlayerUpdate(t *testing.T) {
	p := newTestPlayer()
	p.onGround = true

	p.Update()

	if p.VY != 0.55 || math.Abs(p.Y-300.55) > 1e-9 {
		t.Errorf("after Update: VY=%v Y=%v, expected 0.55 and 300.55", p.VY, p.Y)
	}
	if p.Frame != 0.15 {
		t.Errorf("Frame = %v, expected 0.15", p.Frame)
	}
	if p.Grounded() {
		t.Error("Update should clear ground contact")
	}
}

func TestPlayerDeath(t *testing.T) {
	p := newTestPlayer()
	p.Y = 559

	p.Update() // 559.55, still above the line
	if !p.Alive() {
		t.Fatalf("player died at y=%v, death line is 560", p.Y)
	}

	p.Update()
	if p.Alive() || p.State() != StateDead {
		t.Errorf("player at y=%v should be dead, state %v", p.Y, p.State())
	}
	if p.Jump() != JumpNone {
		t.Error("a dead player cannot jump")
	}
	if p.Land(&Platform{X: 0, Y: 560, W: 300, H: 14}) {
		t.Error("a dead player cannot land")
	}
}

func TestPlayerReset(t *testing.T) {
	p := newTestPlayer()
	p.onGround = true
	p.Jump()
	p.Y = 900
	p.Update()

	p.Reset()
	if !p.Alive() || p.Y != 300 || p.VY != 0 || p.CanDoubleJump() {
		t.Errorf("Reset() left state alive=%v y=%v vy=%v canDouble=%v", p.Alive(), p.Y, p.VY, p.CanDoubleJump())
	}
}

func TestPlayerInReach(t *testing.T) {
	p := newTestPlayer()
	pp := p.PickupPoint()
	if pp.X != 135 || pp.Y != 315 {
		t.Fatalf("PickupPoint() = %+v, expected (135, 315)", pp)
	}

	tests := []struct {
		dx, dy float64
		want   bool
	}{
		{0, 0, true},
		{29, 0, true},
		{30, 0, false},
		{20, 20, true},
		{22, 22, false},
	}
	for _, tt := range tests {
		c := &Collectible{X: pp.X + tt.dx, Y: pp.Y + tt.dy}
		if got := p.InReach(c); got != tt.want {
			t.Errorf("InReach(offset %v,%v) = %v, expected %v", tt.dx, tt.dy, got, tt.want)
		}
	}
}
