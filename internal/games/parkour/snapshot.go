package parkour

import "math"

// Snapshot contains the observable simulation state for determinism tests
// and debugging. Positions are rounded to hundredths of a pixel.
type Snapshot struct {
	Tick       int
	Phase      string
	LevelIndex int
	Score      int
	Paused     bool

	PlayerX     int
	PlayerY     int
	PlayerVY    int
	PlayerState string
	CanDouble   bool

	// Platform data, each platform is 3 ints: X, Y, W
	PlatformData []int

	// Collectible data, each pickup is 3 ints: X, BaseY, Collected
	CollectibleData []int

	ParticleCount int
	TrailCount    int
	DollCount     int
}

// Snapshot returns the current state as a Snapshot.
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          c.ticks,
		Phase:         c.phase.String(),
		LevelIndex:    c.levelIndex,
		Score:         c.score,
		Paused:        c.paused,
		PlayerX:       fixed(c.player.X),
		PlayerY:       fixed(c.player.Y),
		PlayerVY:      fixed(c.player.VY),
		PlayerState:   c.player.State().String(),
		CanDouble:     c.player.CanDoubleJump(),
		ParticleCount: len(c.particles),
		TrailCount:    len(c.trail),
	}

	snap.PlatformData = make([]int, 0, len(c.platforms)*3)
	for _, p := range c.platforms {
		snap.PlatformData = append(snap.PlatformData, fixed(p.X), fixed(p.Y), fixed(p.W))
	}

	snap.CollectibleData = make([]int, 0, len(c.collectibles)*3)
	for _, col := range c.collectibles {
		collected := 0
		if col.Collected {
			collected = 1
		}
		snap.CollectibleData = append(snap.CollectibleData, fixed(col.X), fixed(col.BaseY), collected)
	}

	if c.doll != nil {
		snap.DollCount = c.doll.Count()
	}
	return snap
}

func fixed(v float64) int {
	return int(math.Round(v * 100))
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)                //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerVY)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ParticleCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TrailCount)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DollCount)     //#nosec G115 -- hash computation

	for _, s := range []string{snap.Phase, snap.PlayerState} {
		for _, r := range s {
			h = h*31 + uint64(r) //#nosec G115 -- hash computation
		}
	}
	if snap.Paused {
		h = h*31 + 1
	}
	if snap.CanDouble {
		h = h*31 + 2
	}

	for _, v := range snap.PlatformData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.CollectibleData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
