// Package parkour implements Parkour Princess, a side-scrolling runner with
// themed levels, a jump/double-jump player and a dress-up collection level.
//
// The Controller owns the whole simulation and is driven one tick at a time
// by a front end. Drawing, sound and screen overlays are delegated to the
// Renderer, Audio and Presenter collaborators.
package parkour

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/parkour/internal/config"
	"github.com/vovakirdan/parkour/internal/core"
)

// Phase is the controller state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseLevelIntro
	PhasePlaying
	PhaseLevelComplete
	PhaseGameOver
	PhaseVictory
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseLevelIntro:
		return "levelIntro"
	case PhasePlaying:
		return "playing"
	case PhaseLevelComplete:
		return "levelComplete"
	case PhaseGameOver:
		return "gameOver"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// ErrLevelOutOfRange is returned when a level index is outside the catalog.
var ErrLevelOutOfRange = errors.New("level out of range")

// Particle palettes for the three pickup paths.
var (
	pickupPalette    = []core.Color{"#ff69b4", "#ffd700", "#ffffff", "#ff1493", "#da70d6"}
	newItemPalette   = []core.Color{"#ffd700", "#ff69b4", "#ffffff", "#ffeb3b", "#e040fb"}
	duplicatePalette = []core.Color{"#ff69b4", "#ffd700", "#ffffff"}
	trailPalette     = []core.Color{"#ff69b4", "#ffb6c1", "#ffffff", "#ffd700"}
)

// Controller runs the game: menu, level intro, play, and the end-of-level
// screens. It is not safe for concurrent use; a front end drives it from a
// single goroutine.
type Controller struct {
	cfg     config.GameConfig // Active config
	pending *config.GameConfig
	runtime core.RuntimeConfig

	renderer  Renderer
	audio     Audio
	presenter Presenter
	logger    *log.Logger

	sched     Scheduler
	introTask TaskID
	genRng    *rand.Rand // Platform and pickup placement
	fxRng     *rand.Rand // Particles, trail and decorations

	phase    Phase
	paused   bool
	disposed bool

	level      *Level
	levelIndex int
	score      int
	ticks      int
	time       float64 // Seconds of play on this level

	player       *Player
	gen          *Generator
	platforms    []*Platform
	collectibles []*Collectible
	particles    []*Particle
	trail        []*TrailDot
	decorations  []*Decoration
	doll         *Doll
}

// Option configures a Controller.
type Option func(*Controller)

// WithRenderer sets the world renderer.
func WithRenderer(r Renderer) Option {
	return func(c *Controller) { c.renderer = r }
}

// WithAudio sets the sound backend.
func WithAudio(a Audio) Option {
	return func(c *Controller) { c.audio = a }
}

// WithPresenter sets the screen presenter.
func WithPresenter(p Presenter) Option {
	return func(c *Controller) { c.presenter = p }
}

// WithLogger sets the logger used for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// NewController creates a controller on the menu screen. cfg must be valid;
// rt.Seed seeds every random choice, so equal seeds and inputs replay
// identically. Missing collaborators default to no-ops.
func NewController(cfg config.GameConfig, rt core.RuntimeConfig, opts ...Option) *Controller {
	c := &Controller{
		cfg:       cfg,
		runtime:   rt,
		renderer:  NopRenderer{},
		audio:     NopAudio{},
		presenter: NopPresenter{},
		genRng:    rand.New(rand.NewSource(rt.Seed)),
		fxRng:     rand.New(rand.NewSource(rt.Seed + 1)),
		phase:     PhaseMenu,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	c.player = NewPlayer(cfg)
	c.presenter.Show(ScreenMenu, c.info())
	return c
}

// Start begins a new run at the first level.
func (c *Controller) Start() {
	_ = c.StartAt(0)
}

// StartAt begins a new run at the given 0-based level index.
func (c *Controller) StartAt(idx int) error {
	if c.disposed {
		return nil
	}
	if n := len(c.catalog()); idx < 0 || idx >= n {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrLevelOutOfRange, idx+1, n)
	}
	c.levelIndex = idx
	c.startLevel()
	return nil
}

// Next moves from the level-complete screen to the next level, or to the
// victory screen when the catalog is exhausted.
func (c *Controller) Next() {
	if c.disposed || c.phase != PhaseLevelComplete {
		return
	}
	if c.levelIndex+1 >= len(c.catalog()) {
		c.victory()
		return
	}
	c.levelIndex++
	c.startLevel()
}

// Retry restarts the current level.
func (c *Controller) Retry() {
	if c.disposed || c.level == nil {
		return
	}
	c.startLevel()
}

// Menu returns to the menu, cancelling a pending level intro.
func (c *Controller) Menu() {
	if c.disposed {
		return
	}
	c.transition(PhaseMenu)
	c.presenter.Show(ScreenMenu, c.info())
}

// Reload replaces the configuration. The running level keeps its settings;
// the new config applies from the next level start.
func (c *Controller) Reload(cfg config.GameConfig) {
	c.pending = &cfg
	c.logger.Info("config reloaded", "levels", len(cfg.Levels))
}

// Dispose stops the controller. Pending timers are cancelled and further
// calls are ignored.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.logger.Debug("controller disposed", "cancelled", c.sched.Pending())
	c.sched.CancelAll()
	c.disposed = true
	c.platforms, c.collectibles, c.particles, c.trail, c.decorations = nil, nil, nil, nil, nil
}

// Step advances the simulation by one tick with the actions collected since
// the previous tick.
func (c *Controller) Step(in core.InputFrame) core.StepResult {
	if c.disposed {
		return core.StepResult{State: c.State()}
	}

	if !in.Empty() {
		c.handleInput(in)
	}
	c.sched.Advance(c.runtime.TickInterval())

	if c.phase == PhasePlaying && !c.paused {
		if in.Has(core.ActionJump) {
			c.jump()
		}
		c.tick()
	}
	return core.StepResult{State: c.State()}
}

func (c *Controller) handleInput(in core.InputFrame) {
	switch c.phase {
	case PhaseMenu:
		if in.Has(core.ActionConfirm) {
			c.Start()
		}
	case PhaseLevelIntro:
		if in.Has(core.ActionBack) {
			c.Menu()
		}
	case PhasePlaying:
		switch {
		case in.Has(core.ActionBack):
			c.Menu()
		case in.Has(core.ActionPause):
			c.paused = !c.paused
			c.presenter.HUD(c.info())
		}
	case PhaseLevelComplete:
		switch {
		case in.Has(core.ActionConfirm):
			c.Next()
		case in.Has(core.ActionBack):
			c.Menu()
		}
	case PhaseGameOver:
		switch {
		case in.Has(core.ActionConfirm), in.Has(core.ActionRestart):
			c.Retry()
		case in.Has(core.ActionBack):
			c.Menu()
		}
	case PhaseVictory:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionBack) {
			c.Menu()
		}
	}
}

func (c *Controller) jump() {
	switch c.player.Jump() {
	case JumpSingle:
		c.audio.Play(CueJump)
	case JumpDouble:
		c.audio.Play(CueDoubleJump)
	}
}

// tick runs one frame of play: player, platforms, pickups, effects,
// regeneration, then the death and completion checks.
func (c *Controller) tick() {
	c.ticks++
	c.time += c.runtime.TickInterval().Seconds()
	f := c.frame()

	c.player.Update()

	c.platforms = advance(f, c.platforms)
	for _, p := range c.platforms {
		c.player.Land(p)
	}

	c.collectibles = advance(f, c.collectibles)
	for _, col := range c.collectibles {
		if !col.Collected && c.player.InReach(col) {
			c.pickup(col)
		}
	}

	c.decorations = advance(f, c.decorations)

	c.emitTrail()
	c.trail = advance(f, c.trail)
	c.particles = advance(f, c.particles)

	c.refill()

	if c.doll != nil {
		c.doll.Update()
	}

	if !c.player.Alive() {
		c.audio.Play(CueFall)
		c.gameOver()
		return
	}
	if c.score >= c.level.Target {
		c.levelComplete()
		return
	}
	c.presenter.HUD(c.info())
}

func (c *Controller) frame() *Frame {
	return &Frame{
		Speed:        c.level.Speed,
		Time:         c.time,
		CleanupX:     c.cfg.World.CleanupX,
		WorldW:       c.cfg.World.Width,
		WorldH:       c.cfg.World.Height,
		BobAmplitude: c.cfg.Effects.BobAmplitude,
		BobFrequency: c.cfg.Effects.BobFrequency,
		rng:          c.fxRng,
	}
}

func (c *Controller) pickup(col *Collectible) {
	col.Collected = true
	fx := c.cfg.Effects

	if c.doll != nil && col.Slot != "" {
		if c.doll.Collect(col.Slot) {
			c.score = c.doll.Count()
			c.audio.Play(CueNewItem)
			c.burst(col.X, col.Y, fx.NewItemParticles, newItemPalette)
			c.logger.Debug("outfit piece", "slot", col.Slot, "count", c.score)
		} else {
			c.audio.Play(CueDuplicate)
			c.burst(col.X, col.Y, fx.DuplicateParticles, duplicatePalette)
		}
		return
	}

	c.score++
	c.audio.Play(CueCollect)
	c.burst(col.X, col.Y, fx.PickupParticles, pickupPalette)
}

func (c *Controller) burst(x, y float64, n int, palette []core.Color) {
	for range n {
		color := pick(c.fxRng, palette)
		c.particles = append(c.particles, &Particle{
			X:     x,
			Y:     y,
			VX:    uniform(c.fxRng, -3, 3),
			VY:    uniform(c.fxRng, -5, -1),
			R:     uniform(c.fxRng, 2, 5),
			Life:  1,
			Decay: uniform(c.fxRng, 0.02, 0.05),
			Color: color,
		})
	}
}

func (c *Controller) emitTrail() {
	if c.fxRng.Float64() >= c.cfg.Effects.TrailChance {
		return
	}
	p := c.player
	c.trail = append(c.trail, &TrailDot{
		X:     p.X + 5,
		Y:     p.Y + p.H - 5 + uniform(c.fxRng, -4, 4),
		R:     uniform(c.fxRng, 1.5, 3.5),
		Life:  1,
		Decay: uniform(c.fxRng, 0.03, 0.06),
		Color: pick(c.fxRng, trailPalette),
	})
}

// refill tops the platform pool back up ahead of the camera.
func (c *Controller) refill() {
	for len(c.platforms) < c.cfg.Generator.PoolSize {
		var last *Platform
		if len(c.platforms) > 0 {
			last = c.platforms[len(c.platforms)-1]
		} else {
			last = c.gen.Initial()
			last.X = c.cfg.World.Width
		}
		p, col := c.gen.Next(last)
		c.platforms = append(c.platforms, p)
		if col != nil {
			c.collectibles = append(c.collectibles, col)
		}
	}
}

func (c *Controller) startLevel() {
	if c.pending != nil {
		c.cfg = *c.pending
		c.pending = nil
		c.player = NewPlayer(c.cfg)
	}
	c.levelIndex = min(c.levelIndex, len(c.cfg.Levels)-1)

	c.level = newLevel(c.levelIndex, c.cfg.Levels[c.levelIndex])
	c.score = 0
	c.ticks = 0
	c.time = 0
	c.paused = false
	c.player.Reset()

	c.gen = NewGenerator(c.genRng, c.cfg.Generator, c.level)
	first := c.gen.Initial()
	c.platforms = []*Platform{first}
	c.collectibles = nil
	last := first
	for range c.cfg.Generator.Ahead {
		p, col := c.gen.Next(last)
		c.platforms = append(c.platforms, p)
		if col != nil {
			c.collectibles = append(c.collectibles, col)
		}
		last = p
	}

	c.doll = nil
	if c.level.DressUp {
		c.doll = NewDoll(c.level.Items, c.cfg.Effects.FlashFrames)
	}

	c.decorations = c.decorations[:0]
	if len(c.level.Decorations) > 0 {
		for range c.cfg.Effects.Decorations {
			c.decorations = append(c.decorations, &Decoration{
				Emoji:       pick(c.fxRng, c.level.Decorations),
				X:           uniform(c.fxRng, 0, c.cfg.World.Width),
				Y:           uniform(c.fxRng, 20, c.cfg.World.Height*0.6),
				Size:        uniform(c.fxRng, 14, 24),
				SpeedFactor: uniform(c.fxRng, 0.15, 0.4),
				Phase:       uniform(c.fxRng, 0, 2*math.Pi),
				Alpha:       uniform(c.fxRng, 0.1, 0.25),
			})
		}
	}
	c.particles = nil
	c.trail = nil

	c.transition(PhaseLevelIntro)
	c.presenter.Show(ScreenIntro, c.info())
	c.audio.Play(CueLevelUp)
	c.introTask = c.sched.After(c.cfg.Timing.IntroDelay, c.beginPlaying)
}

func (c *Controller) beginPlaying() {
	if c.phase != PhaseLevelIntro {
		return
	}
	c.introTask = 0
	c.transition(PhasePlaying)
	c.presenter.Show(ScreenHUD, c.info())
}

func (c *Controller) levelComplete() {
	c.transition(PhaseLevelComplete)
	c.audio.Play(CueLevelUp)
	c.presenter.Show(ScreenComplete, c.info())
}

func (c *Controller) gameOver() {
	c.transition(PhaseGameOver)
	c.presenter.Show(ScreenGameOver, c.info())
}

func (c *Controller) victory() {
	c.transition(PhaseVictory)
	c.audio.Play(CueVictory)
	c.presenter.Show(ScreenVictory, c.info())
}

// transition changes phase. Any pending intro timer is cancelled so it can
// never fire into a later state.
func (c *Controller) transition(to Phase) {
	if c.introTask != 0 {
		c.sched.Cancel(c.introTask)
		c.introTask = 0
	}
	from := c.phase
	c.phase = to
	if to != PhasePlaying {
		c.paused = false
	}
	fields := []any{"from", from, "to", to}
	if c.level != nil {
		snap := c.Snapshot()
		fields = append(fields, "level", c.level.Number(), "score", c.score, "state", snap.Hash())
	}
	c.logger.Debug("phase", fields...)
}

func (c *Controller) catalog() []config.LevelConfig {
	if c.pending != nil {
		return c.pending.Levels
	}
	return c.cfg.Levels
}

func (c *Controller) info() ScreenInfo {
	info := ScreenInfo{
		Levels: len(c.catalog()),
		Score:  c.score,
		Paused: c.paused,
	}
	if c.level == nil {
		return info
	}
	info.Level = c.level.Number()
	info.Name = c.level.Name
	info.Emoji = c.level.Emoji
	info.Glyph = c.level.Glyph
	info.Goal = c.level.Goal()
	info.Target = c.level.Target
	info.DressUp = c.level.DressUp
	info.LastLevel = c.levelIndex >= len(c.catalog())-1
	return info
}

// Render draws the current world through the renderer. Nothing is drawn on
// the menu or victory screens. Collected pickups are skipped.
func (c *Controller) Render() {
	if c.disposed || c.level == nil || c.phase == PhaseMenu || c.phase == PhaseVictory {
		return
	}
	r := c.renderer
	r.Begin(c.level, c.time)
	for _, d := range c.decorations {
		r.Entity(d)
	}
	for _, d := range c.trail {
		r.Entity(d)
	}
	for _, p := range c.platforms {
		r.Entity(p)
	}
	for _, col := range c.collectibles {
		if !col.Collected {
			r.Entity(col)
		}
	}
	for _, p := range c.particles {
		r.Entity(p)
	}
	r.Player(c.player)
	if c.doll != nil {
		r.Doll(c.doll)
	}
	r.End()
}

// State returns the summary front ends poll after every tick.
func (c *Controller) State() core.GameState {
	return core.GameState{
		Score:    c.score,
		GameOver: c.phase == PhaseGameOver || c.phase == PhaseVictory,
		Paused:   c.paused,
	}
}

// Phase returns the current controller state.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Score returns the score on the current level.
func (c *Controller) Score() int {
	return c.score
}

// LevelIndex returns the 0-based index of the current level.
func (c *Controller) LevelIndex() int {
	return c.levelIndex
}

// Level returns the current level, or nil before the first start.
func (c *Controller) Level() *Level {
	return c.level
}

// Info returns the text for the current screen.
func (c *Controller) Info() ScreenInfo {
	return c.info()
}

// Catalog returns the levels a new run can start at.
func (c *Controller) Catalog() []config.LevelConfig {
	return c.catalog()
}

// World returns the world dimensions in pixels.
func (c *Controller) World() config.WorldConfig {
	return c.cfg.World
}
