// Package gui is the Ebiten window front end for Parkour Princess.
package gui

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/parkour/internal/config"
	"github.com/vovakirdan/parkour/internal/core"
	"github.com/vovakirdan/parkour/internal/games/parkour"
)

// Options configures the window.
type Options struct {
	// Start is the 0-based level to start at. Negative shows the menu.
	Start int

	// Scale multiplies the world size to get the initial window size.
	Scale float64

	// Mute disables sound.
	Mute bool

	Logger *log.Logger
}

// keyBindings maps keyboard keys to game actions.
var keyBindings = []struct {
	keys   []ebiten.Key
	action core.Action
}{
	{[]ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}, core.ActionJump},
	{[]ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}, core.ActionConfirm},
	{[]ebiten.Key{ebiten.KeyEscape, ebiten.KeyB}, core.ActionBack},
	{[]ebiten.Key{ebiten.KeyP}, core.ActionPause},
	{[]ebiten.Key{ebiten.KeyR}, core.ActionRestart},
	{[]ebiten.Key{ebiten.KeyQ}, core.ActionQuit},
}

// readInput collects the actions triggered this tick. A pointer press
// (mouse click or touch) counts as a jump.
func readInput(justPressed func(ebiten.Key) bool, pointer bool) core.InputFrame {
	in := core.NewInputFrame()
	for _, b := range keyBindings {
		for _, k := range b.keys {
			if justPressed(k) {
				in.Set(b.action)
				break
			}
		}
	}
	if pointer {
		in.Set(core.ActionJump)
	}
	return in
}

func pointerPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

// Game implements ebiten.Game around a parkour.Controller.
type Game struct {
	ctrl  *parkour.Controller
	view  *view
	menu  menu
	world config.WorldConfig
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates the window game for cfg.
func NewGame(cfg config.GameConfig, rt core.RuntimeConfig, opts Options) (*Game, error) {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	v := newView()
	ctrlOpts := []parkour.Option{
		parkour.WithRenderer(v),
		parkour.WithPresenter(v),
		parkour.WithLogger(logger),
	}
	if !opts.Mute {
		ctrlOpts = append(ctrlOpts, parkour.WithAudio(newSound(logger)))
	}

	ctrl := parkour.NewController(cfg, rt, ctrlOpts...)
	g := &Game{
		ctrl:  ctrl,
		view:  v,
		menu:  menu{count: len(ctrl.Catalog())},
		world: cfg.World,
	}
	if opts.Start >= 0 {
		if err := ctrl.StartAt(opts.Start); err != nil {
			return nil, err
		}
		g.menu.selected = opts.Start
	}
	return g, nil
}

// Update runs one simulation tick.
func (g *Game) Update() error {
	in := readInput(inpututil.IsKeyJustPressed, pointerPressed())
	if in.Has(core.ActionQuit) {
		g.ctrl.Dispose()
		return ebiten.Termination
	}

	if g.ctrl.Phase() == parkour.PhaseMenu {
		g.menu.count = len(g.ctrl.Catalog())
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
			g.menu.move(-1)
		case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
			g.menu.move(1)
		case in.Has(core.ActionConfirm), in.Has(core.ActionJump):
			return g.ctrl.StartAt(g.menu.selected)
		}
		return nil
	}

	g.ctrl.Step(in)
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.view.target = screen
	switch g.ctrl.Phase() {
	case parkour.PhaseMenu:
		g.view.drawMenu(g.ctrl.Catalog(), g.menu.selected)
	case parkour.PhaseVictory:
		g.view.drawVictory(len(g.ctrl.Catalog()))
	default:
		g.ctrl.Render()
	}
}

// Layout returns the fixed logical world size; Ebiten scales it to the window.
func (g *Game) Layout(int, int) (int, int) {
	return int(g.world.Width), int(g.world.Height)
}

// Controller returns the game controller.
func (g *Game) Controller() *parkour.Controller {
	return g.ctrl
}

// menu is the level selection on the menu screen.
type menu struct {
	selected int
	count    int
}

// move shifts the selection by delta, clamped to the catalog.
func (m *menu) move(delta int) {
	m.selected = core.Clamp(m.selected+delta, 0, max(m.count-1, 0))
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.GameConfig, rt core.RuntimeConfig, opts Options) error {
	g, err := NewGame(cfg, rt, opts)
	if err != nil {
		return err
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(cfg.World.Width*scale), int(cfg.World.Height*scale))
	ebiten.SetWindowTitle("Parkour Princess")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(rt.TickRate)

	err = ebiten.RunGame(g)
	g.ctrl.Dispose()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
