package tui

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/parkour/internal/config"
	"github.com/vovakirdan/parkour/internal/core"
	"github.com/vovakirdan/parkour/internal/games/parkour"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// Canvas draws the world onto a character screen and keeps the screen the
// controller last asked to show. It implements parkour.Renderer and
// parkour.Presenter.
type Canvas struct {
	screen *core.Screen
	world  config.WorldConfig

	level *parkour.Level
	t     float64

	current parkour.ScreenID
	info    parkour.ScreenInfo
}

var (
	_ parkour.Renderer  = (*Canvas)(nil)
	_ parkour.Presenter = (*Canvas)(nil)
)

// NewCanvas creates a canvas for a world of the given size.
func NewCanvas(screen *core.Screen, world config.WorldConfig) *Canvas {
	return &Canvas{screen: screen, world: world}
}

// Current returns the screen the controller asked for last and its text.
func (c *Canvas) Current() (parkour.ScreenID, parkour.ScreenInfo) {
	return c.current, c.info
}

// Show records the screen to overlay on the next frame.
func (c *Canvas) Show(id parkour.ScreenID, info parkour.ScreenInfo) {
	c.current = id
	c.info = info
}

// HUD refreshes the HUD text.
func (c *Canvas) HUD(info parkour.ScreenInfo) {
	c.info = info
}

func (c *Canvas) fieldRows() int {
	return max(c.screen.Height()-hudRows, 1)
}

// col maps a world x coordinate to a screen column.
func (c *Canvas) col(x float64) int {
	return int(core.Lerp(x, c.world.Width, float64(c.screen.Width())))
}

// row maps a world y coordinate to a screen row.
func (c *Canvas) row(y float64) int {
	return hudRows + int(core.Lerp(y, c.world.Height, float64(c.fieldRows())))
}

func (c *Canvas) inField(y int) bool {
	return y >= hudRows && y < hudRows+c.fieldRows()
}

func (c *Canvas) put(x, y int, r rune, color core.Color) {
	if c.inField(y) {
		c.screen.SetColored(x, y, r, color)
	}
}

// Begin clears the screen for a new frame.
func (c *Canvas) Begin(level *parkour.Level, t float64) {
	c.level = level
	c.t = t
	c.screen.Clear()
}

// Entity draws one world object.
func (c *Canvas) Entity(e parkour.Entity) {
	switch v := e.(type) {
	case *parkour.Platform:
		y := c.row(v.Y)
		if !c.inField(y) {
			return
		}
		x0, x1 := c.col(v.X), c.col(v.Right())
		c.screen.DrawHLine(x0, y, max(x1-x0, 1), '▀', v.Color)
		c.put(x0, y, '▛', v.Light)

	case *parkour.Collectible:
		glyph := v.Glyph
		color := core.ColorGold
		if glyph == "" && c.level != nil {
			glyph = c.level.Glyph
		}
		if v.Slot != "" {
			color = core.ColorDeep
		}
		r, _ := utf8.DecodeRuneInString(glyph)
		if r == utf8.RuneError {
			r = '*'
		}
		c.put(c.col(v.X), c.row(v.Y), r, color)

	case *parkour.Particle:
		r := '·'
		if v.Life > 0.5 {
			r = '*'
		}
		c.put(c.col(v.X), c.row(v.Y), r, v.Color)

	case *parkour.TrailDot:
		c.put(c.col(v.X), c.row(v.Y), '.', v.Color)

	case *parkour.Decoration:
		color := core.ColorGray
		if c.level != nil {
			color = c.level.Theme.PlatformLight
		}
		c.put(c.col(v.X), c.row(v.Y+v.FloatY(c.t)), '✧', color)
	}
}

// Player draws the princess as a small sprite: head on top, dress below.
func (c *Canvas) Player(p *parkour.Player) {
	cx := c.col(p.X + p.W/2)
	top := c.row(p.Y)
	bottom := max(c.row(p.Y+p.H-1), top)

	head := 'o'
	if !p.Alive() {
		head = 'x'
	}
	c.put(cx-1, top, '(', core.ColorHair)
	c.put(cx, top, head, core.ColorSkin)
	c.put(cx+1, top, ')', core.ColorHair)
	if bottom == top {
		return
	}

	left, right := '/', '\\'
	if p.State() == parkour.StateGrounded && int(p.Frame)%2 == 1 {
		left, right = '|', '|'
	}
	c.put(cx-1, bottom, left, core.ColorPink)
	c.put(cx, bottom, 'A', core.ColorDeep)
	c.put(cx+1, bottom, right, core.ColorPink)

	if p.State() == parkour.StateAirborneDouble {
		c.put(cx-2, bottom, '✦', core.ColorGold)
	}
}

// Doll draws the outfit panel in the top-right corner of the playfield.
func (c *Canvas) Doll(d *parkour.Doll) {
	items := d.Items()
	label := "Outfit "
	x := c.screen.Width() - len(items)*2 - len(label)
	y := hudRows
	c.screen.DrawText(x, y, label, core.ColorWhite)
	x += len(label)

	for _, item := range items {
		r, _ := utf8.DecodeRuneInString(item.Glyph)
		color := core.ColorGray
		switch {
		case d.Flashing(item.Slot):
			color = core.ColorGold
		case d.Has(item.Slot):
			color = core.ColorPink
		default:
			r = '·'
		}
		c.screen.SetColored(x, y, r, color)
		x += 2
	}
}

// End draws the HUD and the overlay for the current screen.
func (c *Canvas) End() {
	c.drawHUD()

	switch c.current {
	case parkour.ScreenIntro:
		c.drawBox(core.ColorPink,
			"Level "+strconv.Itoa(c.info.Level),
			c.info.Name,
			c.goal(),
			"Get ready!",
		)
	case parkour.ScreenComplete:
		next := "enter: next level"
		if c.info.LastLevel {
			next = "enter: finish"
		}
		c.drawBox(core.ColorGold,
			"Level Complete!",
			c.scoreText(),
			next+"   esc: menu",
		)
	case parkour.ScreenGameOver:
		c.drawBox(core.ColorRust,
			"Oh no, you fell!",
			c.scoreText(),
			"enter/r: retry   esc: menu",
		)
	}
}

func (c *Canvas) drawHUD() {
	w := c.screen.Width()
	for x := range w {
		c.screen.Set(x, 0, ' ')
	}
	if c.level == nil {
		return
	}
	left := fmt.Sprintf(" Level %d: %s", c.info.Level, c.info.Name)
	c.screen.DrawText(0, 0, left, core.ColorPink)

	right := c.scoreText() + " "
	c.screen.DrawText(w-utf8.RuneCountInString(right), 0, right, core.ColorGold)

	if c.info.Paused {
		c.screen.DrawTextCentered(0, "PAUSED", core.ColorWhite)
	}
}

func (c *Canvas) scoreText() string {
	if c.level == nil {
		return ""
	}
	return c.level.ScoreText(c.info.Score, c.info.Glyph)
}

func (c *Canvas) goal() string {
	if c.info.DressUp {
		return fmt.Sprintf("Collect %d outfit pieces and dress her up!", c.info.Target)
	}
	return fmt.Sprintf("Collect %d %s", c.info.Target, c.info.Glyph)
}

// drawBox draws a centred box with one line of text per row.
func (c *Canvas) drawBox(color core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	w := min(width+6, c.screen.Width())
	h := len(lines) + 4
	x := (c.screen.Width() - w) / 2
	y := hudRows + (c.fieldRows()-h)/2

	c.screen.DrawRect(x, y, w, h, ' ', core.ColorDefault)
	c.screen.DrawBox(x, y, w, h, color)
	for i, l := range lines {
		lc := core.ColorWhite
		if i == 0 {
			lc = color
		}
		c.screen.DrawTextCentered(y+2+i, l, lc)
	}
}
