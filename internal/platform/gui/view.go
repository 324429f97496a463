package gui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/parkour/internal/config"
	"github.com/vovakirdan/parkour/internal/core"
	"github.com/vovakirdan/parkour/internal/games/parkour"
)

const (
	skyBands   = 25
	lineHeight = 18
)

var (
	shade     = color.RGBA{A: 0xa0}
	menuTop   = core.Color("#ffe0ec")
	menuBot   = core.Color("#ff69b4")
	textColor = core.ColorWhite.RGBA()
)

// gradient returns n colours blending from top to bottom.
func gradient(top, bottom core.Color, n int) []color.RGBA {
	a, b := top.RGBA(), bottom.RGBA()
	out := make([]color.RGBA, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		mix := func(x, y uint8) uint8 {
			return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
		}
		out[i] = color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 0xff}
	}
	return out
}

// view draws the world onto the Ebiten screen. It implements
// parkour.Renderer and parkour.Presenter.
type view struct {
	target *ebiten.Image
	face   *text.GoXFace

	level *parkour.Level
	t     float64

	current parkour.ScreenID
	info    parkour.ScreenInfo
}

var (
	_ parkour.Renderer  = (*view)(nil)
	_ parkour.Presenter = (*view)(nil)
)

func newView() *view {
	return &view{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (v *view) Show(id parkour.ScreenID, info parkour.ScreenInfo) {
	v.current = id
	v.info = info
}

func (v *view) HUD(info parkour.ScreenInfo) {
	v.info = info
}

func (v *view) size() (float32, float32) {
	b := v.target.Bounds()
	return float32(b.Dx()), float32(b.Dy())
}

// bounds returns the visible world area.
func (v *view) bounds() core.Rect {
	w, h := v.size()
	return core.NewRect(0, 0, float64(w), float64(h))
}

func (v *view) sky(top, bottom core.Color) {
	w, h := v.size()
	band := h / skyBands
	for i, c := range gradient(top, bottom, skyBands) {
		vector.FillRect(v.target, 0, float32(i)*band, w, band+1, c, false)
	}
}

// label draws a line of text anchored at (x, y) with the given alignment.
func (v *view) label(x, y float64, s string, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(v.target, s, v.face, op)
}

func (v *view) Begin(level *parkour.Level, t float64) {
	v.level = level
	v.t = t
	v.sky(level.Theme.BgTop, level.Theme.BgBottom)
}

func (v *view) Entity(e parkour.Entity) {
	dst := v.target
	switch e := e.(type) {
	case *parkour.Platform:
		if !e.Rect().Intersects(v.bounds()) {
			return
		}
		vector.FillRect(dst, float32(e.X), float32(e.Y), float32(e.W), float32(e.H), e.Color.RGBA(), false)
		vector.FillRect(dst, float32(e.X), float32(e.Y), float32(e.W), 4, e.Light.RGBA(), false)

	case *parkour.Collectible:
		x, y := float32(e.X), float32(e.Y)
		if e.Slot != "" {
			vector.FillCircle(dst, x, y, 12, core.ColorDeep.RGBA(), true)
			v.label(e.X, e.Y-6, e.Glyph, textColor, text.AlignCenter)
			return
		}
		vector.FillCircle(dst, x, y, 10, core.ColorGold.RGBA(), true)
		vector.FillCircle(dst, x-3, y-3, 3, core.ColorWhite.WithAlpha(0.7), true)

	case *parkour.Particle:
		if !v.bounds().Contains(core.Vec{X: e.X, Y: e.Y}) {
			return
		}
		vector.FillCircle(dst, float32(e.X), float32(e.Y), float32(e.R*e.Life), e.Color.WithAlpha(e.Life), true)

	case *parkour.TrailDot:
		vector.FillCircle(dst, float32(e.X), float32(e.Y), float32(e.R*e.Life), e.Color.WithAlpha(e.Life*0.6), true)

	case *parkour.Decoration:
		y := e.Y + e.FloatY(v.t)
		vector.FillCircle(dst, float32(e.X), float32(y), float32(e.Size/3), core.ColorWhite.WithAlpha(e.Alpha*2), true)
	}
}

// Player draws the princess: crown, hair, head, dress and running legs.
func (v *view) Player(p *parkour.Player) {
	dst := v.target
	x, y := float32(p.X), float32(p.Y)
	w, h := float32(p.W), float32(p.H)
	cx := x + w/2

	swing := float32(math.Sin(p.Frame*2) * 4)
	if !p.Grounded() {
		swing = 0
	}
	vector.FillRect(dst, cx-6+swing, y+h-8, 4, 8, core.ColorSkin.RGBA(), false)
	vector.FillRect(dst, cx+2-swing, y+h-8, 4, 8, core.ColorSkin.RGBA(), false)

	vector.FillRect(dst, x, y+h-18, w, 10, core.ColorPink.RGBA(), false)
	vector.FillRect(dst, x+5, y+16, w-10, h-26, core.ColorDeep.RGBA(), false)

	vector.FillCircle(dst, cx, y+9, 9, core.ColorSkin.RGBA(), true)
	vector.FillRect(dst, cx-9, y, 18, 5, core.ColorHair.RGBA(), false)
	vector.FillRect(dst, cx-6, y-5, 12, 4, core.ColorGold.RGBA(), false)

	if p.State() == parkour.StateAirborneDouble {
		vector.FillCircle(dst, x-4, y+h-4, 4, core.ColorGold.WithAlpha(0.8), true)
	}
}

// Doll draws the outfit slots in the top-right corner.
func (v *view) Doll(d *parkour.Doll) {
	const box, gap = 22, 4
	items := d.Items()
	w, _ := v.size()
	x := w - float32(len(items))*(box+gap) - 10
	y := float32(34)

	v.label(float64(x), float64(y-16), "Outfit", textColor, text.AlignStart)
	for _, item := range items {
		fill := core.ColorGray.WithAlpha(0.5)
		switch {
		case d.Flashing(item.Slot):
			fill = core.ColorGold.RGBA()
		case d.Has(item.Slot):
			fill = core.ColorPink.RGBA()
		}
		vector.FillRect(v.target, x, y, box, box, fill, false)
		vector.StrokeRect(v.target, x, y, box, box, 1, core.ColorWhite.RGBA(), false)
		if d.Has(item.Slot) {
			v.label(float64(x+box/2), float64(y+4), item.Glyph, textColor, text.AlignCenter)
		}
		x += box + gap
	}
}

func (v *view) End() {
	w, h := v.size()
	v.label(10, 8, fmt.Sprintf("Level %d: %s", v.info.Level, v.info.Name), textColor, text.AlignStart)
	if v.level != nil {
		v.label(float64(w)-10, 8, v.level.ScoreText(v.info.Score, "Score"), textColor, text.AlignEnd)
	}
	if v.info.Paused {
		v.label(float64(w/2), 8, "PAUSED", core.ColorGold.RGBA(), text.AlignCenter)
	}

	switch v.current {
	case parkour.ScreenIntro:
		v.panel(w, h, "Level "+fmt.Sprint(v.info.Level), v.info.Name, v.goal(), "Get ready!")
	case parkour.ScreenComplete:
		next := "Enter: next level"
		if v.info.LastLevel {
			next = "Enter: finish"
		}
		v.panel(w, h, "Level Complete!", v.level.ScoreText(v.info.Score, "Score"), next, "Esc: menu")
	case parkour.ScreenGameOver:
		v.panel(w, h, "Oh no, you fell!", v.level.ScoreText(v.info.Score, "Score"), "Enter or R: retry", "Esc: menu")
	}
}

func (v *view) goal() string {
	if v.info.DressUp {
		return fmt.Sprintf("Collect %d outfit pieces and dress her up!", v.info.Target)
	}
	return fmt.Sprintf("Collect %d", v.info.Target)
}

// panel draws a centred shaded box with one line of text per row.
func (v *view) panel(w, h float32, lines ...string) {
	ph := float32(len(lines)*lineHeight + 30)
	pw := float32(360)
	x, y := (w-pw)/2, (h-ph)/2
	vector.FillRect(v.target, x, y, pw, ph, shade, false)
	vector.StrokeRect(v.target, x, y, pw, ph, 2, core.ColorPink.RGBA(), false)

	for i, l := range lines {
		clr := textColor
		if i == 0 {
			clr = core.ColorGold.RGBA()
		}
		v.label(float64(w/2), float64(y)+15+float64(i*lineHeight), l, clr, text.AlignCenter)
	}
}

func (v *view) drawMenu(levels []config.LevelConfig, selected int) {
	v.sky(menuTop, menuBot)
	w, _ := v.size()
	cx := float64(w / 2)

	v.label(cx, 60, "PARKOUR PRINCESS", core.ColorDeep.RGBA(), text.AlignCenter)
	v.label(cx, 84, "Jump, double jump and collect your way through every world", core.ColorDeep.RGBA(), text.AlignCenter)

	for i, l := range levels {
		y := float32(140 + i*28)
		if i == selected {
			vector.FillRect(v.target, w/2-170, y-6, 340, 24, core.ColorDeep.WithAlpha(0.8), false)
		}
		v.label(cx, float64(y), fmt.Sprintf("%d. %s", i+1, l.Name), textColor, text.AlignCenter)
	}

	v.label(cx, float64(150+len(levels)*28), "Up/Down: choose   Enter or click: start   Q: quit", core.ColorDeep.RGBA(), text.AlignCenter)
}

func (v *view) drawVictory(levels int) {
	v.sky(menuTop, menuBot)
	w, h := v.size()
	v.panel(w, h,
		"You are a Parkour Princess!",
		fmt.Sprintf("All %d worlds complete", levels),
		"Enter: menu",
	)
}
