package core

import (
	"fmt"
	"image/color"
	"strconv"
)

// Color is a "#rrggbb" hex colour shared by the terminal and window front ends.
// The empty Color means "terminal default".
type Color string

// Palette colours used by the player sprite and UI chrome.
const (
	ColorDefault Color = ""
	ColorWhite   Color = "#ffffff"
	ColorPink    Color = "#ff69b4"
	ColorDeep    Color = "#e91e63"
	ColorGold    Color = "#ffd700"
	ColorSkin    Color = "#ffd5b4"
	ColorHair    Color = "#8b4513"
	ColorGray    Color = "#bbbbbb"
	ColorRust    Color = "#bf360c"
)

// ParseColor validates a "#rrggbb" string.
func ParseColor(s string) (Color, error) {
	if _, err := Color(s).rgb(); err != nil {
		return ColorDefault, err
	}
	return Color(s), nil
}

// RGBA converts the colour to an opaque color.RGBA. Invalid or default
// colours convert to white.
func (c Color) RGBA() color.RGBA {
	rgb, err := c.rgb()
	if err != nil {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return rgb
}

// WithAlpha converts the colour to a premultiplied color.RGBA with the given
// opacity in [0, 1].
func (c Color) WithAlpha(a float64) color.RGBA {
	a = ClampF(a, 0, 1)
	rgb := c.RGBA()
	return color.RGBA{
		R: uint8(float64(rgb.R) * a),
		G: uint8(float64(rgb.G) * a),
		B: uint8(float64(rgb.B) * a),
		A: uint8(255 * a),
	}
}

func (c Color) rgb() (color.RGBA, error) {
	s := string(c)
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("color %q: expected #rrggbb", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
