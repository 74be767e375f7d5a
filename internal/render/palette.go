package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/palette"
)

// The survey's figures use a colormap running from a brilliant yellow for
// light skies through dark blue tones to black for the darkest skies. The
// channel ramps below are the control points of that map.
var (
	redRamp   = ramp{{0, 0.8}, {0.55, 0.35}, {1, 0.001}}
	greenRamp = ramp{{0, 0.6}, {0.55, 0.35}, {1, 0.001}}
	blueRamp  = ramp{{0, 0.01}, {0.63, 0.35}, {1, 0.03}}
)

type rampStop struct {
	pos, value float64
}

type ramp []rampStop

// at linearly blends the ramp at position t in [0, 1].
func (r ramp) at(t float64) float64 {
	if t <= r[0].pos {
		return r[0].value
	}
	for i := 1; i < len(r); i++ {
		if t <= r[i].pos {
			frac := (t - r[i-1].pos) / (r[i].pos - r[i-1].pos)
			return r[i-1].value + frac*(r[i].value-r[i-1].value)
		}
	}
	return r[len(r)-1].value
}

type skyPalette struct {
	colors []color.Color
}

// SkyPalette returns the yellow-to-black sky-darkness colormap quantised to n
// colors, lightest first.
func SkyPalette(n int) palette.Palette {
	if n < 2 {
		n = 2
	}
	colors := make([]color.Color, n)
	for i := range colors {
		t := float64(i) / float64(n-1)
		colors[i] = color.NRGBA{
			R: uint8(redRamp.at(t) * 255),
			G: uint8(greenRamp.at(t) * 255),
			B: uint8(blueRamp.at(t) * 255),
			A: 255,
		}
	}
	return skyPalette{colors: colors}
}

func (p skyPalette) Colors() []color.Color { return p.colors }

// SkyPaletteHex returns the colormap as hex strings for chart libraries that
// take CSS colors.
func SkyPaletteHex(n int) []string {
	colors := SkyPalette(n).Colors()
	out := make([]string, len(colors))
	for i, c := range colors {
		r, g, b, _ := c.RGBA()
		out[i] = fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
	}
	return out
}
