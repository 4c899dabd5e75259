package render

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// GreensName is the name clients use for the sequential scale below.
const GreensName = "Greens"

// greens is the ColorBrewer sequential green ramp, light to dark.
var greens = []drawing.Color{
	{R: 247, G: 252, B: 245, A: 255},
	{R: 229, G: 245, B: 224, A: 255},
	{R: 199, G: 233, B: 192, A: 255},
	{R: 161, G: 217, B: 155, A: 255},
	{R: 116, G: 196, B: 118, A: 255},
	{R: 65, G: 171, B: 93, A: 255},
	{R: 35, G: 139, B: 69, A: 255},
	{R: 0, G: 109, B: 44, A: 255},
	{R: 0, G: 68, B: 27, A: 255},
}

// Greens returns the color at position t in [0,1] of the green ramp.
func Greens(t float64) drawing.Color {
	switch {
	case t <= 0:
		return greens[0]
	case t >= 1:
		return greens[len(greens)-1]
	}
	pos := t * float64(len(greens)-1)
	i := int(pos)
	frac := pos - float64(i)
	a, b := greens[i], greens[i+1]
	return drawing.Color{
		R: lerp(a.R, b.R, frac),
		G: lerp(a.G, b.G, frac),
		B: lerp(a.B, b.B, frac),
		A: 255,
	}
}

// ScaleColor maps v onto the green ramp relative to [lo, hi]. A flat range maps to the darkest shade.
func ScaleColor(v, lo, hi int64) drawing.Color {
	if hi <= lo {
		return Greens(1)
	}
	return Greens(float64(v-lo) / float64(hi-lo))
}

// Hex formats c as #rrggbb.
func Hex(c drawing.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
