package fractal

import (
	"image/color"
	"math"
)

// RGBA is the color handed back to the host for each covered pixel: float
// channels in [0,1], alpha always fully opaque.
type RGBA struct {
	R, G, B, A float64
}

// Color converts to the 8-bit color the image package writes. Alpha is
// always 1 here, so no premultiplication is involved.
func (c RGBA) Color() color.RGBA {
	return color.RGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

// HSVToRGBA converts hue in degrees and saturation/value percentages into an
// opaque color via the standard six-sector algorithm. Hue is wrapped into
// [0,360) first; without the wrap a hue of exactly 360 falls through every
// sector and comes out black. Sector selection is first-match in ascending
// order, so float rounding right at a 60° boundary may pick either neighbor.
func HSVToRGBA(hueDeg, satPct, valPct float64) RGBA {
	h := math.Mod(hueDeg, 360)
	if h < 0 {
		h += 360
	}
	s := satPct / 100
	v := valPct / 100

	chroma := v * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - chroma

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	case h < 360:
		r, g, b = chroma, 0, x
	}
	return RGBA{R: r + m, G: g + m, B: b + m, A: 1}
}

// ShadePoint is the whole per-pixel pipeline for one plane point: escape
// time, then hue = normalized·720 mod 360 — the wheel cycles twice over the
// normalized range, giving the double-rainbow banding. Points that never
// escape render black.
func ShadePoint(c Complex, maxIter int, escapeRadiusSqr float64) RGBA {
	_, n := EscapeIterations(c, maxIter, escapeRadiusSqr)
	if n == 0 {
		return RGBA{A: 1}
	}
	return HSVToRGBA(math.Mod(n*720, 360), 100, 100)
}
