package fractal

// Default view: the whole set framed in the viewport, the classic -2..1
// real extent centered a touch left of zero.
const DefaultScale = 3.0

var DefaultOrigin = Complex{Re: -0.5, Im: 0}

// ComputeBounds derives the min/max plane coordinates visible in a
// width×height viewport centered on origin. The shorter screen dimension
// always maps to exactly scale/zoom of plane span and the longer one scales
// up proportionally, so a circle on the plane stays a circle on screen.
//
// Callers must supply positive width, height, scale and zoom; degenerate
// inputs yield degenerate bounds rather than an error. This is the hot-path
// contract: no validation, no failure modes.
func ComputeBounds(width, height, scale float64, origin Complex, zoom float64) (min, max Complex) {
	ratioX, ratioY := 1.0, 1.0
	if width > height {
		ratioY = width / height
	} else {
		ratioX = height / width
	}

	halfRe := scale / 2 / ratioX
	halfIm := scale / 2 / ratioY

	min = Complex{Re: origin.Re - halfRe/zoom, Im: origin.Im - halfIm/zoom}
	max = Complex{Re: origin.Re + halfRe/zoom, Im: origin.Im + halfIm/zoom}
	return min, max
}

// PixelToPoint maps a screen pixel (origin top-left, y growing downward) to
// its point on the complex plane. Pixel (0,0) maps to (min.Re, min.Im) and
// (width,height) to (max.Re, max.Im). The vertical axis is inverted relative
// to the mathematical convention; the h subtraction below encodes that and
// any sign change flips the image.
func PixelToPoint(x, y, width, height float64, min, max Complex) Complex {
	w := max.Re - min.Re
	h := min.Im - max.Im
	return Complex{
		Re: min.Re + x*w/width,
		Im: min.Im - y*h/height,
	}
}

// CameraState is the per-frame camera snapshot. Min and Max are derived from
// the other fields and recomputed whenever one of them changes, so they are
// always consistent at mapping time. A frame renderer receives the struct by
// value: an immutable broadcast to every parallel pixel evaluation, no
// locking involved.
type CameraState struct {
	Width, Height float64 // viewport dimensions, in pixels
	Origin        Complex // plane point at the viewport center
	Scale         float64 // plane span of the shorter screen dimension at zoom 1
	Zoom          float64 // multiplier, larger = closer

	Min, Max Complex // plane points mapped to the viewport corners

	needsRedraw bool
}

// NewCameraState builds a camera at zoom 1 with bounds already derived.
func NewCameraState(width, height, scale float64, origin Complex) *CameraState {
	c := &CameraState{
		Width:       width,
		Height:      height,
		Origin:      origin,
		Scale:       scale,
		Zoom:        1,
		needsRedraw: true,
	}
	c.updateBounds()
	return c
}

func (c *CameraState) updateBounds() {
	c.Min, c.Max = ComputeBounds(c.Width, c.Height, c.Scale, c.Origin, c.Zoom)
}

// PixelToPoint maps a viewport pixel through the current bounds.
func (c CameraState) PixelToPoint(x, y float64) Complex {
	return PixelToPoint(x, y, c.Width, c.Height, c.Min, c.Max)
}

// Resize updates the viewport dimensions, keeping the view centered on the
// current origin.
func (c *CameraState) Resize(width, height float64) {
	c.Width = width
	c.Height = height
	c.updateBounds()
	c.needsRedraw = true
}

// SetOrigin pans the view so origin sits at the viewport center.
func (c *CameraState) SetOrigin(origin Complex) {
	c.Origin = origin
	c.updateBounds()
	c.needsRedraw = true
}

// MoveOrigin pans by a pixel delta. The plane delta per pixel comes from the
// current bounds, so pan speed tracks the zoom level; the (min−max) order
// makes the content follow the cursor rather than run from it.
func (c *CameraState) MoveOrigin(dxPixels, dyPixels float64) {
	c.SetOrigin(Complex{
		Re: c.Origin.Re + (c.Min.Re-c.Max.Re)/c.Width*dxPixels,
		Im: c.Origin.Im + (c.Min.Im-c.Max.Im)/c.Height*dyPixels,
	})
}

// SetZoom overrides the zoom level, zooming about the viewport center.
func (c *CameraState) SetZoom(zoom float64) {
	c.Zoom = zoom
	c.updateBounds()
	c.needsRedraw = true
}

// ZoomAt steps the zoom by one wheel notch: dir > 0 doubles it, dir < 0
// halves it. Zooming happens about the viewport center; x and y are accepted
// so that keeping the point under the cursor stationary can be added without
// touching callers.
// TODO: solve for the origin that keeps PixelToPoint(x, y) fixed across the
// zoom step.
func (c *CameraState) ZoomAt(x, y, dir float64) {
	switch {
	case dir > 0:
		c.Zoom *= 2
	case dir < 0:
		c.Zoom /= 2
	}
	c.updateBounds()
	c.needsRedraw = true
}

// TakeRedraw reports whether the camera changed since the last call and
// clears the flag. Hosts use it to skip recomputing identical frames.
func (c *CameraState) TakeRedraw() bool {
	r := c.needsRedraw
	c.needsRedraw = false
	return r
}
