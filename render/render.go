// Package render turns a camera snapshot into pixels. It realizes the
// data-parallel contract of the core on the CPU: the frame is split into
// tiles, tiles are fanned out to a goroutine pool, and each pixel runs the
// pure {PixelToPoint → EscapeIterations → HSV} pipeline independently.
package render

import (
	"image"
	"runtime"
	"sync"

	fractal "github.com/ryanc-me/go-fractal-viewer"
)

// Options tune a Renderer. The zero value picks sensible defaults.
type Options struct {
	TileSize        int     // tile edge in pixels; default 64
	Workers         int     // goroutines per frame; default runtime.NumCPU()
	MaxIter         int     // iteration cap; default fractal.DefaultMaxIter
	EscapeRadiusSqr float64 // bailout threshold; default fractal.DefaultEscapeRadiusSqr
}

func (o Options) withDefaults() Options {
	if o.TileSize <= 0 {
		o.TileSize = 64
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.MaxIter <= 0 {
		o.MaxIter = fractal.DefaultMaxIter
	}
	if o.EscapeRadiusSqr <= 0 {
		o.EscapeRadiusSqr = fractal.DefaultEscapeRadiusSqr
	}
	return o
}

// Renderer renders whole frames on a pool of goroutines. It keeps no state
// between frames: the same camera snapshot always produces the same pixels,
// and concurrent RenderFrame calls do not interfere.
type Renderer struct {
	opts Options
}

var _ fractal.Renderer = (*Renderer)(nil)

func New(opts Options) *Renderer {
	return &Renderer{opts: opts.withDefaults()}
}

// RenderFrame computes every pixel of the viewport described by cam from
// scratch. cam is shared read-only across the workers; tiles never overlap,
// so the workers write disjoint regions of the frame without locking.
func (r *Renderer) RenderFrame(cam fractal.CameraState) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, int(cam.Width), int(cam.Height)))

	work := make(chan image.Rectangle)
	var wg sync.WaitGroup
	for i := 0; i < r.opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tile := range work {
				r.renderTile(img, cam, tile)
			}
		}()
	}

	for _, tile := range splitTiles(img.Bounds(), r.opts.TileSize) {
		work <- tile
	}
	close(work)
	wg.Wait()

	return img, nil
}

func (r *Renderer) renderTile(img *image.RGBA, cam fractal.CameraState, tile image.Rectangle) {
	for py := tile.Min.Y; py < tile.Max.Y; py++ {
		for px := tile.Min.X; px < tile.Max.X; px++ {
			c := cam.PixelToPoint(float64(px), float64(py))
			col := fractal.ShadePoint(c, r.opts.MaxIter, r.opts.EscapeRadiusSqr)
			img.SetRGBA(px, py, col.Color())
		}
	}
}

// splitTiles splits r into size×size tiles. Tiles at the right and bottom
// edges shrink to fit, so the tiles cover r exactly once.
func splitTiles(r image.Rectangle, size int) []image.Rectangle {
	if size <= 0 {
		panic("tile size must be positive")
	}

	var tiles []image.Rectangle
	for y := r.Min.Y; y < r.Max.Y; y += size {
		for x := r.Min.X; x < r.Max.X; x += size {
			tiles = append(tiles, image.Rect(
				x,
				y,
				min(x+size, r.Max.X),
				min(y+size, r.Max.Y),
			))
		}
	}
	return tiles
}
