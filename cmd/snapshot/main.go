// snapshot renders a single frame to a PNG file. Useful for wallpapers and
// for checking landmark coordinates without opening a window.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	fractal "github.com/ryanc-me/go-fractal-viewer"
	"github.com/ryanc-me/go-fractal-viewer/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	var (
		width   = flag.Int("width", 1920, "image width in pixels")
		height  = flag.Int("height", 1080, "image height in pixels")
		view    = flag.String("view", "", "landmark to render (home, seahorse-valley, ...); overrides -re/-im/-zoom")
		re      = flag.Float64("re", fractal.DefaultOrigin.Re, "real part of the pan origin")
		im      = flag.Float64("im", fractal.DefaultOrigin.Im, "imaginary part of the pan origin")
		zoom    = flag.Float64("zoom", 1, "zoom multiplier, larger is closer")
		maxIter = flag.Int("iter", fractal.DefaultMaxIter, "iteration cap")
		out     = flag.String("o", "fractal.png", "output file")
	)
	flag.Parse()

	// The core does not validate, so the host must.
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("width and height must be positive")
	}
	if *zoom <= 0 {
		return fmt.Errorf("zoom must be positive")
	}
	if *maxIter < 1 {
		return fmt.Errorf("iter must be at least 1")
	}

	origin := fractal.Complex{Re: *re, Im: *im}
	z := *zoom
	if *view != "" {
		v, ok := fractal.Views[*view]
		if !ok {
			return fmt.Errorf("unknown view %q", *view)
		}
		origin, z = v.Origin, v.Zoom
	}

	cam := fractal.NewCameraState(float64(*width), float64(*height), fractal.DefaultScale, origin)
	cam.SetZoom(z)

	log.Printf("rendering %dx%d at %gx zoom", *width, *height, z)
	r := render.New(render.Options{MaxIter: *maxIter})
	img, err := r.RenderFrame(*cam)
	if err != nil {
		return fmt.Errorf("render frame: %w", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}

	log.Printf("saved to %q", *out)
	return nil
}
