// Package fractal is the core of an interactive Mandelbrot viewer: the
// camera-to-plane mapping, the escape-time evaluator and the hue-based color
// mapping. Everything here is pure and per-pixel independent; the render
// package fans it out across a frame and the cmd hosts own windows, input
// translation and transport.
package fractal

import "image"

// Renderer renders one full frame for the given camera snapshot.
// Implementations must treat cam as immutable and recompute every covered
// pixel from scratch; nothing may survive from earlier frames.
type Renderer interface {
	RenderFrame(cam CameraState) (*image.RGBA, error)
}

// View is a named landmark: a pan origin plus the zoom that frames it.
type View struct {
	Origin Complex
	Zoom   float64
}

// Classic regions / landmarks in the Mandelbrot set, expressed as camera
// targets. Jump to them with the viewer's number keys or snapshot's -view.
var (
	// Home frames the full set
	Home = View{Origin: Complex{Re: -0.5, Im: 0}, Zoom: 1}

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = View{Origin: Complex{Re: -0.75, Im: 0.1}, Zoom: 30}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = View{Origin: Complex{Re: -1.8, Im: -0.06}, Zoom: 30}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = View{Origin: Complex{Re: -0.74275, Im: 0.13175}, Zoom: 2000}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = View{Origin: Complex{Re: -0.7465, Im: 0.0965}, Zoom: 1000}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = View{Origin: Complex{Re: -0.7375, Im: 0.1825}, Zoom: 600}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = View{Origin: Complex{Re: -1.73825, Im: -0.02275}, Zoom: 2000}
)

// Views indexes the landmarks by the names the snapshot tool accepts.
var Views = map[string]View{
	"home":                    Home,
	"seahorse-valley":         SeahorseValley,
	"elephant-valley":         ElephantValley,
	"spiral-minibrot":         SpiralMinibrot,
	"triple-spiral":           TripleSpiral,
	"valley-of-the-dragon":    ValleyOfTheDragon,
	"minibrot-in-mini-spiral": MinibrotInMiniSpiral,
}
