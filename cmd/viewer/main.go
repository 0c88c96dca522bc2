// viewer is the interactive desktop host for the fractal core.
// It owns the window, the event loop and the input translation: mouse drag
// pans by holding the grabbed plane point under the cursor, the wheel steps
// the zoom, number keys jump to landmark views. The core recomputes the full
// frame whenever the camera changed.
package main

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	fractal "github.com/ryanc-me/go-fractal-viewer"
	"github.com/ryanc-me/go-fractal-viewer/render"
)

const (
	initialWidth  = 960
	initialHeight = 720
)

// landmarks jumped to with keys 1..7.
var landmarks = []fractal.View{
	fractal.Home,
	fractal.SeahorseValley,
	fractal.ElephantValley,
	fractal.SpiralMinibrot,
	fractal.TripleSpiral,
	fractal.ValleyOfTheDragon,
	fractal.MinibrotInMiniSpiral,
}

type Game struct {
	cam      *fractal.CameraState
	renderer *render.Renderer
	frame    *ebiten.Image

	dragging  bool
	cursorPos mgl64.Vec2      // cursor position, refreshed every tick
	grabPos   mgl64.Vec2      // cursor position when the drag started
	grabPoint fractal.Complex // plane point under the cursor at drag start
}

func NewGame() *Game {
	return &Game{
		cam:      fractal.NewCameraState(initialWidth, initialHeight, fractal.DefaultScale, fractal.DefaultOrigin),
		renderer: render.New(render.Options{}),
		frame:    ebiten.NewImage(initialWidth, initialHeight),
	}
}

func (g *Game) Update() error {
	cx, cy := ebiten.CursorPosition()
	g.cursorPos = mgl64.Vec2{float64(cx), float64(cy)}

	// Drag pan: grab the plane point under the cursor on press and keep it
	// under the cursor while the button is held.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.grabPos = g.cursorPos
		g.grabPoint = g.cam.PixelToPoint(g.grabPos.X(), g.grabPos.Y())
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}
	if g.dragging && g.cursorPos.Sub(g.grabPos).Len() > 0 {
		next := dragOrigin(g.cam, g.grabPoint, g.cursorPos)
		if next != g.cam.Origin {
			g.cam.SetOrigin(next)
		}
	}

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		g.cam.ZoomAt(g.cursorPos.X(), g.cursorPos.Y(), wheelY)
	}

	for i, v := range landmarks {
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit1 + ebiten.Key(i)) {
			g.jumpTo(v)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.jumpTo(fractal.Home)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// Only recompute the frame when the camera actually changed.
	if g.cam.TakeRedraw() {
		img, err := g.renderer.RenderFrame(*g.cam)
		if err != nil {
			return fmt.Errorf("render frame: %w", err)
		}
		g.frame.WritePixels(img.Pix)
	}
	return nil
}

// dragOrigin returns the pan origin that puts grabPoint back under the
// cursor with the camera's current bounds.
func dragOrigin(cam *fractal.CameraState, grabPoint fractal.Complex, cursor mgl64.Vec2) fractal.Complex {
	under := cam.PixelToPoint(cursor.X(), cursor.Y())
	return grabPoint.Add(cam.Origin).Sub(under)
}

func (g *Game) jumpTo(v fractal.View) {
	g.cam.SetOrigin(v.Origin)
	g.cam.SetZoom(v.Zoom)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.frame, nil)
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"zoom %gx | %.0f fps\ndrag: pan | wheel: zoom | 1-%d: landmarks | R: reset | Esc: quit",
		g.cam.Zoom, ebiten.ActualFPS(), len(landmarks)))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if float64(outsideWidth) != g.cam.Width || float64(outsideHeight) != g.cam.Height {
		g.cam.Resize(float64(outsideWidth), float64(outsideHeight))
		g.frame = ebiten.NewImage(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	ebiten.SetWindowSize(initialWidth, initialHeight)
	ebiten.SetWindowTitle("Interactive Fractal Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(NewGame())
}
