package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"net/http"

	"github.com/coder/websocket"

	fractal "github.com/ryanc-me/go-fractal-viewer"
	"github.com/ryanc-me/go-fractal-viewer/render"
)

// Viewport before the page reports its real size.
const (
	defaultWidth  = 960
	defaultHeight = 720
)

// frameHandler handles the http ws endpoint: each accepted websocket becomes
// an independent camera session.
func frameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}

		log.Printf("got connection from: %s", r.RemoteAddr)
		if err := newSession(c).serve(r.Context()); err != nil {
			log.Printf("session %s ended: %v", r.RemoteAddr, err)
		}
	}
}

// cameraOp is one camera update sent by the page. Fields beyond Op stay zero
// unless the op uses them.
type cameraOp struct {
	Op     string  `json:"op"` // "pan", "zoom", "resize" or "reset"
	DX     float64 `json:"dx,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Dir    float64 `json:"dir,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// session is the accumulated pan/zoom state for one connection. The camera
// is mutated only between frames, on this goroutine; every render sees an
// immutable snapshot.
type session struct {
	conn     *websocket.Conn
	cam      *fractal.CameraState
	renderer *render.Renderer
}

func newSession(conn *websocket.Conn) *session {
	return &session{
		conn:     conn,
		cam:      fractal.NewCameraState(defaultWidth, defaultHeight, fractal.DefaultScale, fractal.DefaultOrigin),
		renderer: render.New(render.Options{}),
	}
}

// serve applies camera ops as they arrive and answers every change with a
// freshly computed frame. Returns when the connection or the request context
// ends.
func (s *session) serve(ctx context.Context) error {
	defer s.conn.Close(websocket.StatusNormalClosure, "")

	if err := s.sendFrame(ctx); err != nil {
		return err
	}

	for {
		typ, data, err := s.conn.Read(ctx)
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}
		if typ != websocket.MessageText {
			continue
		}

		var op cameraOp
		if err := json.Unmarshal(data, &op); err != nil {
			return fmt.Errorf("decode camera op: %w", err)
		}
		s.apply(op)

		if s.cam.TakeRedraw() {
			if err := s.sendFrame(ctx); err != nil {
				return err
			}
		}
	}
}

func (s *session) apply(op cameraOp) {
	switch op.Op {
	case "pan":
		s.cam.MoveOrigin(op.DX, op.DY)
	case "zoom":
		s.cam.ZoomAt(op.X, op.Y, op.Dir)
	case "resize":
		s.cam.Resize(op.Width, op.Height)
	case "reset":
		s.cam.SetOrigin(fractal.Home.Origin)
		s.cam.SetZoom(fractal.Home.Zoom)
	default:
		log.Printf("unknown camera op %q", op.Op)
	}
}

func (s *session) sendFrame(ctx context.Context) error {
	img, err := s.renderer.RenderFrame(*s.cam)
	if err != nil {
		return fmt.Errorf("render frame: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	return s.conn.Write(ctx, websocket.MessageBinary, buf.Bytes())
}
