package main

import (
	"encoding/json"
	"testing"

	fractal "github.com/ryanc-me/go-fractal-viewer"
)

// TestApplyCameraOps: decoded page messages drive the camera the same way
// the desktop host's direct calls do.
func TestApplyCameraOps(t *testing.T) {
	s := &session{cam: fractal.NewCameraState(defaultWidth, defaultHeight, fractal.DefaultScale, fractal.DefaultOrigin)}
	s.cam.TakeRedraw()

	tests := []struct {
		name  string
		raw   string
		check func(t *testing.T, cam *fractal.CameraState)
	}{
		{
			name: "zoom in doubles",
			raw:  `{"op":"zoom","x":10,"y":10,"dir":1}`,
			check: func(t *testing.T, cam *fractal.CameraState) {
				if cam.Zoom != 2 {
					t.Errorf("zoom = %v, want 2", cam.Zoom)
				}
			},
		},
		{
			name: "resize updates the viewport",
			raw:  `{"op":"resize","width":320,"height":200}`,
			check: func(t *testing.T, cam *fractal.CameraState) {
				if cam.Width != 320 || cam.Height != 200 {
					t.Errorf("viewport = %vx%v, want 320x200", cam.Width, cam.Height)
				}
			},
		},
		{
			name: "pan moves the origin",
			raw:  `{"op":"pan","dx":50,"dy":0}`,
			check: func(t *testing.T, cam *fractal.CameraState) {
				if cam.Origin.Re >= fractal.DefaultOrigin.Re {
					t.Errorf("origin.Re = %v, want to the left of %v", cam.Origin.Re, fractal.DefaultOrigin.Re)
				}
			},
		},
		{
			name: "reset returns home",
			raw:  `{"op":"reset"}`,
			check: func(t *testing.T, cam *fractal.CameraState) {
				if cam.Origin != fractal.Home.Origin || cam.Zoom != fractal.Home.Zoom {
					t.Errorf("camera = (%v, %v), want home", cam.Origin, cam.Zoom)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var op cameraOp
			if err := json.Unmarshal([]byte(tt.raw), &op); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			s.apply(op)
			if !s.cam.TakeRedraw() {
				t.Error("camera op should mark the camera for redraw")
			}
			tt.check(t, s.cam)
		})
	}
}
