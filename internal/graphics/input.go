package graphics

import (
	"cubefall/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DebugToggleKey flips the stats overlay.
const DebugToggleKey = rl.KeyF3

// Input reads the mouse and keyboard through raylib. Call Poll once per frame before the scene
// reads it.
type Input struct {
	debug bool
	x, y  float32
}

var _ scene.Input = (*Input)(nil)

// NewInput returns input with the overlay initially shown or hidden.
func NewInput(debug bool) *Input {
	return &Input{debug: debug, x: 0.5, y: 0.35}
}

// Poll samples the pointer and handles the debug toggle key.
func (in *Input) Poll() {
	if rl.IsKeyPressed(DebugToggleKey) {
		in.debug = !in.debug
	}
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	if w <= 0 || h <= 0 {
		return
	}
	pos := rl.GetMousePosition()
	in.x = scene.NormalizePointer(pos.X, float32(w))
	in.y = scene.NormalizePointer(pos.Y, float32(h))
}

// Pointer returns the last polled pointer position in [0,1]².
func (in *Input) Pointer() (float32, float32) { return in.x, in.y }

// DebugOverlay reports whether the stats overlay is on.
func (in *Input) DebugOverlay() bool { return in.debug }
