package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Palette used by the scene. Values match raylib's built-in colors of the same names.
var (
	RayWhite = color.RGBA{245, 245, 245, 255}
	Gray     = color.RGBA{130, 130, 130, 255}
	DarkGray = color.RGBA{80, 80, 80, 255}
	Red      = color.RGBA{230, 41, 55, 255}
)

// Renderer is the drawing collaborator. The scene only issues calls; window, projection and
// primitive rasterization live behind this interface (see internal/graphics for the raylib one).
// PushTransform/PopTransform bracket draws that should be translated to translate and rotated by
// angle radians around axis, like a matrix stack push/pop.
type Renderer interface {
	BeginFrame()
	EndFrame()
	Clear(c color.RGBA)
	BeginCamera3D(cam Camera)
	EndCamera3D()
	DrawBox(center, size mgl32.Vec3, c color.RGBA)
	DrawWireBox(center, size mgl32.Vec3, c color.RGBA)
	DrawLine3D(a, b mgl32.Vec3, c color.RGBA)
	DrawText(text string, x, y, size int32, c color.RGBA)
	DrawFPS(x, y int32)
	PushTransform(translate, axis mgl32.Vec3, angle float32)
	PopTransform()
	// CurrentTime returns seconds since the window was created. The host derives each frame's dt
	// from it.
	CurrentTime() float64
}

// Input is the pointer/keyboard collaborator.
type Input interface {
	// Pointer returns the pointer position normalized to [0,1] on both axes, origin top-left.
	Pointer() (x, y float32)
	// DebugOverlay reports whether the stats overlay should be drawn.
	DebugOverlay() bool
}

// Logger receives one line per notable scene event (spawns, pool exhaustion).
type Logger interface {
	Log(line string)
}
