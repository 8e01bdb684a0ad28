package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

type boxCall struct {
	center, size mgl32.Vec3
	color        color.RGBA
}

// recordingRenderer counts draw calls and keeps the filled boxes.
type recordingRenderer struct {
	frames, framesEnded int
	clears              []color.RGBA
	cameras             []Camera
	camerasEnded        int
	boxes               []boxCall
	wireBoxes           int
	lines               int
	texts               []string
	fps                 int
	pushes, pops        int
	now                 float64
}

func (r *recordingRenderer) BeginFrame() { r.frames++ }
func (r *recordingRenderer) EndFrame() { r.framesEnded++ }
func (r *recordingRenderer) Clear(c color.RGBA) { r.clears = append(r.clears, c) }
func (r *recordingRenderer) BeginCamera3D(cam Camera) { r.cameras = append(r.cameras, cam) }
func (r *recordingRenderer) EndCamera3D() { r.camerasEnded++ }
func (r *recordingRenderer) DrawBox(center, size mgl32.Vec3, c color.RGBA) {
	r.boxes = append(r.boxes, boxCall{center: center, size: size, color: c})
}
func (r *recordingRenderer) DrawWireBox(center, size mgl32.Vec3, c color.RGBA) { r.wireBoxes++ }
func (r *recordingRenderer) DrawLine3D(a, b mgl32.Vec3, c color.RGBA) { r.lines++ }
func (r *recordingRenderer) DrawText(text string, x, y, size int32, c color.RGBA) {
	r.texts = append(r.texts, text)
}
func (r *recordingRenderer) DrawFPS(x, y int32) { r.fps++ }
func (r *recordingRenderer) PushTransform(translate, axis mgl32.Vec3, angle float32) { r.pushes++ }
func (r *recordingRenderer) PopTransform() { r.pops++ }
func (r *recordingRenderer) CurrentTime() float64 { return r.now }

// fixedInput reports a constant pointer position.
type fixedInput struct {
	x, y  float32
	debug bool
}

func (in fixedInput) Pointer() (float32, float32) { return in.x, in.y }
func (in fixedInput) DebugOverlay() bool { return in.debug }

// centered leaves the camera at its base orientation.
var centered = fixedInput{x: pointerMidX, y: pointerMidY}

type memLog struct {
	lines []string
}

func (m *memLog) Log(line string) { m.lines = append(m.lines, line) }

func newTestLoop(p Params) (*Loop, *recordingRenderer) {
	if p.Seed == 0 {
		p.Seed = 42
	}
	r := &recordingRenderer{}
	return New(r, centered, p), r
}

// placeCube activates slot i with the given state.
func placeCube(l *Loop, i int, pos, vel, size mgl32.Vec3) *Cube {
	c := &l.cubes[i]
	c.Position = pos
	c.Velocity = vel
	c.Size = size
	c.RotationAxis = mgl32.Vec3{0, 1, 0}
	c.RotationAngle = 0
	c.Color = Red
	c.Active = true
	return c
}
