package graphics

import (
	"image/color"

	"cubefall/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer draws scene calls with raylib. It holds no state; the window must be open.
type Renderer struct{}

// NewRenderer returns a raylib-backed scene renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

var _ scene.Renderer = (*Renderer)(nil)

func vec3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}

func rlColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func (r *Renderer) BeginFrame() { rl.BeginDrawing() }

func (r *Renderer) EndFrame() { rl.EndDrawing() }

func (r *Renderer) Clear(c color.RGBA) { rl.ClearBackground(rlColor(c)) }

// BeginCamera3D starts a perspective 3D pass looking through cam.
func (r *Renderer) BeginCamera3D(cam scene.Camera) {
	rl.BeginMode3D(rl.Camera3D{
		Position:   vec3(cam.Position),
		Target:     vec3(cam.Target),
		Up:         vec3(cam.Up),
		Fovy:       cam.FovY,
		Projection: rl.CameraPerspective,
	})
}

func (r *Renderer) EndCamera3D() { rl.EndMode3D() }

func (r *Renderer) DrawBox(center, size mgl32.Vec3, c color.RGBA) {
	rl.DrawCubeV(vec3(center), vec3(size), rlColor(c))
}

func (r *Renderer) DrawWireBox(center, size mgl32.Vec3, c color.RGBA) {
	rl.DrawCubeWiresV(vec3(center), vec3(size), rlColor(c))
}

func (r *Renderer) DrawLine3D(a, b mgl32.Vec3, c color.RGBA) {
	rl.DrawLine3D(vec3(a), vec3(b), rlColor(c))
}

func (r *Renderer) DrawText(text string, x, y, size int32, c color.RGBA) {
	rl.DrawText(text, x, y, size, rlColor(c))
}

func (r *Renderer) DrawFPS(x, y int32) { rl.DrawFPS(x, y) }

// PushTransform pushes the rlgl matrix stack and applies translate then a rotation of angle
// radians around axis. Draws until PopTransform are in that local frame.
func (r *Renderer) PushTransform(translate, axis mgl32.Vec3, angle float32) {
	rl.PushMatrix()
	rl.Translatef(translate.X(), translate.Y(), translate.Z())
	rl.Rotatef(angle*rl.Rad2deg, axis.X(), axis.Y(), axis.Z())
}

func (r *Renderer) PopTransform() { rl.PopMatrix() }

func (r *Renderer) CurrentTime() float64 { return rl.GetTime() }
