package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	gridLines     = 10 // lines on each side of the origin
	gridSpacing   = 1.0
	gridThickness = 3
	// gridStrokeGap is the offset between the parallel strokes that make one thick line.
	gridStrokeGap = 0.02
)

var (
	staticCubePosition = mgl32.Vec3{3, 2, 0}
	staticCubeSize     = mgl32.Vec3{2, 2, 2}
)

// Draw issues one frame of draw calls: static cube, active cubes and the ground grid inside the
// 3D pass, then the overlay.
func (l *Loop) Draw() {
	r := l.renderer
	r.BeginFrame()
	r.Clear(RayWhite)

	r.BeginCamera3D(l.Camera)
	r.DrawBox(staticCubePosition, staticCubeSize, Gray)
	r.DrawWireBox(staticCubePosition, staticCubeSize, DarkGray)
	for i := range l.cubes {
		if l.cubes[i].Active {
			drawCube(r, &l.cubes[i])
		}
	}
	drawThickGrid(r, gridLines, gridSpacing, gridThickness, Gray)
	r.EndCamera3D()

	l.overlay.Draw(r, l.Stats())
	r.EndFrame()
}

// drawCube draws a unit-centered box scaled to the cube size, rotated around its axis.
func drawCube(r Renderer, c *Cube) {
	r.PushTransform(c.Position, c.RotationAxis, c.RotationAngle)
	r.DrawBox(mgl32.Vec3{}, c.Size, c.Color)
	r.DrawWireBox(mgl32.Vec3{}, c.Size, DarkGray)
	r.PopTransform()
}

// drawThickGrid draws a square grid on the XZ plane (Y=0) reaching size*spacing from the origin.
// Each grid line is thickness strokes offset by gridStrokeGap, since 3D lines have no width.
func drawThickGrid(r Renderer, size int, spacing float32, thickness int, c color.RGBA) {
	half := float32(size) * spacing
	for i := -size; i <= size; i++ {
		at := float32(i) * spacing
		for t := 0; t < thickness; t++ {
			offset := float32(t-thickness/2) * gridStrokeGap
			r.DrawLine3D(mgl32.Vec3{-half, 0, at + offset}, mgl32.Vec3{half, 0, at + offset}, c)
			r.DrawLine3D(mgl32.Vec3{at + offset, 0, -half}, mgl32.Vec3{at + offset, 0, half}, c)
		}
	}
}
