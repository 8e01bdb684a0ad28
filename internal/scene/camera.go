package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Orientation band, in degrees. Yaw and pitch never leave base±AngleBand.
const (
	BaseYaw   = -135.0
	BasePitch = -35.0
	AngleBand = 25.0
)

// Pointer response. The horizontal midpoint is the screen center; the vertical midpoint sits
// higher so the lower part of the screen maps to a longer, gentler pitch range.
const (
	pointerMidX = 0.5
	pointerMidY = 0.35
	// degreesPerUnit: at the default sensitivity (10) a pointer at either edge asks for the full band.
	degreesPerUnit = 2.5
)

// Camera is a perspective camera plus the smoothed yaw/pitch (degrees) that drive its target.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	FovY     float32
	Yaw      float32
	Pitch    float32
}

// NewCamera returns the default camera: position (10,10,10), looking along base yaw/pitch
// (roughly at the origin), up +Y, 45° vertical field of view.
func NewCamera() Camera {
	c := Camera{
		Position: mgl32.Vec3{10, 10, 10},
		Up:       mgl32.Vec3{0, 1, 0},
		FovY:     45,
		Yaw:      BaseYaw,
		Pitch:    BasePitch,
	}
	c.Target = c.Position.Add(Direction(c.Yaw, c.Pitch))
	return c
}

// Forward returns the normalized view direction.
func (c Camera) Forward() mgl32.Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}

// Right returns the normalized right vector (forward × up).
func (c Camera) Right() mgl32.Vec3 {
	return c.Forward().Cross(c.Up).Normalize()
}

// Direction converts yaw/pitch in degrees to a unit vector (spherical to Cartesian, Y up).
func Direction(yaw, pitch float32) mgl32.Vec3 {
	y := mgl32.DegToRad(yaw)
	p := mgl32.DegToRad(pitch)
	return mgl32.Vec3{
		math32.Cos(p) * math32.Cos(y),
		math32.Sin(p),
		math32.Cos(p) * math32.Sin(y),
	}
}

// OrientationTarget maps a normalized pointer position to the yaw/pitch the camera should settle
// at, clamped to the band. Pitch uses separate scales above and below pointerMidY so that both
// halves of the screen span the full band.
func OrientationTarget(px, py, sensitivity float32) (yaw, pitch float32) {
	px = clampPointer(px, pointerMidX)
	py = clampPointer(py, pointerMidY)

	nx := (px - pointerMidX) / pointerMidX
	var ny float32
	if py < pointerMidY {
		ny = (py - pointerMidY) / pointerMidY
	} else {
		ny = (py - pointerMidY) / (1 - pointerMidY)
	}

	scale := sensitivity * degreesPerUnit
	return clampBand(BaseYaw+nx*scale, BaseYaw), clampBand(BasePitch-ny*scale, BasePitch)
}

// clampBand limits an angle to base±AngleBand; float rounding in the smoothing step can land a
// hair outside otherwise.
func clampBand(angle, base float32) float32 {
	return mgl32.Clamp(angle, base-AngleBand, base+AngleBand)
}

// NormalizePointer maps a pixel coordinate to [0,1] across extent (window width or height),
// clamping positions outside the window. A non-positive extent maps to 0.
func NormalizePointer(pixel, extent float32) float32 {
	if extent <= 0 {
		return 0
	}
	return clampPointer(pixel/extent, 0)
}

// clampPointer limits v to [0,1]; NaN maps to mid.
func clampPointer(v, mid float32) float32 {
	if math32.IsNaN(v) {
		return mid
	}
	return mgl32.Clamp(v, 0, 1)
}

// UpdateCameraOrientation moves the loop camera's yaw/pitch toward the pointer-derived target
// by a factor of SmoothingRate*dt and re-aims the camera. The factor is capped at 1 so a long
// frame snaps to the target instead of overshooting; below that the smoothing stays frame-rate
// dependent.
func (l *Loop) UpdateCameraOrientation(px, py, dt float32) Camera {
	targetYaw, targetPitch := OrientationTarget(px, py, l.params.Sensitivity)
	k := mgl32.Clamp(l.params.SmoothingRate*dt, 0, 1)

	c := &l.Camera
	c.Yaw = clampBand(c.Yaw+(targetYaw-c.Yaw)*k, BaseYaw)
	c.Pitch = clampBand(c.Pitch+(targetPitch-c.Pitch)*k, BasePitch)
	c.Target = c.Position.Add(Direction(c.Yaw, c.Pitch))
	return *c
}
