package physics

import "github.com/go-gl/mathgl/mgl32"

// Body is a box-shaped rigid body with position (center), velocity and size (full extents).
// The ground is the plane Y=0; a body rests on it when Position.Y == Size.Y/2.
type Body struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Size     mgl32.Vec3
}

// Bottom returns the height of the body's lower face.
func (b *Body) Bottom() float32 {
	return b.Position.Y() - b.Size.Y()*0.5
}

// Speed returns the length of the velocity vector.
func (b *Body) Speed() float32 {
	return b.Velocity.Len()
}
