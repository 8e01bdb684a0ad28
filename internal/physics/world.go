package physics

import "github.com/chewxy/math32"

const (
	// DefaultGravity is the downward acceleration in units per second squared.
	DefaultGravity = 9.8
	// DefaultRestitution multiplies vertical velocity on ground contact. Negative flips direction.
	DefaultRestitution = -0.3
	// DefaultRestSpeed: vertical speeds below this after a bounce are zeroed so bodies settle.
	DefaultRestSpeed = 1.0
)

// World holds the integration constants: gravity along -Y and the ground bounce response.
// There is one static collider, the ground plane at Y=0; bodies do not collide with each other.
type World struct {
	Gravity     float32
	Restitution float32
	RestSpeed   float32
}

// NewWorld returns a world with default gravity and bounce settings.
func NewWorld() *World {
	return &World{
		Gravity:     DefaultGravity,
		Restitution: DefaultRestitution,
		RestSpeed:   DefaultRestSpeed,
	}
}

// Integrate applies gravity to b's velocity, then moves b by its velocity over dt seconds.
// Ground contact is not resolved; call ResolveGround afterwards.
func (w *World) Integrate(b *Body, dt float32) {
	b.Velocity[1] -= w.Gravity * dt
	b.Position = b.Position.Add(b.Velocity.Mul(dt))
}

// ResolveGround pushes a body whose lower face is below Y=0 back onto the ground, reflects and
// damps its vertical velocity and zeroes it below RestSpeed to stop endless micro-bounces.
// Horizontal velocity is left untouched (no friction).
func (w *World) ResolveGround(b *Body) bool {
	if b.Bottom() >= 0 {
		return false
	}
	b.Position[1] = b.Size.Y() * 0.5
	b.Velocity[1] *= w.Restitution
	if math32.Abs(b.Velocity.Y()) < w.RestSpeed {
		b.Velocity[1] = 0
	}
	return true
}
