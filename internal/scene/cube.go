package scene

import (
	"image/color"

	"cubefall/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxCubes is the capacity of the cube pool.
const MaxCubes = 32

// Spawn placement ranges, relative to the camera basis.
const (
	cubeSizeMin    = 3.0
	cubeSizeMax    = 4.0
	spawnDistMin   = 12.0
	spawnDistMax   = 18.0
	spawnSideMin   = -5.0
	spawnSideMax   = 5.0
	spawnUpMin     = -1.0
	spawnUpMax     = 3.0
	spawnUpLift    = 6.0
	launchSpeedMin = 4.0
	launchSpeedMax = 6.0
	minAxisLength  = 1e-6
)

// Cube is one slot of the pool. Active=false means the slot is free and its other fields are stale.
// Position, Velocity and Size come from the embedded physics body.
type Cube struct {
	physics.Body
	RotationAxis  mgl32.Vec3
	RotationAngle float32 // radians
	Color         color.RGBA
	Active        bool
}

// Spawn activates the first free cube slot in front of cam. A full pool is a normal condition:
// nothing happens and Spawn returns false.
func (l *Loop) Spawn(cam Camera) bool {
	return l.spawn(cam) >= 0
}

// spawn returns the slot index used, or -1 when every slot is active.
func (l *Loop) spawn(cam Camera) int {
	slot := l.freeSlot()
	if slot < 0 {
		return -1
	}

	forward := cam.Forward()
	right := cam.Right()
	up := cam.Up

	s := l.randRange(cubeSizeMin, cubeSizeMax)
	c := &l.cubes[slot]
	c.Size = mgl32.Vec3{s, s, s}
	c.Color = Gray
	if l.rng.IntN(2) != 0 {
		c.Color = Red
	}

	dist := l.randRange(spawnDistMin, spawnDistMax)
	side := l.randRange(spawnSideMin, spawnSideMax)
	lift := l.randRange(spawnUpMin, spawnUpMax) + spawnUpLift
	c.Position = cam.Position.
		Add(forward.Mul(dist)).
		Add(right.Mul(side)).
		Add(up.Mul(lift))
	c.Velocity = forward.Mul(-l.randRange(launchSpeedMin, launchSpeedMax))

	axis := mgl32.Vec3{l.randRange(-1, 1), l.randRange(-1, 1), l.randRange(-1, 1)}
	if axis.Len() < minAxisLength {
		axis = mgl32.Vec3{0, 1, 0}
	}
	c.RotationAxis = axis.Normalize()
	c.RotationAngle = 0
	c.Active = true
	return slot
}

// freeSlot scans the pool for the first inactive cube.
func (l *Loop) freeSlot() int {
	for i := range l.cubes {
		if !l.cubes[i].Active {
			return i
		}
	}
	return -1
}

// UpdateAll advances every active cube by dt seconds: gravity, integration, rotation and ground
// bounce through the physics world, then retires cubes farther than the retire distance from cam.
// Rotation speed equals linear speed in radians per second.
func (l *Loop) UpdateAll(cam Camera, dt float32) {
	for i := range l.cubes {
		c := &l.cubes[i]
		if !c.Active {
			continue
		}
		l.world.Integrate(&c.Body, dt)
		c.RotationAngle += c.Speed() * dt
		l.world.ResolveGround(&c.Body)

		if c.Position.Sub(cam.Position).Len() > l.params.RetireDistance {
			c.Active = false
		}
	}
}

// ActiveCount returns the number of active cubes.
func (l *Loop) ActiveCount() int {
	n := 0
	for i := range l.cubes {
		if l.cubes[i].Active {
			n++
		}
	}
	return n
}

// Cubes returns copies of the active cubes in slot order.
func (l *Loop) Cubes() []Cube {
	out := make([]Cube, 0, MaxCubes)
	for _, c := range l.cubes {
		if c.Active {
			out = append(out, c)
		}
	}
	return out
}
