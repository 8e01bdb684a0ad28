package scene

import (
	"fmt"
	"math/rand/v2"
	"time"

	"cubefall/internal/debug"
	"cubefall/internal/physics"
)

// Params tunes the loop. DefaultParams matches the reference behavior; Seed 0 means time-based.
type Params struct {
	Gravity          float32
	Restitution      float32
	RestSpeed        float32
	RetireDistance   float32
	SpawnIntervalMin float32
	SpawnIntervalMax float32
	Sensitivity      float32
	SmoothingRate    float32
	Seed             uint64
}

// DefaultParams returns the standard tuning: gravity 9.8, bounce -0.3, rest below 1.0,
// retire beyond 80 units, spawn every 0.4–1.2 s, pointer sensitivity 10, smoothing rate 5.
func DefaultParams() Params {
	return Params{
		Gravity:          physics.DefaultGravity,
		Restitution:      physics.DefaultRestitution,
		RestSpeed:        physics.DefaultRestSpeed,
		RetireDistance:   80,
		SpawnIntervalMin: 0.4,
		SpawnIntervalMax: 1.2,
		Sensitivity:      10,
		SmoothingRate:    5,
	}
}

// Loop owns all scene state: the cube pool, the spawn timer and the camera. It is driven by
// calling Tick once per frame from a single goroutine; it does no locking.
type Loop struct {
	Camera Camera

	params   Params
	world    *physics.World
	cubes    [MaxCubes]Cube
	rng      *rand.Rand
	renderer Renderer
	input    Input
	overlay  *debug.Overlay
	log      Logger

	// Seconds as float64: a float32 sum stops advancing by 1/60 steps after a few days.
	elapsed       float64
	nextSpawnTime float64
	poolFullNoted bool
}

// New returns a loop with an empty pool and the default camera. The first Tick spawns a cube.
func New(r Renderer, in Input, p Params) *Loop {
	seed := p.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	world := physics.NewWorld()
	world.Gravity = p.Gravity
	world.Restitution = p.Restitution
	world.RestSpeed = p.RestSpeed
	return &Loop{
		Camera:   NewCamera(),
		params:   p,
		world:    world,
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		renderer: r,
		input:    in,
		overlay:  debug.New(),
	}
}

// SetLogger sets where spawn events are reported. nil disables logging.
func (l *Loop) SetLogger(log Logger) {
	l.log = log
}

// Params returns the loop's tuning.
func (l *Loop) Params() Params {
	return l.params
}

// Elapsed returns the simulated time in seconds (sum of all Tick dt values).
func (l *Loop) Elapsed() float64 {
	return l.elapsed
}

// NextSpawnTime returns the elapsed time at or after which the next spawn happens.
func (l *Loop) NextSpawnTime() float64 {
	return l.nextSpawnTime
}

// Tick advances the scene by dt seconds and draws one frame: spawn when the timer is due, update
// all cubes, steer the camera from the pointer, then issue draw calls. Negative dt counts as 0.
func (l *Loop) Tick(dt float32) {
	dt = max(dt, 0)
	l.elapsed += float64(dt)

	if l.elapsed >= l.nextSpawnTime {
		slot := l.spawn(l.Camera)
		l.nextSpawnTime = l.elapsed + float64(l.randRange(l.params.SpawnIntervalMin, l.params.SpawnIntervalMax))
		l.noteSpawn(slot)
	}

	l.UpdateAll(l.Camera, dt)

	px, py := l.input.Pointer()
	l.UpdateCameraOrientation(px, py, dt)

	l.overlay.SetShowStats(l.input.DebugOverlay())
	l.Draw()
}

// Stats returns the values shown by the debug overlay.
func (l *Loop) Stats() debug.Stats {
	return debug.Stats{
		ActiveCubes: l.ActiveCount(),
		MaxCubes:    MaxCubes,
		NextSpawnIn: float32(l.nextSpawnTime - l.elapsed),
		Yaw:         l.Camera.Yaw,
		Pitch:       l.Camera.Pitch,
	}
}

// noteSpawn logs a spawn, or the first skipped spawn after the pool fills up.
func (l *Loop) noteSpawn(slot int) {
	if l.log == nil {
		return
	}
	if slot < 0 {
		if !l.poolFullNoted {
			l.log.Log(fmt.Sprintf("Cube pool full (%d active), spawn skipped", MaxCubes))
			l.poolFullNoted = true
		}
		return
	}
	l.poolFullNoted = false
	l.log.Log(fmt.Sprintf("Spawned cube in slot %d, next in %.2f seconds", slot, l.nextSpawnTime-l.elapsed))
}

// randRange returns a uniform value in [lo, hi).
func (l *Loop) randRange(lo, hi float32) float32 {
	return lo + l.rng.Float32()*(hi-lo)
}
