package debug

import (
	"fmt"
	"image/color"
	"runtime"
)

const (
	fpsX          = 10
	fpsY          = 10
	statsX        = 10
	statsY        = 40
	statsFontSize = 20
	lineHeight    = statsFontSize + 4
	// updateInterval: only refresh stats text every N frames to reduce allocations.
	updateInterval = 30
)

var statsColor = color.RGBA{80, 80, 80, 255}

// TextRenderer is the subset of the scene renderer the overlay needs.
type TextRenderer interface {
	DrawText(text string, x, y, size int32, c color.RGBA)
	DrawFPS(x, y int32)
}

// Stats is a snapshot of scene state shown by the overlay.
type Stats struct {
	ActiveCubes int
	MaxCubes    int
	NextSpawnIn float32 // seconds
	Yaw         float32 // degrees
	Pitch       float32 // degrees
}

// Overlay draws the FPS counter every frame and, when ShowStats is true, a block of scene stats
// under it. Stats text is only recomputed every updateInterval frames.
type Overlay struct {
	ShowStats    bool
	frameCount   uint32
	lines        []string
	lastMemStats runtime.MemStats
}

// New returns an overlay with the stats block hidden.
func New() *Overlay {
	return &Overlay{}
}

// SetShowStats sets whether the stats block is drawn.
func (o *Overlay) SetShowStats(show bool) {
	o.ShowStats = show
}

// Draw renders the overlay. Call after the 3D pass, before the frame ends.
func (o *Overlay) Draw(r TextRenderer, s Stats) {
	o.frameCount++
	r.DrawFPS(fpsX, fpsY)
	if !o.ShowStats {
		o.lines = o.lines[:0]
		return
	}

	if len(o.lines) == 0 || o.frameCount%updateInterval == 0 {
		o.refresh(s)
	}
	y := int32(statsY)
	for _, line := range o.lines {
		r.DrawText(line, statsX, y, statsFontSize, statsColor)
		y += lineHeight
	}
}

// Lines returns the stats text as last drawn.
func (o *Overlay) Lines() []string {
	out := make([]string, len(o.lines))
	copy(out, o.lines)
	return out
}

func (o *Overlay) refresh(s Stats) {
	runtime.ReadMemStats(&o.lastMemStats)
	mb := float64(o.lastMemStats.Alloc) / (1024 * 1024)
	next := max(s.NextSpawnIn, 0)
	o.lines = append(o.lines[:0],
		fmt.Sprintf("Cubes: %d/%d", s.ActiveCubes, s.MaxCubes),
		fmt.Sprintf("Next spawn: %.2fs", next),
		fmt.Sprintf("Yaw: %.1f Pitch: %.1f", s.Yaw, s.Pitch),
		fmt.Sprintf("Mem: %.2f MiB", mb),
	)
}
