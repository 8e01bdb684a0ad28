package scene

// Clock reports seconds since the window was created. Renderer satisfies it.
type Clock interface {
	CurrentTime() float64
}

// FrameTimer turns absolute clock readings into per-frame deltas.
type FrameTimer struct {
	clock Clock
	last  float64
}

// NewFrameTimer starts timing from the clock's current reading.
func NewFrameTimer(clock Clock) *FrameTimer {
	return &FrameTimer{clock: clock, last: clock.CurrentTime()}
}

// Next returns the seconds elapsed since the previous call (or since NewFrameTimer).
// A clock that steps backwards yields 0.
func (f *FrameTimer) Next() float32 {
	now := f.clock.CurrentTime()
	dt := max(now-f.last, 0)
	f.last = now
	return float32(dt)
}
