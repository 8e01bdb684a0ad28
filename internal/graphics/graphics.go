package graphics

import (
	"errors"

	"cubefall/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrNoWindow is returned when raylib could not create the window or its GL context.
var ErrNoWindow = errors.New("graphics: window could not be created")

// Initialize opens a resizable window with MSAA and caps the frame rate at targetFPS (0 = uncapped).
// Must be called from the main goroutine before Run.
func Initialize(width, height int, title string, targetFPS int) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(width), int32(height), title)
	if !rl.IsWindowReady() {
		return ErrNoWindow
	}
	rl.SetTargetFPS(int32(targetFPS))
	return nil
}

// Run is the blocking frame loop. Each frame it measures the time since the previous frame on
// clock (normally the Renderer) and passes it to onFrame, which does its own
// BeginFrame/EndFrame through the Renderer. Returns when the window is closed.
func Run(clock scene.Clock, onFrame func(dt float32)) {
	timer := scene.NewFrameTimer(clock)
	for !rl.WindowShouldClose() {
		onFrame(timer.Next())
	}
}

// Shutdown closes the window and releases the GL context.
func Shutdown() {
	rl.CloseWindow()
}

// TraceInfo forwards a line to raylib's logger at info level.
func TraceInfo(line string) {
	rl.TraceLog(rl.LogInfo, "%s", line)
}
