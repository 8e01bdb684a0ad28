package logger

import (
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the log file used by the binary, relative to the working directory.
const DefaultPath = "logs/cubefall.txt"

// maxLines bounds the in-memory history; the file keeps everything.
const maxLines = 500

// Logger stores lines of text in memory and appends them to a file on disk.
// An empty path keeps lines in memory only.
type Logger struct {
	mu    sync.Mutex
	path  string
	lines []string
	// Echo, if set, receives every stamped line (e.g. to forward to raylib's TraceLog).
	Echo func(line string)
}

// New returns a Logger writing to path and ensures the parent directory exists.
func New(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, lines: make([]string, 0)}
}

// Log appends a line to the logger and to the log file. Each entry is prefixed with [timestamp].
// File errors are ignored; logging never interrupts the frame loop.
func (l *Logger) Log(line string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	if len(l.lines) > maxLines {
		l.lines = l.lines[len(l.lines)-maxLines:]
	}
	echo := l.Echo
	l.mu.Unlock()

	if echo != nil {
		echo(stamped)
	}
	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
