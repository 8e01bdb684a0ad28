package logger_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cubefall/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogWritesFileAndMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scene.txt")
	l := logger.New(path)

	l.Log("Spawned cube in slot 0")
	l.Log("Spawned cube in slot 1")

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "["))
	assert.True(t, strings.HasSuffix(lines[1], "] Spawned cube in slot 1"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, lines[0]+"\n"+lines[1]+"\n", string(data))
}

func TestLogMemoryOnly(t *testing.T) {
	l := logger.New("")
	var echoed []string
	l.Echo = func(line string) { echoed = append(echoed, line) }

	l.Log("hello")

	assert.Len(t, l.Lines(), 1)
	assert.Equal(t, l.Lines(), echoed)
}

func TestLinesIsBounded(t *testing.T) {
	l := logger.New("")
	for range 600 {
		l.Log("x")
	}
	assert.Len(t, l.Lines(), 500)
}
