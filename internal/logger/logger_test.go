package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"fatal", log.FatalLevel},
		{"", log.InfoLevel},
		{"verbose", log.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseLevel(tt.input), tt.input)
	}
}

func TestConfigure_FlagBeatsEnv(t *testing.T) {
	t.Setenv("TAHAOS_LOG_LEVEL", "error")

	require.NoError(t, Configure("debug", ""))
	assert.Equal(t, log.DebugLevel, Logger.GetLevel())

	require.NoError(t, Configure("", ""))
	assert.Equal(t, log.ErrorLevel, Logger.GetLevel())
}

func TestConfigure_LogFile(t *testing.T) {
	t.Setenv("TAHAOS_LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), "tahaos.log")
	t.Cleanup(func() { _ = Configure("", "") })

	require.NoError(t, Configure("info", path))
	Info("window opened", "app", "about")
	NewStyledLogger("wm").Info("from component")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "window opened")
	assert.Contains(t, string(data), "from component")
}

func TestConfigure_BadLogFile(t *testing.T) {
	err := Configure("", filepath.Join(t.TempDir(), "missing", "tahaos.log"))
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	l := Discard()
	assert.Equal(t, log.FatalLevel, l.GetLevel())
	l.Error("dropped")
}

func TestConfigure_ClosesPreviousLogFile(t *testing.T) {
	t.Setenv("TAHAOS_LOG_LEVEL", "")
	dir := t.TempDir()
	t.Cleanup(func() { _ = Close() })

	require.NoError(t, Configure("info", filepath.Join(dir, "first.log")))
	first := openFile
	require.NotNil(t, first)

	require.NoError(t, Configure("info", filepath.Join(dir, "second.log")))
	_, err := first.WriteString("late\n")
	assert.ErrorIs(t, err, os.ErrClosed)
	assert.NotSame(t, first, openFile)

	require.NoError(t, Close())
	assert.Nil(t, openFile)
	assert.Equal(t, os.Stderr, output)
	require.NoError(t, Close())
}

func TestConfigure_FailedOpenKeepsCurrentFile(t *testing.T) {
	t.Setenv("TAHAOS_LOG_LEVEL", "")
	dir := t.TempDir()
	t.Cleanup(func() { _ = Close() })

	require.NoError(t, Configure("info", filepath.Join(dir, "tahaos.log")))
	current := openFile

	require.Error(t, Configure("info", filepath.Join(dir, "missing", "tahaos.log")))
	assert.Same(t, current, openFile)
	_, err := current.WriteString("still open\n")
	assert.NoError(t, err)
}
