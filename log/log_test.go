package log_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skipor/rtset/log"
)

func TestLevelFromString(t *testing.T) {
	l, err := log.LevelFromString("WARN")
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, l)

	_, err = log.LevelFromString("TRACE")
	assert.Error(t, err)
}

func TestNewLogger_FiltersBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := log.NewLogger(log.WarnLevel, &buf)

	l.Debugf("arena linked, capacity=%d", 8)
	assert.Empty(t, buf.String(), "Debug below the Warn threshold must be filtered")

	l.Warnf("arena exhausted, capacity=%d", 8)
	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "arena exhausted, capacity=8")
}

func TestNewLogger_DebugThresholdLogsBoth(t *testing.T) {
	var buf bytes.Buffer
	l := log.NewLogger(log.DebugLevel, &buf)

	l.Debug("arena linked")
	l.Warn("arena exhausted")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "DEBUG")
	assert.Contains(t, lines[1], "WARN")
}

func TestNop_DiscardsEverything(t *testing.T) {
	l := log.Nop()
	// Must not panic and must not require a backing sink.
	l.Debug("ignored")
	l.Debugf("ignored %d", 1)
	l.Warn("ignored")
	l.Warnf("ignored %d", 1)
}

type recordingSink struct {
	lines []string
}

func (s *recordingSink) Output(callDepth int, lvl log.Level, msg string) {
	s.lines = append(s.lines, lvl.String()+": "+msg)
}

func TestNewLoggerSink_CustomDestination(t *testing.T) {
	sink := &recordingSink{}
	l := log.NewLoggerSink(log.DebugLevel, sink)

	l.Debugf("pool: linked arena, capacity=%d", 4)
	l.Warnf("pool: exhausted, capacity=%d", 4)

	require.Len(t, sink.lines, 2)
	assert.Equal(t, "DEBUG: pool: linked arena, capacity=4", sink.lines[0])
	assert.Equal(t, "WARN: pool: exhausted, capacity=4", sink.lines[1])
}
