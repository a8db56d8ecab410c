package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

// captureLog sets up the logger to write to a buffer and returns the buffer.
func captureLog(cfg LogConfig) *bytes.Buffer {
	var buf bytes.Buffer
	SetupLogging(cfg)
	logger = log.NewWithOptions(&buf, log.Options{
		Level:           logger.GetLevel(),
		ReportTimestamp: cfg.timestamps(),
		TimeFormat:      "15:04:05",
	})
	return &buf
}

func TestSetupLogging_TimestampsDefaultOff(t *testing.T) {
	buf := captureLog(LogConfig{})
	Info("hello")
	assert.NotRegexp(t, `^\d{1,2}:\d{2}:\d{2}`, strings.TrimSpace(buf.String()))
}

func TestSetupLogging_TimestampsEnabled(t *testing.T) {
	buf := captureLog(LogConfig{Timestamps: BoolPtr(true)})
	Info("hello")
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}`, strings.TrimSpace(buf.String()))
}

func TestSetupLogging_VerboseForcesTimestampsOn(t *testing.T) {
	buf := captureLog(LogConfig{Verbose: true, Timestamps: BoolPtr(false)})
	Debug("verbose-msg")
	out := buf.String()
	assert.Contains(t, out, "verbose-msg", "debug message should appear in verbose mode")
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}`, strings.TrimSpace(out))
}

func TestSetupLogging_Levels(t *testing.T) {
	SetupLogging(LogConfig{Verbose: true})
	assert.Equal(t, log.DebugLevel, logger.GetLevel())

	SetupLogging(LogConfig{})
	assert.Equal(t, log.InfoLevel, logger.GetLevel())
}

func TestDebugHiddenAtInfoLevel(t *testing.T) {
	buf := captureLog(LogConfig{})
	Debug("hidden")
	Warn("shown", "key", "value")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "key=value")
}

func TestProjectLogger_InheritsLevel(t *testing.T) {
	SetupLogging(LogConfig{Verbose: true})
	l := ProjectLogger("Feature.Catalog")
	assert.Equal(t, log.DebugLevel, l.GetLevel())
	assert.Contains(t, l.GetPrefix(), "Feature.Catalog")
}

func TestPrintln(t *testing.T) {
	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	defer func() { stdout = old }()

	Print("a")
	Println("b")
	assert.Equal(t, "ab\n", buf.String())
}

func TestDetails(t *testing.T) {
	var buf bytes.Buffer
	old := stderr
	stderr = &buf
	defer func() { stderr = old }()

	Details("Error: not found\n\n  missing\n\n")
	assert.Equal(t, "Error: not found\n\n  missing\n", buf.String())
}

func TestBoolPtr(t *testing.T) {
	assert.True(t, *BoolPtr(true))
	assert.False(t, *BoolPtr(false))
}
