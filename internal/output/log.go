// Package output provides logging and terminal output utilities.
package output

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// logger is the package logger. Replaced by SetupLogging.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	ReportCaller:    false,
})

// stdout is where Print and Println write. Swapped in tests.
var stdout io.Writer = os.Stdout

// stderr receives Details. Swapped in tests.
var stderr io.Writer = os.Stderr

// LogConfig configures the package logger.
type LogConfig struct {
	// Verbose enables debug level, caller reporting and timestamps.
	Verbose bool

	// Timestamps overrides timestamp reporting when not verbose.
	// nil means off.
	Timestamps *bool
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

func (c LogConfig) timestamps() bool {
	if c.Verbose {
		return true
	}
	return c.Timestamps != nil && *c.Timestamps
}

// SetupLogging configures the logger based on cfg.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: cfg.timestamps(),
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// ProjectLogger returns a child logger prefixed with the project name.
func ProjectLogger(name string) *log.Logger {
	return logger.WithPrefix(StyleNoun.Render(name))
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}

// Print prints a message to stdout without any formatting.
func Print(msg string) {
	_, _ = io.WriteString(stdout, msg)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	_, _ = io.WriteString(stdout, msg+"\n")
}

// Details prints multi-line error details to stderr, outside the logger.
func Details(msg string) {
	_, _ = io.WriteString(stderr, strings.TrimRight(msg, "\n")+"\n")
}
