// Package logger is the printf-style logging used by glancehist packages.
// Each package creates its own prefixed logger; tests swap in a BufferLogger
// to assert on what was logged.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

// DebugEnv enables debug output when set to any non-empty value.
const DebugEnv = "GLANCEHIST_DEBUG"

// Log levels as recorded by BufferLogger.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// verbose forces debug output regardless of DebugEnv (set by --verbose).
var verbose atomic.Bool

// SetVerbose turns debug output on or off for every env logger.
func SetVerbose(on bool) {
	verbose.Store(on)
}

func debugEnabled() bool {
	return verbose.Load() || os.Getenv(DebugEnv) != ""
}

// std is shared by every env logger.
var std = log.New(os.Stderr, "", log.LstdFlags)

// SetOutput redirects every env logger, e.g. to a buffer in tests.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// Logger is implemented by every logger in this package.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// envLogger writes to stderr. Debug lines only appear with GLANCEHIST_DEBUG
// or --verbose.
type envLogger struct {
	prefix string
}

// NewEnvLogger creates a logger whose lines start with prefix, like "[render]".
func NewEnvLogger(prefix string) Logger {
	return &envLogger{prefix: prefix}
}

func (l *envLogger) Debug(format string, args ...interface{}) {
	if debugEnabled() {
		l.print("", format, args)
	}
}

func (l *envLogger) Info(format string, args ...interface{}) {
	l.print("", format, args)
}

func (l *envLogger) Warn(format string, args ...interface{}) {
	l.print("WARN: ", format, args)
}

func (l *envLogger) Error(format string, args ...interface{}) {
	l.print("ERROR: ", format, args)
}

func (l *envLogger) print(level, format string, args []interface{}) {
	var b strings.Builder
	if l.prefix != "" {
		b.WriteString(l.prefix)
		b.WriteByte(' ')
	}
	b.WriteString(level)
	fmt.Fprintf(&b, format, args...)
	std.Print(b.String())
}

type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(format string, args ...interface{}) {}
func (noopLogger) Info(format string, args ...interface{})  {}
func (noopLogger) Warn(format string, args ...interface{})  {}
func (noopLogger) Error(format string, args ...interface{}) {}

// LogMessage is one captured line.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures messages for tests. Safe for concurrent use; read
// Messages only after the code under test has returned.
type BufferLogger struct {
	mu       sync.Mutex
	Messages []LogMessage
}

// NewBufferLogger creates an empty BufferLogger.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{Messages: make([]LogMessage, 0)}
}

func (l *BufferLogger) record(level, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = append(l.Messages, LogMessage{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Debug(format string, args ...interface{}) {
	l.record(LevelDebug, format, args)
}

func (l *BufferLogger) Info(format string, args ...interface{}) {
	l.record(LevelInfo, format, args)
}

func (l *BufferLogger) Warn(format string, args ...interface{}) {
	l.record(LevelWarn, format, args)
}

func (l *BufferLogger) Error(format string, args ...interface{}) {
	l.record(LevelError, format, args)
}

// HasLevel reports whether any message was logged at level.
func (l *BufferLogger) HasLevel(level string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Contains reports whether a message at level contains substr.
func (l *BufferLogger) Contains(level, substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.Messages {
		if m.Level == level && strings.Contains(m.Message, substr) {
			return true
		}
	}
	return false
}

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = l.Messages[:0]
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = NewEnvLogger("")
)

// Default returns the package-level logger, an unprefixed env logger unless
// replaced with SetDefault.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package-level logger.
func SetDefault(l Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}
