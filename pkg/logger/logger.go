package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Leveled logger shared by the API, the probe command and the middleware.
// Init(level) sets the threshold; With attaches key/value fields to a line.

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var (
	mu     sync.RWMutex
	logger *log.Logger = log.New(os.Stdout, "", 0)
	level  Level       = LevelInfo
)

// Init sets the global log level (case-insensitive: debug, info, warn, error, fatal).
// Unknown values fall back to info.
func Init(l string) {
	mu.Lock()
	defer mu.Unlock()
	level = parseLevel(l)
}

func parseLevel(l string) Level {
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	}
	return LevelInfo
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	}
	return "info"
}

func shouldLog(l Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return l >= level
}

// Entry is a log line under construction carrying key/value fields.
type Entry struct {
	fields []any
}

// With starts an entry with the given alternating keys and values.
func With(kv ...any) *Entry {
	return &Entry{fields: kv}
}

// With returns a copy of e with more fields appended.
func (e *Entry) With(kv ...any) *Entry {
	fields := make([]any, 0, len(e.fields)+len(kv))
	fields = append(fields, e.fields...)
	return &Entry{fields: append(fields, kv...)}
}

func (e *Entry) output(l Level, format string, v ...any) {
	if l != LevelFatal && !shouldLog(l) {
		return
	}
	var b strings.Builder
	b.WriteString(time.Now().Format(time.RFC3339))
	b.WriteString(" [")
	b.WriteString(strings.ToUpper(l.String()))
	b.WriteString("] ")
	fmt.Fprintf(&b, format, v...)
	for i := 0; i < len(e.fields); i += 2 {
		if i+1 < len(e.fields) {
			fmt.Fprintf(&b, " %v=%v", e.fields[i], e.fields[i+1])
		} else {
			fmt.Fprintf(&b, " %v=?", e.fields[i])
		}
	}
	mu.RLock()
	out := logger
	mu.RUnlock()
	out.Print(b.String())
}

func (e *Entry) Debugf(format string, v ...any) { e.output(LevelDebug, format, v...) }
func (e *Entry) Infof(format string, v ...any)  { e.output(LevelInfo, format, v...) }
func (e *Entry) Warnf(format string, v ...any)  { e.output(LevelWarn, format, v...) }
func (e *Entry) Errorf(format string, v ...any) { e.output(LevelError, format, v...) }

func (e *Entry) Fatalf(format string, v ...any) {
	e.output(LevelFatal, format, v...)
	os.Exit(1)
}

var root = &Entry{}

func Debugf(format string, v ...any) { root.Debugf(format, v...) }
func Infof(format string, v ...any)  { root.Infof(format, v...) }
func Warnf(format string, v ...any)  { root.Warnf(format, v...) }
func Errorf(format string, v ...any) { root.Errorf(format, v...) }
func Fatalf(format string, v ...any) { root.Fatalf(format, v...) }

// SetOutput swaps the underlying writer and returns a func restoring the previous one.
func SetOutput(l *log.Logger) (restore func()) {
	mu.Lock()
	defer mu.Unlock()
	prev := logger
	logger = l
	return func() {
		mu.Lock()
		defer mu.Unlock()
		logger = prev
	}
}

// LevelString returns the current level as text.
func LevelString() string {
	mu.RLock()
	defer mu.RUnlock()
	return level.String()
}
