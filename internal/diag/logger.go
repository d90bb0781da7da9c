package diag

import (
	"fmt"
	"time"

	"github.com/golang/glog"
)

// Logger is a circular buffer of diagnostic entries, filtered by
// per-component enable flags and a minimum level. Unlike the teacher's
// debug.Logger this runs with no internal goroutine or channel: the host
// runtime is single-threaded and cooperative (spec §5), so dispatch never
// races with buffer reads, and a synchronous write is simpler and cannot
// drop an entry under load.
type Logger struct {
	entries    []Entry
	maxEntries int
	writeIndex int
	entryCount int

	componentEnabled map[Component]bool
	minLevel         Level
}

// NewLogger creates a logger with the given ring capacity (minimum 100).
func NewLogger(maxEntries int) *Logger {
	if maxEntries < 100 {
		maxEntries = 100
	}
	l := &Logger{
		entries:          make([]Entry, maxEntries),
		maxEntries:       maxEntries,
		componentEnabled: make(map[Component]bool),
		minLevel:         LevelInfo,
	}
	for _, c := range []Component{
		ComponentCore, ComponentEnvironment, ComponentScaler,
		ComponentPersistence, ComponentInput, ComponentFrameLoop,
	} {
		l.componentEnabled[c] = true
	}
	return l
}

func (l *Logger) SetComponentEnabled(c Component, enabled bool) {
	l.componentEnabled[c] = enabled
}

func (l *Logger) SetMinLevel(level Level) {
	l.minLevel = level
}

// Log records an entry in the ring buffer and mirrors it to glog at a
// level-appropriate severity, so a single plugin message is both
// queryable later (Entries) and visible in the host's own log stream.
func (l *Logger) Log(component Component, level Level, message string) {
	if !l.componentEnabled[component] || level > l.minLevel {
		return
	}
	entry := Entry{Timestamp: time.Now(), Component: component, Level: level, Message: message}
	l.entries[l.writeIndex] = entry
	l.writeIndex = (l.writeIndex + 1) % l.maxEntries
	if l.entryCount < l.maxEntries {
		l.entryCount++
	}

	switch level {
	case LevelError:
		glog.Errorf("%s: %s", component, message)
	case LevelWarning:
		glog.Warningf("%s: %s", component, message)
	default:
		glog.V(1).Infof("%s: %s", component, message)
	}
}

func (l *Logger) Logf(component Component, level Level, format string, args ...interface{}) {
	l.Log(component, level, fmt.Sprintf(format, args...))
}

// Entries returns the ring buffer contents in chronological order.
func (l *Logger) Entries() []Entry {
	out := make([]Entry, 0, l.entryCount)
	if l.entryCount < l.maxEntries {
		out = append(out, l.entries[:l.entryCount]...)
		return out
	}
	out = append(out, l.entries[l.writeIndex:]...)
	out = append(out, l.entries[:l.writeIndex]...)
	return out
}
