// Package diag is the host's diagnostic log: a bounded, component-tagged,
// level-filtered ring buffer that keeps a queryable history of plugin
// messages (SET_MESSAGE, the installed log interface) and host events.
// Every entry that passes the filters is also mirrored into glog; Info
// and lower levels go through glog.V(1), errors and warnings are written
// unconditionally, with no rate limit.
package diag

import (
	"fmt"
	"time"
)

// Level is the severity of a diagnostic entry.
type Level int

const (
	LevelNone Level = iota
	LevelError
	LevelWarning
	LevelInfo
	LevelDebug
	LevelTrace
)

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "NONE"
	case LevelError:
		return "ERROR"
	case LevelWarning:
		return "WARNING"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelTrace:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// Component names the subsystem that produced a diagnostic entry.
type Component string

const (
	ComponentCore        Component = "Core"
	ComponentEnvironment Component = "Environment"
	ComponentScaler      Component = "Scaler"
	ComponentPersistence Component = "Persistence"
	ComponentInput       Component = "Input"
	ComponentFrameLoop   Component = "FrameLoop"
)

// Entry is one ring-buffer slot.
type Entry struct {
	Timestamp time.Time
	Component Component
	Level     Level
	Message   string
}

func (e *Entry) Format() string {
	timestamp := e.Timestamp.Format("15:04:05.000")
	return fmt.Sprintf("[%s] [%s] %s: %s", timestamp, e.Component, e.Level, e.Message)
}
