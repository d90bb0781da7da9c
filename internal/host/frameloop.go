package host

import (
	"time"

	"retrohost/internal/diag"
	"retrohost/internal/inputmap"
	"retrohost/internal/plugin"
)

// FrameLoop repeatedly calls retro_run until POWER reads as released
// (spec.md §4.6). It logs an FPS/frame-count line once per wall-clock
// second; this is the only ongoing runtime telemetry the host emits.
type FrameLoop struct {
	Binding *plugin.Binding
	Input   *inputmap.Map
	Logger  *diag.Logger

	frames uint64
}

// Run blocks until the power hotkey fires.
func (l *FrameLoop) Run() {
	start := time.Now()
	lastLog := start

	for {
		if l.Input.PowerReleased() {
			l.Logger.Log(diag.ComponentFrameLoop, diag.LevelInfo, "power released, stopping frame loop")
			return
		}

		l.Binding.RunFrame()
		l.frames++

		now := time.Now()
		if elapsed := now.Sub(lastLog); elapsed >= time.Second {
			fps := float64(l.frames) / now.Sub(start).Seconds()
			l.Logger.Logf(diag.ComponentFrameLoop, diag.LevelInfo, "fps=%.1f frames=%d", fps, l.frames)
			lastLog = now
		}
	}
}
