// Package host wires the loaded plugin's callbacks to the host's
// concrete video/audio/input collaborators and drives the per-frame
// loop (spec.md §4.6).
package host

import (
	"retrohost/internal/abi"
	"retrohost/internal/audio"
	"retrohost/internal/diag"
	"retrohost/internal/inputmap"
	"retrohost/internal/scaler"
	"retrohost/internal/video"
)

// Facade implements plugin.VideoSink, plugin.AudioSink and
// plugin.InputSource by adapting this process's concrete
// scaler/video/audio/inputmap collaborators — the bridge spec.md §4.7
// calls the HostFacade.
type Facade struct {
	Kernel  scaler.Kernel
	Surface *scaler.Surface
	Screen  video.Surface
	Audio   audio.Sink
	Input   *inputmap.Map
	Logger  *diag.Logger

	lastWidth, lastHeight int
}

// SubmitFrame implements plugin.VideoSink.
func (f *Facade) SubmitFrame(pixels []byte, width, height, pitch int) {
	if width != f.lastWidth || height != f.lastHeight {
		scaler.ClearBlack(f.Surface)
		f.lastWidth, f.lastHeight = width, height
	}

	src := scaler.SourceFrame{Pixels: pixels, Width: width, Height: height, Pitch: pitch}
	geometry := scaler.ComputeGeometry(width, height, f.Surface.Width, f.Surface.Height)
	f.Kernel.Blit(f.Surface, src, geometry)

	if err := f.Screen.Present(f.Surface.Pixels); err != nil {
		f.Logger.Logf(diag.ComponentScaler, diag.LevelError, "present: %v", err)
	}
}

// SubmitStereo16 implements plugin.AudioSink.
func (f *Facade) SubmitStereo16(samples []int16) {
	if err := f.Audio.QueueStereo16(samples); err != nil {
		f.Logger.Logf(diag.ComponentFrameLoop, diag.LevelWarning, "audio queue: %v", err)
	}
}

// Poll implements plugin.InputSource.
func (f *Facade) Poll() { f.Input.Poll() }

// State implements plugin.InputSource. Only the joypad device is
// wired; any other requested device id reads as unpressed (spec.md
// Non-goals: no analog stick, mouse, or lightgun support).
func (f *Facade) State(port, device, index, id uint32) int16 {
	if device != abi.DeviceJoypad {
		return 0
	}
	return int16(f.Input.State(id))
}
