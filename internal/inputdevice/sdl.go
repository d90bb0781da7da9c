package inputdevice

import (
	"github.com/veandco/go-sdl2/sdl"
	"retrohost/internal/inputmap"
)

// SDLDevice polls SDL's keyboard state and pumps the window's event
// queue. A window close request is latched as one frame of POWER
// pressed so it rides the same edge-triggered hotkey path the hardware
// power button would (spec.md §4.5/§4.6): the frame after the event
// arrives, POWER reads as released and the frame loop exits.
type SDLDevice struct {
	prevMask uint32
	quit     bool
}

// NewSDLDevice constructs a device; SDL's video subsystem must already
// be initialized (video.NewSDLSurface does this).
func NewSDLDevice() *SDLDevice { return &SDLDevice{} }

// Poll implements inputmap.Device.
func (d *SDLDevice) Poll() inputmap.Snapshot {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			d.quit = true
		}
	}

	keys := sdl.GetKeyboardState()
	var cur uint32
	press := func(scancode sdl.Scancode, b inputmap.Button) {
		if keys[scancode] != 0 {
			cur |= bitOf(b)
		}
	}

	press(sdl.SCANCODE_UP, inputmap.ButtonUp)
	press(sdl.SCANCODE_DOWN, inputmap.ButtonDown)
	press(sdl.SCANCODE_LEFT, inputmap.ButtonLeft)
	press(sdl.SCANCODE_RIGHT, inputmap.ButtonRight)
	press(sdl.SCANCODE_Z, inputmap.ButtonA)
	press(sdl.SCANCODE_X, inputmap.ButtonB)
	press(sdl.SCANCODE_A, inputmap.ButtonX)
	press(sdl.SCANCODE_S, inputmap.ButtonY)
	press(sdl.SCANCODE_Q, inputmap.ButtonL1)
	press(sdl.SCANCODE_W, inputmap.ButtonL2)
	press(sdl.SCANCODE_E, inputmap.ButtonR1)
	press(sdl.SCANCODE_R, inputmap.ButtonR2)
	press(sdl.SCANCODE_RETURN, inputmap.ButtonStart)
	press(sdl.SCANCODE_RSHIFT, inputmap.ButtonSelect)
	press(sdl.SCANCODE_TAB, inputmap.ButtonMenu)

	if d.quit {
		cur |= bitOf(inputmap.ButtonPower)
		d.quit = false
	}

	snap := snapshot{cur: cur, prev: d.prevMask}
	d.prevMask = cur
	return snap
}
