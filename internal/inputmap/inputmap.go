// Package inputmap collapses a polled device snapshot into the plugin's
// joypad bitmask, and runs the hotkey policy that triggers save-state
// read/write (spec.md §4.5).
package inputmap

import "retrohost/internal/abi"

// Button identifies one virtual button on the device (spec.md §6).
type Button int

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonA
	ButtonB
	ButtonX
	ButtonY
	ButtonL1
	ButtonL2
	ButtonR1
	ButtonR2
	ButtonStart
	ButtonSelect
	ButtonMenu
	ButtonPower
)

// Snapshot is the device driver's polled edge-triggered button state for
// one poll. Device is the external collaborator this package consumes
// (spec.md §1's "input device driver" is out of scope; this is its
// interface).
type Snapshot interface {
	Pressed(b Button) bool
	JustPressed(b Button) bool
	JustReleased(b Button) bool
}

// Device is the polled edge-triggered input collaborator.
type Device interface {
	Poll() Snapshot
}

// joypadBit maps a Button to its retro-plugin joypad id, for the buttons
// the plugin ABI actually exposes (spec.md §4.5; MENU/POWER never reach
// the plugin, they are host hotkey-only).
var joypadBit = map[Button]uint32{
	ButtonUp:     abi.DeviceIDJoypadUp,
	ButtonDown:   abi.DeviceIDJoypadDown,
	ButtonLeft:   abi.DeviceIDJoypadLeft,
	ButtonRight:  abi.DeviceIDJoypadRight,
	ButtonA:      abi.DeviceIDJoypadA,
	ButtonB:      abi.DeviceIDJoypadB,
	ButtonX:      abi.DeviceIDJoypadX,
	ButtonY:      abi.DeviceIDJoypadY,
	ButtonL1:     abi.DeviceIDJoypadL,
	ButtonL2:     abi.DeviceIDJoypadL2,
	ButtonR1:     abi.DeviceIDJoypadR,
	ButtonR2:     abi.DeviceIDJoypadR2,
	ButtonStart:  abi.DeviceIDJoypadStart,
	ButtonSelect: abi.DeviceIDJoypadSelect,
}

// HotkeyActions are invoked by Poll when the MENU+L1 / MENU+R1
// combination edges in, per spec.md §4.4/§4.5.
type HotkeyActions struct {
	StateRead  func()
	StateWrite func()
}

// Map holds the frozen bitmask snapshot that input-state queries answer
// against, refreshed once per input-poll callback invocation.
type Map struct {
	Device  Device
	Hotkeys HotkeyActions

	mask uint32
	last Snapshot
}

// Poll takes a fresh snapshot from the device, runs the hotkey policy
// against it, and recomputes the frozen bitmask. This is called at most
// once per run() invocation (spec.md §4.5/§5).
func (m *Map) Poll() {
	snap := m.Device.Poll()
	m.last = snap

	if snap.Pressed(ButtonMenu) {
		if snap.JustPressed(ButtonL1) && m.Hotkeys.StateRead != nil {
			m.Hotkeys.StateRead()
		} else if snap.JustPressed(ButtonR1) && m.Hotkeys.StateWrite != nil {
			m.Hotkeys.StateWrite()
		}
	}

	var mask uint32
	for button, bit := range joypadBit {
		if snap.Pressed(button) {
			mask |= 1 << bit
		}
	}
	m.mask = mask
}

// State answers an input-state query against the frozen snapshot: id ==
// RETRO_DEVICE_ID_JOYPAD_MASK returns the whole mask, any other id
// returns just that bit.
func (m *Map) State(id uint32) uint32 {
	if id == abi.DeviceIDJoypadMask {
		return m.mask
	}
	return (m.mask >> id) & 1
}

// PowerReleased reports whether POWER just released in the last polled
// snapshot, the FrameLoop's exit signal (spec.md §4.6). Before the first
// poll (e.g. before the plugin's first run()) it reports false.
func (m *Map) PowerReleased() bool {
	if m.last == nil {
		return false
	}
	return m.last.JustReleased(ButtonPower)
}
