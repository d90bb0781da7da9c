package inputmap

import "testing"

// fakeSnapshot lets a test script exactly the pressed/justPressed/
// justReleased state the polled frame should report.
type fakeSnapshot struct {
	pressed, justPressed, justReleased map[Button]bool
}

func (s fakeSnapshot) Pressed(b Button) bool      { return s.pressed[b] }
func (s fakeSnapshot) JustPressed(b Button) bool  { return s.justPressed[b] }
func (s fakeSnapshot) JustReleased(b Button) bool { return s.justReleased[b] }

type fakeDevice struct {
	snaps []fakeSnapshot
	i     int
}

func (d *fakeDevice) Poll() Snapshot {
	s := d.snaps[d.i]
	if d.i < len(d.snaps)-1 {
		d.i++
	}
	return s
}

func TestMaskReflectsPressedButtons(t *testing.T) {
	dev := &fakeDevice{snaps: []fakeSnapshot{
		{pressed: map[Button]bool{ButtonA: true, ButtonUp: true}},
	}}
	m := &Map{Device: dev}
	m.Poll()

	if m.State(joypadBit[ButtonA]) != 1 {
		t.Error("expected A bit set")
	}
	if m.State(joypadBit[ButtonB]) != 0 {
		t.Error("expected B bit clear")
	}
}

func TestStateMaskQueryReturnsWholeMask(t *testing.T) {
	dev := &fakeDevice{snaps: []fakeSnapshot{
		{pressed: map[Button]bool{ButtonA: true}},
	}}
	m := &Map{Device: dev}
	m.Poll()

	want := uint32(1) << joypadBit[ButtonA]
	if m.State(256) != want { // RETRO_DEVICE_ID_JOYPAD_MASK
		t.Errorf("State(mask) = %#x, want %#x", m.State(256), want)
	}
}

func TestMenuL1TriggersStateRead(t *testing.T) {
	var readCalled, writeCalled bool
	dev := &fakeDevice{snaps: []fakeSnapshot{
		{
			pressed:     map[Button]bool{ButtonMenu: true, ButtonL1: true},
			justPressed: map[Button]bool{ButtonL1: true},
		},
	}}
	m := &Map{Device: dev, Hotkeys: HotkeyActions{
		StateRead:  func() { readCalled = true },
		StateWrite: func() { writeCalled = true },
	}}
	m.Poll()

	if !readCalled {
		t.Error("expected MENU+L1 just-pressed to trigger StateRead")
	}
	if writeCalled {
		t.Error("StateWrite should not fire for MENU+L1")
	}
}

func TestMenuR1TriggersStateWrite(t *testing.T) {
	var writeCalled bool
	dev := &fakeDevice{snaps: []fakeSnapshot{
		{
			pressed:     map[Button]bool{ButtonMenu: true, ButtonR1: true},
			justPressed: map[Button]bool{ButtonR1: true},
		},
	}}
	m := &Map{Device: dev, Hotkeys: HotkeyActions{
		StateWrite: func() { writeCalled = true },
	}}
	m.Poll()

	if !writeCalled {
		t.Error("expected MENU+R1 just-pressed to trigger StateWrite")
	}
}

func TestHotkeyRequiresMenuHeld(t *testing.T) {
	var called bool
	dev := &fakeDevice{snaps: []fakeSnapshot{
		{justPressed: map[Button]bool{ButtonL1: true}}, // MENU not pressed
	}}
	m := &Map{Device: dev, Hotkeys: HotkeyActions{StateRead: func() { called = true }}}
	m.Poll()

	if called {
		t.Error("L1 alone (without MENU held) should not trigger StateRead")
	}
}

func TestPowerReleasedBeforeAnyPollIsFalse(t *testing.T) {
	m := &Map{}
	if m.PowerReleased() {
		t.Error("expected false before the first Poll")
	}
}

func TestPowerReleasedReflectsLastSnapshot(t *testing.T) {
	dev := &fakeDevice{snaps: []fakeSnapshot{
		{justReleased: map[Button]bool{ButtonPower: true}},
	}}
	m := &Map{Device: dev}
	m.Poll()
	if !m.PowerReleased() {
		t.Error("expected PowerReleased true after a snapshot reporting it")
	}
}
