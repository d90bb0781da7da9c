// Package inputdevice supplies an inputmap.Device backed by SDL2
// keyboard polling, the external collaborator spec.md §1 calls the
// "input device driver".
package inputdevice

import "retrohost/internal/inputmap"

func bitOf(b inputmap.Button) uint32 { return 1 << uint32(b) }

// snapshot is a frozen pair of current/previous button masks; Button's
// own enum value is the bit index, so testing a button is a single
// shift-and-mask.
type snapshot struct {
	cur, prev uint32
}

func (s snapshot) Pressed(b inputmap.Button) bool {
	return s.cur&bitOf(b) != 0
}

func (s snapshot) JustPressed(b inputmap.Button) bool {
	bit := bitOf(b)
	return s.cur&bit != 0 && s.prev&bit == 0
}

func (s snapshot) JustReleased(b inputmap.Button) bool {
	bit := bitOf(b)
	return s.cur&bit == 0 && s.prev&bit != 0
}
