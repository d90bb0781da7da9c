// Package paths derives the host's fixed filesystem layout: plugin
// system directory, SRAM path, and numbered save-state path, from the
// sdcard root, platform name, plugin tag/name, and game basename.
package paths

import "fmt"

// Layout holds the inputs needed to derive every path the host touches,
// mirroring the SDCARD_PATH/PLATFORM macros baked into the C original.
type Layout struct {
	SDCard   string // e.g. /mnt/sdcard
	Platform string // e.g. rg35xx
}

// SysDir returns the plugin's system directory:
// <sdcard>/.userdata/<platform>/<tag>-<name>
func (l Layout) SysDir(tag, name string) string {
	return fmt.Sprintf("%s/.userdata/%s/%s-%s", l.SDCard, l.Platform, tag, name)
}

// SRAMPath returns <sdcard>/Saves/<tag>/<game_basename>.sav. Path
// components are filesystem-unsafe-by-policy: spaces and parentheses in
// basename are preserved verbatim, never escaped.
func (l Layout) SRAMPath(tag, basename string) string {
	return fmt.Sprintf("%s/Saves/%s/%s.sav", l.SDCard, tag, basename)
}

// StatePath returns <sdcard>/.userdata/<platform>/<tag>-<name>/<basename>.st<slot>.
func (l Layout) StatePath(tag, name, basename string, slot int) string {
	return fmt.Sprintf("%s/%s.st%d", l.SysDir(tag, name), basename, slot)
}
