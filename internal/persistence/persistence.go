// Package persistence manages battery-backed SRAM and numbered
// save-state blobs: reading/writing the plugin's memory buffers to disk,
// with fsync, per spec.md §4.4.
package persistence

import (
	"fmt"
	"os"

	"retrohost/internal/diag"
	"retrohost/internal/paths"
)

// Core is the subset of the plugin's ABI persistence needs: memory
// access for SRAM and serialize/unserialize for states.
type Core interface {
	GetMemorySize(id uint32) int
	GetMemoryData(id uint32) []byte // len == GetMemorySize(id); nil if unavailable
	SerializeSize() int
	Serialize(buf []byte) bool
	Unserialize(buf []byte) bool
}

const memorySaveRAM = 0

// Store bundles the path layout and logger every Persistence operation
// needs.
type Store struct {
	Layout paths.Layout
	Logger *diag.Logger
}

// ReadSRAM queries the plugin for SAVE_RAM size; if zero, does nothing.
// Otherwise opens the file and reads up to size bytes into the plugin's
// memory; short reads are logged but do not abort (spec.md §4.4/§7).
func (s *Store) ReadSRAM(core Core, tag, basename string) {
	size := core.GetMemorySize(memorySaveRAM)
	if size == 0 {
		return
	}
	path := s.Layout.SRAMPath(tag, basename)

	data, err := os.ReadFile(path)
	if err != nil {
		// Missing SRAM file is normal for a first run; nothing to log.
		return
	}
	dst := core.GetMemoryData(memorySaveRAM)
	if dst == nil {
		s.Logger.Logf(diag.ComponentPersistence, diag.LevelError, "SRAM read: no memory buffer for %s", path)
		return
	}
	n := copy(dst, data)
	if n < size {
		s.Logger.Logf(diag.ComponentPersistence, diag.LevelWarning, "SRAM read: short read %d/%d bytes from %s", n, size, path)
	}
}

// WriteSRAM no-ops when the plugin reports zero SAVE_RAM. Otherwise it
// truncates the file, writes exactly size bytes, and fsyncs.
func (s *Store) WriteSRAM(core Core, tag, basename string) {
	size := core.GetMemorySize(memorySaveRAM)
	if size == 0 {
		return
	}
	data := core.GetMemoryData(memorySaveRAM)
	if data == nil {
		s.Logger.Log(diag.ComponentPersistence, diag.LevelError, "SRAM write: no memory buffer")
		return
	}
	path := s.Layout.SRAMPath(tag, basename)
	if err := os.MkdirAll(dirOf(path), 0o755); err != nil {
		s.Logger.Logf(diag.ComponentPersistence, diag.LevelError, "SRAM write: mkdir %s: %v", dirOf(path), err)
		return
	}
	if err := writeFileSynced(path, data[:size]); err != nil {
		s.Logger.Logf(diag.ComponentPersistence, diag.LevelError, "SRAM write: %v", err)
	}
}

// ReadState allocates serialize_size() bytes, opens the slot's file, and
// expects an exact-size read before calling Unserialize. Slot 8 missing
// is not an error; any other slot missing is logged (spec.md §4.4).
func (s *Store) ReadState(core Core, tag, name, basename string, slot int) {
	size := core.SerializeSize()
	if size == 0 {
		return
	}
	path := s.Layout.StatePath(tag, name, basename, slot)

	data, err := os.ReadFile(path)
	if err != nil {
		if slot != 8 {
			s.Logger.Logf(diag.ComponentPersistence, diag.LevelError, "state read: opening %s: %v", path, err)
		}
		return
	}
	if len(data) != size {
		s.Logger.Logf(diag.ComponentPersistence, diag.LevelError, "state read: size mismatch %s: got %d want %d", path, len(data), size)
		return
	}
	if !core.Unserialize(data) {
		s.Logger.Logf(diag.ComponentPersistence, diag.LevelError, "state read: plugin rejected state from %s", path)
	}
}

// WriteState calls Serialize into a fresh size-exact buffer and writes
// it to the slot's file, fsync'd.
func (s *Store) WriteState(core Core, tag, name, basename string, slot int) {
	size := core.SerializeSize()
	if size == 0 {
		return
	}
	buf := make([]byte, size)
	if !core.Serialize(buf) {
		s.Logger.Log(diag.ComponentPersistence, diag.LevelError, "state write: plugin failed to serialize")
		return
	}
	path := s.Layout.StatePath(tag, name, basename, slot)
	if err := os.MkdirAll(dirOf(path), 0o755); err != nil {
		s.Logger.Logf(diag.ComponentPersistence, diag.LevelError, "state write: mkdir %s: %v", dirOf(path), err)
		return
	}
	if err := writeFileSynced(path, buf); err != nil {
		s.Logger.Logf(diag.ComponentPersistence, diag.LevelError, "state write: %v", err)
	}
}

func dirOf(path string) string {
	i := len(path) - 1
	for i >= 0 && path[i] != '/' {
		i--
	}
	if i < 0 {
		return "."
	}
	return path[:i]
}

// writeFileSynced truncates/creates the file in place, writes data in
// full, and fsyncs before closing. The write is not atomic: a crash
// between the truncate and the fsync can leave a short or empty file.
func writeFileSynced(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	n, err := f.Write(data)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if n != len(data) {
		return fmt.Errorf("short write to %s: %d/%d bytes", path, n, len(data))
	}
	return f.Sync()
}
