package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"retrohost/internal/diag"
	"retrohost/internal/paths"
)

// fakeCore is an in-memory stand-in for a loaded plugin.
type fakeCore struct {
	sram           []byte
	stateBuf       []byte
	serializeFails bool
}

func (f *fakeCore) GetMemorySize(id uint32) int {
	if id != memorySaveRAM {
		return 0
	}
	return len(f.sram)
}

func (f *fakeCore) GetMemoryData(id uint32) []byte {
	if id != memorySaveRAM {
		return nil
	}
	return f.sram
}

func (f *fakeCore) SerializeSize() int { return len(f.stateBuf) }

func (f *fakeCore) Serialize(buf []byte) bool {
	if f.serializeFails {
		return false
	}
	copy(buf, f.stateBuf)
	return true
}

func (f *fakeCore) Unserialize(buf []byte) bool {
	if len(buf) != len(f.stateBuf) {
		return false
	}
	copy(f.stateBuf, buf)
	return true
}

func newTestStore(t *testing.T) (*Store, string) {
	dir := t.TempDir()
	return &Store{
		Layout: paths.Layout{SDCard: dir, Platform: "host"},
		Logger: diag.NewLogger(100),
	}, dir
}

func TestSRAMRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	core := &fakeCore{sram: []byte{1, 2, 3, 4}}

	store.WriteSRAM(core, "gba", "game")

	loaded := &fakeCore{sram: make([]byte, 4)}
	store.ReadSRAM(loaded, "gba", "game")
	for i, b := range loaded.sram {
		if b != core.sram[i] {
			t.Fatalf("byte %d = %d, want %d", i, b, core.sram[i])
		}
	}
}

func TestSRAMZeroSizeIsNoOp(t *testing.T) {
	store, dir := newTestStore(t)
	core := &fakeCore{}
	store.WriteSRAM(core, "gba", "game")

	if _, err := os.Stat(store.Layout.SRAMPath("gba", "game")); err == nil {
		t.Fatalf("expected no SRAM file written for zero-size memory, dir=%s", dir)
	}
}

func TestSRAMMissingFileIsSilent(t *testing.T) {
	store, _ := newTestStore(t)
	core := &fakeCore{sram: make([]byte, 4)}
	store.ReadSRAM(core, "gba", "never-saved")

	if len(store.Logger.Entries()) != 0 {
		t.Fatalf("expected no log entries for a missing SRAM file, got %d", len(store.Logger.Entries()))
	}
}

func TestStateRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	core := &fakeCore{stateBuf: []byte{9, 8, 7}}
	store.WriteState(core, "gba", "mgba", "game", 0)

	loaded := &fakeCore{stateBuf: make([]byte, 3)}
	store.ReadState(loaded, "gba", "mgba", "game", 0)
	for i, b := range loaded.stateBuf {
		if b != core.stateBuf[i] {
			t.Fatalf("byte %d = %d, want %d", i, b, core.stateBuf[i])
		}
	}
}

func TestStateSlot8MissingIsSilentOtherSlotsAreLogged(t *testing.T) {
	store, _ := newTestStore(t)
	core := &fakeCore{stateBuf: make([]byte, 3)}

	store.ReadState(core, "gba", "mgba", "game", 8)
	if len(store.Logger.Entries()) != 0 {
		t.Fatalf("expected slot 8 missing to be silent, got %d entries", len(store.Logger.Entries()))
	}

	store.ReadState(core, "gba", "mgba", "game", 3)
	if len(store.Logger.Entries()) == 0 {
		t.Fatal("expected a missing slot 3 to be logged")
	}
}

func TestStateWriteFailurePropagatesAsLogEntry(t *testing.T) {
	store, _ := newTestStore(t)
	core := &fakeCore{stateBuf: make([]byte, 3), serializeFails: true}
	store.WriteState(core, "gba", "mgba", "game", 0)

	path := store.Layout.StatePath("gba", "mgba", "game", 0)
	if _, err := os.Stat(path); err == nil {
		t.Fatal("expected no file written when Serialize fails")
	}
	if len(store.Logger.Entries()) == 0 {
		t.Fatal("expected a log entry for the serialize failure")
	}
}

func TestWriteSRAMCreatesParentDirectory(t *testing.T) {
	store, dir := newTestStore(t)
	core := &fakeCore{sram: []byte{1}}
	store.WriteSRAM(core, "nested", "game")

	want := filepath.Join(dir, "Saves", "nested", "game.sav")
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("expected SRAM file at %s: %v", want, err)
	}
}
