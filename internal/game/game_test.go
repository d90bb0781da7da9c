package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenReadsBytesAndBasename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Pokemon Emerald (USA).gba")
	want := []byte{1, 2, 3, 4, 5}
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if g.Basename != "Pokemon Emerald (USA).gba" {
		t.Errorf("Basename = %q", g.Basename)
	}
	if g.Size() != len(want) {
		t.Errorf("Size() = %d, want %d", g.Size(), len(want))
	}
	for i, b := range g.Bytes {
		if b != want[i] {
			t.Fatalf("byte %d = %d, want %d", i, b, want[i])
		}
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open("/nonexistent/path/rom.gba"); err == nil {
		t.Fatal("expected an error opening a missing file")
	}
}
