// Package game reads the game image the host hands to the plugin.
package game

import (
	"fmt"
	"os"
	"path/filepath"
)

// Game is immutable once opened: {path, basename, bytes, size}.
type Game struct {
	Path     string
	Basename string
	Bytes    []byte
}

// Open reads path into memory. The returned Game is valid until the
// caller unloads it from the plugin; there is no Close beyond letting it
// be garbage collected (the C original's free(game.data) has no analog
// needed here).
func Open(path string) (*Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("game: opening %s: %w", path, err)
	}
	return &Game{
		Path:     path,
		Basename: filepath.Base(path),
		Bytes:    data,
	}, nil
}

func (g *Game) Size() int {
	return len(g.Bytes)
}
