// Package video presents the host's scaled RGB565 surface to the
// screen. Surface is the external collaborator spec.md §1 calls the
// "video output device"; this package supplies its SDL2-backed
// implementation.
package video

// Surface is the presentation sink the frame loop flushes to once per
// rendered frame.
type Surface interface {
	// Present uploads pixels (a full Width*Height RGB565 buffer, row
	// stride Pitch bytes) and flips it to the screen.
	Present(pixels []byte) error
	Close()
}
