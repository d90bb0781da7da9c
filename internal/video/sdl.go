package video

import (
	"fmt"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

// SDLSurface is a streaming-texture Surface sized once at startup to the
// host's fixed screen dimensions (spec.md §3: the surface never
// resizes, only the scaler's blit rectangle moves within it).
type SDLSurface struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	pitch    int
}

// NewSDLSurface initializes SDL's video subsystem and opens a window of
// exactly width x height pixels with a nearest-neighbor streaming
// texture in RGB565.
func NewSDLSurface(title string, width, height int) (*SDLSurface, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("video: sdl init: %w", err)
	}
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")

	window, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(width), int32(height),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("video: create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("video: create renderer: %w", err)
	}

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_RGB565, sdl.TEXTUREACCESS_STREAMING, int32(width), int32(height))
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("video: create texture: %w", err)
	}

	return &SDLSurface{
		window:   window,
		renderer: renderer,
		texture:  texture,
		pitch:    width * 2,
	}, nil
}

// Present implements Surface.
func (s *SDLSurface) Present(pixels []byte) error {
	if len(pixels) == 0 {
		return nil
	}
	if err := s.texture.Update(nil, unsafe.Pointer(&pixels[0]), s.pitch); err != nil {
		return fmt.Errorf("video: update texture: %w", err)
	}
	s.renderer.Clear()
	if err := s.renderer.Copy(s.texture, nil, nil); err != nil {
		return fmt.Errorf("video: copy texture: %w", err)
	}
	s.renderer.Present()
	return nil
}

// Close implements Surface.
func (s *SDLSurface) Close() {
	s.texture.Destroy()
	s.renderer.Destroy()
	s.window.Destroy()
	sdl.Quit()
}
