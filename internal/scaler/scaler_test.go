package scaler

import "testing"

func TestComputeGeometryScaleAndOffsets(t *testing.T) {
	cases := []struct {
		name                   string
		srcW, srcH, scrW, scrH int
		wantScale              int
		wantOffX, wantOffY     int
	}{
		{"exact fit", 160, 144, 320, 288, 2, 0, 0},
		{"narrower than tall", 160, 144, 320, 480, 2, 0, 96},
		{"clamped to max 4", 8, 8, 999, 999, 4, (999 - 32) / 2, (999 - 32) / 2},
		{"smaller than one scale", 400, 400, 320, 240, 1, -40, -80},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := ComputeGeometry(c.srcW, c.srcH, c.scrW, c.scrH)
			if g.Scale != c.wantScale {
				t.Errorf("Scale = %d, want %d", g.Scale, c.wantScale)
			}
			if g.OffsetX != c.wantOffX || g.OffsetY != c.wantOffY {
				t.Errorf("offsets = (%d,%d), want (%d,%d)", g.OffsetX, g.OffsetY, c.wantOffX, c.wantOffY)
			}
		})
	}
}

func TestComputeGeometryZeroSource(t *testing.T) {
	g := ComputeGeometry(0, 10, 320, 240)
	if g.Scale != 1 {
		t.Errorf("Scale for degenerate source = %d, want 1", g.Scale)
	}
}

func TestClearBlackZeroesEverything(t *testing.T) {
	dst := &Surface{Pixels: make([]byte, 64), Width: 4, Height: 8, Pitch: 8}
	for i := range dst.Pixels {
		dst.Pixels[i] = 0xff
	}
	ClearBlack(dst)
	for i, b := range dst.Pixels {
		if b != 0 {
			t.Fatalf("byte %d = %#x, want 0", i, b)
		}
	}
}

func TestPlainKernelBlitExactPixels(t *testing.T) {
	src := SourceFrame{
		Pixels: []byte{0x34, 0x12, 0x78, 0x56}, // two RGB565 pixels, little-endian
		Width:  2,
		Height: 1,
		Pitch:  4,
	}
	dst := &Surface{Pixels: make([]byte, 4*2*2), Width: 4, Height: 2, Pitch: 8}
	ClearBlack(dst)

	g := Geometry{Scale: 2, OffsetX: 0, OffsetY: 0}
	PlainKernel{}.Blit(dst, src, g)

	want := uint16(0x1234)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			got := readPixel565(dstRow(dst, y), x)
			if got != want {
				t.Errorf("pixel (%d,%d) = %#04x, want %#04x", x, y, got, want)
			}
		}
	}
	want2 := uint16(0x5678)
	for y := 0; y < 2; y++ {
		for x := 2; x < 4; x++ {
			got := readPixel565(dstRow(dst, y), x)
			if got != want2 {
				t.Errorf("pixel (%d,%d) = %#04x, want %#04x", x, y, got, want2)
			}
		}
	}
}

func TestKernelByName(t *testing.T) {
	if _, err := KernelByName("plain"); err != nil {
		t.Fatalf("plain: %v", err)
	}
	if _, err := KernelByName(""); err != nil {
		t.Fatalf("empty defaults to plain: %v", err)
	}
	if _, err := KernelByName("lcd-grid"); err != nil {
		t.Fatalf("lcd-grid: %v", err)
	}
	if _, err := KernelByName("dmg-ghost"); err != nil {
		t.Fatalf("dmg-ghost: %v", err)
	}
	if _, err := KernelByName("bogus"); err == nil {
		t.Fatal("expected error for unknown kernel name")
	}
}
