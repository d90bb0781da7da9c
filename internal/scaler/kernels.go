package scaler

import "fmt"

// KernelByName resolves a configured kernel name to its Kernel. Unknown
// names are a configuration error, not a silent fallback.
func KernelByName(name string) (Kernel, error) {
	switch name {
	case "", "plain":
		return PlainKernel{}, nil
	case "lcd-grid":
		return LCDGridKernel{}, nil
	case "dmg-ghost":
		return DMGGhostKernel{}, nil
	default:
		return nil, fmt.Errorf("scaler: unknown kernel %q", name)
	}
}

// PlainKernel replicates each source pixel into an s x s destination
// block, nearest-neighbor.
type PlainKernel struct{}

func (PlainKernel) Blit(dst *Surface, src SourceFrame, g Geometry) {
	for y := 0; y < src.Height; y++ {
		in := srcRow(src, y)
		baseY := g.OffsetY + y*g.Scale
		for x := 0; x < src.Width; x++ {
			p := readPixel565(in, x)
			baseX := g.OffsetX + x*g.Scale
			for sy := 0; sy < g.Scale; sy++ {
				out := dstRow(dst, baseY+sy)
				for sx := 0; sx < g.Scale; sx++ {
					writePixel565(out, baseX+sx, p)
				}
			}
		}
	}
}

// LCDGridKernel is a 3x kernel with a per-channel mask and black seams,
// simulating an LCD sub-pixel grid. Scale factors other than 3 fall back
// to plain replication (the grid pattern only makes sense at 3x).
type LCDGridKernel struct{}

const (
	maskR uint16 = 0b1111100000000000
	maskG uint16 = 0b0000011111100000
	maskB uint16 = 0b0000000000011111
)

func (LCDGridKernel) Blit(dst *Surface, src SourceFrame, g Geometry) {
	if g.Scale != 3 {
		PlainKernel{}.Blit(dst, src, g)
		return
	}
	const black uint16 = 0x0000
	for y := 0; y < src.Height; y++ {
		in := srcRow(src, y)
		baseY := g.OffsetY + y*3
		for x := 0; x < src.Width; x++ {
			s := readPixel565(in, x)
			r := s & maskR
			gc := s & maskG
			b := s & maskB
			baseX := g.OffsetX + x*3

			row0 := dstRow(dst, baseY)
			writePixel565(row0, baseX, black)
			writePixel565(row0, baseX+1, gc)
			writePixel565(row0, baseX+2, black)

			row1 := dstRow(dst, baseY+1)
			writePixel565(row1, baseX, r)
			writePixel565(row1, baseX+1, gc)
			writePixel565(row1, baseX+2, b)

			row2 := dstRow(dst, baseY+2)
			writePixel565(row2, baseX, r)
			writePixel565(row2, baseX+1, black)
			writePixel565(row2, baseX+2, b)
		}
	}
}

// weight2_3 blends A weighted 2 and B weighted 3 (of 5), per-channel in
// RGB565 (5/6/5 channel widths), matching original_source's
// Weight2_3 macro bit-for-bit.
func weight2_3(a, b uint16) uint16 {
	ar, ag, ab := channels565(a)
	br, bg, bb := channels565(b)
	r := ((2*ar + 3*br) / 5) & 0x1f
	g := ((2*ag + 3*bg) / 5) & 0x3f
	bl := ((2*ab + 3*bb) / 5) & 0x1f
	return pack565(r, g, bl)
}

// weight3_2 is weight2_3 with the roles of A and B swapped (symmetric).
func weight3_2(a, b uint16) uint16 {
	return weight2_3(b, a)
}

func channels565(c uint16) (r, g, b uint16) {
	r = (c & 0xf800) >> 11
	g = (c & 0x07e0) >> 5
	b = c & 0x001f
	return
}

func pack565(r, g, b uint16) uint16 {
	return (r&0x1f)<<11 | (g&0x3f)<<5 | (b & 0x1f)
}

// DMGGhostKernel is a 3x kernel that blends toward a background color
// with 2/3 and 3/2 weights, simulating Game Boy LCD ghosting. Scale
// factors other than 3 fall back to plain replication.
type DMGGhostKernel struct {
	// Background is the ghost blend target; zero value defaults to white
	// (0xffff), matching original_source.
	Background uint16
}

func (k DMGGhostKernel) Blit(dst *Surface, src SourceFrame, g Geometry) {
	if g.Scale != 3 {
		PlainKernel{}.Blit(dst, src, g)
		return
	}
	bg := k.Background
	if bg == 0 {
		bg = 0xffff
	}
	for y := 0; y < src.Height; y++ {
		in := srcRow(src, y)
		baseY := g.OffsetY + y*3
		for x := 0; x < src.Width; x++ {
			a := readPixel565(in, x)
			b := weight3_2(a, bg)
			c := weight2_3(a, bg)
			baseX := g.OffsetX + x*3

			row0 := dstRow(dst, baseY)
			writePixel565(row0, baseX, b)
			writePixel565(row0, baseX+1, a)
			writePixel565(row0, baseX+2, a)

			row1 := dstRow(dst, baseY+1)
			writePixel565(row1, baseX, b)
			writePixel565(row1, baseX+1, a)
			writePixel565(row1, baseX+2, a)

			row2 := dstRow(dst, baseY+2)
			writePixel565(row2, baseX, c)
			writePixel565(row2, baseX+1, b)
			writePixel565(row2, baseX+2, b)
		}
	}
}
