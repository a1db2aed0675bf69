package render

import (
	"image"
	"image/color"
)

// TextureSize is the edge of one square frame in the shared texture strip.
const TextureSize = 64

// Strip is a horizontal texture strip: Frames square tiles side by side,
// indexed by integer frame id. Read-only after construction.
type Strip struct {
	Frames int
	pix    []byte // RGBA, row-major over the whole strip
	stride int
}

// NewStrip copies an image into a strip. The image width must be a multiple
// of TextureSize and the height exactly TextureSize; anything else is a
// content error and yields a single-frame magenta strip so the failure is
// visible instead of fatal.
func NewStrip(img image.Image) *Strip {
	b := img.Bounds()
	if b.Dy() != TextureSize || b.Dx()%TextureSize != 0 || b.Dx() == 0 {
		return solidStrip(color.RGBA{255, 0, 255, 255})
	}
	s := &Strip{
		Frames: b.Dx() / TextureSize,
		stride: b.Dx() * 4,
		pix:    make([]byte, b.Dx()*b.Dy()*4),
	}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bb, a := img.At(x, y).RGBA()
			s.pix[i] = byte(r >> 8)
			s.pix[i+1] = byte(g >> 8)
			s.pix[i+2] = byte(bb >> 8)
			s.pix[i+3] = byte(a >> 8)
			i += 4
		}
	}
	return s
}

func solidStrip(c color.RGBA) *Strip {
	s := &Strip{Frames: 1, stride: TextureSize * 4, pix: make([]byte, TextureSize*TextureSize*4)}
	for i := 0; i < len(s.pix); i += 4 {
		s.pix[i] = c.R
		s.pix[i+1] = c.G
		s.pix[i+2] = c.B
		s.pix[i+3] = c.A
	}
	return s
}

// At samples texel (u,v) of a frame. Out-of-range frames wrap so animation
// cursors can never index past the strip.
func (s *Strip) At(frame, u, v int) (r, g, b, a byte) {
	if s.Frames == 0 {
		return 0, 0, 0, 0
	}
	frame %= s.Frames
	if frame < 0 {
		frame += s.Frames
	}
	if u < 0 {
		u = 0
	} else if u >= TextureSize {
		u = TextureSize - 1
	}
	if v < 0 {
		v = 0
	} else if v >= TextureSize {
		v = TextureSize - 1
	}
	i := v*s.stride + (frame*TextureSize+u)*4
	return s.pix[i], s.pix[i+1], s.pix[i+2], s.pix[i+3]
}

// ProceduralStrip builds a flat-shaded placeholder strip with the given
// frame colors. Used by tests and as the fallback when no asset is shipped.
func ProceduralStrip(colors []color.RGBA) *Strip {
	if len(colors) == 0 {
		return solidStrip(color.RGBA{255, 0, 255, 255})
	}
	s := &Strip{
		Frames: len(colors),
		stride: len(colors) * TextureSize * 4,
		pix:    make([]byte, len(colors)*TextureSize*TextureSize*4),
	}
	for f, c := range colors {
		for v := 0; v < TextureSize; v++ {
			for u := 0; u < TextureSize; u++ {
				i := v*s.stride + (f*TextureSize+u)*4
				// A darker 1px border makes wall edges and sprite
				// outlines readable even untextured.
				cr, cg, cb := c.R, c.G, c.B
				if u == 0 || v == 0 || u == TextureSize-1 || v == TextureSize-1 {
					cr, cg, cb = cr/2, cg/2, cb/2
				}
				s.pix[i] = cr
				s.pix[i+1] = cg
				s.pix[i+2] = cb
				s.pix[i+3] = c.A
			}
		}
	}
	return s
}
