package sprite

import (
	"fmt"
	"image"
	"image/color"
)

// Buffer is a normalized RGBA pixel buffer.
//
// Pix holds Width*Height*4 samples in row-major order with channels in
// R, G, B, A order. Every sample lies in [0, 1] and the samples are not
// premultiplied by alpha.
type Buffer struct {
	Width  int
	Height int
	Pix    []float64
}

// NewBuffer wraps pix as a buffer of the given size.
//
// Returns ErrMalformedBuffer if the dimensions are negative or pix does not
// hold exactly width*height*4 samples.
func NewBuffer(width, height int, pix []float64) (*Buffer, error) {
	if width < 0 || height < 0 || len(pix) != width*height*4 {
		return nil, fmt.Errorf("%w: %dx%d needs %d samples, got %d",
			ErrMalformedBuffer, width, height, width*height*4, len(pix))
	}
	return &Buffer{Width: width, Height: height, Pix: pix}, nil
}

// newBuffer allocates a zeroed (transparent black) buffer.
func newBuffer(width, height int) *Buffer {
	return &Buffer{Width: width, Height: height, Pix: make([]float64, width*height*4)}
}

// BufferFromImage converts any image to a normalized buffer.
//
// Colors are converted to non-premultiplied 8-bit RGBA first, so a source
// without an alpha channel becomes fully opaque.
func BufferFromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	buf := newBuffer(bounds.Dx(), bounds.Dy())

	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < buf.Height; y++ {
			row := src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			for i := 0; i < buf.Width*4; i++ {
				buf.Pix[y*buf.Width*4+i] = float64(row[i]) / 255
			}
		}
		return buf
	}

	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA)
			i := buf.offset(x, y)
			buf.Pix[i+0] = float64(c.R) / 255
			buf.Pix[i+1] = float64(c.G) / 255
			buf.Pix[i+2] = float64(c.B) / 255
			buf.Pix[i+3] = float64(c.A) / 255
		}
	}
	return buf
}

// ToNRGBA denormalizes the buffer to 8 bits per channel.
// Samples are clamped to [0, 1] and truncated after scaling by 255.
func (b *Buffer) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for i, v := range b.Pix {
		img.Pix[i] = denormalize(v)
	}
	return img
}

// Alpha returns the alpha channel as a new mask.
func (b *Buffer) Alpha() *Mask {
	m := newMask(b.Width, b.Height)
	for i := range m.Alpha {
		m.Alpha[i] = b.Pix[i*4+3]
	}
	return m
}

// Pad returns a copy of the buffer surrounded by n transparent black pixels
// on every side.
func (b *Buffer) Pad(n int) *Buffer {
	out := newBuffer(b.Width+2*n, b.Height+2*n)
	for y := 0; y < b.Height; y++ {
		copy(out.Pix[out.offset(n, y+n):out.offset(n+b.Width, y+n)], b.Pix[b.offset(0, y):b.offset(b.Width, y)])
	}
	return out
}

func (b *Buffer) offset(x, y int) int {
	return (y*b.Width + x) * 4
}

func (b *Buffer) clone() *Buffer {
	pix := make([]float64, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{Width: b.Width, Height: b.Height, Pix: pix}
}

// Mask is a per-pixel opacity grid with values in [0, 1], stored row-major.
type Mask struct {
	Width  int
	Height int
	Alpha  []float64
}

func newMask(width, height int) *Mask {
	return &Mask{Width: width, Height: height, Alpha: make([]float64, width*height)}
}

// At returns the opacity at column x, row y.
func (m *Mask) At(x, y int) float64 {
	return m.Alpha[y*m.Width+x]
}

// Pad returns a copy of the mask surrounded by n zero pixels on every side.
func (m *Mask) Pad(n int) *Mask {
	out := newMask(m.Width+2*n, m.Height+2*n)
	for y := 0; y < m.Height; y++ {
		dst := (y+n)*out.Width + n
		copy(out.Alpha[dst:dst+m.Width], m.Alpha[y*m.Width:(y+1)*m.Width])
	}
	return out
}

func denormalize(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
