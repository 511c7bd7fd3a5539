package sprite

import "github.com/lucasb-eyer/go-colorful"

// Composite writes mask into the alpha channel of a copy of buf.
//
// With a nil foreground the RGB samples are kept. Otherwise every pixel's RGB
// becomes the foreground color, turning the image into a flat silhouette.
func Composite(buf *Buffer, mask *Mask, foreground *colorful.Color) *Buffer {
	out := buf.clone()
	for i, a := range mask.Alpha {
		p := i * 4
		if foreground != nil {
			out.Pix[p+0] = foreground.R
			out.Pix[p+1] = foreground.G
			out.Pix[p+2] = foreground.B
		}
		out.Pix[p+3] = a
	}
	return out
}
