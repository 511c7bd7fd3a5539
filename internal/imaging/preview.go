package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// DefaultCheckerCell is the checkerboard square size used by Preview.
const DefaultCheckerCell = 8

var (
	checkerLight = color.NRGBA{255, 255, 255, 255}
	checkerDark  = color.NRGBA{204, 204, 204, 255}
)

// Checkerboard returns an opaque width x height checkerboard with square
// cells of the given size, starting with a light cell at the origin.
func Checkerboard(width, height, cell int) *image.NRGBA {
	if cell < 1 {
		cell = DefaultCheckerCell
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := checkerLight
			if (x/cell+y/cell)%2 == 1 {
				c = checkerDark
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// Preview flattens img over a checkerboard so that transparent and
// translucent regions are visible in viewers that ignore alpha.
func Preview(img image.Image, cell int) *image.NRGBA {
	b := img.Bounds()
	bg := Checkerboard(b.Dx(), b.Dy(), cell)
	return imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
}

// OutlineBox returns a copy of img with a one pixel outline drawn along the
// inside of rect. Parts of rect outside img are ignored.
func OutlineBox(img image.Image, rect image.Rectangle, c color.Color) *image.NRGBA {
	out := imaging.Clone(img)
	r := rect.Sub(img.Bounds().Min).Intersect(out.Bounds())
	if r.Empty() {
		return out
	}

	for x := r.Min.X; x < r.Max.X; x++ {
		out.Set(x, r.Min.Y, c)
		out.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		out.Set(r.Min.X, y, c)
		out.Set(r.Max.X-1, y, c)
	}
	return out
}
