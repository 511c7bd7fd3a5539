package sprite

import (
	"fmt"
	"image"
)

// Box is a bounding box in buffer coordinates. All four bounds are inclusive.
type Box struct {
	RowMin int `json:"row_min"`
	RowMax int `json:"row_max"`
	ColMin int `json:"col_min"`
	ColMax int `json:"col_max"`
}

// Width returns the number of columns spanned by the box.
func (b Box) Width() int { return b.ColMax - b.ColMin + 1 }

// Height returns the number of rows spanned by the box.
func (b Box) Height() int { return b.RowMax - b.RowMin + 1 }

// Rect converts the inclusive box into a half-open image.Rectangle.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.ColMin, b.RowMin, b.ColMax+1, b.RowMax+1)
}

func (b Box) String() string {
	return fmt.Sprintf("rows %d..%d, cols %d..%d", b.RowMin, b.RowMax, b.ColMin, b.ColMax)
}

// BoundingBox returns the smallest box containing every pixel with alpha > 0.
//
// Returns ErrEmptyContent if no pixel is occupied.
func BoundingBox(mask *Mask) (Box, error) {
	box := Box{RowMin: -1, ColMin: mask.Width, ColMax: -1}
	for y := 0; y < mask.Height; y++ {
		row := mask.Alpha[y*mask.Width : (y+1)*mask.Width]
		for x, a := range row {
			if a <= 0 {
				continue
			}
			if box.RowMin < 0 {
				box.RowMin = y
			}
			box.RowMax = y
			if x < box.ColMin {
				box.ColMin = x
			}
			if x > box.ColMax {
				box.ColMax = x
			}
		}
	}
	if box.RowMin < 0 {
		return Box{}, ErrEmptyContent
	}
	return box, nil
}

// Crop returns a copy of the pixels inside box.
// The box must lie within the buffer; BoundingBox always produces one that does.
func Crop(buf *Buffer, box Box) *Buffer {
	out := newBuffer(box.Width(), box.Height())
	for y := 0; y < out.Height; y++ {
		src := buf.Pix[buf.offset(box.ColMin, box.RowMin+y):buf.offset(box.ColMax+1, box.RowMin+y)]
		copy(out.Pix[out.offset(0, y):], src)
	}
	return out
}
