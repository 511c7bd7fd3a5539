package sprite

import (
	"errors"
	"image"
	"testing"
)

func TestBoundingBox(t *testing.T) {
	tests := []struct {
		name string
		mask *Mask
		want Box
	}{
		{
			"single pixel",
			maskFromRows("....", "..#.", "...."),
			Box{RowMin: 1, RowMax: 1, ColMin: 2, ColMax: 2},
		},
		{
			"full mask",
			maskFromRows("##", "##"),
			Box{RowMin: 0, RowMax: 1, ColMin: 0, ColMax: 1},
		},
		{
			"scattered pixels",
			maskFromRows(".....", ".#...", ".....", "....#", "..#.."),
			Box{RowMin: 1, RowMax: 4, ColMin: 1, ColMax: 4},
		},
		{
			"last row and column",
			maskFromRows("...", "...", "..#"),
			Box{RowMin: 2, RowMax: 2, ColMin: 2, ColMax: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BoundingBox(tt.mask)
			if err != nil {
				t.Fatalf("BoundingBox failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("box: got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBoundingBox_Empty(t *testing.T) {
	_, err := BoundingBox(maskFromRows("...", "..."))
	if !errors.Is(err, ErrEmptyContent) {
		t.Errorf("error: got %v, want ErrEmptyContent", err)
	}
}

func TestBoundingBox_SoftAlphaCounts(t *testing.T) {
	m := maskFromRows("...", "...")
	m.Alpha[5] = 0.001

	box, err := BoundingBox(m)
	if err != nil {
		t.Fatalf("BoundingBox failed: %v", err)
	}
	if box.RowMin != 1 || box.ColMin != 2 {
		t.Errorf("box: got %+v, want the faint pixel at row 1, col 2", box)
	}
}

func TestBoundingBox_ContainsAllContent(t *testing.T) {
	m := newMask(17, 11)
	for i := range m.Alpha {
		if (i*13)%29 == 3 {
			m.Alpha[i] = 0.5
		}
	}

	box, err := BoundingBox(m)
	if err != nil {
		t.Fatalf("BoundingBox failed: %v", err)
	}

	rowHit := make(map[int]bool)
	colHit := make(map[int]bool)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.At(x, y) <= 0 {
				continue
			}
			if y < box.RowMin || y > box.RowMax || x < box.ColMin || x > box.ColMax {
				t.Errorf("(%d,%d) outside box %v", x, y, box)
			}
			rowHit[y] = true
			colHit[x] = true
		}
	}
	// Every edge of the box must touch content.
	if !rowHit[box.RowMin] || !rowHit[box.RowMax] || !colHit[box.ColMin] || !colHit[box.ColMax] {
		t.Errorf("box %v is larger than the content", box)
	}
}

func TestCrop(t *testing.T) {
	buf := newBuffer(4, 3)
	for i := range buf.Pix {
		buf.Pix[i] = float64(i) / float64(len(buf.Pix))
	}
	box := Box{RowMin: 1, RowMax: 2, ColMin: 1, ColMax: 3}

	out := Crop(buf, box)

	if out.Width != 3 || out.Height != 2 {
		t.Fatalf("dimensions: got %dx%d, want 3x2", out.Width, out.Height)
	}
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			for c := 0; c < 4; c++ {
				got := out.Pix[out.offset(x, y)+c]
				want := buf.Pix[buf.offset(x+1, y+1)+c]
				if got != want {
					t.Errorf("(%d,%d) channel %d: got %v, want %v", x, y, c, got, want)
				}
			}
		}
	}
}

func TestBox_Dimensions(t *testing.T) {
	box := Box{RowMin: 3, RowMax: 6, ColMin: 2, ColMax: 2}
	if box.Width() != 1 || box.Height() != 4 {
		t.Errorf("dimensions: got %dx%d, want 1x4", box.Width(), box.Height())
	}
}

func TestBox_Rect(t *testing.T) {
	b := Box{RowMin: 2, RowMax: 4, ColMin: 1, ColMax: 6}

	r := b.Rect()

	if r != image.Rect(1, 2, 7, 5) {
		t.Errorf("Rect: got %v, want (1,2)-(7,5)", r)
	}
	if r.Dx() != b.Width() || r.Dy() != b.Height() {
		t.Errorf("Rect size %dx%d disagrees with box %dx%d", r.Dx(), r.Dy(), b.Width(), b.Height())
	}
}
