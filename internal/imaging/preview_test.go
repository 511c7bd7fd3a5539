package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestCheckerboard(t *testing.T) {
	img := Checkerboard(8, 4, 2)

	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, checkerLight},
		{1, 1, checkerLight},
		{2, 0, checkerDark},
		{0, 2, checkerDark},
		{2, 2, checkerLight},
		{7, 3, checkerLight},
	}
	for _, tt := range tests {
		if got := img.NRGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("(%d,%d): got %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestPreview(t *testing.T) {
	sprite := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	sprite.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})

	out := Preview(sprite, 2)

	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("opaque pixel: got %v, want red", got)
	}
	if got := out.NRGBAAt(2, 0); got != checkerDark {
		t.Errorf("transparent pixel: got %v, want checker %v", got, checkerDark)
	}
	for i := 3; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 255 {
			t.Fatalf("preview should be opaque, alpha %d at sample %d", out.Pix[i], i)
		}
	}
}

func TestOutlineBox(t *testing.T) {
	src := createInMemoryImage(6, 6, color.NRGBA{0, 0, 0, 255})
	green := color.NRGBA{0, 255, 0, 255}

	out := OutlineBox(src, image.Rect(1, 1, 5, 5), green)

	for _, p := range []image.Point{{1, 1}, {4, 1}, {1, 4}, {4, 4}, {2, 1}, {1, 3}} {
		if got := out.NRGBAAt(p.X, p.Y); got != green {
			t.Errorf("outline %v: got %v, want green", p, got)
		}
	}
	for _, p := range []image.Point{{0, 0}, {2, 2}, {3, 3}, {5, 5}} {
		if got := out.NRGBAAt(p.X, p.Y); got != (color.NRGBA{0, 0, 0, 255}) {
			t.Errorf("untouched %v: got %v, want black", p, got)
		}
	}
	if src.NRGBAAt(1, 1) != (color.NRGBA{0, 0, 0, 255}) {
		t.Error("OutlineBox modified its input")
	}
}

func TestOutlineBox_OutsideImage(t *testing.T) {
	src := createInMemoryImage(3, 3, color.NRGBA{9, 9, 9, 255})

	out := OutlineBox(src, image.Rect(10, 10, 20, 20), color.NRGBA{255, 0, 0, 255})

	for i := range out.Pix {
		if out.Pix[i] != src.Pix[i] {
			t.Fatal("rectangle outside the image should leave it unchanged")
		}
	}
}
