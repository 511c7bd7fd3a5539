package sprite

import (
	"errors"
	"fmt"
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultEdgeThickness is the outline width used when Options.EdgeThickness is zero.
const DefaultEdgeThickness = 3

// Options controls a single pipeline run.
type Options struct {
	// Background is the flat background color to make transparent.
	Background colorful.Color

	// Foreground, when set, replaces every RGB sample with this color.
	Foreground *colorful.Color

	// Edge, when set, draws an outline of this color around the silhouette.
	Edge *colorful.Color

	// EdgeThickness is the outline width in pixels. Zero means DefaultEdgeThickness.
	EdgeThickness int

	// Fuzz selects the soft alpha ramp instead of the hard threshold.
	Fuzz bool

	// Crop trims the output to the bounding box of nonzero alpha.
	Crop bool

	// KeepEmpty emits the uncropped image instead of failing with
	// ErrEmptyContent when there is nothing to crop.
	KeepEmpty bool
}

// Result is the output of a pipeline run.
type Result struct {
	// Image is the finished sprite in non-premultiplied 8-bit RGBA.
	Image *image.NRGBA

	// Box is the crop applied, in the coordinates of the (possibly padded)
	// composited buffer. Zero when no crop happened.
	Box Box

	// Cropped reports whether Box was applied.
	Cropped bool
}

func (o Options) thickness() (int, error) {
	if o.EdgeThickness == 0 {
		return DefaultEdgeThickness, nil
	}
	if o.EdgeThickness < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidThickness, o.EdgeThickness)
	}
	return o.EdgeThickness, nil
}

// Make runs the full pipeline on img.
//
// Returns ErrInvalidThickness for a negative edge thickness and, when cropping
// without KeepEmpty, ErrEmptyContent if the result is fully transparent.
func Make(img image.Image, opts Options) (*Result, error) {
	thickness, err := opts.thickness()
	if err != nil {
		return nil, err
	}

	buf := BufferFromImage(img)
	Logger().Debug("decoded buffer", "width", buf.Width, "height", buf.Height)

	mask := Synthesize(buf, opts.Background, opts.Fuzz)
	out := Composite(buf, mask, opts.Foreground)

	if opts.Edge != nil {
		out, mask = RenderEdge(out, mask, *opts.Edge, thickness)
	}

	if !opts.Crop {
		return &Result{Image: out.ToNRGBA()}, nil
	}

	box, err := BoundingBox(mask)
	if errors.Is(err, ErrEmptyContent) && opts.KeepEmpty {
		Logger().Warn("nothing to crop, keeping full image")
		return &Result{Image: out.ToNRGBA()}, nil
	}
	if err != nil {
		return nil, err
	}
	Logger().Info("cropping", "box", box.String())

	return &Result{Image: Crop(out, box).ToNRGBA(), Box: box, Cropped: true}, nil
}
