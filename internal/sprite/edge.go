package sprite

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RenderEdge paints an anti-aliased outline of the given thickness around the
// silhouette described by mask.
//
// Both inputs are first padded by thickness+1 transparent pixels per side so
// the ring can grow past the original canvas. For every pixel at distance d
// from the mask boundary the edge opacity is
//
//	1 - clamp(d - thickness, 0, thickness) / thickness
//
// so the band is solid up to thickness pixels away and fades out at twice
// that. Wherever the edge opacity exceeds the mask, the pixel takes the edge
// color and the edge opacity. The returned mask is max(mask, edge opacity).
//
// A mask without a boundary yields the padded inputs unchanged. Thickness
// below one is treated as one.
func RenderEdge(buf *Buffer, mask *Mask, edge colorful.Color, thickness int) (*Buffer, *Mask) {
	if thickness < 1 {
		thickness = 1
	}
	pad := thickness + 1
	out := buf.Pad(pad)
	outMask := mask.Pad(pad)

	Logger().Debug("rendering edge", "thickness", thickness, "width", out.Width, "height", out.Height)

	dist, ok := BoundaryDistance(outMask)
	if !ok {
		Logger().Warn("mask has no boundary, skipping edge")
		return out, outMask
	}

	t := float64(thickness)
	for i, d := range dist {
		ea := edgeAlpha(d, t)
		if ea <= outMask.Alpha[i] {
			continue
		}
		p := i * 4
		out.Pix[p+0] = edge.R
		out.Pix[p+1] = edge.G
		out.Pix[p+2] = edge.B
		out.Pix[p+3] = ea
		outMask.Alpha[i] = ea
	}
	return out, outMask
}

func edgeAlpha(d, t float64) float64 {
	return 1 - math.Min(math.Max(d-t, 0), t)/t
}
