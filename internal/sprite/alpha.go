package sprite

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// thresholdCutoff is the minimum intensity difference from the background
	// that counts as foreground when fuzz is off.
	thresholdCutoff = 0.05

	// fuzzLow and fuzzHigh bound the soft alpha ramp. Mean channel differences
	// at or below fuzzLow are transparent, at or above fuzzHigh fully opaque.
	fuzzLow  = 0.05
	fuzzHigh = 0.8
)

// Synthesize derives an alpha mask from the distance between each pixel and
// the background color.
//
// If the buffer already carries transparency (any alpha sample below 1), its
// alpha channel is returned unchanged and background and fuzz are ignored.
//
// Otherwise:
//   - fuzz off: a pixel is opaque when its mean intensity differs from the
//     background's mean intensity by at least 0.05, transparent otherwise.
//   - fuzz on: the mean per-channel absolute difference from the background is
//     clamped to [0.05, 0.8] and rescaled linearly to [0, 1].
func Synthesize(buf *Buffer, background colorful.Color, fuzz bool) *Mask {
	if hasTransparency(buf) {
		Logger().Info("image already has transparency, keeping its alpha")
		return buf.Alpha()
	}

	mask := newMask(buf.Width, buf.Height)
	bgIntensity := (background.R + background.G + background.B) / 3

	if fuzz {
		Logger().Debug("synthesizing alpha with fuzz", "width", buf.Width, "height", buf.Height)
	} else {
		Logger().Debug("synthesizing alpha with threshold", "width", buf.Width, "height", buf.Height)
	}

	for i := range mask.Alpha {
		r, g, b := buf.Pix[i*4], buf.Pix[i*4+1], buf.Pix[i*4+2]
		if !fuzz {
			intensity := (r + g + b) / 3
			if math.Abs(intensity-bgIntensity) >= thresholdCutoff {
				mask.Alpha[i] = 1
			}
			continue
		}
		diff := (math.Abs(r-background.R) + math.Abs(g-background.G) + math.Abs(b-background.B)) / 3
		mask.Alpha[i] = fuzzAlpha(diff)
	}
	return mask
}

// fuzzAlpha maps a mean channel difference onto the soft alpha ramp.
func fuzzAlpha(diff float64) float64 {
	d := math.Min(math.Max(diff, fuzzLow), fuzzHigh)
	return (d - fuzzLow) / (fuzzHigh - fuzzLow)
}

func hasTransparency(buf *Buffer) bool {
	for i := 3; i < len(buf.Pix); i += 4 {
		if buf.Pix[i] != 1 {
			return true
		}
	}
	return false
}
