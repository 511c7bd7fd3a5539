// Package colors resolves user supplied color tokens to RGB triples in [0, 1].
//
// A token may be any of:
//
//	#RRGGBB, #RGB, #RRGGBBAA  hex code (alpha is ignored)
//	R,G,B                     integer components in [0, 255]
//	N                         integer gray level in [0, 255]
//	F                         float gray level in [0, 1]
//	name                      CSS color name, case-insensitive
//	HeritageBlue              JHU palette name in any word case
//	primary-N, secondary-N    indexed JHU primaries and secondaries
//	accent-N                  indexed JHU accent, N in [0, 14]
//	gray-F                    JHU gray ramp, Sable (0) to White (1)
//
// User palettes registered on a Resolver are consulted last.
package colors

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ironsheep/sprite-tools/internal/palette"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrUnrecognizedColor indicates a token matching no known color form.
var ErrUnrecognizedColor = errors.New("unrecognized color")

var (
	tripletPattern = regexp.MustCompile(`^(\d{1,3}),(\d{1,3}),(\d{1,3})$`)
	grayPattern    = regexp.MustCompile(`^\d{1,3}$`)
)

// Resolver converts tokens to colors. The zero value resolves built-in forms
// only. A Resolver is safe for concurrent use once constructed.
type Resolver struct {
	palettes []*palette.Palette
}

// NewResolver returns a resolver that falls back to the given palettes, in
// order, after the built-in forms.
func NewResolver(palettes ...*palette.Palette) *Resolver {
	return &Resolver{palettes: palettes}
}

var defaultResolver = &Resolver{}

// Resolve resolves a token with built-in forms only.
func Resolve(token string) (colorful.Color, error) {
	return defaultResolver.Resolve(token)
}

// Resolve converts token to an RGB triple in [0, 1].
func (r *Resolver) Resolve(token string) (colorful.Color, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return colorful.Color{}, fmt.Errorf("%w: empty token", ErrUnrecognizedColor)
	}

	if strings.HasPrefix(token, "#") {
		return parseHex(token)
	}

	if m := tripletPattern.FindStringSubmatch(token); m != nil {
		var rgb [3]float64
		for i := 0; i < 3; i++ {
			v, _ := strconv.Atoi(m[i+1])
			if v > 255 {
				return colorful.Color{}, fmt.Errorf("%w: component %d of %q exceeds 255", ErrUnrecognizedColor, v, token)
			}
			rgb[i] = float64(v) / 255
		}
		return colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}, nil
	}

	if grayPattern.MatchString(token) {
		v, _ := strconv.Atoi(token)
		if v > 255 {
			return colorful.Color{}, fmt.Errorf("%w: gray level %d exceeds 255", ErrUnrecognizedColor, v)
		}
		g := float64(v) / 255
		return colorful.Color{R: g, G: g, B: g}, nil
	}

	if f, err := strconv.ParseFloat(token, 64); err == nil {
		if f < 0 || f > 1 {
			return colorful.Color{}, fmt.Errorf("%w: gray level %v not in [0,1]", ErrUnrecognizedColor, f)
		}
		return colorful.Color{R: f, G: f, B: f}, nil
	}

	if c, ok := cssColor(token); ok {
		return c, nil
	}

	if c, ok, err := jhuColor(token); ok || err != nil {
		return c, err
	}

	for _, p := range r.palettes {
		if c, ok := p.Find(token); ok {
			return c, nil
		}
	}

	return colorful.Color{}, fmt.Errorf("%w: %q", ErrUnrecognizedColor, token)
}

// parseHex accepts 3, 6 or 8 hex digits. Eight digits carry an alpha byte
// which is dropped.
func parseHex(token string) (colorful.Color, error) {
	switch len(token) {
	case 9:
		token = token[:7]
	case 4, 7:
	default:
		return colorful.Color{}, fmt.Errorf("%w: %q: want 3, 6 or 8 hex digits", ErrUnrecognizedColor, token)
	}
	c, err := colorful.Hex(token)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q: %v", ErrUnrecognizedColor, token, err)
	}
	return c, nil
}

func cssColor(token string) (colorful.Color, bool) {
	name := strings.ToLower(token)
	if name == "rebeccapurple" {
		return colorful.Color{R: 102.0 / 255, G: 51.0 / 255, B: 153.0 / 255}, true
	}
	rgba, ok := colornames.Map[name]
	if !ok {
		return colorful.Color{}, false
	}
	c, _ := colorful.MakeColor(rgba)
	return c, true
}

// jhuColor resolves JHU palette names and the indexed forms. A recognized
// prefix with a bad index is an error rather than a miss.
func jhuColor(token string) (colorful.Color, bool, error) {
	if c, ok := palette.JHU().Find(token); ok {
		return c, true, nil
	}

	kind, arg, found := strings.Cut(strings.ToLower(token), "-")
	if !found {
		return colorful.Color{}, false, nil
	}

	var lookup func(int) (colorful.Color, error)
	switch kind {
	case "primary":
		lookup = palette.JHUPrimary
	case "secondary":
		lookup = palette.JHUSecondary
	case "accent":
		lookup = palette.JHUAccent
	case "gray", "grey":
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil || v < 0 || v > 1 {
			return colorful.Color{}, false, fmt.Errorf("%w: gray level %q not in [0,1]", ErrUnrecognizedColor, arg)
		}
		return palette.JHUGray(v), true, nil
	default:
		return colorful.Color{}, false, nil
	}

	i, err := strconv.Atoi(arg)
	if err != nil {
		return colorful.Color{}, false, fmt.Errorf("%w: index %q in %q", ErrUnrecognizedColor, arg, token)
	}
	c, err := lookup(i)
	if err != nil {
		return colorful.Color{}, false, fmt.Errorf("%w: %v", ErrUnrecognizedColor, err)
	}
	return c, true, nil
}
