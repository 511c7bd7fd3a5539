package palette

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

//go:embed data/jhu.txt
var jhuText []byte

var (
	jhuSable = colorful.Color{R: 49.0 / 255, G: 38.0 / 255, B: 29.0 / 255}
	jhuWhite = colorful.Color{R: 1, G: 1, B: 1}
)

// jhu is built once at init and never modified.
var jhu = mustBuildJHU()

// JHU returns the built-in Johns Hopkins brand palette: primaries, secondaries,
// fifteen accents, White, Sable, DoubleBlack and the Gray10..Gray90 ramp.
func JHU() *Palette { return jhu }

// JHUGray interpolates between Sable (v = 0) and White (v = 1).
func JHUGray(v float64) colorful.Color {
	return jhuSable.BlendRgb(jhuWhite, v)
}

// JHUPrimary returns the i-th primary color (HeritageBlue, SpiritBlue).
func JHUPrimary(i int) (colorful.Color, error) {
	return jhuIndexed([]string{"HeritageBlue", "SpiritBlue"}, "primary", i)
}

// JHUSecondary returns the i-th secondary color (orange, green, blue, yellow).
func JHUSecondary(i int) (colorful.Color, error) {
	return jhuIndexed([]string{"SecondaryOrange", "SecondaryGreen", "SecondaryBlue", "SecondaryYellow"}, "secondary", i)
}

// JHUAccent returns accent color i in [0, 14].
func JHUAccent(i int) (colorful.Color, error) {
	if i < 0 || i > 14 {
		return colorful.Color{}, fmt.Errorf("%w: accent %d", ErrUnknownColor, i)
	}
	c, _ := jhu.Get(fmt.Sprintf("Accent%d", i))
	return c, nil
}

func jhuIndexed(names []string, kind string, i int) (colorful.Color, error) {
	if i < 0 || i >= len(names) {
		return colorful.Color{}, fmt.Errorf("%w: %s %d", ErrUnknownColor, kind, i)
	}
	c, _ := jhu.Get(names[i])
	return c, nil
}

// Builtin returns a compiled-in palette by case-insensitive name.
func Builtin(name string) (*Palette, bool) {
	if strings.EqualFold(name, "jhu") {
		return jhu, true
	}
	return nil, false
}

func mustBuildJHU() *Palette {
	base, err := ParseText("JHU", bytes.NewReader(jhuText))
	if err != nil {
		panic(fmt.Sprintf("palette: embedded JHU palette: %v", err))
	}

	entries := base.Entries()
	names := make([]string, 0, len(entries)+9)
	colors := make([]colorful.Color, 0, len(entries)+9)
	for _, e := range entries {
		names = append(names, e.Name)
		colors = append(colors, e.Color)
	}
	for i := 1; i <= 9; i++ {
		names = append(names, fmt.Sprintf("Gray%d0", i))
		colors = append(colors, JHUGray(float64(i)/10))
	}

	p, err := New("JHU", names, colors)
	if err != nil {
		panic(fmt.Sprintf("palette: embedded JHU palette: %v", err))
	}
	return p
}
