// Package palette provides named color palettes used to resolve color tokens
// and to drive batch sprite generation.
//
// Palettes are immutable once built. They can be parsed from plain text
// ("R G B name" per line) or GIMP .gpl files, and a JHU brand palette is
// compiled in.
package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrUnknownColor indicates a color name that is not in the palette.
	ErrUnknownColor = errors.New("unknown palette color")
	// ErrMalformedLine indicates a palette file line that cannot be parsed.
	ErrMalformedLine = errors.New("malformed palette line")
	// ErrUnknownPalette indicates a palette name with no built-in or file match.
	ErrUnknownPalette = errors.New("unknown palette")
	// ErrLengthMismatch indicates a different number of names and colors.
	ErrLengthMismatch = errors.New("palette names and colors differ in length")
)

// Entry is one named color of a palette.
type Entry struct {
	Name  string
	Color colorful.Color
}

// Palette is an ordered, immutable list of named colors.
type Palette struct {
	name    string
	entries []Entry
	byName  map[string]int
	byClass map[string]int
}

// New builds a palette. With nil names, colors are named "color-0", "color-1", ...
func New(name string, names []string, colors []colorful.Color) (*Palette, error) {
	if names == nil {
		names = make([]string, len(colors))
		for i := range colors {
			names[i] = fmt.Sprintf("color-%d", i)
		}
	}
	if len(names) != len(colors) {
		return nil, fmt.Errorf("%w: %d names, %d colors", ErrLengthMismatch, len(names), len(colors))
	}

	p := &Palette{
		name:    name,
		entries: make([]Entry, len(colors)),
		byName:  make(map[string]int, len(colors)),
		byClass: make(map[string]int, len(colors)),
	}
	for i, c := range colors {
		p.entries[i] = Entry{Name: names[i], Color: c}
		p.byName[names[i]] = i
		p.byClass[ClassCase(names[i])] = i
	}
	return p, nil
}

// Name returns the palette's own name.
func (p *Palette) Name() string { return p.name }

// Len returns the number of colors.
func (p *Palette) Len() int { return len(p.entries) }

// At returns the i-th color.
func (p *Palette) At(i int) (colorful.Color, error) {
	if i < 0 || i >= len(p.entries) {
		return colorful.Color{}, fmt.Errorf("%w: index %d out of range [0,%d)", ErrUnknownColor, i, len(p.entries))
	}
	return p.entries[i].Color, nil
}

// Get returns the color with exactly this name.
func (p *Palette) Get(name string) (colorful.Color, bool) {
	i, ok := p.byName[name]
	if !ok {
		return colorful.Color{}, false
	}
	return p.entries[i].Color, true
}

// Contains reports whether a color with exactly this name exists.
func (p *Palette) Contains(name string) bool {
	_, ok := p.byName[name]
	return ok
}

// Find looks a color up by name, ignoring case and word separators, so that
// "heritage-blue", "heritage blue" and "HeritageBlue" all match.
func (p *Palette) Find(name string) (colorful.Color, bool) {
	if c, ok := p.Get(name); ok {
		return c, true
	}
	i, ok := p.byClass[ClassCase(name)]
	if !ok {
		return colorful.Color{}, false
	}
	return p.entries[i].Color, true
}

// Entries returns a copy of the palette's colors in order.
func (p *Palette) Entries() []Entry {
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// ClassCase normalizes a color name to UpperCamelCase: words separated by
// spaces, dashes or underscores are title-cased and joined.
func ClassCase(name string) string {
	caser := cases.Title(language.Und, cases.NoLower)
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return strings.Join(words, "")
}

// FileName converts a color name to a kebab-case string safe for file names,
// e.g. "HeritageBlue" becomes "heritage-blue".
func FileName(name string) string {
	var b strings.Builder
	prevLower, pendingSep := false, false
	for _, r := range name {
		upper := r >= 'A' && r <= 'Z'
		alnum := upper || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingSep = pendingSep || r == ' ' || r == '_' || r == '-'
			continue
		}
		if b.Len() > 0 && (pendingSep || (upper && prevLower)) {
			b.WriteByte('-')
		}
		if upper {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
		prevLower = !upper
		pendingSep = false
	}
	return b.String()
}
