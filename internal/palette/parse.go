package palette

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseText reads a plain text palette with one "R G B name" entry per line,
// components in [0, 255]. Blank lines and lines starting with '#' are skipped.
func ParseText(name string, r io.Reader) (*Palette, error) {
	return parse(name, r, func(line string) bool {
		return line == "" || strings.HasPrefix(line, "#")
	})
}

// ParseGPL reads a GIMP palette. Header lines ("GIMP Palette", "Name:",
// "Columns:"), comments and entries without a name are skipped.
func ParseGPL(name string, r io.Reader) (*Palette, error) {
	return parse(name, r, func(line string) bool {
		if line == "" || strings.HasPrefix(line, "#") ||
			strings.HasPrefix(line, "GIMP") || strings.HasPrefix(line, "Name") ||
			strings.HasPrefix(line, "Columns") {
			return true
		}
		return len(strings.Fields(line)) < 4
	})
}

// LoadFile loads a palette from disk, choosing the GIMP parser for ".gpl"
// files and the plain text parser otherwise. The palette is named after the
// file's base name without extension.
func LoadFile(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open palette: %w", err)
	}
	defer f.Close()

	ext := filepath.Ext(path)
	name := strings.TrimSuffix(filepath.Base(path), ext)
	if strings.EqualFold(ext, ".gpl") {
		return ParseGPL(name, f)
	}
	return ParseText(name, f)
}

func parse(name string, r io.Reader, skip func(line string) bool) (*Palette, error) {
	var names []string
	var colors []colorful.Color

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if skip(line) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, fmt.Errorf("%w: line %d: want \"R G B name\", got %q", ErrMalformedLine, lineNo, line)
		}
		var rgb [3]float64
		for i := 0; i < 3; i++ {
			v, err := strconv.Atoi(fields[i])
			if err != nil || v < 0 || v > 255 {
				return nil, fmt.Errorf("%w: line %d: component %q not in [0,255]", ErrMalformedLine, lineNo, fields[i])
			}
			rgb[i] = float64(v) / 255
		}

		names = append(names, strings.Join(fields[3:], " "))
		colors = append(colors, colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read palette: %w", err)
	}

	return New(name, names, colors)
}
