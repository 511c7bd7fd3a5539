package main

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/ironsheep/sprite-tools/internal/colors"
	"github.com/ironsheep/sprite-tools/internal/imaging"
	"github.com/ironsheep/sprite-tools/internal/palette"
	"github.com/ironsheep/sprite-tools/internal/sprite"
)

type spriteFlags struct {
	output     string
	background string
	foreground string
	edge       string
	thickness  int
	fuzz       bool
	noFuzz     bool
	crop       bool
	noCrop     bool
	keepEmpty  bool
	scale      float64
	preview    bool
	fgPalette  string
	workers    int
}

func newSpriteCmd() *cobra.Command {
	var f spriteFlags

	cmd := &cobra.Command{
		Use:   "sprite INPUT",
		Short: "Make a transparent sprite from an image",
		Long: `Make a transparent sprite from an image with a flat background.

Colors accept CSS names, #RRGGBB or #RGB, "R,G,B" with components in 0-255,
a single 0-255 gray level, a 0-1 float gray level, JHU palette names
(HeritageBlue, heritage-blue), primary-N, secondary-N, accent-N and gray-F.

With --foreground-palette one sprite is written per palette color, named
<stem>_<color-name>.png, into the directory given by -o (default: the
input's directory).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSprite(args[0], f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.output, "output", "o", "", "Output file (default <input dir>/<stem>_sprite.png)")
	flags.StringVarP(&f.background, "background", "b", "white", "Background color to remove")
	flags.StringVarP(&f.foreground, "foreground", "f", "", "Recolor the silhouette with this color")
	flags.StringVarP(&f.edge, "edge", "e", "", "Draw an outline of this color around the silhouette")
	flags.IntVarP(&f.thickness, "edge-thickness", "t", sprite.DefaultEdgeThickness, "Outline width in pixels")
	flags.BoolVar(&f.fuzz, "fuzz", true, "Soft alpha ramp for anti-aliased edges")
	flags.BoolVar(&f.noFuzz, "no-fuzz", false, "Hard alpha threshold instead of the soft ramp")
	flags.BoolVar(&f.crop, "crop", true, "Crop to the bounding box of visible pixels")
	flags.BoolVar(&f.noCrop, "no-crop", false, "Keep the full canvas")
	flags.BoolVar(&f.keepEmpty, "keep-empty", false, "Write the uncropped image instead of failing when nothing is visible")
	flags.Float64Var(&f.scale, "scale", 1.0, "Scale the finished sprite by this factor")
	flags.BoolVar(&f.preview, "preview", false, "Also write <stem>_preview.png flattened over a checkerboard")
	flags.StringVar(&f.fgPalette, "foreground-palette", "", "Render one sprite per color of this palette (name or file)")
	flags.IntVar(&f.workers, "workers", sprite.DefaultWorkers, "Concurrent renders for --foreground-palette")

	cmd.MarkFlagsMutuallyExclusive("foreground", "foreground-palette")
	cmd.MarkFlagsMutuallyExclusive("fuzz", "no-fuzz")
	cmd.MarkFlagsMutuallyExclusive("crop", "no-crop")

	return cmd
}

func runSprite(input string, f spriteFlags) error {
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)

	if f.thickness < 1 {
		return fmt.Errorf("%w: --edge-thickness %d", sprite.ErrInvalidThickness, f.thickness)
	}
	if f.scale <= 0 {
		return fmt.Errorf("invalid --scale %v: must be > 0", f.scale)
	}

	resolver, err := newResolver()
	if err != nil {
		return err
	}
	opts, err := spriteOptions(resolver, f)
	if err != nil {
		return err
	}

	img, err := imaging.NewImageCache().Load(input)
	if err != nil {
		return err
	}
	b := img.Bounds()
	cyan.Printf("Loaded %s (%dx%d)\n", input, b.Dx(), b.Dy())

	if f.fgPalette != "" {
		return runBatch(input, img, opts, f)
	}

	res, err := sprite.Make(img, opts)
	if err != nil {
		return err
	}

	out := f.output
	if out == "" {
		out = imaging.OutputPath(input, "sprite")
	}
	if err := writeSprite(out, res.Image, f); err != nil {
		return err
	}
	if res.Cropped {
		cyan.Printf("Cropped to %s\n", res.Box)
	}
	green.Printf("✓ Wrote %s\n", out)
	return nil
}

func spriteOptions(resolver *colors.Resolver, f spriteFlags) (sprite.Options, error) {
	opts := sprite.Options{
		EdgeThickness: f.thickness,
		Fuzz:          f.fuzz && !f.noFuzz,
		Crop:          f.crop && !f.noCrop,
		KeepEmpty:     f.keepEmpty,
	}

	bg, err := resolver.Resolve(f.background)
	if err != nil {
		return opts, fmt.Errorf("background: %w", err)
	}
	opts.Background = bg

	if f.foreground != "" {
		fg, err := resolver.Resolve(f.foreground)
		if err != nil {
			return opts, fmt.Errorf("foreground: %w", err)
		}
		opts.Foreground = &fg
	}
	if f.edge != "" {
		edge, err := resolver.Resolve(f.edge)
		if err != nil {
			return opts, fmt.Errorf("edge: %w", err)
		}
		opts.Edge = &edge
	}
	return opts, nil
}

// runBatch writes one sprite per color of the foreground palette.
func runBatch(input string, img image.Image, opts sprite.Options, f spriteFlags) error {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	p, err := lookupPalette(f.fgPalette)
	if err != nil {
		return err
	}

	dir := f.output
	if dir == "" {
		dir = filepath.Dir(input)
	}
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))

	entries := p.Entries()
	variants := make([]sprite.Variant, len(entries))
	for i, e := range entries {
		variants[i] = sprite.Variant{Name: e.Name, Foreground: e.Color}
	}

	failed := 0
	for _, r := range sprite.MakeBatch(img, opts, variants, f.workers) {
		if r.Err == nil {
			out := filepath.Join(dir, stem+"_"+palette.FileName(r.Variant.Name)+".png")
			r.Err = writeSprite(out, r.Result.Image, f)
			if r.Err == nil {
				green.Printf("✓ %s -> %s\n", r.Variant.Name, out)
				continue
			}
		}
		failed++
		red.Printf("✗ %s: %v\n", r.Variant.Name, r.Err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d sprites failed", failed, len(variants))
	}
	return nil
}

// lookupPalette resolves a built-in palette name or a palette file.
func lookupPalette(name string) (*palette.Palette, error) {
	if p, ok := palette.Builtin(name); ok {
		return p, nil
	}
	if _, err := os.Stat(name); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", palette.ErrUnknownPalette, name)
		}
		return nil, err
	}
	return palette.LoadFile(name)
}

func writeSprite(path string, img *image.NRGBA, f spriteFlags) error {
	scaled, err := imaging.Scale(img, f.scale)
	if err != nil {
		return err
	}
	if err := imaging.SavePNG(path, scaled); err != nil {
		return err
	}
	if f.preview {
		dir := filepath.Dir(path)
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		prev := filepath.Join(dir, stem+"_preview.png")
		if err := imaging.SavePNG(prev, imaging.Preview(scaled, imaging.DefaultCheckerCell)); err != nil {
			return err
		}
	}
	return nil
}

// swatch renders a small terminal block in c.
func swatch(c colorful.Color) string {
	r, g, b := c.Clamped().RGB255()
	return color.BgRGB(int(r), int(g), int(b)).Sprint("    ")
}
