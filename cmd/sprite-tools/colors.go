package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ironsheep/sprite-tools/internal/imaging"
	"github.com/ironsheep/sprite-tools/internal/palette"
)

func newColorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "List the built-in palette and any --palette files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			palettes, err := loadPalettes()
			if err != nil {
				return err
			}
			for _, p := range append([]*palette.Palette{palette.JHU()}, palettes...) {
				printPalette(p)
			}
			return nil
		},
	}
}

func printPalette(p *palette.Palette) {
	cyan := color.New(color.FgCyan)
	cyan.Printf("\n%s (%d colors)\n", p.Name(), p.Len())
	for _, e := range p.Entries() {
		d := imaging.DescribeColor(e.Color)
		fmt.Printf("  %s %-18s %s  %3d,%3d,%3d\n", swatch(e.Color), e.Name, d.Hex, d.RGB.R, d.RGB.G, d.RGB.B)
	}
}

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve TOKEN...",
		Short: "Show what color tokens resolve to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := newResolver()
			if err != nil {
				return err
			}

			red := color.New(color.FgRed)
			failed := 0
			for _, tok := range args {
				c, err := resolver.Resolve(tok)
				if err != nil {
					red.Printf("✗ %s: %v\n", tok, err)
					failed++
					continue
				}
				d := imaging.DescribeColor(c)
				fmt.Printf("%s %-16s %s  rgb(%d,%d,%d)  [%.4f %.4f %.4f]\n",
					swatch(c), tok, d.Hex, d.RGB.R, d.RGB.G, d.RGB.B, d.Unit[0], d.Unit[1], d.Unit[2])
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d tokens unrecognized", failed, len(args))
			}
			return nil
		},
	}
}
