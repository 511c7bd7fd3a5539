// Command sprite-tools turns images with a flat background into transparent
// sprites, resolves color tokens and serves the same operations over MCP.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ironsheep/sprite-tools/internal/colors"
	"github.com/ironsheep/sprite-tools/internal/palette"
	"github.com/ironsheep/sprite-tools/internal/sprite"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// logLevelEnv overrides the default log level when neither -v nor -d is given.
const logLevelEnv = "SPRITE_TOOLS_LOG_LEVEL"

var (
	verbose      bool
	debug        bool
	paletteFiles []string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sprite-tools",
		Short:         "Make transparent sprites from images with flat backgrounds",
		Long:          "sprite-tools removes a flat background from an image, optionally recolors the silhouette and outlines it, then crops to content.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline progress to stderr")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Log every pipeline stage to stderr")
	rootCmd.PersistentFlags().StringArrayVar(&paletteFiles, "palette", nil, "Palette file (.txt or .gpl) whose names resolve as colors; repeatable")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sprite-tools %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
		},
	}

	rootCmd.AddCommand(newSpriteCmd(), newColorsCmd(), newResolveCmd(), newServeCmd(), versionCmd)
	return rootCmd
}

// setupLogging installs a stderr text logger. Flags win over the environment,
// which wins over the default of warnings only.
func setupLogging() error {
	level := slog.LevelWarn
	if env := os.Getenv(logLevelEnv); env != "" {
		if err := level.UnmarshalText([]byte(strings.TrimSpace(env))); err != nil {
			return fmt.Errorf("invalid %s %q: %w", logLevelEnv, env, err)
		}
	}
	switch {
	case debug:
		level = slog.LevelDebug
	case verbose:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	sprite.SetLogger(slog.New(handler))
	return nil
}

// loadPalettes reads every --palette file.
func loadPalettes() ([]*palette.Palette, error) {
	out := make([]*palette.Palette, 0, len(paletteFiles))
	for _, path := range paletteFiles {
		p, err := palette.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("palette %s: %w", path, err)
		}
		sprite.Logger().Info("loaded palette", "name", p.Name(), "colors", p.Len())
		out = append(out, p)
	}
	return out, nil
}

// newResolver builds a resolver that also knows the --palette colors.
func newResolver() (*colors.Resolver, error) {
	palettes, err := loadPalettes()
	if err != nil {
		return nil, err
	}
	return colors.NewResolver(palettes...), nil
}
