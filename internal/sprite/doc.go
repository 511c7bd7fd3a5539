// Package sprite turns flat-background raster images into transparent sprites.
//
// The package implements the pixel pipeline only. Decoding, encoding and color
// token resolution live in sibling packages; everything here works on
// normalized floating point buffers and has no I/O.
//
// # Pipeline
//
// A run flows through four stages:
//
//  1. Synthesize derives an alpha mask from the distance between each pixel and
//     the background color, either as a hard threshold or as a soft ("fuzzed")
//     ramp. Images that already carry transparency keep their alpha.
//  2. Composite writes the mask into the alpha channel, optionally replacing
//     every RGB sample with a single foreground color.
//  3. RenderEdge (optional) pads the image, computes a distance field from the
//     mask boundary and paints an anti-aliased outline in the edge color.
//  4. BoundingBox and Crop trim the result to the pixels with nonzero alpha.
//
// Make runs all stages according to Options and returns an *image.NRGBA.
//
// # Coordinate System
//
// Buffers and masks are row-major with (0,0) at the top-left corner. Box
// bounds are inclusive on both ends: a box with RowMin == RowMax spans one row.
//
// # Thread Safety
//
// Every stage is a pure function of its inputs and allocates its own output.
// Independent runs can execute concurrently; MakeBatch does exactly that.
//
// # Logging
//
// The package is silent by default. Install a *slog.Logger with SetLogger to
// see stage-level diagnostics.
package sprite
