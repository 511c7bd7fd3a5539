// Package imaging handles image I/O around the sprite pipeline.
//
// It loads and caches source images, describes their metadata, and writes
// results: Lanczos scaling, PNG encoding to files or base64 payloads, and
// checkerboard previews that make transparency visible.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left corner.
// Rectangles follow image.Rectangle: Min is inclusive, Max is exclusive.
//
// # Orientation
//
// Images are decoded with EXIF orientation applied, so widths and heights
// reported here always describe the upright image.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. All other functions are stateless
// and never modify their input images.
package imaging
