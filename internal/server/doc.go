// Package server implements an MCP (Model Context Protocol) server that
// exposes sprite making to MCP clients.
//
// # Protocol
//
// The server speaks JSON-RPC 2.0 over stdio, one request per line on stdin
// and one response per line on stdout. Supported methods are initialize,
// tools/list, tools/call and ping.
//
// # Available Tools
//
// Images:
//   - image_load: load an image and report its metadata
//   - image_dimensions: report width and height
//
// Sprites:
//   - sprite_make: run the sprite pipeline, return base64 PNG or write a file
//   - sprite_bounds: report the content bounding box, optionally outlined
//
// Colors:
//   - color_resolve: resolve color tokens the way the CLI does
//   - palette_list: list the colors of a built-in or loaded palette
//
// # Image Caching
//
// Source images are cached by path for the lifetime of the server, so
// repeated sprite_make calls with different colors decode the file once.
//
// # Error Handling
//
// Tool failures become JSON-RPC errors with code -32000, message
// "Tool execution failed" and the Go error string as data.
package server
