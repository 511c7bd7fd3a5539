package server

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/ironsheep/sprite-tools/internal/imaging"
	"github.com/ironsheep/sprite-tools/internal/palette"
	"github.com/ironsheep/sprite-tools/internal/sprite"
	"github.com/lucasb-eyer/go-colorful"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "sprite_make").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.Warn("tool failed", "tool", params.Name, "err", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Images
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Sprites
	case "sprite_make":
		return s.handleSpriteMake(args)
	case "sprite_bounds":
		return s.handleSpriteBounds(args)

	// Colors
	case "color_resolve":
		return s.handleColorResolve(args)
	case "palette_list":
		return s.handlePaletteList(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments, treating missing arguments as {}.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// === Image Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Sprite Handlers ===

type spriteMakeArgs struct {
	Path          string  `json:"path"`
	Background    string  `json:"background"`
	Foreground    string  `json:"foreground"`
	Edge          string  `json:"edge"`
	EdgeThickness int     `json:"edge_thickness"`
	Fuzz          *bool   `json:"fuzz"`
	Crop          *bool   `json:"crop"`
	KeepEmpty     bool    `json:"keep_empty"`
	Scale         float64 `json:"scale"`
	Preview       bool    `json:"preview"`
	Output        string  `json:"output"`
}

// SpriteResult describes a finished sprite. Exactly one of OutputPath and
// ImageBase64 is set.
type SpriteResult struct {
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	Cropped     bool        `json:"cropped"`
	Box         *sprite.Box `json:"box,omitempty"`
	OutputPath  string      `json:"output_path,omitempty"`
	ImageBase64 string      `json:"image_base64,omitempty"`
	MimeType    string      `json:"mime_type,omitempty"`
}

func (s *Server) handleSpriteMake(args json.RawMessage) (interface{}, error) {
	var a spriteMakeArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}

	opts := sprite.Options{
		EdgeThickness: a.EdgeThickness,
		Fuzz:          boolOr(a.Fuzz, true),
		Crop:          boolOr(a.Crop, true),
		KeepEmpty:     a.KeepEmpty,
	}
	var err error
	if opts.Background, err = s.resolveOr(a.Background, "white"); err != nil {
		return nil, err
	}
	if opts.Foreground, err = s.resolveOptional(a.Foreground); err != nil {
		return nil, err
	}
	if opts.Edge, err = s.resolveOptional(a.Edge); err != nil {
		return nil, err
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	res, err := sprite.Make(img, opts)
	if err != nil {
		return nil, err
	}

	out, err := imaging.Scale(res.Image, a.Scale)
	if err != nil {
		return nil, err
	}
	if a.Preview {
		out = imaging.Preview(out, imaging.DefaultCheckerCell)
	}

	result := &SpriteResult{
		Width:   out.Bounds().Dx(),
		Height:  out.Bounds().Dy(),
		Cropped: res.Cropped,
	}
	if res.Cropped {
		box := res.Box
		result.Box = &box
	}

	if a.Output != "" {
		if err := imaging.SavePNG(a.Output, out); err != nil {
			return nil, err
		}
		result.OutputPath = a.Output
		return result, nil
	}

	enc, err := imaging.EncodeBase64(out)
	if err != nil {
		return nil, err
	}
	result.ImageBase64 = enc.ImageBase64
	result.MimeType = enc.MimeType
	return result, nil
}

type spriteBoundsArgs struct {
	Path       string `json:"path"`
	Background string `json:"background"`
	Fuzz       *bool  `json:"fuzz"`
	Outline    bool   `json:"outline"`
}

// BoundsResult is the content box of an image in source pixel coordinates.
type BoundsResult struct {
	Box         sprite.Box            `json:"box"`
	Width       int                   `json:"width"`
	Height      int                   `json:"height"`
	ImageWidth  int                   `json:"image_width"`
	ImageHeight int                   `json:"image_height"`
	Outline     *imaging.EncodedImage `json:"outline,omitempty"`
}

var outlineColor = color.NRGBA{255, 0, 255, 255}

func (s *Server) handleSpriteBounds(args json.RawMessage) (interface{}, error) {
	var a spriteBoundsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	bg, err := s.resolveOr(a.Background, "white")
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	res, err := sprite.Make(img, sprite.Options{Background: bg, Fuzz: boolOr(a.Fuzz, true), Crop: true})
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	result := &BoundsResult{
		Box:         res.Box,
		Width:       res.Box.Width(),
		Height:      res.Box.Height(),
		ImageWidth:  b.Dx(),
		ImageHeight: b.Dy(),
	}
	if a.Outline {
		rect := res.Box.Rect().Add(b.Min)
		enc, err := imaging.EncodeBase64(imaging.OutlineBox(img, rect, outlineColor))
		if err != nil {
			return nil, err
		}
		result.Outline = enc
	}
	return result, nil
}

// === Color Handlers ===

type colorResolveArgs struct {
	Tokens []string `json:"tokens"`
}

// ResolvedColor pairs a token with its resolved color.
type ResolvedColor struct {
	Token string `json:"token"`
	imaging.ColorResult
}

func (s *Server) handleColorResolve(args json.RawMessage) (interface{}, error) {
	var a colorResolveArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if len(a.Tokens) == 0 {
		return nil, fmt.Errorf("no tokens given")
	}

	out := make([]ResolvedColor, 0, len(a.Tokens))
	for _, tok := range a.Tokens {
		c, err := s.resolver.Resolve(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, ResolvedColor{Token: tok, ColorResult: imaging.DescribeColor(c)})
	}
	return map[string]interface{}{"colors": out}, nil
}

type paletteListArgs struct {
	Name string `json:"name"`
}

// PaletteEntry is one named palette color.
type PaletteEntry struct {
	Name string `json:"name"`
	imaging.ColorResult
}

func (s *Server) handlePaletteList(args json.RawMessage) (interface{}, error) {
	var a paletteListArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Name == "" {
		a.Name = "jhu"
	}

	p, err := s.findPalette(a.Name)
	if err != nil {
		return nil, err
	}

	entries := p.Entries()
	out := make([]PaletteEntry, len(entries))
	for i, e := range entries {
		out[i] = PaletteEntry{Name: e.Name, ColorResult: imaging.DescribeColor(e.Color)}
	}
	return map[string]interface{}{
		"name":   p.Name(),
		"colors": out,
	}, nil
}

// findPalette looks name up among built-ins, then palettes loaded at
// startup, then treats it as a palette file path.
func (s *Server) findPalette(name string) (*palette.Palette, error) {
	if p, ok := palette.Builtin(name); ok {
		return p, nil
	}
	for _, p := range s.palettes {
		if strings.EqualFold(p.Name(), name) {
			return p, nil
		}
	}
	if _, err := os.Stat(name); err == nil {
		return palette.LoadFile(name)
	}
	return nil, fmt.Errorf("%w: %q", palette.ErrUnknownPalette, name)
}

func (s *Server) resolveOr(token, def string) (colorful.Color, error) {
	if token == "" {
		token = def
	}
	return s.resolver.Resolve(token)
}

func (s *Server) resolveOptional(token string) (*colorful.Color, error) {
	if token == "" {
		return nil, nil
	}
	c, err := s.resolver.Resolve(token)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
