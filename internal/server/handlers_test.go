package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/sprite-tools/internal/palette"
	"github.com/ironsheep/sprite-tools/internal/sprite"
	"github.com/lucasb-eyer/go-colorful"
)

// createTestImageFile writes a white PNG with a black square of side inner
// centered in it and returns its path.
func createTestImageFile(t *testing.T, size, inner int) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	lo := (size - inner) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := color.NRGBA{255, 255, 255, 255}
			if x >= lo && x < lo+inner && y >= lo && y < lo+inner {
				c = color.NRGBA{0, 0, 0, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "handler-test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

// callTool runs a tools/call request and returns the response.
func callTool(t *testing.T, s *Server, name string, args map[string]interface{}) *MCPResponse {
	t.Helper()
	params, _ := json.Marshal(map[string]interface{}{"name": name, "arguments": args})
	resp := s.handleToolsCall(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/call", Params: params})
	if resp == nil {
		t.Fatal("handleToolsCall returned nil")
	}
	return resp
}

// decodeToolResult unmarshals the text content of a successful response into v.
func decodeToolResult(t *testing.T, resp *MCPResponse, v interface{}) {
	t.Helper()
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %+v", resp.Error)
	}
	result := resp.Result.(map[string]interface{})
	content := result["content"].([]map[string]interface{})
	if err := json.Unmarshal([]byte(content[0]["text"].(string)), v); err != nil {
		t.Fatalf("invalid tool result: %v", err)
	}
}

func decodeBase64PNG(t *testing.T, s string) *image.NRGBA {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("invalid PNG: %v", err)
	}
	// Opaque images come back as *image.RGBA.
	b := img.Bounds()
	nrgba := image.NewNRGBA(b)
	draw.Draw(nrgba, b, img, b.Min, draw.Src)
	return nrgba
}

func TestHandleToolsCall_ImageLoad(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 20, 4)

	var info struct {
		Width  int    `json:"width"`
		Height int    `json:"height"`
		Format string `json:"format"`
	}
	decodeToolResult(t, callTool(t, s, "image_load", map[string]interface{}{"path": imgPath}), &info)

	if info.Width != 20 || info.Height != 20 || info.Format != "png" {
		t.Errorf("info: got %+v, want 20x20 png", info)
	}
}

func TestHandleToolsCall_ImageDimensions(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 16, 4)

	var dims struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	}
	decodeToolResult(t, callTool(t, s, "image_dimensions", map[string]interface{}{"path": imgPath}), &dims)

	if dims.Width != 16 || dims.Height != 16 {
		t.Errorf("dimensions: got %dx%d, want 16x16", dims.Width, dims.Height)
	}
}

func TestHandleToolsCall_Errors(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 10, 4)
	blank := createTestImageFile(t, 10, 0)

	tests := []struct {
		name string
		tool string
		args map[string]interface{}
	}{
		{"missing file", "image_load", map[string]interface{}{"path": "/nonexistent/image.png"}},
		{"unknown tool", "nonexistent_tool", map[string]interface{}{}},
		{"bad background", "sprite_make", map[string]interface{}{"path": imgPath, "background": "notacolor"}},
		{"bad edge thickness", "sprite_make", map[string]interface{}{"path": imgPath, "edge": "red", "edge_thickness": -1}},
		{"bad scale", "sprite_make", map[string]interface{}{"path": imgPath, "scale": -2}},
		{"empty content", "sprite_make", map[string]interface{}{"path": blank}},
		{"empty bounds", "sprite_bounds", map[string]interface{}{"path": blank}},
		{"no tokens", "color_resolve", map[string]interface{}{}},
		{"unknown palette", "palette_list", map[string]interface{}{"name": "nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := callTool(t, s, tt.tool, tt.args)
			if resp.Error == nil {
				t.Fatal("expected an error response")
			}
			if resp.Error.Code != -32000 {
				t.Errorf("Error code: got %d, want -32000", resp.Error.Code)
			}
		})
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New()

	resp := s.handleToolsCall(&MCPRequest{JSONRPC: "2.0", ID: 1, Params: json.RawMessage(`[1,2]`)})

	if resp.Error == nil || resp.Error.Code != -32602 {
		t.Errorf("error: got %+v, want code -32602", resp.Error)
	}
}

func TestHandleToolsCall_SpriteMake(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 10, 4)

	var res SpriteResult
	decodeToolResult(t, callTool(t, s, "sprite_make", map[string]interface{}{
		"path":       imgPath,
		"foreground": "#00ff00",
	}), &res)

	if res.Width != 4 || res.Height != 4 {
		t.Fatalf("dimensions: got %dx%d, want 4x4", res.Width, res.Height)
	}
	if !res.Cropped || res.Box == nil {
		t.Fatal("result should be cropped with a box")
	}
	if *res.Box != (sprite.Box{RowMin: 3, RowMax: 6, ColMin: 3, ColMax: 6}) {
		t.Errorf("box: got %+v", *res.Box)
	}
	if res.MimeType != "image/png" {
		t.Errorf("MimeType: got %s", res.MimeType)
	}

	img := decodeBase64PNG(t, res.ImageBase64)
	if got := img.NRGBAAt(1, 1); got != (color.NRGBA{0, 255, 0, 255}) {
		t.Errorf("pixel: got %v, want opaque green", got)
	}
}

func TestHandleToolsCall_SpriteMakeEdgeAndScale(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 10, 4)

	var res SpriteResult
	decodeToolResult(t, callTool(t, s, "sprite_make", map[string]interface{}{
		"path":           imgPath,
		"edge":           "red",
		"edge_thickness": 2,
		"scale":          2.0,
	}), &res)

	// A 2 pixel edge grows the 4x4 square to 12x12 before scaling.
	if res.Width != 24 || res.Height != 24 {
		t.Errorf("dimensions: got %dx%d, want 24x24", res.Width, res.Height)
	}
}

func TestHandleToolsCall_SpriteMakeNoCropPreview(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 10, 4)

	var res SpriteResult
	decodeToolResult(t, callTool(t, s, "sprite_make", map[string]interface{}{
		"path":    imgPath,
		"crop":    false,
		"fuzz":    false,
		"preview": true,
	}), &res)

	if res.Cropped || res.Box != nil {
		t.Error("result should not be cropped")
	}
	img := decodeBase64PNG(t, res.ImageBase64)
	if img.Bounds().Dx() != 10 {
		t.Errorf("width: got %d, want 10", img.Bounds().Dx())
	}
	if a := img.NRGBAAt(0, 0).A; a != 255 {
		t.Errorf("preview background alpha: got %d, want 255", a)
	}
}

func TestHandleToolsCall_SpriteMakeOutput(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 10, 4)
	outPath := filepath.Join(t.TempDir(), "out", "sprite.png")

	var res SpriteResult
	decodeToolResult(t, callTool(t, s, "sprite_make", map[string]interface{}{
		"path":   imgPath,
		"output": outPath,
	}), &res)

	if res.OutputPath != outPath {
		t.Errorf("OutputPath: got %q, want %q", res.OutputPath, outPath)
	}
	if res.ImageBase64 != "" {
		t.Error("ImageBase64 should be empty when writing a file")
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestHandleToolsCall_SpriteBounds(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 12, 6)

	var res struct {
		BoundsResult
		Outline *struct {
			ImageBase64 string `json:"image_base64"`
		} `json:"outline"`
	}
	decodeToolResult(t, callTool(t, s, "sprite_bounds", map[string]interface{}{
		"path":    imgPath,
		"outline": true,
	}), &res)

	want := sprite.Box{RowMin: 3, RowMax: 8, ColMin: 3, ColMax: 8}
	if res.Box != want {
		t.Errorf("box: got %+v, want %+v", res.Box, want)
	}
	if res.Width != 6 || res.Height != 6 || res.ImageWidth != 12 || res.ImageHeight != 12 {
		t.Errorf("sizes: got %+v", res.BoundsResult)
	}
	if res.Outline == nil {
		t.Fatal("outline image missing")
	}
	img := decodeBase64PNG(t, res.Outline.ImageBase64)
	if got := img.NRGBAAt(3, 3); got != outlineColor {
		t.Errorf("outline corner: got %v, want %v", got, outlineColor)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("outside pixel: got %v, want white", got)
	}
}

func TestHandleToolsCall_ColorResolve(t *testing.T) {
	s := New()

	var res struct {
		Colors []struct {
			Token string     `json:"token"`
			Hex   string     `json:"hex"`
			Unit  [3]float64 `json:"unit"`
		} `json:"colors"`
	}
	decodeToolResult(t, callTool(t, s, "color_resolve", map[string]interface{}{
		"tokens": []string{"red", "heritage-blue", "128"},
	}), &res)

	want := []string{"#ff0000", "#002d72", "#808080"}
	if len(res.Colors) != len(want) {
		t.Fatalf("colors: got %d, want %d", len(res.Colors), len(want))
	}
	for i, c := range res.Colors {
		if c.Hex != want[i] {
			t.Errorf("%s: got %s, want %s", c.Token, c.Hex, want[i])
		}
	}
}

func TestHandleToolsCall_PaletteList(t *testing.T) {
	brand, _ := palette.New("brand", []string{"Ink"}, []colorful.Color{{R: 0.1, G: 0.2, B: 0.3}})
	s := New(brand)

	var res struct {
		Name   string `json:"name"`
		Colors []struct {
			Name string `json:"name"`
			Hex  string `json:"hex"`
		} `json:"colors"`
	}

	decodeToolResult(t, callTool(t, s, "palette_list", nil), &res)
	if res.Name != "JHU" || len(res.Colors) != palette.JHU().Len() {
		t.Errorf("default palette: got %s with %d colors", res.Name, len(res.Colors))
	}
	if res.Colors[0].Name != "HeritageBlue" {
		t.Errorf("first color: got %s, want HeritageBlue", res.Colors[0].Name)
	}

	decodeToolResult(t, callTool(t, s, "palette_list", map[string]interface{}{"name": "Brand"}), &res)
	if res.Name != "brand" || len(res.Colors) != 1 || res.Colors[0].Name != "Ink" {
		t.Errorf("loaded palette: got %+v", res)
	}

	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, []byte("1 2 3 Dust\n4 5 6 Ash\n"), 0644); err != nil {
		t.Fatal(err)
	}
	decodeToolResult(t, callTool(t, s, "palette_list", map[string]interface{}{"name": file}), &res)
	if len(res.Colors) != 2 || !strings.EqualFold(res.Colors[1].Name, "ash") {
		t.Errorf("file palette: got %+v", res)
	}
}

func TestResolverUsesLoadedPalettes(t *testing.T) {
	brand, _ := palette.New("brand", []string{"Ocean Blue"}, []colorful.Color{{B: 1}})
	s := New(brand)

	var res struct {
		Colors []struct {
			Hex string `json:"hex"`
		} `json:"colors"`
	}
	decodeToolResult(t, callTool(t, s, "color_resolve", map[string]interface{}{
		"tokens": []string{"ocean-blue"},
	}), &res)

	if len(res.Colors) != 1 || res.Colors[0].Hex != "#0000ff" {
		t.Errorf("ocean-blue: got %+v, want #0000ff", res.Colors)
	}
}
