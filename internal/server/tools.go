package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the image file",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Images
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, color depth and whether it already has an alpha channel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},

		// Sprites
		{
			Name:        "sprite_make",
			Description: "Turn an image with a flat background into a transparent sprite: remove the background, optionally recolor the silhouette, draw an outline and crop to content. Returns a base64 PNG, or writes it to output when given.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Background color token (name, #hex, \"r,g,b\", gray level). Default white",
						"default":     "white",
					},
					"foreground": map[string]interface{}{
						"type":        "string",
						"description": "Optional color token to recolor the silhouette with",
					},
					"edge": map[string]interface{}{
						"type":        "string",
						"description": "Optional color token for an outline around the silhouette",
					},
					"edge_thickness": map[string]interface{}{
						"type":        "integer",
						"description": "Outline width in pixels. Default 3",
						"default":     3,
						"minimum":     1,
					},
					"fuzz": map[string]interface{}{
						"type":        "boolean",
						"description": "Soft alpha ramp for anti-aliased edges instead of a hard threshold. Default true",
						"default":     true,
					},
					"crop": map[string]interface{}{
						"type":        "boolean",
						"description": "Crop to the bounding box of visible pixels. Default true",
						"default":     true,
					},
					"keep_empty": map[string]interface{}{
						"type":        "boolean",
						"description": "Return the uncropped image instead of failing when nothing is visible",
						"default":     false,
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor applied to the finished sprite. Default 1.0",
						"default":     1.0,
					},
					"preview": map[string]interface{}{
						"type":        "boolean",
						"description": "Flatten the returned image over a checkerboard so transparency is visible",
						"default":     false,
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to write the PNG to instead of returning it inline",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "sprite_bounds",
			Description: "Find the bounding box of the content that survives background removal. Optionally returns the source image with the box outlined.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Background color token. Default white",
						"default":     "white",
					},
					"fuzz": map[string]interface{}{
						"type":        "boolean",
						"description": "Use the soft alpha ramp. Default true",
						"default":     true,
					},
					"outline": map[string]interface{}{
						"type":        "boolean",
						"description": "Return the source image with the box drawn on it",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},

		// Colors
		{
			Name:        "color_resolve",
			Description: "Resolve color tokens to exact colors. Accepts CSS names, #hex, \"r,g,b\", gray levels, JHU palette names and primary-N, secondary-N, accent-N, gray-F forms.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"tokens": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Color tokens to resolve",
					},
				},
				"required": []string{"tokens"},
			},
		},
		{
			Name:        "palette_list",
			Description: "List the named colors of a palette: the built-in \"jhu\" palette, a palette loaded at startup, or a .txt/.gpl palette file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Palette name or path to a palette file. Default jhu",
						"default":     "jhu",
					},
				},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
