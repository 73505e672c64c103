package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, color depth and the channel count its array has.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file by reading only its header.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Array Conversion
		{
			Name:        "image_to_array",
			Description: "Convert an image to a numeric array of shape (height, width, channels), or (height, width) for grayscale. Returns the shape, value range and optionally the row-major data.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"grayscale": map[string]interface{}{
						"type":        "boolean",
						"description": "Reduce to luma with 0.299*R + 0.587*G + 0.114*B. Default false",
						"default":     false,
					},
					"include_data": map[string]interface{}{
						"type":        "boolean",
						"description": "Include the flattened row-major values. Default false",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "array_to_image",
			Description: "Convert a numeric array to a PNG. Values are truncated toward zero and wrapped to 0-255. Arrays with 3 dimensions are color (3 or 4 channels); 2-dimensional arrays are grayscale.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"array": map[string]interface{}{
						"type":        "array",
						"description": "Nested lists, e.g. [[[255,0,0],[0,255,0]]]. Takes precedence over shape/data",
					},
					"shape": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "integer"},
						"description": "Array shape, used with data",
					},
					"data": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "number"},
						"description": "Row-major values, used with shape",
					},
				},
			},
		},
		{
			Name:        "image_grayscale",
			Description: "Convert an image to grayscale using ITU-R BT.601 luma weights and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_pixel",
			Description: "Get the array values and color of the pixel at (row, col).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"row": map[string]interface{}{
						"type":        "integer",
						"description": "Row index (0 = top)",
					},
					"col": map[string]interface{}{
						"type":        "integer",
						"description": "Column index (0 = left)",
					},
				},
				"required": []string{"path", "row", "col"},
			},
		},

		// Resizing
		{
			Name:        "image_resize",
			Description: "Resize an image with the Lanczos filter. Mode 'fit' shrinks to fit within width x height keeping the aspect ratio and never upscales; mode 'exact' stretches to exactly width x height.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"mode": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"fit", "exact"},
						"description": "Resize policy. Default fit",
						"default":     "fit",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum (fit) or target (exact) width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum (fit) or target (exact) height in pixels",
					},
				},
				"required": []string{"path", "width", "height"},
			},
		},

		// Composite
		{
			Name:        "image_load_resize_convert",
			Description: "Load an image, resize it to exactly scale times its size, convert it to an array (optionally grayscale), truncate values to integers and render it inline.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Image file name, joined with directory",
					},
					"directory": map[string]interface{}{
						"type":        "string",
						"description": "Directory containing the image. Optional",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Resize factor. Default 0.25",
						"default":     0.25,
					},
					"grayscale": map[string]interface{}{
						"type":        "boolean",
						"description": "Reduce to luma. Default false",
						"default":     false,
					},
					"include_data": map[string]interface{}{
						"type":        "boolean",
						"description": "Include the flattened row-major values. Default false",
						"default":     false,
					},
				},
				"required": []string{"path"},
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
