package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"math"

	"github.com/ironsheep/image-array-mcp/internal/display"
	"github.com/ironsheep/image-array-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_to_array").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// inlineImager is implemented by results that carry rendered images. The
// images are attached to the tool response as MCP image content.
type inlineImager interface {
	inlineImages() [][]byte
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [
//	    {"type": "text", "text": "<JSON result>"},
//	    {"type": "image", "data": "<base64 PNG>", "mimeType": "image/png"}
//	  ]
//	}
//
// The image entries are present only for tools that render an image.
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(context.Background(), params.Name, params.Arguments)
	if err != nil {
		s.logger.Debug().Err(err).Str("tool", params.Name).Msg("tool failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	content := []map[string]interface{}{
		{
			"type": "text",
			"text": mustMarshalJSON(result),
		},
	}
	if ii, ok := result.(inlineImager); ok {
		for _, png := range ii.inlineImages() {
			content = append(content, map[string]interface{}{
				"type":     "image",
				"data":     base64.StdEncoding.EncodeToString(png),
				"mimeType": "image/png",
			})
		}
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": content,
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads the image or decodes the array argument
//  4. Calls the appropriate imaging/display function
//  5. Returns the result or error
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Array Conversion
	case "image_to_array":
		return s.handleImageToArray(args)
	case "array_to_image":
		return s.handleArrayToImage(args)
	case "image_grayscale":
		return s.handleImageGrayscale(args)
	case "image_sample_pixel":
		return s.handleImageSamplePixel(args)

	// Resizing
	case "image_resize":
		return s.handleImageResize(args)

	// Composite
	case "image_load_resize_convert":
		return s.handleImageLoadResizeConvert(ctx, args)

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
// A marshal failure yields an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// ArrayResult describes an array returned by a tool.
type ArrayResult struct {
	Shape []int     `json:"shape"`
	Min   float64   `json:"min"`
	Max   float64   `json:"max"`
	Data  []float64 `json:"data,omitempty"`
}

func summarize(arr *imaging.FloatArray, includeData bool) ArrayResult {
	res := ArrayResult{Shape: arr.Shape}
	if len(arr.Data) > 0 {
		res.Min, res.Max = math.Inf(1), math.Inf(-1)
		for _, v := range arr.Data {
			res.Min = math.Min(res.Min, v)
			res.Max = math.Max(res.Max, v)
		}
	}
	if includeData {
		res.Data = arr.Data
	}
	return res
}

// ImageResult contains an encoded image produced by a tool.
type ImageResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Shape       []int  `json:"shape,omitempty"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`

	png []byte
}

func (r *ImageResult) inlineImages() [][]byte { return [][]byte{r.png} }

func newImageResult(img image.Image) (*ImageResult, error) {
	png, err := display.EncodeImagePNG(img)
	if err != nil {
		return nil, err
	}
	return &ImageResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(png),
		MimeType:    "image/png",
		png:         png,
	}, nil
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(a.Path)
}

// === Array Conversion Handlers ===

type imageToArrayArgs struct {
	Path        string `json:"path"`
	Grayscale   bool   `json:"grayscale"`
	IncludeData bool   `json:"include_data"`
}

func (s *Server) handleImageToArray(args json.RawMessage) (interface{}, error) {
	var a imageToArrayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := imaging.LoadImage(a.Path, "")
	if err != nil {
		return nil, err
	}

	arr := imaging.ToArray(img)
	if a.Grayscale {
		if arr, err = imaging.ToGrayscale(arr); err != nil {
			return nil, err
		}
	}
	return summarize(arr, a.IncludeData), nil
}

type arrayToImageArgs struct {
	Shape []int           `json:"shape"`
	Data  []float64       `json:"data"`
	Array json.RawMessage `json:"array"`
}

func (s *Server) handleArrayToImage(args json.RawMessage) (interface{}, error) {
	var a arrayToImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var arr *imaging.FloatArray
	if len(a.Array) > 0 {
		var nested interface{}
		if err := json.Unmarshal(a.Array, &nested); err != nil {
			return nil, err
		}
		var err error
		if arr, err = arrayFromNested(nested); err != nil {
			return nil, err
		}
	} else {
		arr = &imaging.FloatArray{Shape: a.Shape, Data: a.Data}
	}

	img, err := imaging.ToImage(arr)
	if err != nil {
		return nil, err
	}
	res, err := newImageResult(img)
	if err != nil {
		return nil, err
	}
	res.Shape = arr.Shape
	return res, nil
}

type imageGrayscaleArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageGrayscale(args json.RawMessage) (interface{}, error) {
	var a imageGrayscaleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := imaging.LoadImage(a.Path, "")
	if err != nil {
		return nil, err
	}

	gray, err := imaging.ToGrayscale(imaging.ToArray(img))
	if err != nil {
		return nil, err
	}
	grayImg, err := imaging.ToImage(gray)
	if err != nil {
		return nil, err
	}
	res, err := newImageResult(grayImg)
	if err != nil {
		return nil, err
	}
	res.Shape = gray.Shape
	return res, nil
}

type imageSamplePixelArgs struct {
	Path string `json:"path"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
}

func (s *Server) handleImageSamplePixel(args json.RawMessage) (interface{}, error) {
	var a imageSamplePixelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := imaging.LoadImage(a.Path, "")
	if err != nil {
		return nil, err
	}
	return imaging.SamplePixel(img, a.Row, a.Col)
}

// === Resize Handlers ===

type imageResizeArgs struct {
	Path   string `json:"path"`
	Mode   string `json:"mode"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (s *Server) handleImageResize(args json.RawMessage) (interface{}, error) {
	var a imageResizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Mode == "" {
		a.Mode = "fit"
	}
	img, err := imaging.LoadImage(a.Path, "")
	if err != nil {
		return nil, err
	}

	var resized image.Image
	switch a.Mode {
	case "fit":
		resized, err = imaging.ResizeToFit(img, a.Width, a.Height)
	case "exact":
		resized, err = imaging.ResizeExact(img, a.Width, a.Height)
	default:
		return nil, fmt.Errorf("unknown resize mode: %s", a.Mode)
	}
	if err != nil {
		return nil, err
	}
	return newImageResult(resized)
}

// === Composite Handler ===

type imageLoadResizeConvertArgs struct {
	Path        string  `json:"path"`
	Directory   string  `json:"directory"`
	Scale       float64 `json:"scale"`
	Grayscale   bool    `json:"grayscale"`
	IncludeData bool    `json:"include_data"`
}

// LoadResizeConvertResult is the result of image_load_resize_convert.
type LoadResizeConvertResult struct {
	OriginalWidth  int `json:"original_width"`
	OriginalHeight int `json:"original_height"`
	ArrayResult
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`

	png []byte
}

func (r *LoadResizeConvertResult) inlineImages() [][]byte { return [][]byte{r.png} }

func (s *Server) handleImageLoadResizeConvert(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a imageLoadResizeConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = s.cfg.DefaultScale
	}

	capture := &display.CaptureRenderer{}
	conv := imaging.NewConverter(s.logger, display.Inline{Renderer: capture})

	res, err := conv.Convert(ctx, a.Path, a.Directory, imaging.ConvertOptions{
		Scale:     a.Scale,
		Grayscale: a.Grayscale,
	})
	if err != nil {
		return nil, err
	}

	png, _ := capture.Last()
	return &LoadResizeConvertResult{
		OriginalWidth:  res.OriginalWidth,
		OriginalHeight: res.OriginalHeight,
		ArrayResult:    summarize(res.Array, a.IncludeData),
		ImageBase64:    base64.StdEncoding.EncodeToString(png),
		MimeType:       "image/png",
		png:            png,
	}, nil
}
