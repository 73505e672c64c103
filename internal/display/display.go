package display

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/ironsheep/image-array-mcp/internal/imaging"
)

// FormatPNG is the format tag passed to renderers for inline images.
const FormatPNG = "png"

// Renderer embeds encoded image bytes in an interactive session.
type Renderer interface {
	Render(ctx context.Context, data []byte, format string) error
}

// Viewer shows a decoded image in an external window.
type Viewer interface {
	View(ctx context.Context, img image.Image) error
}

// EncodePNG casts arr to 8-bit, builds an image with imaging.ToImage, and
// encodes it as PNG.
func EncodePNG(arr *imaging.FloatArray) ([]byte, error) {
	img, err := imaging.ToImage(arr)
	if err != nil {
		return nil, err
	}
	return EncodeImagePNG(img)
}

// EncodeImagePNG encodes img as PNG.
func EncodeImagePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderInline encodes arr as PNG in memory and hands the bytes to r.
func RenderInline(ctx context.Context, r Renderer, arr *imaging.FloatArray) error {
	data, err := EncodePNG(arr)
	if err != nil {
		return err
	}
	return r.Render(ctx, data, FormatPNG)
}

// RenderViaSystemViewer casts arr to 8-bit and hands the image to v.
func RenderViaSystemViewer(ctx context.Context, v Viewer, arr *imaging.FloatArray) error {
	img, err := imaging.ToImage(arr)
	if err != nil {
		return err
	}
	return v.View(ctx, img)
}

// Inline adapts a Renderer to imaging.Displayer.
type Inline struct {
	Renderer Renderer
}

var _ imaging.Displayer = Inline{}

// Show renders arr inline.
func (d Inline) Show(ctx context.Context, arr *imaging.FloatArray) error {
	return RenderInline(ctx, d.Renderer, arr)
}

// External adapts a Viewer to imaging.Displayer.
type External struct {
	Viewer Viewer
}

var _ imaging.Displayer = External{}

// Show opens arr in the viewer.
func (d External) Show(ctx context.Context, arr *imaging.FloatArray) error {
	return RenderViaSystemViewer(ctx, d.Viewer, arr)
}
