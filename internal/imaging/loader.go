package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// LoadImage reads and fully decodes the image at directory/filename.
//
// Parameters:
//   - filename: Name of the image file. May itself contain path elements.
//   - directory: Directory joined in front of filename using the platform
//     separator. An empty directory leaves filename unchanged.
//
// Returns:
//   - image.Image: The decoded image. The concrete type depends on the format
//     and color model (e.g., *image.RGBA, *image.NRGBA, *image.YCbCr, *image.Gray).
//   - error: Non-nil if the file cannot be read or decoded.
//
// Go decoders materialize every pixel before returning, so the image is
// complete and the file is closed once LoadImage returns.
//
// # Errors
//
//   - ErrFileNotFound if the path does not exist, is a directory, or cannot be opened
//   - ErrDecode if the content is not a PNG, JPEG, GIF, BMP, TIFF, or WebP image
func LoadImage(filename, directory string) (image.Image, error) {
	img, _, err := decodeFile(filepath.Join(directory, filename))
	return img, err
}

func decodeFile(path string) (image.Image, string, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
	}
	if stat.IsDir() {
		return nil, "", fmt.Errorf("%w: %s is a directory", ErrFileNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	return img, format, nil
}

// ImageInfo contains metadata about a decoded image file.
//
// This struct provides essential information about an image without requiring
// the caller to convert it to an array.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the codec that decoded the file: "png", "jpeg", "gif", "bmp",
	// "tiff" or "webp". Detection is based on file contents, not the extension.
	Format string `json:"format"`

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// Channels is the channel count ToArray produces for this image:
	// 1 for grayscale, 3 for opaque color, 4 for color with transparency.
	Channels int `json:"channels"`

	// HasAlpha indicates whether any pixel is not fully opaque.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo decodes an image and returns metadata about it.
//
// Parameters:
//   - path: Path to the image file.
//
// Returns:
//   - *ImageInfo: Metadata about the image.
//   - error: Non-nil if the image cannot be loaded or the file cannot be stat'd.
//
// # Color Depth Detection
//
// Color depth is determined by the Go image type:
//   - *image.RGBA64, *image.NRGBA64, *image.Gray16 -> "16-bit"
//   - All other types -> "8-bit"
func LoadImageInfo(path string) (*ImageInfo, error) {
	img, format, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	colorDepth := "8-bit"
	switch img.(type) {
	case *image.RGBA64, *image.NRGBA64, *image.Gray16:
		colorDepth = "16-bit"
	}

	channels := channelCount(img)
	bounds := img.Bounds()

	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		ColorDepth:    colorDepth,
		Channels:      channels,
		HasAlpha:      channels == 4,
		FileSizeBytes: stat.Size(),
	}, nil
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`
}

// GetDimensions returns the dimensions of an image without additional metadata.
//
// Only the image header is read, so this is cheaper than LoadImage for large files.
func GetDimensions(path string) (*DimensionsResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	return &DimensionsResult{
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}
