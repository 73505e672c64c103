package imaging

import (
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestImage encodes img as PNG into dir/name and returns the full path.
func writeTestImage(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err, "failed to create test image file")
	defer f.Close()
	require.NoError(t, png.Encode(f, img), "failed to encode test image")
	return path
}

// solidImage creates an opaque RGBA image filled with c.
func solidImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// patternImage creates an image with red top-left, green top-right,
// blue bottom-left and white bottom-right quadrants.
func patternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			switch {
			case x < width/2 && y < height/2:
				c = color.RGBA{255, 0, 0, 255}
			case x >= width/2 && y < height/2:
				c = color.RGBA{0, 255, 0, 255}
			case x < width/2 && y >= height/2:
				c = color.RGBA{0, 0, 255, 255}
			default:
				c = color.RGBA{255, 255, 255, 255}
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()
	writeTestImage(t, dir, "red.png", solidImage(100, 80, color.RGBA{255, 0, 0, 255}))

	img, err := LoadImage("red.png", dir)
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())

	r, g, b, a := img.At(10, 10).RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0, 0xffff}, []uint32{r, g, b, a})
}

func TestLoadImage_EmptyDirectory(t *testing.T) {
	path := writeTestImage(t, t.TempDir(), "img.png", solidImage(4, 4, color.White))

	img, err := LoadImage(path, "")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())
}

func TestLoadImage_NonExistent(t *testing.T) {
	_, err := LoadImage("missing.png", t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadImage_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.png"), 0o755))

	_, err := LoadImage("sub.png", dir)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoadImage_InvalidImage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.png"), []byte("not an image"), 0o644))

	_, err := LoadImage("bad.png", dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
	assert.NotErrorIs(t, err, ErrFileNotFound)
}

func TestLoadImageInfo(t *testing.T) {
	dir := t.TempDir()
	path := writeTestImage(t, dir, "info.png", solidImage(200, 150, color.RGBA{255, 128, 64, 255}))

	info, err := LoadImageInfo(path)
	require.NoError(t, err)

	assert.Equal(t, 200, info.Width)
	assert.Equal(t, 150, info.Height)
	assert.Equal(t, "png", info.Format)
	assert.Equal(t, "8-bit", info.ColorDepth)
	assert.Equal(t, 3, info.Channels)
	assert.False(t, info.HasAlpha)
	assert.Positive(t, info.FileSizeBytes)
}

func TestLoadImageInfo_FormatFromContent(t *testing.T) {
	// A PNG with a misleading extension is still reported as png
	path := writeTestImage(t, t.TempDir(), "photo.jpg", solidImage(10, 10, color.Black))

	info, err := LoadImageInfo(path)
	require.NoError(t, err)
	assert.Equal(t, "png", info.Format)
}

func TestLoadImageInfo_ChannelsAndDepth(t *testing.T) {
	translucent := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	translucent.Set(1, 1, color.NRGBA{10, 20, 30, 128})

	gray16 := image.NewGray16(image.Rect(0, 0, 4, 4))
	gray16.SetGray16(0, 0, color.Gray16{Y: 40000})

	tests := []struct {
		name     string
		img      image.Image
		channels int
		depth    string
		hasAlpha bool
	}{
		{"gray", image.NewGray(image.Rect(0, 0, 4, 4)), 1, "8-bit", false},
		{"gray16", gray16, 1, "16-bit", false},
		{"opaque", solidImage(4, 4, color.White), 3, "8-bit", false},
		{"translucent", translucent, 4, "8-bit", true},
	}

	dir := t.TempDir()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestImage(t, dir, tt.name+".png", tt.img)

			info, err := LoadImageInfo(path)
			require.NoError(t, err)
			assert.Equal(t, tt.channels, info.Channels)
			assert.Equal(t, tt.depth, info.ColorDepth)
			assert.Equal(t, tt.hasAlpha, info.HasAlpha)
		})
	}
}

func TestLoadImageInfo_NonExistent(t *testing.T) {
	_, err := LoadImageInfo("/nonexistent/image.png")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestGetDimensions(t *testing.T) {
	path := writeTestImage(t, t.TempDir(), "dims.png", solidImage(300, 200, color.Gray{100}))

	dims, err := GetDimensions(path)
	require.NoError(t, err)
	assert.Equal(t, 300, dims.Width)
	assert.Equal(t, 200, dims.Height)
}

func TestGetDimensions_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("garbage"), 0o644))

	_, err := GetDimensions(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = GetDimensions(bad)
	assert.ErrorIs(t, err, ErrDecode)
}
