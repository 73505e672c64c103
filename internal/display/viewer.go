package display

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"os/exec"
	"runtime"

	"github.com/anthonynsimon/bild/imgio"
)

// ErrNoViewer is returned when no viewer command is configured.
var ErrNoViewer = errors.New("no image viewer command")

// DefaultViewerCommand returns the platform's file opener.
func DefaultViewerCommand() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	default:
		return []string{"xdg-open"}
	}
}

// SystemViewer shows images by writing them to a temporary PNG file and
// running Command with the file path appended.
//
// The file is left in place for the viewer to read; it lives in TempDir, or
// the system temp directory when TempDir is empty.
type SystemViewer struct {
	Command []string
	TempDir string

	run func(*exec.Cmd) error
}

var _ Viewer = (*SystemViewer)(nil)

// NewSystemViewer returns a viewer using command, or DefaultViewerCommand if
// command is empty.
func NewSystemViewer(command ...string) *SystemViewer {
	if len(command) == 0 {
		command = DefaultViewerCommand()
	}
	return &SystemViewer{Command: command}
}

// View writes img to a temporary PNG and launches the viewer on it.
func (v *SystemViewer) View(ctx context.Context, img image.Image) error {
	if len(v.Command) == 0 {
		return ErrNoViewer
	}

	f, err := os.CreateTemp(v.TempDir, "image-array-*.png")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if err := imgio.PNGEncoder()(f, img); err != nil {
		f.Close()
		os.Remove(f.Name())
		return fmt.Errorf("failed to encode image: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	args := append(append([]string(nil), v.Command[1:]...), f.Name())
	cmd := exec.CommandContext(ctx, v.Command[0], args...)

	run := v.run
	if run == nil {
		run = (*exec.Cmd).Run
	}
	if err := run(cmd); err != nil {
		return fmt.Errorf("failed to run viewer %q: %w", v.Command[0], err)
	}
	return nil
}
