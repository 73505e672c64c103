package display

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"sync"
)

// TerminalRenderer writes images inline to a terminal using the iTerm2
// inline image protocol, which WezTerm and several other emulators also
// understand.
type TerminalRenderer struct {
	Out io.Writer
}

var _ Renderer = (*TerminalRenderer)(nil)

// Render writes data as a single OSC 1337 sequence followed by a newline.
func (t *TerminalRenderer) Render(_ context.Context, data []byte, format string) error {
	_, err := fmt.Fprintf(t.Out, "\x1b]1337;File=inline=1;size=%d;preserveAspectRatio=1:%s\a\n",
		len(data), base64.StdEncoding.EncodeToString(data))
	if err != nil {
		return fmt.Errorf("failed to write %s image: %w", format, err)
	}
	return nil
}

// CaptureRenderer records the most recently rendered image.
//
// It is safe for concurrent use.
type CaptureRenderer struct {
	mu     sync.Mutex
	data   []byte
	format string
}

var _ Renderer = (*CaptureRenderer)(nil)

// Render stores a copy of data.
func (c *CaptureRenderer) Render(_ context.Context, data []byte, format string) error {
	c.mu.Lock()
	c.data = append([]byte(nil), data...)
	c.format = format
	c.mu.Unlock()
	return nil
}

// Last returns the most recent image bytes and format tag. Both are empty if
// nothing has been rendered.
func (c *CaptureRenderer) Last() ([]byte, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data, c.format
}
