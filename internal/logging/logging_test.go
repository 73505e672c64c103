package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{" warn ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, zerolog.WarnLevel)

	logger.Info().Msg("quiet")
	logger.Warn().Str("file", "a.png").Msg("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), `"message":"loud"`)
	assert.Contains(t, buf.String(), `"file":"a.png"`)
	assert.Contains(t, buf.String(), `"time":`)
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsole(&buf, zerolog.InfoLevel)
	logger.Info().Msg("Displaying new image...")

	assert.Contains(t, buf.String(), "Displaying new image...")
	assert.NotContains(t, buf.String(), "\x1b[", "console output is uncolored")
}
