// Package config loads runtime settings from environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ironsheep/image-array-mcp/internal/imaging"
	"github.com/ironsheep/image-array-mcp/internal/logging"
)

// Environment variable names.
const (
	EnvLogLevel     = "IMAGE_ARRAY_LOG_LEVEL"
	EnvDefaultScale = "IMAGE_ARRAY_DEFAULT_SCALE"
	EnvViewer       = "IMAGE_ARRAY_VIEWER"
)

// ErrInvalidConfig is returned when an environment variable holds an unusable value.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the settings shared by the server and the CLI.
type Config struct {
	// LogLevel is the minimum level written to stderr.
	LogLevel zerolog.Level

	// DefaultScale is the resize factor used when a request omits one.
	DefaultScale float64

	// ViewerCommand launches the OS image viewer. Empty selects the platform default.
	ViewerCommand []string
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	return LoadFrom(os.LookupEnv)
}

// LoadFrom reads the configuration using lookup, which has the signature of
// os.LookupEnv.
func LoadFrom(lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{
		LogLevel:     zerolog.InfoLevel,
		DefaultScale: imaging.DefaultScale,
	}

	if v, ok := lookup(EnvLogLevel); ok {
		level, err := logging.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvLogLevel, v, err)
		}
		cfg.LogLevel = level
	}

	if v, ok := lookup(EnvDefaultScale); ok && strings.TrimSpace(v) != "" {
		scale, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvDefaultScale, v, err)
		}
		if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
			return nil, fmt.Errorf("%w: %s must be a positive number, got %v", ErrInvalidConfig, EnvDefaultScale, scale)
		}
		cfg.DefaultScale = scale
	}

	if v, ok := lookup(EnvViewer); ok {
		cfg.ViewerCommand = strings.Fields(v)
	}

	return cfg, nil
}
