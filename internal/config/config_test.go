package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.Equal(t, 0.25, cfg.DefaultScale)
	assert.Empty(t, cfg.ViewerCommand)
}

func TestLoadFrom_Values(t *testing.T) {
	cfg, err := LoadFrom(lookupFrom(map[string]string{
		EnvLogLevel:     " DEBUG ",
		EnvDefaultScale: "0.5",
		EnvViewer:       "feh  --scale-down",
	}))
	require.NoError(t, err)

	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.Equal(t, 0.5, cfg.DefaultScale)
	assert.Equal(t, []string{"feh", "--scale-down"}, cfg.ViewerCommand)
}

func TestLoadFrom_BlankScaleKeepsDefault(t *testing.T) {
	cfg, err := LoadFrom(lookupFrom(map[string]string{EnvDefaultScale: "  "}))
	require.NoError(t, err)
	assert.Equal(t, 0.25, cfg.DefaultScale)
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown level", map[string]string{EnvLogLevel: "loud"}},
		{"non-numeric scale", map[string]string{EnvDefaultScale: "half"}},
		{"zero scale", map[string]string{EnvDefaultScale: "0"}},
		{"negative scale", map[string]string{EnvDefaultScale: "-0.5"}},
		{"nan scale", map[string]string{EnvDefaultScale: "NaN"}},
		{"infinite scale", map[string]string{EnvDefaultScale: "+Inf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(lookupFrom(tt.env))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
