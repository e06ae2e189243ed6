package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ccplot-gui.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()

	require.NoError(t, validate(cfg))
	assert.Equal(t, "ccplot", cfg.Ccplot.Binary)
	assert.Equal(t, 30, cfg.Ccplot.Opacity)
	assert.Equal(t, "calipso532", cfg.Plot.CalipsoProduct)
	assert.Equal(t, "cloudsat-reflec", cfg.Plot.CloudsatProduct)
}

func TestLoadLayersOverDefaults(t *testing.T) {
	path := writeConfig(t, `
[ccplot]
binary = "/opt/ccplot/bin/ccplot"
opacity = 50

[logging]
level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/opt/ccplot/bin/ccplot", cfg.Ccplot.Binary)
	assert.Equal(t, 50, cfg.Ccplot.Opacity)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched sections keep their defaults.
	assert.Equal(t, "calipso-backscatter.cmap", cfg.Ccplot.Colormap)
	assert.Equal(t, 30000, cfg.Plot.AltitudeTop)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"opacity out of range", "[ccplot]\nopacity = 150\n"},
		{"empty binary", "[ccplot]\nbinary = \"\"\n"},
		{"inverted altitude bounds", "[plot]\naltitude_min = 40000\naltitude_max = 0\n"},
		{"inverted altitude defaults", "[plot]\naltitude_bottom = 30000\naltitude_top = 100\n"},
		{"defaults outside bounds", "[plot]\naltitude_top = 99999\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
