package ccplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListColormaps(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"cloudsat-reflectivity.cmap",
		"calipso-backscatter.cmap",
		"README",
		"notes.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "extra.cmap"), 0o755))

	names, err := ListColormaps(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"calipso-backscatter.cmap",
		"cloudsat-reflectivity.cmap",
	}, names)
}

func TestListColormapsMissingDir(t *testing.T) {
	_, err := ListColormaps(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestColormapPath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("/usr/share/ccplot/cmap", "calipso-backscatter.cmap"),
		ColormapPath("/usr/share/ccplot/cmap", "calipso-backscatter.cmap"),
	)
}
