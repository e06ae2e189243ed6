package ccplot

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ListColormaps returns the sorted base names of the .cmap files in
// dir, the set offered in the colormap dropdown.
func ListColormaps(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list colormaps: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".cmap") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// ColormapPath resolves a dropdown selection back to the file handed
// to ccplot's -c flag.
func ColormapPath(dir, name string) string {
	return filepath.Join(dir, name)
}
