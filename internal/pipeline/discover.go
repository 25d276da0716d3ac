package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover returns the video files directly inside dir whose extension
// matches one of extensions, sorted by name. It does not recurse:
// contact sheets land next to their videos, and a directory-per-show
// layout is better served by running once per directory.
func Discover(dir string, extensions []string) ([]string, error) {
	wanted := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		wanted[ext] = true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	var videos []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if wanted[ext] {
			videos = append(videos, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(videos)
	return videos, nil
}
