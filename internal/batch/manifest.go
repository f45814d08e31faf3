package batch

import (
	"encoding/json"
	"os"
	"path/filepath"

	"sdfmarch/internal/scene"
)

// ManifestEntry represents one rendered scene in the output manifest.
type ManifestEntry struct {
	Name  string `json:"name"`
	Info  string `json:"info"`
	Image string `json:"image"`
}

// WriteManifest writes manifest.json next to the rendered images.
func WriteManifest(path, format string, scenes []scene.Scene) error {
	entries := make([]ManifestEntry, len(scenes))
	for i, sc := range scenes {
		entries[i] = ManifestEntry{
			Name:  sc.Name,
			Info:  sc.Info,
			Image: filepath.Base(sc.Name + "." + format),
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
