package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry describes the files produced for one input image. Paths are
// relative to the output directory.
type ManifestEntry struct {
	Name     string `json:"name"`
	Source   string `json:"source"`
	Framed   string `json:"framed"`
	Original string `json:"original,omitempty"`
	Upscaled string `json:"upscaled,omitempty"`
}

// WriteManifest writes manifest.json listing every successful result.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Name:     r.Name,
			Source:   r.Source,
			Framed:   r.Framed,
			Original: r.Original,
			Upscaled: r.Upscaled,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
