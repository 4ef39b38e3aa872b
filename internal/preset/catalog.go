package preset

import (
	"errors"
	"fmt"
	"sort"

	"framewall/internal/pixbuf"
)

// Texture identifies the procedural surface drawn on a frame border.
type Texture string

const (
	TexturePlain Texture = "plain"
	TextureWood  Texture = "wood"
	TextureGold  Texture = "gold"
)

// Preset describes one frame style from the catalog.
type Preset struct {
	ID      string
	Color   pixbuf.Color
	Texture Texture
}

// ErrUnknownPreset is returned when a preset id is not in the catalog.
var ErrUnknownPreset = errors.New("preset: unknown id")

var catalog = map[string]Preset{
	"brown": {ID: "brown", Color: pixbuf.Color{139, 69, 19}, Texture: TextureWood},
	"white": {ID: "white", Color: pixbuf.Color{245, 245, 240}, Texture: TexturePlain},
	"black": {ID: "black", Color: pixbuf.Color{30, 30, 30}, Texture: TexturePlain},
	"gold":  {ID: "gold", Color: pixbuf.Color{212, 175, 55}, Texture: TextureGold},
}

// Lookup returns the preset for id. Unknown ids are an error, never a
// silent fallback to a default style.
func Lookup(id string) (Preset, error) {
	p, ok := catalog[id]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, id)
	}
	return p, nil
}

// IDs returns the catalog's preset ids in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
