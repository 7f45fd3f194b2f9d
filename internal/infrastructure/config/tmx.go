package config

import (
	"fmt"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Tiled GID flag bits
const (
	flipHorizontal int64 = 0x80000000
	flipVertical   int64 = 0x40000000
	flipDiagonal   int64 = 0x20000000
)

// LoadTMX reads a Tiled map. Layers are matched by name; tileset tiles
// carry "kind", "shape" and optionally "slope" properties. Tile IDs are
// GID - 1, so a map with a single tileset uses its local IDs and further
// tilesets continue after it.
func (l *Loader) LoadTMX(tmxPath string) (*StageData, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load TMX %s: %w", tmxPath, err)
	}
	if m.TileWidth != m.TileHeight {
		return nil, fmt.Errorf("failed to load TMX %s: tiles must be square, got %dx%d", tmxPath, m.TileWidth, m.TileHeight)
	}

	id := strings.TrimSuffix(path.Base(tmxPath), ".tmx")
	data := &StageData{
		ID:       id,
		Name:     id,
		TileSize: m.TileWidth,
		Cols:     m.Width,
		Rows:     m.Height,
		Layers:   make(map[string]Grid),
		Mapping:  make(map[int]TileMappingConfig),
	}

	for _, ts := range m.Tilesets {
		for _, t := range ts.Tiles {
			kind := t.Properties.GetString("kind")
			if kind == "" {
				continue
			}
			data.Mapping[tileKey(ts.FirstGID, t.ID)] = TileMappingConfig{
				Kind:  kind,
				Shape: t.Properties.GetString("shape"),
				Slope: t.Properties.GetInt("slope"),
			}
		}
	}

	for _, layer := range m.Layers {
		if len(layer.Tiles) < m.Width*m.Height {
			continue
		}
		grid := make(Grid, m.Height)
		for y := 0; y < m.Height; y++ {
			row := make([]int64, m.Width)
			for x := 0; x < m.Width; x++ {
				lt := layer.Tiles[y*m.Width+x]
				if lt.IsNil() {
					row[x] = -1
					continue
				}
				raw := int64(tileKey(lt.Tileset.FirstGID, lt.ID))
				if lt.HorizontalFlip {
					raw |= flipHorizontal
				}
				if lt.VerticalFlip {
					raw |= flipVertical
				}
				if lt.DiagonalFlip {
					raw |= flipDiagonal
				}
				row[x] = raw
			}
			grid[y] = row
		}
		data.Layers[layer.Name] = grid
	}

	return data, nil
}

func tileKey(firstGID, localID uint32) int {
	return int(firstGID) - 1 + int(localID)
}
