package system

import (
	"fmt"
	"sort"

	"github.com/younwookim/golfball/internal/domain/entity"
	"github.com/younwookim/golfball/internal/domain/geometry"
	"github.com/younwookim/golfball/internal/domain/tile"
	"github.com/younwookim/golfball/internal/infrastructure/config"
)

// layerOrder fixes tile ID assignment across layers
var layerOrder = []string{config.LayerCollision, config.LayerPlatform, config.LayerTerrain}

// defaultMapping is used for ids missing from the stage's tile mapping
var defaultMapping = map[string]config.TileMappingConfig{
	config.LayerCollision: {Kind: "block", Shape: "block"},
	config.LayerPlatform:  {Kind: "platform", Shape: "platform"},
	config.LayerTerrain:   {Kind: "terrain", Shape: "terrain"},
}

// BuildShapes converts the shapes table into tile shapes
func BuildShapes(cfg *config.ShapesConfig) map[string]tile.Shape {
	shapes := make(map[string]tile.Shape, len(cfg.Shapes))
	for name, sc := range cfg.Shapes {
		s := tile.Shape{
			Name:       name,
			Vertices:   make([]geometry.Vec2, len(sc.Vertices)),
			Center:     geometry.V(sc.Center[0], sc.Center[1]),
			Bounciness: sc.Bounciness,
		}
		for i, v := range sc.Vertices {
			s.Vertices[i] = geometry.V(v[0], v[1])
		}
		shapes[name] = s
	}
	return shapes
}

// ParseKind converts a mapping into a tile kind
func ParseKind(m config.TileMappingConfig) (tile.Kind, error) {
	switch m.Kind {
	case "block":
		return tile.Block{}, nil
	case "slope":
		return tile.Slope{ID: m.Slope}, nil
	case "platform":
		return tile.Platform{}, nil
	case "terrain":
		return tile.Terrain{}, nil
	default:
		return nil, fmt.Errorf("unknown tile kind %q", m.Kind)
	}
}

// LoadLevel spawns every tile of a stage and finds the player spawn
func LoadLevel(data *config.StageData, shapes map[string]tile.Shape, radius float64) (*entity.Level, error) {
	if data.TileSize <= 0 {
		return nil, fmt.Errorf("failed to load level %s: tile size must be positive", data.ID)
	}
	size := float64(data.TileSize)

	level := &entity.Level{
		Name:     data.Name,
		TileSize: size,
		Cols:     data.Cols,
		Rows:     data.Rows,
	}

	nextID := 0
	for _, layer := range layerOrder {
		grid, ok := data.Layers[layer]
		if !ok {
			continue
		}
		for row, cells := range grid {
			for col, raw := range cells {
				id, flip, ok := tile.DecodeGID(raw)
				if !ok {
					continue
				}

				m, ok := data.Mapping[id]
				if !ok || (layer != config.LayerCollision && m.Kind != kindForLayer(layer)) {
					m = defaultMapping[layer]
				}
				kind, err := ParseKind(m)
				if err != nil {
					return nil, fmt.Errorf("failed to load level %s at (%d,%d): %w", data.ID, col, row, err)
				}
				shape, ok := shapes[m.Shape]
				if !ok {
					return nil, fmt.Errorf("failed to load level %s at (%d,%d): unknown shape %q", data.ID, col, row, m.Shape)
				}

				t := tile.Spawn(nextID, tile.Cell{Col: col, Row: row}, size, kind, shape, flip)
				nextID++
				if t.Collides() {
					level.Tiles = append(level.Tiles, t)
				} else {
					level.Terrain = append(level.Terrain, t)
				}
			}
		}
	}

	spawn, err := findSpawn(data, size, radius)
	if err != nil {
		return nil, err
	}
	level.Spawn = spawn

	sort.Slice(level.Tiles, func(i, j int) bool { return level.Tiles[i].ID < level.Tiles[j].ID })
	return level, nil
}

// kindForLayer is the only kind a non-collision layer may hold
func kindForLayer(layer string) string {
	return defaultMapping[layer].Kind
}

// findSpawn returns the first marked cell of the player layer
func findSpawn(data *config.StageData, size, radius float64) (geometry.Vec2, error) {
	for row, cells := range data.Layers[config.LayerPlayer] {
		for col, raw := range cells {
			if _, _, ok := tile.DecodeGID(raw); ok {
				return entity.SpawnPoint(tile.Cell{Col: col, Row: row}, size, radius), nil
			}
		}
	}
	return geometry.Vec2{}, fmt.Errorf("failed to load level %s: no player spawn", data.ID)
}
