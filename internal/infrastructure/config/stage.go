package config

// Layer names shared by JSON stages and TMX maps
const (
	LayerCollision = "collision"
	LayerPlatform  = "platform"
	LayerTerrain   = "terrain"
	LayerPlayer    = "player"
)

// StageConfig is the root config for stage JSON files
type StageConfig struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	Size        StageSizeConfig              `json:"size"`
	Layers      map[string]string            `json:"layers"` // layer name -> CSV path
	TileMapping map[string]TileMappingConfig `json:"tileMapping"`
}

type StageSizeConfig struct {
	TileSize int `json:"tileSize"`
}

// TileMappingConfig binds a tile id to a collision kind and shape.
// Kind is one of block, slope, platform, terrain.
type TileMappingConfig struct {
	Kind  string `json:"kind"`
	Shape string `json:"shape"`
	Slope int    `json:"slope,omitempty"`
}

// Grid is one layer of raw cell values, row-major.
// Values are Tiled GIDs with flip bits; -1 is empty.
type Grid [][]int64

// Cols returns the widest row length
func (g Grid) Cols() int {
	n := 0
	for _, row := range g {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// StageData is a stage in a format-neutral form, built from either a JSON
// stage with CSV layers or a TMX map.
type StageData struct {
	ID       string
	Name     string
	TileSize int
	Cols     int
	Rows     int
	Layers   map[string]Grid
	Mapping  map[int]TileMappingConfig // by tile id; missing ids use the layer default
}
