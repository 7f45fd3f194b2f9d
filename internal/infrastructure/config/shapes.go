package config

// ShapesConfig is the root config for shapes.json
type ShapesConfig struct {
	Shapes map[string]ShapeConfig `json:"shapes"`
}

// ShapeConfig is a tile outline in relative coordinates
type ShapeConfig struct {
	Vertices   [][2]float64 `json:"vertices"`
	Center     [2]float64   `json:"center"`
	Bounciness float64      `json:"bounciness"`
}
