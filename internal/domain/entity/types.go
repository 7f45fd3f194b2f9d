package entity

import (
	"math"

	"github.com/younwookim/golfball/internal/domain/geometry"
	"github.com/younwookim/golfball/internal/domain/tile"
)

// MotionState is the ball's contact state
type MotionState int

const (
	Airborne MotionState = iota
	OnGround
)

func (s MotionState) String() string {
	switch s {
	case Airborne:
		return "Airborne"
	case OnGround:
		return "OnGround"
	default:
		return "Unknown"
	}
}

// Level is the built tile layout of a stage
type Level struct {
	Name     string
	TileSize float64
	Cols     int
	Rows     int

	Tiles   []tile.Tile // blocks, slopes and platforms
	Terrain []tile.Tile // render only
	Spawn   geometry.Vec2
}

// Width returns the world width in pixels
func (l *Level) Width() float64 {
	return float64(l.Cols) * l.TileSize
}

// Height returns the world height in pixels
func (l *Level) Height() float64 {
	return float64(l.Rows) * l.TileSize
}

// CellAt returns the grid cell containing the pixel position
func (l *Level) CellAt(p geometry.Vec2) tile.Cell {
	return tile.Cell{
		Col: int(math.Floor(p.X / l.TileSize)),
		Row: int(math.Floor(p.Y / l.TileSize)),
	}
}

// InBounds reports whether cell lies inside the grid
func (l *Level) InBounds(c tile.Cell) bool {
	return c.Col >= 0 && c.Col < l.Cols && c.Row >= 0 && c.Row < l.Rows
}

// SpawnPoint returns the ball center for a player marker cell:
// horizontally centered, resting on the cell bottom.
func SpawnPoint(cell tile.Cell, tileSize, radius float64) geometry.Vec2 {
	return geometry.V(
		float64(cell.Col)*tileSize+tileSize/2,
		float64(cell.Row)*tileSize+tileSize-radius,
	)
}
