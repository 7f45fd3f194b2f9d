// Package tile builds collision geometry for grid tiles.
package tile

import (
	"fmt"
	"math"
	"sort"

	"github.com/younwookim/golfball/internal/domain/geometry"
)

// Cell is a grid coordinate
type Cell struct {
	Col, Row int
}

// Tile is a placed level tile with its world-space collision geometry
type Tile struct {
	ID         int
	Cell       Cell
	Origin     geometry.Vec2 // top-left in world pixels
	Size       float64
	Kind       Kind
	Shape      string
	Flip       Flip
	Bounciness float64
	Edges      []Edge
	Hitbox     geometry.Polygon // nil for platforms and terrain
}

// Spawn places shape at cell and builds its hitbox for kind
func Spawn(id int, cell Cell, size float64, kind Kind, shape Shape, flip Flip) Tile {
	origin := geometry.V(float64(cell.Col)*size, float64(cell.Row)*size)
	shape = shape.Flipped(flip)

	t := Tile{
		ID:         id,
		Cell:       cell,
		Origin:     origin,
		Size:       size,
		Kind:       kind,
		Shape:      shape.Name,
		Flip:       flip,
		Bounciness: shape.Bounciness,
	}

	switch kind.(type) {
	case Block, Slope:
		t.Hitbox = make(geometry.Polygon, len(shape.Vertices))
		for i, v := range shape.Vertices {
			t.Hitbox[i] = v.Scale(size).Add(origin)
		}
		orderAround(t.Hitbox)
	case Platform, Terrain:
	default:
		panic(fmt.Sprintf("tile: unknown kind %T", kind))
	}
	t.Edges = BuildEdges(kind, shape, origin, size)
	return t
}

// orderAround sorts convex polygon vertices by angle around their centroid,
// so shapes may list vertices in any order.
func orderAround(poly geometry.Polygon) {
	c := poly.Centroid()
	sort.SliceStable(poly, func(i, j int) bool {
		a, b := poly[i].Sub(c), poly[j].Sub(c)
		return math.Atan2(a.Y, a.X) < math.Atan2(b.Y, b.X)
	})
}

// Collides reports whether the tile takes part in collision
func (t Tile) Collides() bool {
	_, terrain := t.Kind.(Terrain)
	return !terrain && len(t.Edges) > 0
}

// IsSolid reports whether the tile blocks from every side
func (t Tile) IsSolid() bool { return IsSolid(t.Kind) }

// IsPlatform reports whether the tile is one-way
func (t Tile) IsPlatform() bool { return IsPlatform(t.Kind) }

// SurfaceY returns the top Y of a platform edge
func (t Tile) SurfaceY() float64 {
	if len(t.Edges) == 0 {
		return t.Origin.Y
	}
	e := t.Edges[0]
	if e.A.Y < e.B.Y {
		return e.A.Y
	}
	return e.B.Y
}

// Bounds returns the tile's cell rectangle in world pixels
func (t Tile) Bounds() geometry.Rect {
	return geometry.Rect{Min: t.Origin, Max: t.Origin.Add(geometry.V(t.Size, t.Size))}
}

// WithEdges returns a copy of t carrying only edges
func (t Tile) WithEdges(edges []Edge) Tile {
	t.Edges = edges
	return t
}

func (t Tile) String() string {
	return fmt.Sprintf("Tile{ID:%d, Cell:(%d,%d), Kind:%s, Edges:%d}", t.ID, t.Cell.Col, t.Cell.Row, t.Kind, len(t.Edges))
}
