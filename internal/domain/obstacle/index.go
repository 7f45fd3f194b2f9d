// Package obstacle indexes level tiles for collision queries.
//
// Tiles are de-duplicated once at build time. A vertical window of them is
// kept active in a resolv space; only active tiles are returned by Query.
package obstacle

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"

	"github.com/younwookim/golfball/internal/domain/geometry"
	"github.com/younwookim/golfball/internal/domain/tile"
)

// Resolv tags
const (
	tagTile  = "tile"
	tagProbe = "probe"
)

// Category separates solid tiles from one-way platforms sharing a cell
type Category int

const (
	Solid Category = iota
	OneWay
)

func (c Category) String() string {
	switch c {
	case Solid:
		return "solid"
	case OneWay:
		return "one-way"
	default:
		return "unknown"
	}
}

// CategoryOf returns the index category for t
func CategoryOf(t tile.Tile) Category {
	if t.IsPlatform() {
		return OneWay
	}
	return Solid
}

// Key locates a tile by grid cell and category
type Key struct {
	Cell     tile.Cell
	Category Category
}

// Index holds the collidable tiles of a level
type Index struct {
	tiles   []tile.Tile // sorted by ID
	byKey   map[Key]int
	objects []*resolv.Object
	active  []bool

	space *resolv.Space
	probe *resolv.Object
}

// NewIndex builds an index from the collidable tiles of a level.
// Terrain is skipped. Nothing is active until Activate is called.
func NewIndex(tiles []tile.Tile, worldW, worldH, tileSize float64) *Index {
	collidable := make([]tile.Tile, 0, len(tiles))
	for _, t := range tiles {
		if t.Collides() {
			collidable = append(collidable, t)
		}
	}
	collidable = Deduplicate(collidable)
	sort.SliceStable(collidable, func(i, j int) bool { return collidable[i].ID < collidable[j].ID })

	cell := int(math.Max(1, tileSize))
	space := resolv.NewSpace(int(math.Ceil(worldW)), int(math.Ceil(worldH)), cell, cell)

	idx := &Index{
		tiles:   collidable,
		byKey:   make(map[Key]int, len(collidable)),
		objects: make([]*resolv.Object, len(collidable)),
		active:  make([]bool, len(collidable)),
		space:   space,
		probe:   resolv.NewObject(0, 0, 1, 1, tagProbe),
	}
	for i, t := range collidable {
		idx.byKey[Key{Cell: t.Cell, Category: CategoryOf(t)}] = i
		b := t.Bounds()
		obj := resolv.NewObject(b.Min.X, b.Min.Y, b.W(), b.H(), tagTile)
		obj.Data = i
		idx.objects[i] = obj
	}
	space.Add(idx.probe)
	return idx
}

// Activate makes exactly the tiles whose origin Y lies in [yMin, yMax]
// active. Calling it twice with the same range changes nothing.
func (x *Index) Activate(yMin, yMax float64) {
	next := make([]bool, len(x.tiles))
	for i, t := range x.tiles {
		next[i] = t.Origin.Y >= yMin && t.Origin.Y <= yMax
	}

	for i := range x.tiles {
		switch {
		case next[i] && !x.active[i]:
			x.space.Add(x.objects[i])
		case !next[i] && x.active[i]:
			x.space.Remove(x.objects[i])
		}
	}
	x.active = next
}

// Query returns the active tiles whose cells overlap r, ordered by tile ID
func (x *Index) Query(r geometry.Rect) []tile.Tile {
	x.probe.X = r.Min.X
	x.probe.Y = r.Min.Y
	x.probe.W = math.Max(1, r.W())
	x.probe.H = math.Max(1, r.H())
	x.probe.Update()

	check := x.probe.Check(0, 0, tagTile)
	if check == nil {
		return nil
	}

	seen := make(map[int]bool, len(check.Objects))
	hits := make([]int, 0, len(check.Objects))
	for _, obj := range check.Objects {
		i, ok := obj.Data.(int)
		if !ok || seen[i] || !x.active[i] {
			continue
		}
		seen[i] = true
		hits = append(hits, i)
	}
	sort.Ints(hits)

	out := make([]tile.Tile, len(hits))
	for n, i := range hits {
		out[n] = x.tiles[i]
	}
	return out
}

// Active returns the active tiles ordered by ID
func (x *Index) Active() []tile.Tile {
	var out []tile.Tile
	for i, t := range x.tiles {
		if x.active[i] {
			out = append(out, t)
		}
	}
	return out
}

// ActiveLen returns the number of active tiles
func (x *Index) ActiveLen() int {
	n := 0
	for _, a := range x.active {
		if a {
			n++
		}
	}
	return n
}

// Len returns the number of indexed tiles
func (x *Index) Len() int {
	return len(x.tiles)
}

// Tiles returns every indexed tile ordered by ID
func (x *Index) Tiles() []tile.Tile {
	return x.tiles
}

// At returns the tile stored for cell and category
func (x *Index) At(cell tile.Cell, c Category) (tile.Tile, bool) {
	i, ok := x.byKey[Key{Cell: cell, Category: c}]
	if !ok {
		return tile.Tile{}, false
	}
	return x.tiles[i], true
}
