package obstacle

import (
	"github.com/younwookim/golfball/internal/domain/geometry"
	"github.com/younwookim/golfball/internal/domain/tile"
)

// edgeKey identifies an edge regardless of endpoint order
type edgeKey struct {
	a, b geometry.Vec2
}

func keyOf(e tile.Edge) edgeKey {
	a, b := e.A, e.B
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// Deduplicate removes edges shared between solid tiles.
//
// An edge whose endpoint set appears on two or more solid tiles is interior
// to the terrain and is dropped from every one of them. Solid tiles left
// with no edges are removed. Platforms never match and are kept as is.
// The input slice is not modified.
func Deduplicate(tiles []tile.Tile) []tile.Tile {
	// snapshot
	counts := make(map[edgeKey]int)
	for _, t := range tiles {
		if !t.IsSolid() {
			continue
		}
		for _, e := range t.Edges {
			counts[keyOf(e)]++
		}
	}

	// rebuild
	out := make([]tile.Tile, 0, len(tiles))
	for _, t := range tiles {
		if !t.IsSolid() {
			out = append(out, t)
			continue
		}
		kept := make([]tile.Edge, 0, len(t.Edges))
		for _, e := range t.Edges {
			if counts[keyOf(e)] < 2 {
				kept = append(kept, e)
			}
		}
		if len(kept) == 0 {
			continue
		}
		out = append(out, t.WithEdges(kept))
	}
	return out
}
