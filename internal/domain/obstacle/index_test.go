package obstacle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/golfball/internal/domain/geometry"
	"github.com/younwookim/golfball/internal/domain/tile"
)

const ts = 32.0

var (
	block = tile.Shape{
		Name:       "block",
		Vertices:   []geometry.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
		Center:     geometry.V(0.5, 0.5),
		Bounciness: 0.7,
	}
	platform = tile.Shape{
		Name:     "platform",
		Vertices: []geometry.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}},
		Center:   geometry.V(0.5, 0.5),
	}
)

// grid spawns tiles from rows of runes: B block, P platform, T terrain
func grid(rows ...string) []tile.Tile {
	var tiles []tile.Tile
	id := 0
	for r, row := range rows {
		for c, ch := range row {
			cell := tile.Cell{Col: c, Row: r}
			switch ch {
			case 'B':
				tiles = append(tiles, tile.Spawn(id, cell, ts, tile.Block{}, block, tile.Flip{}))
			case 'P':
				tiles = append(tiles, tile.Spawn(id, cell, ts, tile.Platform{}, platform, tile.Flip{}))
			case 'T':
				tiles = append(tiles, tile.Spawn(id, cell, ts, tile.Terrain{}, block, tile.Flip{}))
			default:
				continue
			}
			id++
		}
	}
	return tiles
}

func edgeCount(tiles []tile.Tile) int {
	n := 0
	for _, t := range tiles {
		n += len(t.Edges)
	}
	return n
}

func TestDeduplicate(t *testing.T) {
	tests := []struct {
		name      string
		rows      []string
		wantTiles int
		wantEdges int
	}{
		{"single block", []string{"B"}, 1, 4},
		{"two side by side", []string{"BB"}, 2, 6},
		{"row of three", []string{"BBB"}, 3, 8},
		{"three by three drops the middle", []string{"BBB", "BBB", "BBB"}, 8, 12},
		{"platform under block is kept", []string{"B", "P"}, 2, 5},
		{"adjacent platforms never match", []string{"PP"}, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Deduplicate(grid(tt.rows...))
			assert.Len(t, out, tt.wantTiles)
			assert.Equal(t, tt.wantEdges, edgeCount(out))
		})
	}
}

func TestDeduplicate_DoesNotMutateInput(t *testing.T) {
	in := grid("BB")
	_ = Deduplicate(in)
	assert.Len(t, in[0].Edges, 4)
	assert.Len(t, in[1].Edges, 4)
}

func TestDeduplicate_SharedEdgeGoneFromBoth(t *testing.T) {
	out := Deduplicate(grid("BB"))
	require.Len(t, out, 2)

	seam := geometry.V(ts, 0)
	for _, tl := range out {
		for _, e := range tl.Edges {
			vertical := e.A.X == seam.X && e.B.X == seam.X
			assert.False(t, vertical, "tile %d kept the seam edge", tl.ID)
		}
	}
}

func newTestIndex(rows ...string) *Index {
	return NewIndex(grid(rows...), ts*float64(len(rows[0])), ts*float64(len(rows)), ts)
}

func TestIndex_SkipsTerrain(t *testing.T) {
	idx := newTestIndex("BT", "P.")
	assert.Equal(t, 2, idx.Len())
	for _, tl := range idx.Tiles() {
		assert.True(t, tl.Collides())
	}
}

func TestIndex_Activate(t *testing.T) {
	idx := newTestIndex(
		"B...",
		".B..",
		"..B.",
		"...B",
	)
	require.Equal(t, 4, idx.Len())
	assert.Zero(t, idx.ActiveLen(), "nothing is active before the first window")

	idx.Activate(ts, 2*ts)
	first := idx.Active()
	require.Len(t, first, 2)
	assert.Equal(t, 1, first[0].Cell.Row)
	assert.Equal(t, 2, first[1].Cell.Row)

	t.Run("idempotent", func(t *testing.T) {
		idx.Activate(ts, 2*ts)
		assert.Equal(t, first, idx.Active())
		assert.Len(t, idx.Query(geometry.Rect{Max: geometry.V(4*ts, 4*ts)}), 2)
	})

	t.Run("moving window swaps the set", func(t *testing.T) {
		idx.Activate(0, 0)
		active := idx.Active()
		require.Len(t, active, 1)
		assert.Equal(t, 0, active[0].Cell.Row)
	})

	t.Run("inclusive bounds", func(t *testing.T) {
		idx.Activate(0, 3*ts)
		assert.Equal(t, 4, idx.ActiveLen())
	})
}

func TestIndex_Query(t *testing.T) {
	idx := newTestIndex(
		"....",
		"BBBB",
		"PP..",
	)
	idx.Activate(0, 3*ts)

	t.Run("returns only nearby tiles in ID order", func(t *testing.T) {
		got := idx.Query(geometry.Rect{Min: geometry.V(40, 20), Max: geometry.V(50, 40)})
		require.Len(t, got, 1)
		assert.Equal(t, tile.Cell{Col: 1, Row: 1}, got[0].Cell)

		wide := idx.Query(geometry.Rect{Min: geometry.V(0, 20), Max: geometry.V(127, 70)})
		require.Len(t, wide, 6)
		for i := 1; i < len(wide); i++ {
			assert.Less(t, wide[i-1].ID, wide[i].ID)
		}
	})

	t.Run("inactive tiles are invisible", func(t *testing.T) {
		idx.Activate(2*ts, 2*ts)
		got := idx.Query(geometry.Rect{Min: geometry.V(0, 20), Max: geometry.V(127, 70)})
		require.Len(t, got, 2)
		for _, tl := range got {
			assert.True(t, tl.IsPlatform())
		}
	})

	t.Run("empty area", func(t *testing.T) {
		idx.Activate(0, 3*ts)
		assert.Empty(t, idx.Query(geometry.Rect{Min: geometry.V(0, 0), Max: geometry.V(10, 10)}))
	})
}

func TestIndex_At(t *testing.T) {
	idx := newTestIndex("B", "P")

	b, ok := idx.At(tile.Cell{Col: 0, Row: 0}, Solid)
	require.True(t, ok)
	assert.True(t, b.IsSolid())

	p, ok := idx.At(tile.Cell{Col: 0, Row: 1}, OneWay)
	require.True(t, ok)
	assert.True(t, p.IsPlatform())

	_, ok = idx.At(tile.Cell{Col: 0, Row: 1}, Solid)
	assert.False(t, ok)
	assert.Equal(t, "one-way", OneWay.String())
}
