package system

import (
	"github.com/younwookim/golfball/internal/domain/entity"
	"github.com/younwookim/golfball/internal/domain/geometry"
	"github.com/younwookim/golfball/internal/domain/obstacle"
	"github.com/younwookim/golfball/internal/domain/tile"
	"github.com/younwookim/golfball/internal/infrastructure/config"
)

const testTileSize = 32.0

func createTestConfig() *config.PhysicsConfig {
	return &config.PhysicsConfig{
		Physics: config.PhysicsSettings{
			Gravity:             800,
			Mass:                1,
			Substeps:            4,
			BisectionIterations: 10,
			QueryMargin:         2,
		},
		Player: config.PlayerConfig{
			Radius:          8,
			DefaultJumps:    2,
			ShootMultiplier: 60,
			SpinFactor:      1,
			RollFactor:      1,
			RespawnBlink:    1,
			BlinkInterval:   0.1,
		},
	}
}

func testShapes(bounciness float64) map[string]tile.Shape {
	c := geometry.V(0.5, 0.5)
	return map[string]tile.Shape{
		"block": {
			Name:       "block",
			Vertices:   []geometry.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
			Center:     c,
			Bounciness: bounciness,
		},
		"slope0": {
			Name:       "slope0",
			Vertices:   []geometry.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
			Center:     c,
			Bounciness: bounciness,
		},
		"platform": {
			Name:       "platform",
			Vertices:   []geometry.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}},
			Center:     c,
			Bounciness: bounciness,
		},
		"terrain": {Name: "terrain", Center: c},
	}
}

// createTestIndex builds a fully active index from rows of runes:
// B block, S slope0, P platform
func createTestIndex(bounciness float64, rows ...string) *obstacle.Index {
	shapes := testShapes(bounciness)
	var tiles []tile.Tile
	id := 0
	cols := 0
	for r, row := range rows {
		cols = max(cols, len(row))
		for c, ch := range row {
			cell := tile.Cell{Col: c, Row: r}
			switch ch {
			case 'B':
				tiles = append(tiles, tile.Spawn(id, cell, testTileSize, tile.Block{}, shapes["block"], tile.Flip{}))
			case 'S':
				tiles = append(tiles, tile.Spawn(id, cell, testTileSize, tile.Slope{}, shapes["slope0"], tile.Flip{}))
			case 'P':
				tiles = append(tiles, tile.Spawn(id, cell, testTileSize, tile.Platform{}, shapes["platform"], tile.Flip{}))
			default:
				continue
			}
			id++
		}
	}
	w, h := float64(cols)*testTileSize, float64(len(rows))*testTileSize
	idx := obstacle.NewIndex(tiles, w, h, testTileSize)
	idx.Activate(-testTileSize, h)
	return idx
}

func emptyRows(n int) []string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = "........"
	}
	return rows
}

func createTestPlayer(x, y float64) *entity.Player {
	return entity.NewPlayer(geometry.V(x, y), 8, 2)
}
