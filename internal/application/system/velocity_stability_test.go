package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/golfball/internal/domain/geometry"
)

// A ball dropped onto flat ground must come to rest and stay there.
func TestVelocityStability_RestingBall(t *testing.T) {
	cfg := createTestConfig()
	sys := NewPhysicsSystem(cfg, createTestIndex(0.7,
		"........",
		"........",
		"........",
		"BBBBBBBB",
	))
	player := createTestPlayer(100, 80)

	for i := 0; i < 60; i++ {
		sys.Update(player, frame)
	}
	require.True(t, player.OnGround)
	rest := player.Pos

	for i := 0; i < 600; i++ {
		sys.Update(player, frame)
		if !assert.True(t, player.OnGround, "frame %d", i) {
			break
		}
	}

	assert.Equal(t, rest.X, player.Pos.X)
	assert.InDelta(t, rest.Y, player.Pos.Y, 0.01)
	assert.Less(t, player.Pos.Y, 88.0)
	assert.Zero(t, player.Vel.X)
	assert.Zero(t, player.RotationVel)
}

// Shots from rest keep a bounded speed after landing again.
func TestVelocityStability_ShotLandsAgain(t *testing.T) {
	cfg := createTestConfig()
	sys := NewPhysicsSystem(cfg, createTestIndex(0.7,
		"B......B",
		"B......B",
		"B......B",
		"B......B",
		"BBBBBBBB",
	))
	player := createTestPlayer(128, 100)

	for i := 0; i < 60; i++ {
		sys.Update(player, frame)
	}
	require.True(t, player.OnGround)

	player.Offset = player.Pos
	require.True(t, sys.Shoot(player, player.Offset.Add(geometry.V(25, -36))))
	require.Equal(t, geometry.V(300, -360), player.Vel)

	landed := false
	for i := 0; i < 1200; i++ {
		sys.Update(player, frame)
		assert.Less(t, player.Vel.Len(), 2000.0, "frame %d", i)
		assert.Greater(t, player.Pos.X, 32.0)
		assert.Less(t, player.Pos.X, 224.0)
		if player.OnGround {
			landed = true
			break
		}
	}
	assert.True(t, landed, "ball settles after bouncing between the walls")
}
