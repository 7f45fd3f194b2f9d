package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/golfball/internal/domain/geometry"
)

func TestShoot(t *testing.T) {
	tests := []struct {
		name    string
		offset  geometry.Vec2
		aim     geometry.Vec2
		wantVel geometry.Vec2
	}{
		{"up and right", geometry.V(100, 100), geometry.V(200, 0), geometry.V(600, -600)},
		{"left only", geometry.V(100, 100), geometry.V(96, 100), geometry.V(-120, 0)},
		{"on the ball", geometry.V(50, 50), geometry.V(50, 50), geometry.Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := NewPhysicsSystem(createTestConfig(), createTestIndex(0.7, emptyRows(4)...))
			player := createTestPlayer(0, 0)
			player.Offset = tt.offset
			player.OnGround = true
			player.Roll = geometry.V(5, 5)

			ok := sys.Shoot(player, tt.aim)

			assert.True(t, ok)
			assert.InDelta(t, tt.wantVel.X, player.Vel.X, 1e-9)
			assert.InDelta(t, tt.wantVel.Y, player.Vel.Y, 1e-9)
			assert.Equal(t, 1, player.Jumps)
			assert.False(t, player.OnGround)
			assert.Equal(t, geometry.Vec2{}, player.Roll)
		})
	}
}

func TestShoot_NoJumpsLeft(t *testing.T) {
	sys := NewPhysicsSystem(createTestConfig(), createTestIndex(0.7, emptyRows(4)...))
	player := createTestPlayer(0, 0)

	assert.True(t, sys.Shoot(player, geometry.V(10, 10)))
	assert.True(t, sys.Shoot(player, geometry.V(10, 10)))

	vel := player.Vel
	assert.False(t, sys.Shoot(player, geometry.V(-100, -100)))
	assert.Equal(t, vel, player.Vel, "a refused shot leaves the ball alone")
	assert.Zero(t, player.Jumps)
}

func TestReset(t *testing.T) {
	sys := NewPhysicsSystem(createTestConfig(), createTestIndex(0.7, emptyRows(4)...))
	player := createTestPlayer(40, 40)
	player.Pos = geometry.V(300, 900)
	player.Vel = geometry.V(10, 10)
	player.Roll = geometry.V(1, 1)
	player.Rotation = 45
	player.RotationVel = 30
	player.Jumps = 0

	sys.Reset(player)

	assert.Equal(t, geometry.V(40, 40), player.Pos)
	assert.False(t, player.Moving())
	assert.Zero(t, player.Rotation)
	assert.Zero(t, player.RotationVel)
	assert.Equal(t, 2, player.Jumps)
	assert.True(t, player.IsBlinking())
	assert.False(t, player.Visible)
}

func TestBlink(t *testing.T) {
	sys := NewPhysicsSystem(createTestConfig(), createTestIndex(0.7, emptyRows(4)...))
	player := createTestPlayer(40, 40)
	sys.Reset(player)

	sys.updateBlink(player, 0.05)
	assert.InDelta(t, 0.95, player.BlinkTimer, 1e-9)
	assert.False(t, player.Visible)

	sys.updateBlink(player, 0.1)
	assert.True(t, player.Visible, "alternates every interval")

	sys.updateBlink(player, 2)
	assert.False(t, player.IsBlinking())
	assert.True(t, player.Visible)
}

func TestKillIfOffscreen(t *testing.T) {
	tests := []struct {
		name   string
		offset geometry.Vec2
		want   bool
	}{
		{"on screen", geometry.V(160, 120), false},
		{"below only", geometry.V(160, 300), false},
		{"beside only", geometry.V(-10, 120), false},
		{"below and left", geometry.V(-10, 300), true},
		{"below and right", geometry.V(400, 300), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := NewPhysicsSystem(createTestConfig(), createTestIndex(0.7, emptyRows(4)...))
			player := createTestPlayer(40, 40)
			player.Pos = geometry.V(999, 999)
			player.Offset = tt.offset

			got := sys.KillIfOffscreen(player, 320, 240)

			assert.Equal(t, tt.want, got)
			if tt.want {
				assert.Equal(t, player.Spawn, player.Pos)
			} else {
				assert.Equal(t, geometry.V(999, 999), player.Pos)
			}
		})
	}
}

func TestApply(t *testing.T) {
	sys := NewPhysicsSystem(createTestConfig(), createTestIndex(0.7, emptyRows(4)...))
	player := createTestPlayer(40, 40)
	player.Offset = geometry.V(100, 100)

	sys.Apply(player, []Intent{ShootIntent{Aim: geometry.V(104, 100)}})
	assert.InDelta(t, 120.0, player.Vel.X, 1e-9)
	assert.Equal(t, 1, player.Jumps)

	sys.Apply(player, []Intent{ResetIntent{}, ShootIntent{Aim: geometry.V(100, 91)}})
	assert.Equal(t, player.Spawn, player.Pos)
	assert.Equal(t, 1, player.Jumps, "reset restores jumps before the shot uses one")
	assert.InDelta(t, -180.0, player.Vel.Y, 1e-9)
	assert.Zero(t, player.Vel.X)
}
