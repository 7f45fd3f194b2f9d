package system

import (
	"math"

	"github.com/younwookim/golfball/internal/domain/entity"
	"github.com/younwookim/golfball/internal/domain/geometry"
)

// Shoot launches the ball toward aim (screen coordinates).
// Speed grows with the square root of the distance from the ball on each
// axis. Returns false when no jumps are left.
func (s *PhysicsSystem) Shoot(player *entity.Player, aim geometry.Vec2) bool {
	if !player.CanShoot() {
		return false
	}
	player.Jumps--
	player.OnGround = false
	player.Roll = geometry.Vec2{}

	k := s.config.Player.ShootMultiplier
	d := aim.Sub(player.Offset)
	player.Vel = geometry.V(
		geometry.Sign(d.X)*math.Sqrt(math.Abs(d.X))*k,
		geometry.Sign(d.Y)*math.Sqrt(math.Abs(d.Y))*k,
	)
	return true
}

// Reset puts the ball back on its spawn point and starts the respawn blink
func (s *PhysicsSystem) Reset(player *entity.Player) {
	player.Pos = player.Spawn
	player.Stop()
	player.Rotation = 0
	player.OnGround = false
	player.Jumps = player.DefaultJumps
	player.BlinkTimer = s.config.Player.RespawnBlink
	player.Visible = player.BlinkTimer <= 0
}

// KillIfOffscreen resets the ball when its screen position is both below
// the viewport and outside it horizontally. Returns true if it was reset.
func (s *PhysicsSystem) KillIfOffscreen(player *entity.Player, screenW, screenH float64) bool {
	o := player.Offset
	if o.Y > screenH && (o.X < 0 || o.X > screenW) {
		s.Reset(player)
		return true
	}
	return false
}
