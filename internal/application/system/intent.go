package system

import (
	"github.com/younwookim/golfball/internal/domain/entity"
	"github.com/younwookim/golfball/internal/domain/geometry"
)

// Intent represents an action requested for the ball
type Intent interface {
	isIntent()
}

// ShootIntent launches the ball toward a screen point
type ShootIntent struct {
	Aim geometry.Vec2
}

func (ShootIntent) isIntent() {}

// ResetIntent returns the ball to its spawn point
type ResetIntent struct{}

func (ResetIntent) isIntent() {}

// Apply executes intents in order
func (s *PhysicsSystem) Apply(player *entity.Player, intents []Intent) {
	for _, in := range intents {
		switch it := in.(type) {
		case ShootIntent:
			s.Shoot(player, it.Aim)
		case ResetIntent:
			s.Reset(player)
		}
	}
}
