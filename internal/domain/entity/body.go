package entity

import "github.com/younwookim/golfball/internal/domain/geometry"

// Body is the kinematic state of the ball.
// Positions are world pixels (Y down), velocities pixels per second.
type Body struct {
	Pos  geometry.Vec2
	Vel  geometry.Vec2
	Roll geometry.Vec2 // velocity gained while rolling over a vertex

	Rotation    float64 // degrees
	RotationVel float64 // degrees per second

	OnGround bool
}

// Moving reports whether the body has any velocity
func (b *Body) Moving() bool {
	return !b.Vel.IsZero() || !b.Roll.IsZero()
}

// Stop clears all motion
func (b *Body) Stop() {
	b.Vel = geometry.Vec2{}
	b.Roll = geometry.Vec2{}
	b.RotationVel = 0
}

// Player is the golf ball
type Player struct {
	Body

	Radius       float64
	Jumps        int
	DefaultJumps int
	Spawn        geometry.Vec2

	// Offset is the screen position, written by the camera
	Offset geometry.Vec2

	Visible    bool
	BlinkTimer float64 // seconds left of the respawn blink
}

// NewPlayer creates a ball resting at spawn
func NewPlayer(spawn geometry.Vec2, radius float64, defaultJumps int) *Player {
	return &Player{
		Body:         Body{Pos: spawn},
		Radius:       radius,
		Jumps:        defaultJumps,
		DefaultJumps: defaultJumps,
		Spawn:        spawn,
		Offset:       spawn,
		Visible:      true,
	}
}

// Circle returns the collision circle at the current position
func (p *Player) Circle() geometry.Circle {
	return geometry.Circle{Center: p.Pos, Radius: p.Radius}
}

// State returns the motion state derived from the ground flag
func (p *Player) State() MotionState {
	if p.OnGround {
		return OnGround
	}
	return Airborne
}

// CanShoot returns true if a jump is left
func (p *Player) CanShoot() bool {
	return p.Jumps > 0
}

// IsBlinking returns true during the respawn blink
func (p *Player) IsBlinking() bool {
	return p.BlinkTimer > 0
}
