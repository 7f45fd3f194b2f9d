package system

import (
	"math"

	"github.com/younwookim/golfball/internal/domain/entity"
	"github.com/younwookim/golfball/internal/domain/geometry"
	"github.com/younwookim/golfball/internal/domain/obstacle"
	"github.com/younwookim/golfball/internal/infrastructure/config"
)

// down is the gravity direction in screen space
var down = geometry.V(0, 1)

// PhysicsSystem moves the ball and resolves its contacts with the level
type PhysicsSystem struct {
	config *config.PhysicsConfig
	index  *obstacle.Index
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig, index *obstacle.Index) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		index:  index,
	}
}

// Update advances the ball by dt, split into the configured sub-steps
func (s *PhysicsSystem) Update(player *entity.Player, dt float64) {
	steps := s.config.Physics.Substeps
	if steps <= 0 {
		steps = 1
	}
	h := dt / float64(steps)
	for i := 0; i < steps; i++ {
		s.step(player, h)
	}

	s.updateBlink(player, dt)
}

// step runs one sub-step: integrate, detect, resolve, respond
func (s *PhysicsSystem) step(player *entity.Player, dt float64) {
	player.Rotation = geometry.NormalizeDegrees(player.Rotation + player.RotationVel*dt)

	// Apply gravity
	player.Vel.Y += s.gravity() * dt

	prev := player.Pos
	motion := player.Vel.Add(player.Roll)
	next := prev.Add(motion.Scale(dt))

	area := geometry.RectFromSegment(geometry.Seg(prev, next)).Expand(player.Radius + s.config.Physics.QueryMargin)
	contacts := s.detect(player.Radius, prev, next, motion, s.index.Query(area))

	if contacts.empty() {
		player.Pos = next
		player.Vel = motion
		player.Roll = geometry.Vec2{}
		player.OnGround = false
		return
	}

	// Vertex rounding looks at the unresolved position
	vertex, rounded := contacts.roundedVertex(next, player.Radius)

	swept := s.resolve(player, contacts, prev, next)

	if contacts.dominant == nil {
		return
	}

	dom := contacts.dominant.edge
	switch {
	case dom.IsFlat() && !rounded:
		s.stick(player)
	case rounded:
		s.roll(player, vertex, dt)
	default:
		s.bounce(player, dom.Normal, contacts.bounciness())
		if swept {
			s.slide(player, next, dom.Normal)
		}
	}
}

// resolve moves the ball to the last free point before contact. It
// reports false when the ball already overlapped and was pushed out.
func (s *PhysicsSystem) resolve(player *entity.Player, contacts *contactSet, prev, next geometry.Vec2) bool {
	r := player.Radius

	if contacts.collides(prev, r) {
		// Already overlapping: push out along the dominant normal
		player.Pos = s.pushOut(contacts, prev, r)
		return false
	}

	player.Pos = s.sweep(contacts, prev, contacts.firstEntry(prev, next), r)
	return true
}

// sweep bisects from a free point toward upper and returns the last free point
func (s *PhysicsSystem) sweep(contacts *contactSet, from, upper geometry.Vec2, r float64) geometry.Vec2 {
	free, _ := geometry.Bisect(from, upper, s.config.Physics.BisectionIterations, func(p geometry.Vec2) bool {
		return contacts.collides(p, r)
	})
	return free
}

// slide spends the displacement the contact cut off along the surface.
// The part pointing into the surface is dropped; anything else in the way
// stops the ball at its last free point.
func (s *PhysicsSystem) slide(player *entity.Player, next, n geometry.Vec2) {
	from := player.Pos
	rest := next.Sub(from)
	if into := rest.Dot(n); into < 0 {
		rest = rest.Sub(n.Scale(into))
	}
	if rest.LenSq() <= geometry.Epsilon {
		return
	}

	r := player.Radius
	to := from.Add(rest)
	area := geometry.RectFromSegment(geometry.Seg(from, to)).Expand(r + s.config.Physics.QueryMargin)
	blockers := s.detect(r, from, to, rest, s.index.Query(area))
	switch {
	case blockers.empty():
		player.Pos = to
	case !blockers.collides(from, r):
		player.Pos = s.sweep(blockers, from, blockers.firstEntry(from, to), r)
	}
}

// pushOut separates an overlapping ball from the dominant edge
func (s *PhysicsSystem) pushOut(contacts *contactSet, p geometry.Vec2, r float64) geometry.Vec2 {
	if contacts.dominant == nil {
		return p
	}
	e := contacts.dominant.edge
	depth := r - geometry.DistanceToSegment(e.Segment(), p)
	if depth <= 0 {
		return p
	}
	return p.Add(e.Normal.Scale(depth + geometry.Epsilon))
}

// stick lands the ball on a flat surface
func (s *PhysicsSystem) stick(player *entity.Player) {
	player.Stop()
	player.OnGround = true
	player.Jumps = player.DefaultJumps
}

// roll carries the ball around a convex vertex. Motion into the vertex is
// removed and gravity along the tangent feeds the roll velocity.
func (s *PhysicsSystem) roll(player *entity.Player, vertex geometry.Vec2, dt float64) {
	radial := player.Pos.Sub(vertex).Normalize()
	if radial.IsZero() {
		radial = geometry.V(0, -1)
	}

	if into := player.Vel.Dot(radial); into < 0 {
		player.Vel = player.Vel.Sub(radial.Scale(into))
	}

	tangent := radial.Perp()
	pull := s.gravity() * tangent.Dot(down)
	player.Roll = player.Roll.Add(tangent.Scale(pull * dt * s.config.Player.RollFactor))
	player.OnGround = false

	player.RotationVel = s.spinRate(player.Vel.Add(player.Roll), tangent, player.Radius)
}

// bounce reflects the ball off a surface and applies its bounciness
func (s *PhysicsSystem) bounce(player *entity.Player, n geometry.Vec2, bounciness float64) {
	v := player.Vel.Add(player.Roll)
	player.Roll = geometry.Vec2{}

	if v.Dot(n) < 0 {
		v = geometry.Reflect(v, n)
	}
	player.Vel = geometry.Attenuate(v, n, bounciness)
	player.OnGround = false

	player.RotationVel = s.spinRate(player.Vel, n.Perp(), player.Radius)
}

// spinRate converts surface speed along tangent into degrees per second
func (s *PhysicsSystem) spinRate(v, tangent geometry.Vec2, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	return v.Dot(tangent) / radius * 180 / math.Pi * s.config.Player.SpinFactor
}

func (s *PhysicsSystem) gravity() float64 {
	return s.config.Physics.Gravity * s.config.Physics.Mass
}

// updateBlink runs the respawn blink timer
func (s *PhysicsSystem) updateBlink(player *entity.Player, dt float64) {
	if player.BlinkTimer <= 0 {
		return
	}
	player.BlinkTimer -= dt
	if player.BlinkTimer <= 0 {
		player.BlinkTimer = 0
		player.Visible = true
		return
	}
	interval := s.config.Player.BlinkInterval
	if interval <= 0 {
		player.Visible = true
		return
	}
	player.Visible = int(player.BlinkTimer/interval)%2 == 0
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
