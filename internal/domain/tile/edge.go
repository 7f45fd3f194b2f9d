package tile

import (
	"math"
	"sort"

	"github.com/younwookim/golfball/internal/domain/geometry"
)

// verticalSlope stands in for dy/dx when an edge is vertical
const verticalSlope = 999999999

// Edge is one collidable side of a tile in world coordinates.
// Angle is the outward direction in degrees, Normal its unit vector.
type Edge struct {
	A, B   geometry.Vec2
	Angle  float64
	Normal geometry.Vec2
}

// NewEdge builds an edge and derives its normal from angle
func NewEdge(a, b geometry.Vec2, angle float64) Edge {
	angle = geometry.NormalizeDegrees(angle)
	return Edge{A: a, B: b, Angle: angle, Normal: geometry.NormalFromAngle(angle)}
}

// Segment returns the edge as a geometry segment
func (e Edge) Segment() geometry.Segment {
	return geometry.Seg(e.A, e.B)
}

// IsFlat reports whether the edge faces straight up
func (e Edge) IsFlat() bool {
	return e.Angle == 0
}

// SharesEndpoint returns the endpoint common to e and o, if any
func (e Edge) SharesEndpoint(o Edge) (geometry.Vec2, bool) {
	for _, p := range []geometry.Vec2{e.A, e.B} {
		if p == o.A || p == o.B {
			return p, true
		}
	}
	return geometry.Vec2{}, false
}

// Other returns the endpoint of e that is not p
func (e Edge) Other(p geometry.Vec2) geometry.Vec2 {
	if e.A == p {
		return e.B
	}
	return e.A
}

// vertexPair indexes the two endpoints of an edge in Shape.Vertices
type vertexPair struct{ i, j int }

// relEdge is an edge in shape space before placement
type relEdge struct {
	p0, p1 geometry.Vec2
	angle  float64
}

// outline finds the boundary edges of a convex shape.
//
// Each vertex is joined to the two other vertices that make the widest
// angle with the shape center (law of cosines). The outward angle of each
// edge comes from its slope and is turned by 180 degrees when a reference
// vertex lies on the normal side.
func outline(s Shape) []relEdge {
	verts := s.Vertices

	var pairs []vertexPair
	seen := make(map[vertexPair]bool)
	for i, vi := range verts {
		type cand struct {
			j     int
			angle float64
		}
		cands := make([]cand, 0, len(verts)-1)
		for j, vj := range verts {
			if i == j {
				continue
			}
			cands = append(cands, cand{j, vertexAngle(vi, vj, s.Center)})
		}
		sort.SliceStable(cands, func(a, b int) bool { return cands[a].angle > cands[b].angle })

		for k := 0; k < 2 && k < len(cands); k++ {
			p := vertexPair{i, cands[k].j}
			if seen[p] || seen[vertexPair{p.j, p.i}] {
				continue
			}
			seen[p] = true
			pairs = append(pairs, p)
		}
	}

	edges := make([]relEdge, 0, len(pairs))
	for n, p := range pairs {
		p0, p1 := verts[p.i], verts[p.j]
		slope := edgeSlope(p0, p1)
		angle := math.Atan(slope) * 180 / math.Pi

		ref := referencePoint(pairs, n, verts, s.Center)
		if ref.Y-p0.Y < slope*(ref.X-p0.X) {
			angle += 180
		}
		edges = append(edges, relEdge{p0: p0, p1: p1, angle: geometry.NormalizeDegrees(angle)})
	}
	return edges
}

// vertexAngle is the angle at i between the center and j, in radians
func vertexAngle(i, j, center geometry.Vec2) float64 {
	a := geometry.Distance(i, center)
	b := geometry.Distance(i, j)
	c := geometry.Distance(j, center)
	if a == 0 || b == 0 {
		return 0
	}
	return math.Acos(geometry.Clamp((a*a+b*b-c*c)/(2*a*b), -1, 1))
}

func edgeSlope(p0, p1 geometry.Vec2) float64 {
	dx := p0.X - p1.X
	if dx == 0 {
		return verticalSlope
	}
	return (p0.Y - p1.Y) / dx
}

// referencePoint picks the first vertex of the following edges that does
// not lie on edge n's line, falling back to the shape center.
func referencePoint(pairs []vertexPair, n int, verts []geometry.Vec2, center geometry.Vec2) geometry.Vec2 {
	p0, p1 := verts[pairs[n].i], verts[pairs[n].j]
	dir := p1.Sub(p0)
	for k := 1; k < len(pairs); k++ {
		next := pairs[(n+k)%len(pairs)]
		for _, idx := range []int{next.i, next.j} {
			if math.Abs(dir.Cross(verts[idx].Sub(p0))) > geometry.Epsilon {
				return verts[idx]
			}
		}
	}
	return center
}

// BuildEdges computes the world-space edges for a shape placed at origin
// with the given tile size. Platforms always get one upward edge and
// terrain none.
func BuildEdges(kind Kind, s Shape, origin geometry.Vec2, size float64) []Edge {
	place := func(p geometry.Vec2) geometry.Vec2 {
		return p.Scale(size).Add(origin)
	}

	switch kind.(type) {
	case Terrain:
		return nil
	case Platform:
		if len(s.Vertices) < 2 {
			return nil
		}
		return []Edge{NewEdge(place(s.Vertices[0]), place(s.Vertices[1]), 0)}
	}

	if len(s.Vertices) < 3 {
		return nil
	}
	rel := outline(s)
	edges := make([]Edge, 0, len(rel))
	for _, e := range rel {
		edges = append(edges, NewEdge(place(e.p0), place(e.p1), e.angle))
	}
	return edges
}
