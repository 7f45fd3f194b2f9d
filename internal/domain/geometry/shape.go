package geometry

import "math"

// Segment is a line segment between two points
type Segment struct {
	A, B Vec2
}

// Seg is shorthand for Segment{a, b}
func Seg(a, b Vec2) Segment {
	return Segment{A: a, B: b}
}

// Len returns the segment length
func (s Segment) Len() float64 { return Distance(s.A, s.B) }

// Midpoint returns the segment midpoint
func (s Segment) Midpoint() Vec2 { return s.A.Lerp(s.B, 0.5) }

// Circle is a circle by center and radius
type Circle struct {
	Center Vec2
	Radius float64
}

// Polygon is a convex polygon given by its vertices in boundary order
type Polygon []Vec2

// Edges returns the boundary segments of the polygon
func (p Polygon) Edges() []Segment {
	if len(p) < 2 {
		return nil
	}
	edges := make([]Segment, 0, len(p))
	for i := range p {
		edges = append(edges, Segment{p[i], p[(i+1)%len(p)]})
	}
	return edges
}

// Centroid returns the vertex average
func (p Polygon) Centroid() Vec2 {
	var c Vec2
	if len(p) == 0 {
		return c
	}
	for _, v := range p {
		c = c.Add(v)
	}
	return c.Scale(1 / float64(len(p)))
}

// Bounds returns the axis aligned bounding box
func (p Polygon) Bounds() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	r := Rect{Min: p[0], Max: p[0]}
	for _, v := range p[1:] {
		r = r.Include(v)
	}
	return r
}

// ClosestPointOnSegment returns the point of s nearest to p
func ClosestPointOnSegment(s Segment, p Vec2) Vec2 {
	d := s.B.Sub(s.A)
	l := d.LenSq()
	if l == 0 {
		return s.A
	}
	t := Clamp(p.Sub(s.A).Dot(d)/l, 0, 1)
	return s.A.Add(d.Scale(t))
}

// DistanceToSegment returns the distance from p to s
func DistanceToSegment(s Segment, p Vec2) float64 {
	return Distance(p, ClosestPointOnSegment(s, p))
}

// CircleIntersectsSegment reports whether c touches or overlaps s
func CircleIntersectsSegment(c Circle, s Segment) bool {
	return DistanceToSegment(s, c.Center) <= c.Radius+Epsilon
}

// PointInConvexPolygon reports whether p lies inside or on the boundary of poly.
// Vertex winding may be either direction.
func PointInConvexPolygon(p Vec2, poly Polygon) bool {
	if len(poly) < 3 {
		return false
	}
	hasNeg, hasPos := false, false
	for _, e := range poly.Edges() {
		d := e.B.Sub(e.A).Cross(p.Sub(e.A))
		if d < -Epsilon {
			hasNeg = true
		} else if d > Epsilon {
			hasPos = true
		}
		if hasNeg && hasPos {
			return false
		}
	}
	return true
}

// CircleIntersectsPolygon reports whether c touches or overlaps poly
func CircleIntersectsPolygon(c Circle, poly Polygon) bool {
	if PointInConvexPolygon(c.Center, poly) {
		return true
	}
	for _, e := range poly.Edges() {
		if CircleIntersectsSegment(c, e) {
			return true
		}
	}
	return false
}

// SegmentIntersection returns the parameter t along a where a crosses b.
// Parallel segments report no intersection.
func SegmentIntersection(a, b Segment) (t float64, ok bool) {
	r := a.B.Sub(a.A)
	s := b.B.Sub(b.A)
	denom := r.Cross(s)
	if math.Abs(denom) < Epsilon {
		return 0, false
	}
	qp := b.A.Sub(a.A)
	t = qp.Cross(s) / denom
	u := qp.Cross(r) / denom
	if t < -Epsilon || t > 1+Epsilon || u < -Epsilon || u > 1+Epsilon {
		return 0, false
	}
	return Clamp(t, 0, 1), true
}

// SegmentIntersectsSegment reports whether two segments cross
func SegmentIntersectsSegment(a, b Segment) bool {
	_, ok := SegmentIntersection(a, b)
	return ok
}

// SegmentIntersectsPolygon reports whether s crosses or lies inside poly
func SegmentIntersectsPolygon(s Segment, poly Polygon) bool {
	if PointInConvexPolygon(s.A, poly) || PointInConvexPolygon(s.B, poly) {
		return true
	}
	for _, e := range poly.Edges() {
		if SegmentIntersectsSegment(s, e) {
			return true
		}
	}
	return false
}

// FirstHitOnPolygon returns the smallest t in [0,1] at which s reaches the
// boundary of poly. A segment starting inside poly reports t = 0.
func FirstHitOnPolygon(s Segment, poly Polygon) (float64, bool) {
	if PointInConvexPolygon(s.A, poly) {
		return 0, true
	}
	best, found := 1.0, false
	for _, e := range poly.Edges() {
		if t, ok := SegmentIntersection(s, e); ok && t <= best {
			best, found = t, true
		}
	}
	return best, found
}

// FirstHitOnSegment returns the t in [0,1] at which s crosses e
func FirstHitOnSegment(s, e Segment) (float64, bool) {
	return SegmentIntersection(s, e)
}
