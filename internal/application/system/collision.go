package system

import (
	"github.com/younwookim/golfball/internal/domain/geometry"
	"github.com/younwookim/golfball/internal/domain/tile"
)

// hitEdge is a tile edge touched during one sub-step
type hitEdge struct {
	tileIdx int // into contactSet.tiles
	edge    tile.Edge
	score   float64
}

// contactSet is everything the ball touched during one sub-step
type contactSet struct {
	tiles    []tile.Tile
	edges    []hitEdge
	dominant *hitEdge
}

func (c *contactSet) empty() bool {
	return len(c.tiles) == 0
}

// bounciness returns the bounciness of the tile owning the dominant edge
func (c *contactSet) bounciness() float64 {
	if c.dominant == nil {
		return 0
	}
	return c.tiles[c.dominant.tileIdx].Bounciness
}

// edgeScore rates how squarely the motion meets an edge normal.
// 1 is head-on, 0 is moving along the normal.
func edgeScore(motion, normal geometry.Vec2) float64 {
	a := geometry.AngleTo(motion, normal)
	return 1 - absFloat(1-a/180)
}

// detect collects the tiles and edges hit by the ball moving from prev to
// next. One-way platforms only count when falling onto them from above.
func (s *PhysicsSystem) detect(radius float64, prev, next, motion geometry.Vec2, candidates []tile.Tile) *contactSet {
	c := &contactSet{}
	circle := geometry.Circle{Center: next, Radius: radius}
	trail := geometry.Seg(prev, next)

	touches := func(e tile.Edge) bool {
		seg := e.Segment()
		return geometry.CircleIntersectsSegment(circle, seg) || geometry.SegmentIntersectsSegment(trail, seg)
	}

	for i := range candidates {
		t := candidates[i]
		switch {
		case t.IsSolid():
			if !geometry.CircleIntersectsPolygon(circle, t.Hitbox) && !geometry.SegmentIntersectsPolygon(trail, t.Hitbox) {
				continue
			}
		case t.IsPlatform():
			if motion.Y <= 0 || len(t.Edges) == 0 || !touches(t.Edges[0]) {
				continue
			}
			if prev.Y+radius > t.SurfaceY()+geometry.Epsilon {
				continue
			}
		default:
			continue
		}

		c.tiles = append(c.tiles, t)
		for _, e := range t.Edges {
			if touches(e) {
				c.edges = append(c.edges, hitEdge{tileIdx: len(c.tiles) - 1, edge: e, score: edgeScore(motion, e.Normal)})
			}
		}
	}

	for i := range c.edges {
		if c.edges[i].score <= 0 {
			continue
		}
		if c.dominant == nil || c.edges[i].score > c.dominant.score {
			c.dominant = &c.edges[i]
		}
	}
	return c
}

// roundedVertex finds a convex corner of the dominant edge that the ball
// is rolling over: a second scoring edge with a different angle shares an
// endpoint with it, and the tentative center is within one radius.
func (c *contactSet) roundedVertex(center geometry.Vec2, radius float64) (geometry.Vec2, bool) {
	dom := c.dominant
	if dom == nil {
		return geometry.Vec2{}, false
	}
	for i := range c.edges {
		other := &c.edges[i]
		if other == dom || other.score <= 0 || other.edge.Angle == dom.edge.Angle {
			continue
		}
		v, ok := dom.edge.SharesEndpoint(other.edge)
		if !ok {
			continue
		}
		if other.edge.Other(v).Sub(v).Dot(dom.edge.Normal) >= 0 {
			continue // concave
		}
		if geometry.Distance(center, v) < radius {
			return v, true
		}
	}
	return geometry.Vec2{}, false
}

// collides reports whether a ball centered at p overlaps the contact set
func (c *contactSet) collides(p geometry.Vec2, radius float64) bool {
	circle := geometry.Circle{Center: p, Radius: radius}
	for i := range c.tiles {
		t := &c.tiles[i]
		if t.IsSolid() {
			if geometry.CircleIntersectsPolygon(circle, t.Hitbox) {
				return true
			}
			continue
		}
		for _, e := range t.Edges {
			if geometry.CircleIntersectsSegment(circle, e.Segment()) {
				return true
			}
		}
	}
	return false
}

// firstEntry returns the earliest point where the center path from prev to
// next enters a contact tile, capping the bisection against tunnelling.
func (c *contactSet) firstEntry(prev, next geometry.Vec2) geometry.Vec2 {
	trail := geometry.Seg(prev, next)
	best, found := 1.0, false
	for i := range c.tiles {
		t := &c.tiles[i]
		var tt float64
		var ok bool
		if t.IsSolid() {
			tt, ok = geometry.FirstHitOnPolygon(trail, t.Hitbox)
		} else if len(t.Edges) > 0 {
			tt, ok = geometry.FirstHitOnSegment(trail, t.Edges[0].Segment())
		}
		if ok && tt < best {
			best, found = tt, true
		}
	}
	if !found {
		return next
	}
	return prev.Lerp(next, best)
}
