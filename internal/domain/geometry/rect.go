package geometry

import "math"

// Rect is an axis aligned bounding box
type Rect struct {
	Min, Max Vec2
}

// RectFromSegment returns the box spanned by s
func RectFromSegment(s Segment) Rect {
	return Rect{
		Min: Vec2{math.Min(s.A.X, s.B.X), math.Min(s.A.Y, s.B.Y)},
		Max: Vec2{math.Max(s.A.X, s.B.X), math.Max(s.A.Y, s.B.Y)},
	}
}

// W returns the width
func (r Rect) W() float64 { return r.Max.X - r.Min.X }

// H returns the height
func (r Rect) H() float64 { return r.Max.Y - r.Min.Y }

// Include grows r to contain p
func (r Rect) Include(p Vec2) Rect {
	return Rect{
		Min: Vec2{math.Min(r.Min.X, p.X), math.Min(r.Min.Y, p.Y)},
		Max: Vec2{math.Max(r.Max.X, p.X), math.Max(r.Max.Y, p.Y)},
	}
}

// Expand grows r by margin on every side
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		Min: Vec2{r.Min.X - margin, r.Min.Y - margin},
		Max: Vec2{r.Max.X + margin, r.Max.Y + margin},
	}
}

// Overlaps reports whether two boxes touch or overlap
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X <= o.Max.X && r.Max.X >= o.Min.X &&
		r.Min.Y <= o.Max.Y && r.Max.Y >= o.Min.Y
}

// Union returns the smallest box containing both
func (r Rect) Union(o Rect) Rect {
	return r.Include(o.Min).Include(o.Max)
}
