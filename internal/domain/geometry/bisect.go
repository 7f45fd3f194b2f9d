package geometry

// Bisect searches the segment from -> to for the last point where collides
// is false. from is assumed free and to colliding. Each iteration halves the
// search interval, so the returned residual (the final interval length) is
// |to - from| / 2^iterations. The free end of the final interval is returned.
func Bisect(from, to Vec2, iterations int, collides func(Vec2) bool) (Vec2, float64) {
	lo, hi := from, to
	for i := 0; i < iterations; i++ {
		mid := lo.Lerp(hi, 0.5)
		if collides(mid) {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo, Distance(lo, hi)
}
