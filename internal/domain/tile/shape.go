package tile

import "github.com/younwookim/golfball/internal/domain/geometry"

// Shape is a tile outline in relative coordinates ([0,1] on both axes).
// Polygons must be convex; a platform has exactly two vertices; terrain has none.
type Shape struct {
	Name       string
	Vertices   []geometry.Vec2
	Center     geometry.Vec2
	Bounciness float64
}

// Flip holds Tiled-style orientation flags
type Flip struct {
	Horizontal bool
	Vertical   bool
	Diagonal   bool
}

// IsZero reports whether no flag is set
func (f Flip) IsZero() bool {
	return !f.Horizontal && !f.Vertical && !f.Diagonal
}

// Flipped returns a copy of the shape with f applied.
// Diagonal (x/y swap) is applied first, then horizontal, then vertical.
func (s Shape) Flipped(f Flip) Shape {
	if f.IsZero() {
		return s
	}
	out := s
	out.Vertices = make([]geometry.Vec2, len(s.Vertices))
	for i, v := range s.Vertices {
		out.Vertices[i] = f.apply(v)
	}
	out.Center = f.apply(s.Center)
	return out
}

func (f Flip) apply(v geometry.Vec2) geometry.Vec2 {
	if f.Diagonal {
		v.X, v.Y = v.Y, v.X
	}
	if f.Horizontal {
		v.X = 1 - v.X
	}
	if f.Vertical {
		v.Y = 1 - v.Y
	}
	return v
}

// Tiled GID flag bits
const (
	gidFlipHorizontal uint32 = 0x80000000
	gidFlipVertical   uint32 = 0x40000000
	gidFlipDiagonal   uint32 = 0x20000000
	gidRotateHex120   uint32 = 0x10000000
	gidFlagMask              = gidFlipHorizontal | gidFlipVertical | gidFlipDiagonal | gidRotateHex120
)

// DecodeGID splits a raw layer cell into tile id and flip flags.
// Signed exports (negative values) wrap by 2^32. -1 marks an empty cell.
func DecodeGID(raw int64) (id int, flip Flip, ok bool) {
	if raw == -1 {
		return 0, Flip{}, false
	}
	if raw < 0 {
		raw += 1 << 32
	}
	if raw < 0 || raw > 0xFFFFFFFF {
		return 0, Flip{}, false
	}
	u := uint32(raw)
	flip = Flip{
		Horizontal: u&gidFlipHorizontal != 0,
		Vertical:   u&gidFlipVertical != 0,
		Diagonal:   u&gidFlipDiagonal != 0,
	}
	return int(u &^ gidFlagMask), flip, true
}
