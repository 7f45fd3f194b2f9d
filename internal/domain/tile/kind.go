package tile

import "fmt"

// Kind is the collision category of a tile
type Kind interface {
	isKind()
	fmt.Stringer
}

// Block is a solid polygon tile
type Block struct{}

func (Block) isKind() {}

func (Block) String() string { return "block" }

// Slope is a solid polygon tile with an inclined face.
// ID selects the orientation from the shapes table (slope0..slope3).
type Slope struct {
	ID int
}

func (Slope) isKind() {}

func (s Slope) String() string { return fmt.Sprintf("slope%d", s.ID) }

// Platform is a one-way segment, passable from below
type Platform struct{}

func (Platform) isKind() {}

func (Platform) String() string { return "platform" }

// Terrain is decoration only and never collides
type Terrain struct{}

func (Terrain) isKind() {}

func (Terrain) String() string { return "terrain" }

// IsSolid reports whether k blocks from every side
func IsSolid(k Kind) bool {
	switch k.(type) {
	case Block, Slope:
		return true
	}
	return false
}

// IsPlatform reports whether k is one-way
func IsPlatform(k Kind) bool {
	_, ok := k.(Platform)
	return ok
}
