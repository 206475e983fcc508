package tiling

import "github.com/katalvlaran/spectre/hexes"

// unresolved marks a hierarchy level whose position within its parent
// has not been decided yet. The outermost level of every path carries
// it: "we haven't chosen what this level is part of".
const unresolved = -1

// HexCoord is one level of a coordinate hierarchy: a hexagon of type
// Type sitting at position Index inside the next level's expansion.
type HexCoord struct {
	Index int
	Type  hexes.Hex
}

// Coords locates a single Spectre inside the substitution structure:
// the index of the Spectre within its order-0 hexagon, then one
// HexCoord per hierarchy level, innermost first. The invariant
// throughout is that level i's type equals the sub-hexagon type implied
// by level i+1's expansion at level i's index.
//
// Coords also carries the hexagon 3-colouring state, maintained as a
// side effect of depth-0 steps; variant puzzles consume the colour.
type Coords struct {
	index int
	c     []HexCoord

	hexColour       uint8
	prevHexColour   uint8
	incomingHexEdge uint8
}

// Clone returns an independent snapshot of sc. Snapshots stay valid for
// the life of the program: hierarchy growth only ever appends.
func (sc *Coords) Clone() *Coords {
	out := *sc
	out.c = make([]HexCoord, len(sc.c))
	copy(out.c, sc.c)
	return &out
}

// Len reports the number of hierarchy levels currently resolved or
// pending in the path.
func (sc *Coords) Len() int {
	return len(sc.c)
}

// Level returns the i-th hierarchy level, innermost first.
func (sc *Coords) Level(i int) HexCoord {
	return sc.c[i]
}

// SpectreIndex returns the index of the Spectre within its order-0
// hexagon (0, or 1 inside a G hexagon).
func (sc *Coords) SpectreIndex() int {
	return sc.index
}

// Colour returns the tile's hexagon colour, 0..2. Tiles of adjacent
// hexagons never share a colour, which is what makes the value usable
// as a 3-colouring for variant puzzles.
func (sc *Coords) Colour() int {
	return int(sc.hexColour)
}
