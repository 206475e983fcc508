package tiling

import (
	"fmt"

	"github.com/katalvlaran/spectre/hexes"
)

// PatchParams identifies a patch of Spectre tiling compactly enough to
// serialize: the orientation of the central tile (0..11, anticlockwise
// 30° steps, 0 = head up), its coordinate path (the Spectre's index
// within its order-0 hexagon, then each level's position within the
// next), and the letter of the outermost hexagon type, one of
// GDJLXPSFY, from which every inner level's type follows.
type PatchParams struct {
	Orientation int
	Coords      []uint8
	FinalHex    byte
}

// Validate checks ps without generating anything, returning nil or the
// reason the descriptor is unusable. Coordinates are checked
// outermost-inward: each level's valid range depends on its parent's
// type, which is only known once the levels above it have resolved.
func (ps *PatchParams) Validate() error {
	if len(ps.Coords) == 0 {
		return fmt.Errorf("%w: expected at least one numeric coordinate", ErrEmptyCoords)
	}
	h, ok := hexes.FromLetter(ps.FinalHex)
	if !ok {
		return fmt.Errorf("%w: %q", ErrBadHexLetter, ps.FinalHex)
	}

	for i := len(ps.Coords) - 1; i >= 0; i-- {
		limit := hexes.NumSubHexes(h)
		if i == 0 {
			limit = hexes.NumSpectres(h)
		}
		if int(ps.Coords[i]) >= limit {
			return fmt.Errorf("%w: coordinate %d of a %v level must be below %d, got %d",
				ErrCoordRange, i, h, limit, ps.Coords[i])
		}
		if i > 0 {
			h = hexes.ForHex(h).SubHexes[ps.Coords[i]]
		}
	}

	return nil
}
