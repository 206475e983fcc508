package tiling_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/spectre/tiling"
)

// TestValidate verifies descriptor validation: the empty-path and
// invalid-letter rejections, and the outermost-inward range check that
// resolves each level's type from its parent before checking the next.
func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		ps   tiling.PatchParams
		err  error
	}{
		{"EmptyPath", tiling.PatchParams{FinalHex: 'G'}, tiling.ErrEmptyCoords},
		{"InvalidLetter", tiling.PatchParams{Coords: []uint8{0}, FinalHex: 'Q'}, tiling.ErrBadHexLetter},
		{"LowercaseLetter", tiling.PatchParams{Coords: []uint8{0}, FinalHex: 'g'}, tiling.ErrBadHexLetter},
		// G expands to two Spectres, so index 2 is out of range at level 0.
		{"SpectreIndexRange", tiling.PatchParams{Coords: []uint8{2}, FinalHex: 'G'}, tiling.ErrCoordRange},
		// G has only seven sub-hexes, so 7 is out of range one level up.
		{"SubHexIndexRange", tiling.PatchParams{Coords: []uint8{0, 7}, FinalHex: 'G'}, tiling.ErrCoordRange},
		// Index 1 is a valid Spectre only inside a G hexagon; sub-hex 0
		// of Y is an F hexagon, which has a single Spectre.
		{"InnerRangeDependsOnOuter", tiling.PatchParams{Coords: []uint8{1, 0}, FinalHex: 'Y'}, tiling.ErrCoordRange},
		{"ValidSingleLevel", tiling.PatchParams{Coords: []uint8{1}, FinalHex: 'G'}, nil},
		{"ValidDeepPath", tiling.PatchParams{Coords: []uint8{0, 3, 5, 2}, FinalHex: 'Y'}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.ps.Validate()
			if tc.err == nil {
				if err != nil {
					t.Fatalf("Validate() = %v; want nil", err)
				}
				return
			}
			if !errors.Is(err, tc.err) {
				t.Fatalf("Validate() = %v; want %v", err, tc.err)
			}
		})
	}
}
