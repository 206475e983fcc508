package tiling_test

import (
	"fmt"

	"github.com/katalvlaran/spectre/tiling"
)

// A malformed descriptor reports exactly which level is out of range.
func ExamplePatchParams_Validate() {
	ps := &tiling.PatchParams{Coords: []uint8{9}, FinalHex: 'Y'}
	fmt.Println(ps.Validate())
	// Output: tiling: coordinate out of range: coordinate 0 of a Y level must be below 1, got 9
}
