package tiling

import "errors"

// Sentinel errors for patch descriptor validation.
var (
	// ErrEmptyCoords indicates a descriptor with an empty coordinate path.
	ErrEmptyCoords = errors.New("tiling: empty coordinate path")
	// ErrBadHexLetter indicates a final hexagon letter outside GDJLXPSFY.
	ErrBadHexLetter = errors.New("tiling: invalid final hexagon letter")
	// ErrCoordRange indicates a coordinate outside the range its level's
	// hexagon type allows.
	ErrCoordRange = errors.New("tiling: coordinate out of range")
)

// NumEdges is the number of edges (and vertices) of the Spectre tile,
// counting its one double-length edge as two unit edges.
const NumEdges = 14
