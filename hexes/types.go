package hexes

// Hex identifies one of the nine marked hexagon types of the
// substitution system. The alphabet is fixed by the tiling's
// mathematics, so Hex is a closed enumeration, not an open hierarchy.
type Hex uint8

const (
	HexG Hex = iota
	HexD
	HexJ
	HexL
	HexX
	HexP
	HexS
	HexF
	HexY

	numHexes = 9
)

// letters maps Hex values to their conventional single-letter names.
const letters = "GDJLXPSFY"

// Letter returns the single-letter name of h.
func (h Hex) Letter() byte {
	return letters[h]
}

// String implements fmt.Stringer.
func (h Hex) String() string {
	return string(letters[h])
}

// FromLetter converts a letter to its Hex value, reporting whether the
// letter names a hexagon type at all.
func FromLetter(letter byte) (Hex, bool) {
	for i := 0; i < len(letters); i++ {
		if letters[i] == letter {
			return Hex(i), true
		}
	}
	return 0, false
}

// NumSubHexes reports how many sub-hexagons h expands into.
func NumSubHexes(h Hex) int {
	if h == HexG {
		return 7
	}
	return 8
}

// NumSpectres reports how many Spectre tiles h expands into at the
// final substitution step.
func NumSpectres(h Hex) int {
	if h == HexG {
		return 2
	}
	return 1
}

// MapEntry is one cell of a transition map. For a lookup keyed by
// (component index, edge):
//
//   - Internal means the neighbouring component lies inside the same
//     expansion; Hi is its index and Lo the edge it is entered through.
//   - External means the neighbour lies outside; Hi is the index of the
//     superhex edge crossed, and Lo the sub-position within that edge's
//     segment. Resolving it requires stepping the parent.
type MapEntry struct {
	Internal bool
	Hi, Lo   uint8
}

// MapEdge locates one superhex edge's run of boundary sub-edges inside
// the corresponding "in" map: Start is the first index, Len the count.
type MapEdge struct {
	Start, Len uint8
}

// Possibility is one weighted choice of enclosing parent: a component
// of type Type at position Index can be part of it, with relative
// probability Prob taken from the limiting distribution of the
// substitution.
type Possibility struct {
	Type  Hex
	Index uint8
	Prob  uint32
}

// HexData bundles every table for one hexagon type.
type HexData struct {
	// SubHexes lists the type of each sub-hexagon in the expansion.
	SubHexes []Hex

	// HexMap has one entry per (sub-hex, edge 0..5) pair; HexEdges and
	// HexIn describe re-entry across each of the six superhex edges.
	HexMap   []MapEntry
	HexEdges [6]MapEdge
	HexIn    []MapEntry

	// SpecMap, SpecEdges and SpecIn are the Spectre-level counterparts,
	// with 14 edges per Spectre.
	SpecMap   []MapEntry
	SpecEdges [6]MapEdge
	SpecIn    []MapEntry

	// Parents lists the legal (parent type, position) pairs this type
	// can occupy, weighted for random upward extension.
	Parents []Possibility
}

var hexData [numHexes]HexData

// ForHex returns the table bundle for h. The result is shared,
// immutable data; callers must not modify it.
func ForHex(h Hex) *HexData {
	return &hexData[h]
}

var spectreParents []Possibility

// SpectreParents returns the weighted (hex type, Spectre index) choices
// for the innermost level of a coordinate hierarchy.
func SpectreParents() []Possibility {
	return spectreParents
}
