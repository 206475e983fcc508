package hexes_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectre/hexes"
)

var allHexes = []hexes.Hex{
	hexes.HexG, hexes.HexD, hexes.HexJ, hexes.HexL, hexes.HexX,
	hexes.HexP, hexes.HexS, hexes.HexF, hexes.HexY,
}

// TestLetterRoundTrip checks the alphabet conversions both ways and the
// rejection of unknown letters.
func TestLetterRoundTrip(t *testing.T) {
	for _, h := range allHexes {
		got, ok := hexes.FromLetter(h.Letter())
		require.True(t, ok, "letter %c", h.Letter())
		require.Equal(t, h, got)
	}
	for _, bad := range []byte{'A', 'Z', 'g', '?', 0} {
		_, ok := hexes.FromLetter(bad)
		require.False(t, ok, "letter %q must not resolve", bad)
	}
}

// TestCounts pins the expansion sizes: G is the one seven-sub-hex,
// two-Spectre type.
func TestCounts(t *testing.T) {
	for _, h := range allHexes {
		if h == hexes.HexG {
			require.Equal(t, 7, hexes.NumSubHexes(h))
			require.Equal(t, 2, hexes.NumSpectres(h))
		} else {
			require.Equal(t, 8, hexes.NumSubHexes(h))
			require.Equal(t, 1, hexes.NumSpectres(h))
		}
		require.Len(t, hexes.ForHex(h).SubHexes, hexes.NumSubHexes(h))
	}
}

// Edge classes occupy a fixed number of sub-edges at each substitution
// level; the derived segment tables must agree with those counts.
var (
	// eta, alpha, beta, gamma, delta, epsilon, zeta, theta
	hexEdgeLengths  = [8]int{5, 3, 2, 5, 5, 4, 3, 6}
	specEdgeLengths = [8]int{2, 3, 3, 2, 6, 2, 2, 1}
	// signed edge classes per type, same encoding as the source tables
	edgeClasses = map[hexes.Hex][6]int{
		hexes.HexG: {-2, -1, 1, -3, -4, 2},
		hexes.HexD: {-6, 3, 2, -5, 1, -3},
		hexes.HexJ: {-2, 3, 2, 7, 2, 0},
		hexes.HexL: {-2, 3, 2, -5, 1, -7},
		hexes.HexX: {-2, -1, 5, 7, 2, 0},
		hexes.HexP: {-2, -1, 5, -5, 1, -7},
		hexes.HexS: {4, 6, 2, -5, 1, -3},
		hexes.HexF: {-2, 3, 2, -5, 5, 0},
		hexes.HexY: {-2, -1, 5, -5, 5, 0},
	}
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// TestTableShapes verifies the dimensions of every derived table.
func TestTableShapes(t *testing.T) {
	for _, h := range allHexes {
		hd := hexes.ForHex(h)
		require.Len(t, hd.HexMap, 6*hexes.NumSubHexes(h), "%v HexMap", h)
		require.Len(t, hd.SpecMap, 14*hexes.NumSpectres(h), "%v SpecMap", h)

		hexTotal, specTotal := 0, 0
		for i := 0; i < 6; i++ {
			class := abs(edgeClasses[h][i])
			require.Equal(t, hexEdgeLengths[class], int(hd.HexEdges[i].Len),
				"%v hex edge %d segment length", h, i)
			require.Equal(t, specEdgeLengths[class], int(hd.SpecEdges[i].Len),
				"%v spec edge %d segment length", h, i)
			require.Equal(t, hexTotal, int(hd.HexEdges[i].Start), "%v hex edge %d start", h, i)
			require.Equal(t, specTotal, int(hd.SpecEdges[i].Start), "%v spec edge %d start", h, i)
			hexTotal += int(hd.HexEdges[i].Len)
			specTotal += int(hd.SpecEdges[i].Len)
		}
		require.Len(t, hd.HexIn, hexTotal, "%v HexIn", h)
		require.Len(t, hd.SpecIn, specTotal, "%v SpecIn", h)
	}
}

// TestInternalReciprocity: if edge e of component a maps internally to
// edge f of component b, then edge f of b must map back to (a, e).
func TestInternalReciprocity(t *testing.T) {
	for _, h := range allHexes {
		hd := hexes.ForHex(h)
		for i := 0; i < hexes.NumSubHexes(h); i++ {
			for j := 0; j < 6; j++ {
				m := hd.HexMap[6*i+j]
				if !m.Internal {
					continue
				}
				back := hd.HexMap[6*int(m.Hi)+int(m.Lo)]
				require.True(t, back.Internal, "%v hex (%d,%d) reverse", h, i, j)
				require.Equal(t, uint8(i), back.Hi)
				require.Equal(t, uint8(j), back.Lo)
			}
		}
		for i := 0; i < hexes.NumSpectres(h); i++ {
			for j := 0; j < 14; j++ {
				m := hd.SpecMap[14*i+j]
				if !m.Internal {
					continue
				}
				back := hd.SpecMap[14*int(m.Hi)+int(m.Lo)]
				require.True(t, back.Internal, "%v spec (%d,%d) reverse", h, i, j)
				require.Equal(t, uint8(i), back.Hi)
				require.Equal(t, uint8(j), back.Lo)
			}
		}
	}
}

// TestExternalEntriesInRange checks that every external map entry
// points at a real superhex edge segment position.
func TestExternalEntriesInRange(t *testing.T) {
	for _, h := range allHexes {
		hd := hexes.ForHex(h)
		for i, m := range hd.HexMap {
			if m.Internal {
				continue
			}
			require.Less(t, int(m.Hi), 6, "%v HexMap[%d] superhex edge", h, i)
			require.Less(t, int(m.Lo), int(hd.HexEdges[m.Hi].Len), "%v HexMap[%d] segment index", h, i)
		}
		for i, m := range hd.SpecMap {
			if m.Internal {
				continue
			}
			require.Less(t, int(m.Hi), 6, "%v SpecMap[%d] superhex edge", h, i)
			require.Less(t, int(m.Lo), int(hd.SpecEdges[m.Hi].Len), "%v SpecMap[%d] segment index", h, i)
		}
	}
}

// TestParents checks the weighted legal-parent lists against the
// sub-hex tables they are derived from.
func TestParents(t *testing.T) {
	for _, h := range allHexes {
		parents := hexes.ForHex(h).Parents
		require.NotEmpty(t, parents, "%v has no legal parents", h)
		for _, p := range parents {
			require.Positive(t, p.Prob)
			require.Equal(t, h, hexes.ForHex(p.Type).SubHexes[p.Index],
				"%v cannot sit at index %d of %v", h, p.Index, p.Type)
		}
	}

	spec := hexes.SpectreParents()
	require.Len(t, spec, 10, "nine single-Spectre types plus G's second")
	for _, p := range spec {
		require.Positive(t, p.Prob)
		require.Less(t, int(p.Index), hexes.NumSpectres(p.Type))
	}
}
