package hexes

import "github.com/katalvlaran/spectre/plane"

// Handwritten substitution data. Everything else in this package is
// derived from these tables at init.
//
// The expansion of each hexagon lays out its sub-hexagons as
//
//	 0 1
//	2 3
//	4 5 6
//	   7
//
// with a pair of vertical edges on every hexagon. G's expansion omits
// sub-hex 7.

// subHexes lists the type of each sub-hexagon per parent type.
var subHexes = [numHexes][]Hex{
	HexG: {HexF, HexX, HexG, HexS, HexP, HexD, HexJ},
	HexD: {HexF, HexP, HexG, HexS, HexX, HexD, HexF, HexX},
	HexJ: {HexF, HexP, HexG, HexS, HexY, HexD, HexF, HexP},
	HexL: {HexF, HexP, HexG, HexS, HexY, HexD, HexF, HexX},
	HexX: {HexF, HexY, HexG, HexS, HexY, HexD, HexF, HexP},
	HexP: {HexF, HexY, HexG, HexS, HexY, HexD, HexF, HexX},
	HexS: {HexL, HexP, HexG, HexS, HexX, HexD, HexF, HexX},
	HexF: {HexF, HexP, HexG, HexS, HexY, HexD, HexF, HexY},
	HexY: {HexF, HexY, HexG, HexS, HexY, HexD, HexF, HexY},
}

// subHexOrientations gives each sub-hexagon's orientation as a number
// of 60° steps anticlockwise from upright. The pattern happens to be
// the same for every parent type (G simply stops after seven).
var subHexOrientations = [8]int{2, 1, 0, 1, 4, 5, 0, 5}

// hexCentres places the sub-hexagon centres, 6 units apart so that
// edge midpoints and vertices stay integral.
var hexCentres = [8]plane.Point{
	plane.NewPoint(0, 0, 0, 0), plane.NewPoint(6, 0, 0, 0),
	plane.NewPoint(0, 0, -6, 0), plane.NewPoint(6, 0, -6, 0),
	plane.NewPoint(0, 0, -12, 0), plane.NewPoint(6, 0, -12, 0), plane.NewPoint(12, 0, -12, 0),
	plane.NewPoint(12, 0, -18, 0),
}

// The paper defines eight classes of hexagon edge, like jigsaw tabs.
// Edges normally meet as a +/− pair of the same class; eta is symmetric
// and matches itself, which is why it sits at 0 so negation fixes it.
const (
	edgeEta = iota
	edgeAlpha
	edgeBeta
	edgeGamma
	edgeDelta
	edgeEpsilon
	edgeZeta
	edgeTheta
)

// hexEdgeTypes lists each hexagon's six signed edge classes,
// anticlockwise from the top vertex.
var hexEdgeTypes = [numHexes][6]int{
	HexG: {-edgeBeta, -edgeAlpha, +edgeAlpha, -edgeGamma, -edgeDelta, +edgeBeta},
	HexD: {-edgeZeta, +edgeGamma, +edgeBeta, -edgeEpsilon, +edgeAlpha, -edgeGamma},
	HexJ: {-edgeBeta, +edgeGamma, +edgeBeta, +edgeTheta, +edgeBeta, edgeEta},
	HexL: {-edgeBeta, +edgeGamma, +edgeBeta, -edgeEpsilon, +edgeAlpha, -edgeTheta},
	HexX: {-edgeBeta, -edgeAlpha, +edgeEpsilon, +edgeTheta, +edgeBeta, edgeEta},
	HexP: {-edgeBeta, -edgeAlpha, +edgeEpsilon, -edgeEpsilon, +edgeAlpha, -edgeTheta},
	HexS: {+edgeDelta, +edgeZeta, +edgeBeta, -edgeEpsilon, +edgeAlpha, -edgeGamma},
	HexF: {-edgeBeta, +edgeGamma, +edgeBeta, -edgeEpsilon, +edgeEpsilon, edgeEta},
	HexY: {-edgeBeta, -edgeAlpha, +edgeEpsilon, -edgeEpsilon, +edgeEpsilon, edgeEta},
}

// hexEdgeShapes gives the turn sequence (in 30° steps) along the
// positive version of each edge class in a hexagon expansion, traversed
// clockwise because every substitution step flips handedness. An edge
// of n sub-edges has n−1 turns. The negative version reverses the turn
// order and flips each sign.
var hexEdgeShapes = [8][]int{
	edgeEta:     {+2, +2, -2, -2},
	edgeAlpha:   {+2, -2},
	edgeBeta:    {-2},
	edgeGamma:   {+2, -2, -2, +2},
	edgeDelta:   {-2, +2, -2, +2},
	edgeEpsilon: {+2, -2, -2},
	edgeZeta:    {-2, +2},
	edgeTheta:   {+2, +2, -2, -2, +2},
}

// specEdgeShapes is the same for the final expansion into Spectres.
// Theta maps to a single Spectre edge, hence no turns at all.
var specEdgeShapes = [8][]int{
	edgeEta:     {0},
	edgeAlpha:   {-2, +3},
	edgeBeta:    {+3, -2},
	edgeGamma:   {+2},
	edgeDelta:   {+2, +3, +2, -3, +2},
	edgeEpsilon: {+3},
	edgeZeta:    {-2},
	edgeTheta:   nil,
}

func hexEdgeLen(class int) int { return len(hexEdgeShapes[class]) + 1 }

func specEdgeLen(class int) int {
	if class == edgeTheta {
		return 1
	}
	return len(specEdgeShapes[class]) + 1
}

// hexOutlineStart/hexOutlineDir give, per type, the boundary point of
// the expansion corresponding to the superhex's vertex 0, and the
// initial direction of travel around the outline. D and S use the rare
// variant.
var (
	outlineStartCommon = plane.NewPoint(-4, 0, -10, 0)
	outlineDirCommon   = plane.NewPoint(2, 0, 2, 0)
	outlineStartRare   = plane.NewPoint(-2, 0, -14, 0)
	outlineDirRare     = plane.NewPoint(-2, 0, 4, 0)
)

var hexOutlineStart = [numHexes]plane.Point{
	HexG: outlineStartCommon, HexD: outlineStartRare, HexJ: outlineStartCommon,
	HexL: outlineStartCommon, HexX: outlineStartCommon, HexP: outlineStartCommon,
	HexS: outlineStartRare, HexF: outlineStartCommon, HexY: outlineStartCommon,
}

var hexOutlineDir = [numHexes]plane.Point{
	HexG: outlineDirCommon, HexD: outlineDirRare, HexJ: outlineDirCommon,
	HexL: outlineDirCommon, HexX: outlineDirCommon, HexP: outlineDirCommon,
	HexS: outlineDirRare, HexF: outlineDirCommon, HexY: outlineDirCommon,
}

// specOutlineStartVertex gives, per type, which vertex of sub-Spectre 0
// corresponds to hex vertex 0 on the boundary of the Spectre expansion.
// The Spectre outlines take no predictable turns between edge
// expansions, so directions are recovered from the edge map instead.
var specOutlineStartVertex = [numHexes]int{
	HexG: 9, HexD: 8, HexJ: 9, HexL: 9, HexX: 9,
	HexP: 9, HexS: 8, HexF: 9, HexY: 9,
}

// probabilities holds the relative frequency of each hexagon type in
// the limiting distribution of the iterated substitution (eigenvector
// of the expansion matrix at its dominant eigenvalue), scaled to 10⁷.
var probabilities = [numHexes]uint32{
	HexG: 10000000, // 1
	HexD: 10000000, // 1
	HexJ: 1270167,  // 4 − √15
	HexL: 1270167,  // 4 − √15
	HexX: 7459667,  // 2√15 − 7
	HexP: 7459667,  // 2√15 − 7
	HexS: 10000000, // 1
	HexF: 17459667, // 2√15 − 6
	HexY: 13810500, // 13 − 3√15
}

// Angles is the Spectre's shape: how far to turn at each of its 14
// vertices, in 30° steps, counting the long edge as two unit edges.
// Vertex 0 is the top of the head, vertex 1 its neighbour toward the
// shorter cloak edge.
var Angles = [14]int{-3, -2, 3, -2, -3, 2, -3, 2, -3, -2, 0, -2, 3, -2}

// spectreDiagonal is the reference vector whose rotations give the unit
// Spectre edge directions used when laying out expansions.
var spectreDiagonal = plane.NewPoint(2, 0, 0, 2)
