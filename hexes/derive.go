package hexes

import (
	"sort"

	"github.com/katalvlaran/spectre/plane"
)

// The transition maps are derived by laying out each hexagon's
// expansion in exact coordinates and pairing every directed edge with
// its reverse. Edges are directed so the two sides of one physical edge
// carry independent information: walking start→finish keeps the owning
// component on the left, i.e. internal edges run anticlockwise around
// their component.

type edgeKey struct {
	start, finish plane.Point
}

type edgeVal struct {
	internal bool
	hi, lo   uint8
}

func (k edgeKey) reversed() edgeKey {
	return edgeKey{start: k.finish, finish: k.start}
}

// reverseEntries resolves, for each directed edge in keys, what lies on
// the far side of it.
func reverseEntries(edges map[edgeKey]edgeVal, keys []edgeKey) []MapEntry {
	out := make([]MapEntry, len(keys))
	for i, k := range keys {
		rev, ok := edges[k.reversed()]
		if !ok {
			panic("hexes: unmatched edge while deriving transition tables")
		}
		out[i] = MapEntry{Internal: rev.internal, Hi: rev.hi, Lo: rev.lo}
	}
	return out
}

// signedClass splits a signed edge class into direction and class.
func signedClass(t int) (sign, class int) {
	if t < 0 {
		return -1, -t
	}
	return +1, t
}

// layOutHexagons derives HexMap, HexEdges and HexIn for one type by
// placing its sub-hexagons and tracing the expansion's outline.
func layOutHexagons(h Hex, hd *HexData) {
	edges := make(map[edgeKey]edgeVal)
	n := NumSubHexes(h)
	intmap := make([]edgeKey, 6*n)

	for i := 0; i < n; i++ {
		centre := hexCentres[i]
		vrel := plane.NewPoint(-2, 0, 4, 0).Mul(plane.Rot(2 * subHexOrientations[i]))
		for j := 0; j < 6; j++ {
			next := vrel.Mul(plane.Rot(2))
			k := edgeKey{start: centre.Add(vrel), finish: centre.Add(next)}
			edges[k] = edgeVal{internal: true, hi: uint8(i), lo: uint8(j)}
			intmap[6*i+j] = k
			vrel = next
		}
	}

	// Walk the exterior outline, expanding each of the six superhex
	// edges into its class's turn sequence. Consecutive edges always
	// meet at a 60° left turn in the hexagon expansion.
	var extmap []edgeKey
	var edgeStarts [7]int
	pos, dir := hexOutlineStart[h], hexOutlineDir[h]
	for i := 0; i < 6; i++ {
		sign, class := signedClass(hexEdgeTypes[h][i])
		shape := hexEdgeShapes[class]
		length := hexEdgeLen(class)
		idx := 0
		if sign < 0 {
			idx = length - 2
		}

		edgeStarts[i] = len(extmap)
		for j := 0; j < length; j++ {
			next := pos.Add(dir)
			if j < length-1 {
				dir = dir.Mul(plane.Rot(sign * shape[idx]))
				idx += sign
			}
			k := edgeKey{start: pos, finish: next}
			edges[k] = edgeVal{internal: false, hi: uint8(i), lo: uint8(j)}
			extmap = append(extmap, k)
			pos = next
		}
		dir = dir.Mul(plane.Rot(-2))
	}
	edgeStarts[6] = len(extmap)
	if pos != hexOutlineStart[h] {
		panic("hexes: hexagon outline did not close")
	}

	hd.HexMap = reverseEntries(edges, intmap)
	for i := 0; i < 6; i++ {
		hd.HexEdges[i] = MapEdge{
			Start: uint8(edgeStarts[i]),
			Len:   uint8(edgeStarts[i+1] - edgeStarts[i]),
		}
	}
	hd.HexIn = reverseEntries(edges, extmap)
}

// lessPoint orders points by their coefficient vectors, the order the
// boundary scan below relies on for determinism.
func lessPoint(a, b plane.Point) bool {
	for i := range a.Coeffs {
		if a.Coeffs[i] != b.Coeffs[i] {
			return a.Coeffs[i] < b.Coeffs[i]
		}
	}
	return false
}

// boundaryDirection finds the outgoing exterior edge at pos: the least
// (by finish point) directed edge starting there whose reverse is not
// in the map. Interior edges always have a reverse, so only the true
// outline qualifies.
func boundaryDirection(edges map[edgeKey]edgeVal, pos plane.Point) plane.Point {
	var candidates []edgeKey
	for k := range edges {
		if k.start != pos {
			continue
		}
		if _, ok := edges[k.reversed()]; !ok {
			candidates = append(candidates, k)
		}
	}
	if len(candidates) == 0 {
		panic("hexes: no exterior edge at outline position")
	}
	sort.Slice(candidates, func(i, j int) bool {
		return lessPoint(candidates[i].finish, candidates[j].finish)
	})
	return candidates[0].finish.Sub(candidates[0].start)
}

// layOutSpectres derives SpecMap, SpecEdges and SpecIn for one type by
// placing its Spectre(s) and tracing the outline of the final
// substitution step. The handedness flip of each substitution makes
// this trace run in the reverse order to layOutHexagons.
func layOutSpectres(h Hex, hd *HexData) {
	edges := make(map[edgeKey]edgeVal)
	ns := NumSpectres(h)
	intmap := make([]edgeKey, 14*ns)
	vertices := make([]plane.Point, 14*ns)

	for i := 0; i < ns; i++ {
		pos := plane.NewPoint(0, 0, 0, 0)
		dir := spectreDiagonal.Mul(plane.Rot(5))
		if i == 1 {
			// The second Spectre of the G expansion is the one
			// irregular placement in the whole system.
			pos = plane.NewPoint(2, 6, 2, 0)
			dir = dir.Mul(plane.Rot(1))
		}
		for j := 0; j < 14; j++ {
			k := edgeKey{start: pos, finish: pos.Add(dir)}
			edges[k] = edgeVal{internal: true, hi: uint8(i), lo: uint8(j)}
			intmap[14*i+j] = k
			vertices[14*i+j] = pos
			pos = k.finish
			dir = dir.Mul(plane.Rot(Angles[(j+1)%14]))
		}
	}

	const extCap = 24
	extmap := make([]edgeKey, extCap)
	mappos := extCap
	var edgeStarts [7]int
	edgeStarts[6] = mappos

	start := vertices[specOutlineStartVertex[h]]
	pos := start
	var dir plane.Point
	for i := 0; i < 6; i++ {
		sign, class := signedClass(hexEdgeTypes[h][5-i])
		shape := specEdgeShapes[class]
		length := specEdgeLen(class)
		idx := 0
		if sign < 0 {
			idx = length - 2
		}

		switch {
		case h == HexS && i == 4:
			// Extraordinary S edge: continue in the direction the
			// previous expansion left off.
		case h == HexS && i == 5:
			dir = dir.Mul(plane.Rot(6))
		default:
			dir = boundaryDirection(edges, pos)
		}

		for j := 0; j < length; j++ {
			next := pos.Add(dir)
			if j < length-1 {
				dir = dir.Mul(plane.Rot(sign * shape[idx]))
				idx += sign
			}
			// Exterior sub-edges are recorded in boundary orientation,
			// i.e. reversed relative to the direction walked here.
			k := edgeKey{start: next, finish: pos}
			edges[k] = edgeVal{internal: false, hi: uint8(5 - i), lo: uint8(length - 1 - j)}
			mappos--
			extmap[mappos] = k
			pos = next
		}
		edgeStarts[5-i] = mappos
	}
	if pos != start {
		panic("hexes: spectre outline did not close")
	}

	hd.SpecMap = reverseEntries(edges, intmap)
	base := edgeStarts[0]
	for i := 0; i < 6; i++ {
		hd.SpecEdges[i] = MapEdge{
			Start: uint8(edgeStarts[i] - base),
			Len:   uint8(edgeStarts[i+1] - edgeStarts[i]),
		}
	}
	hd.SpecIn = reverseEntries(edges, extmap[base:])
}

// deriveParents builds the weighted legal-parent lists. Table order is
// fixed (by parent type, then position) because random extension
// consumes draws in this order and descriptors must replay exactly.
func deriveParents() {
	for t := Hex(0); t < numHexes; t++ {
		for parent := Hex(0); parent < numHexes; parent++ {
			for k, sub := range subHexes[parent] {
				if sub == t {
					hexData[t].Parents = append(hexData[t].Parents, Possibility{
						Type:  parent,
						Index: uint8(k),
						Prob:  probabilities[parent],
					})
				}
			}
		}
	}
	for parent := Hex(0); parent < numHexes; parent++ {
		for k := 0; k < NumSpectres(parent); k++ {
			spectreParents = append(spectreParents, Possibility{
				Type:  parent,
				Index: uint8(k),
				Prob:  probabilities[parent],
			})
		}
	}
}

func init() {
	for h := Hex(0); h < numHexes; h++ {
		hd := &hexData[h]
		hd.SubHexes = subHexes[h]
		layOutHexagons(h, hd)
		layOutSpectres(h, hd)
	}
	deriveParents()
}
