package tiling

import "github.com/katalvlaran/spectre/hexes"

// stepHex moves the hexagon at hierarchy level depth across one of its
// six edges, updating sc in place and returning the edge it enters the
// destination hexagon through.
//
// The (position, edge) pair is looked up in the parent type's map. An
// internal entry resolves immediately. An external entry means the
// destination lies outside the parent, so the parent itself is stepped
// first, recursing exactly one level up and extending the hierarchy on
// demand, and the crossing re-enters through the segment of the
// parent's returned edge.
func (ctx *Context) stepHex(sc *Coords, depth, edge int) int {
	ctx.extend(sc, depth+2)

	if edge < 0 || edge >= 6 {
		panic("tiling: hexagon edge index out of range")
	}
	cur := sc.c[depth]
	if cur.Index < 0 || cur.Index >= hexes.NumSubHexes(cur.Type) {
		panic("tiling: unresolved hierarchy level in step")
	}

	hd := hexes.ForHex(sc.c[depth+1].Type)
	m := hd.HexMap[6*cur.Index+edge]
	if !m.Internal {
		recEdge := ctx.stepHex(sc, depth+1, int(m.Hi))
		// The parent step may have changed the type at depth+1.
		hd = hexes.ForHex(sc.c[depth+1].Type)
		me := hd.HexEdges[recEdge]
		m = hd.HexIn[int(me.Start)+int(me.Len)-1-int(m.Lo)]
		if !m.Internal {
			panic("tiling: hexagon re-entry failed to resolve")
		}
	}
	sc.c[depth].Index = int(m.Hi)
	sc.c[depth].Type = hd.SubHexes[m.Hi]
	out := int(m.Lo)

	if depth == 0 {
		// Track the 3-colouring of the order-0 hexagons. Leaving
		// through the same edge parity we entered by keeps the previous
		// colour; the opposite parity forces the unique third colour.
		var colour uint8
		if (uint8(edge)^sc.incomingHexEdge)&1 == 0 {
			colour = sc.prevHexColour
		} else {
			colour = 0 + 1 + 2 - sc.hexColour - sc.prevHexColour
		}
		sc.prevHexColour = sc.hexColour
		sc.hexColour = colour
		sc.incomingHexEdge = uint8(out)
	}

	return out
}

// Step moves the Spectre located by sc across edge (0..13), updating sc
// in place and returning the edge it enters the destination Spectre
// through. External lookups loop through stepHex until a map entry
// resolves internally, which the construction of the tables guarantees
// eventually happens.
func (ctx *Context) Step(sc *Coords, edge int) int {
	if edge < 0 || edge >= NumEdges {
		panic("tiling: spectre edge index out of range")
	}
	if sc.index < 0 || sc.index >= hexes.NumSpectres(sc.c[0].Type) {
		panic("tiling: spectre index inconsistent with its hexagon type")
	}

	hd := hexes.ForHex(sc.c[0].Type)
	m := hd.SpecMap[NumEdges*sc.index+edge]
	for !m.Internal {
		recEdge := ctx.stepHex(sc, 0, int(m.Hi))
		hd = hexes.ForHex(sc.c[0].Type)
		me := hd.SpecEdges[recEdge]
		m = hd.SpecIn[int(me.Start)+int(me.Len)-1-int(m.Lo)]
	}
	sc.index = int(m.Hi)
	return int(m.Lo)
}
