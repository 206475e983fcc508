package tiling

import (
	"math/rand"

	"github.com/katalvlaran/spectre/hexes"
	"github.com/katalvlaran/spectre/plane"
)

// fallbackSeed seeds the synthesized random source used when an
// explicit descriptor runs off the end of its coordinate path. The seed
// is a fixed constant on purpose: descriptor-driven generation must
// stay reproducible, and the source only exists to break the
// self-referential recursion that a non-random fixed choice can cause
// when a hexagon edge resolves through a copy of itself one level up.
const fallbackSeed = 5

// Context is the shared state of one generation run. Its prototype
// holds the coordinates of the starting Spectre and is extended as
// needed; any other Coords needing extension copies the higher-order
// levels from the prototype, so every choice, once made, stays
// consistent across the whole run. Resolved prototype levels are never
// rewritten, only appended to.
type Context struct {
	rng           *rand.Rand
	startVertices [2]plane.Point
	orientation   int
	prototype     *Coords
}

// choosePossibility draws one weighted entry from poss, consuming
// exactly one value from rng. Linear scan: this runs about log(n) times
// for a patch of n tiles, and the tables stay legible this way.
func choosePossibility(rng *rand.Rand, poss []hexes.Possibility) hexes.Possibility {
	var limit uint64
	for _, p := range poss {
		limit += uint64(p.Prob)
	}
	value := uint64(rng.Int63n(int64(limit)))

	for _, p := range poss[:len(poss)-1] {
		if value < uint64(p.Prob) {
			return p
		}
		value -= uint64(p.Prob)
	}
	return poss[len(poss)-1]
}

// setStartVertices derives the two canonical vertices of the seed tile
// (its vertex 0 and 1) from the run orientation.
func (ctx *Context) setStartVertices(orientation int) {
	minusSqrt3 := plane.Rot(5).Add(plane.Rot(-5))
	basicEdge := plane.Rot(0).Add(plane.Rot(-3)).Mul(plane.Rot(orientation))
	diagonal := basicEdge.Add(basicEdge.Mul(plane.Rot(-3)))
	ctx.startVertices[0] = diagonal.Mul(minusSqrt3)
	ctx.startVertices[1] = ctx.startVertices[0].Add(basicEdge)
	ctx.orientation = orientation
}

// NewRandomContext creates a run context whose seed tile is drawn from
// the limiting distribution of the substitution, using rng for this and
// every later upward extension.
func NewRandomContext(rng *rand.Rand) *Context {
	ctx := &Context{rng: rng}

	p := choosePossibility(rng, hexes.SpectreParents())
	ctx.prototype = &Coords{
		index: int(p.Index),
		c:     []HexCoord{{Index: unresolved, Type: p.Type}},
		// The third-colour rule in stepHex only stays within 0..2
		// while the current and previous colours are distinct, so the
		// pair starts (0, 1). Fixed values keep replay deterministic.
		prevHexColour: 1,
	}

	// Spectres split into two classes whose orientations differ by an
	// odd multiple of 30°; the rare class is exactly the index-1
	// Spectres of G hexagons. Picking the seed orientation within its
	// class keeps the common class in the canonical head-up poses.
	ctx.setStartVertices(rng.Intn(6)*2 + ctx.prototype.index)

	return ctx
}

// NewContext creates a run context that replays the patch identified by
// ps, with no random source. It validates ps first and reports the
// rejection reason if it is malformed.
func NewContext(ps *PatchParams) (*Context, error) {
	if err := ps.Validate(); err != nil {
		return nil, err
	}

	ctx := &Context{}
	n := len(ps.Coords)
	c := make([]HexCoord, n)

	finalType, _ := hexes.FromLetter(ps.FinalHex)
	c[n-1] = HexCoord{Index: unresolved, Type: finalType}
	for i := 1; i < n; i++ {
		c[i-1].Index = int(ps.Coords[i])
	}
	for i := n - 2; i >= 0; i-- {
		c[i].Type = hexes.ForHex(c[i+1].Type).SubHexes[c[i].Index]
	}

	// Colour state starts (0, 1) exactly as in NewRandomContext, so a
	// replayed descriptor reproduces colours as well as geometry.
	ctx.prototype = &Coords{index: int(ps.Coords[0]), c: c, prevHexColour: 1}
	ctx.setStartVertices(ps.Orientation)

	return ctx, nil
}

// Orientation returns the run's seed orientation, 0..11 anticlockwise
// 30° steps with 0 meaning head-up.
func (ctx *Context) Orientation() int {
	return ctx.orientation
}

// InitialCoords returns a snapshot of the run's seed coordinates.
func (ctx *Context) InitialCoords() *Coords {
	return ctx.prototype.Clone()
}

// Params returns the descriptor that reproduces the run's tiling
// exactly. Call it after generation: the descriptor captures every
// hierarchy level the run forced the prototype to resolve.
func (ctx *Context) Params() *PatchParams {
	n := ctx.prototype.Len()
	coords := make([]uint8, n)
	coords[0] = uint8(ctx.prototype.index)
	for i := 1; i < n; i++ {
		coords[i] = uint8(ctx.prototype.c[i-1].Index)
	}
	return &PatchParams{
		Orientation: ctx.orientation,
		Coords:      coords,
		FinalHex:    ctx.prototype.c[n-1].Type.Letter(),
	}
}

// extend grows sc to at least n levels, copying resolved positions from
// the prototype and growing the prototype itself first if it is too
// short. Growth draws a weighted legal parent for the current outermost
// type; without an rng (a descriptor ran out of coordinates) a
// context-scoped fallback source is synthesized; see fallbackSeed.
// extend cannot fail, only allocate.
func (ctx *Context) extend(sc *Coords, n int) {
	proto := ctx.prototype
	for proto.Len() < n {
		if ctx.rng == nil {
			ctx.rng = rand.New(rand.NewSource(fallbackSeed))
		}
		top := &proto.c[proto.Len()-1]
		p := choosePossibility(ctx.rng, hexes.ForHex(top.Type).Parents)
		top.Index = int(p.Index)
		proto.c = append(proto.c, HexCoord{Index: unresolved, Type: p.Type})
	}

	for sc.Len() < n {
		i := sc.Len() - 1
		if sc.c[i].Index != unresolved || sc.c[i].Type != proto.c[i].Type {
			panic("tiling: coordinate path inconsistent with its run context")
		}
		sc.c[i].Index = proto.c[i].Index
		sc.c = append(sc.c, HexCoord{Index: unresolved, Type: proto.c[i+1].Type})
	}
}
