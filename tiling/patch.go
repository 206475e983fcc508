package tiling

import (
	"math/rand"

	"github.com/katalvlaran/spectre/plane"
)

// Vertex is one tile vertex as emitted to callers: a pair of exact
// coordinates, already translated into the output frame (origin at the
// top-left of the requested region, y growing downward). Rounding is
// deferred to the caller's final display scaling.
type Vertex struct {
	X, Y plane.Coord
}

// TileCallback receives each emitted tile: its 14 vertices and its
// 3-colouring index (0..2).
type TileCallback func(vertices *[NumEdges]Vertex, colour int)

// patchBounds clips generation to a w×h region centred on the seed and
// translates emitted vertices into the output frame, flipping y so the
// frame matches screen conventions. The unit of measurement is
// 1/(2·√2) of a Spectre edge: an edge at 45° spans the vector (2,2).
type patchBounds struct {
	xoff, yoff             int
	xmin, xmax, ymin, ymax plane.Coord
}

func newPatchBounds(w, h int) patchBounds {
	b := patchBounds{xoff: w / 2, yoff: h / 2}
	b.xmin = plane.Integer(-b.xoff)
	b.xmax = plane.Integer(w - b.xoff)
	b.ymin = plane.Integer(b.yoff - h)
	b.ymax = plane.Integer(b.yoff)
	return b
}

// emit reports whether spec lies entirely inside the bounds, invoking
// cb with the translated vertices when it does. A nil cb only clips.
func (b patchBounds) emit(spec *Spectre, cb TileCallback) bool {
	var out [NumEdges]Vertex
	for i, p := range spec.Vertices {
		x, y := p.X(), p.Y()
		if x.Cmp(b.xmin) < 0 || x.Cmp(b.xmax) > 0 ||
			y.Cmp(b.ymin) < 0 || y.Cmp(b.ymax) > 0 {
			return false
		}
		out[i] = Vertex{
			X: plane.NewCoord(b.xoff+x.C1, x.Cr3),
			Y: plane.NewCoord(b.yoff-y.C1, -y.Cr3),
		}
	}
	if cb != nil {
		cb(&out, spec.Coords.Colour())
	}
	return true
}

// RandomisePatch generates a random patch filling a w×h region, emits
// every tile through cb (which may be nil to generate silently), and
// returns the descriptor from which GeneratePatch reproduces the same
// patch exactly: same tiles, same order, same colours.
func RandomisePatch(w, h int, rng *rand.Rand, cb TileCallback) *PatchParams {
	ctx := NewRandomContext(rng)
	bounds := newPatchBounds(w, h)
	ctx.Generate(func(spec *Spectre) bool {
		return bounds.emit(spec, cb)
	})
	return ctx.Params()
}

// GeneratePatch replays the patch identified by ps over a w×h region,
// emitting every tile through cb. It needs no randomness; the only
// failure mode is a malformed descriptor.
func GeneratePatch(ps *PatchParams, w, h int, cb TileCallback) error {
	ctx, err := NewContext(ps)
	if err != nil {
		return err
	}
	bounds := newPatchBounds(w, h)
	ctx.Generate(func(spec *Spectre) bool {
		return bounds.emit(spec, cb)
	})
	return nil
}
