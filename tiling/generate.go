package tiling

import "github.com/katalvlaran/spectre/plane"

// tileKey identifies a placed tile by its first two vertices; the
// remaining twelve are forced by construction, so two tiles sharing a
// key are the same tile.
type tileKey struct {
	a, b plane.Point
}

func keyOf(spec *Spectre) tileKey {
	return tileKey{a: spec.Vertices[0], b: spec.Vertices[1]}
}

// Generate explores the tiling breadth-first from the seed tile,
// calling accept for the seed and every distinct neighbour reached.
// A tile rejected by accept is discarded and its own neighbours are
// never explored through it, which makes the predicate both the
// bounding region and the sole cancellation mechanism: with a bounded
// predicate the worklist drains and Generate returns.
//
// The seed is always the first tile offered. Tiles are offered at most
// once each; rejected tiles are not remembered, so a tile straddling
// the boundary may be re-derived (and re-rejected) from several
// neighbours.
func (ctx *Context) Generate(accept func(*Spectre) bool) {
	placed := make(map[tileKey]struct{})
	var queue []*Spectre

	seed := ctx.Initial()
	placed[keyOf(seed)] = struct{}{}
	if accept(seed) {
		queue = append(queue, seed)
	}

	for len(queue) > 0 {
		spec := queue[0]
		queue = queue[1:]

		for edge := 0; edge < NumEdges; edge++ {
			next, _ := ctx.Adjacent(spec, edge)
			if _, ok := placed[keyOf(next)]; ok {
				continue
			}
			if !accept(next) {
				continue
			}
			placed[keyOf(next)] = struct{}{}
			queue = append(queue, next)
		}
	}
}
