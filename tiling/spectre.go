package tiling

import (
	"github.com/katalvlaran/spectre/hexes"
	"github.com/katalvlaran/spectre/plane"
)

// Spectre is one placed tile: its 14 vertices in exact plane
// coordinates, anticlockwise from the top of the head, plus the
// coordinate hierarchy snapshot that located it.
type Spectre struct {
	Vertices [NumEdges]plane.Point
	Coords   *Coords
}

// place fills in all 14 vertices from two adjacent known ones: u at
// position indexOfU and v immediately after it. Each subsequent vertex
// adds the running displacement, which turns by the shape's fixed angle
// table between edges.
func (spec *Spectre) place(u, v plane.Point, indexOfU int) {
	disp := v.Sub(u)
	for i := 0; i < NumEdges; i++ {
		spec.Vertices[(i+indexOfU)%NumEdges] = u
		u = u.Add(disp)
		disp = disp.Mul(plane.Rot(hexes.Angles[(i+1+indexOfU)%NumEdges]))
	}
}

// Initial places the run's seed tile at the context's canonical start
// vertices.
func (ctx *Context) Initial() *Spectre {
	spec := &Spectre{Coords: ctx.prototype.Clone()}
	spec.place(ctx.startVertices[0], ctx.startVertices[1], 0)
	return spec
}

// Adjacent places the tile across srcEdge of src and returns it along
// with the edge it is entered through. The shared edge's two vertices
// are reused in reversed order, which puts the new tile on the opposite
// side with zero numerical drift.
func (ctx *Context) Adjacent(src *Spectre, srcEdge int) (*Spectre, int) {
	dst := &Spectre{Coords: src.Coords.Clone()}
	dstEdge := ctx.Step(dst.Coords, srcEdge)
	dst.place(src.Vertices[(srcEdge+1)%NumEdges], src.Vertices[srcEdge], dstEdge)
	return dst, dstEdge
}
