package svg

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/spectre/tiling"
)

// defaultStyle is the per-tile stroke styling. Widths are in tiling
// units (a Spectre edge spans 2·√2 of them).
const defaultStyle = "stroke: black; stroke-width: 0.15; stroke-linejoin: round"

// DefaultPalette holds the fills for the three hexagon colours.
var DefaultPalette = [3]string{"#8dd3c7", "#ffed6f", "#bebada"}

// Options controls patch rendering. The zero value is usable: a 60×60
// unit region at 8 pixels per unit with the default palette.
type Options struct {
	// Width and Height of the rendered region in tiling units,
	// centred on the seed tile.
	Width, Height int

	// Scale converts tiling units to document pixels.
	Scale float64

	// Palette maps the three hexagon colours to fills.
	Palette [3]string

	// Style is the per-tile stroke styling appended after the fill.
	Style string
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 60
	}
	if o.Height <= 0 {
		o.Height = 60
	}
	if o.Scale <= 0 {
		o.Scale = 8
	}
	if o.Palette == [3]string{} {
		o.Palette = DefaultPalette
	}
	if o.Style == "" {
		o.Style = defaultStyle
	}
	return o
}

func coordOf(v tiling.Vertex) geom.Coord {
	return geom.Coord{X: v.X.Float64(), Y: v.Y.Float64()}
}

// render drives one generation run into sw. The generate argument
// abstracts over random and descriptor-driven runs.
func render(sw *Writer, o Options, generate func(cb tiling.TileCallback)) {
	viewBox := geom.Rect{
		Min: geom.Coord{X: 0, Y: 0},
		Max: geom.Coord{X: float64(o.Width), Y: float64(o.Height)},
	}
	sw.Start(viewBox,
		fmt.Sprintf("width='%d'", int(float64(o.Width)*o.Scale)),
		fmt.Sprintf("height='%d'", int(float64(o.Height)*o.Scale)))

	generate(func(vertices *[tiling.NumEdges]tiling.Vertex, colour int) {
		sw.StartPath(coordOf(vertices[0]), fmt.Sprintf("fill: %s; %s", o.Palette[colour], o.Style))
		for i := 1; i < tiling.NumEdges; i++ {
			sw.PathLineTo(coordOf(vertices[i]))
		}
		sw.PathClose()
	})

	sw.End()
}

// WritePatch renders the patch identified by ps into w. A malformed
// descriptor is rejected before anything is written; after that the
// only failure mode is a write error.
func WritePatch(w io.Writer, ps *tiling.PatchParams, opts Options) error {
	if err := ps.Validate(); err != nil {
		return err
	}

	o := opts.withDefaults()
	sw := NewWriter(w)
	render(sw, o, func(cb tiling.TileCallback) {
		// Validate already passed, so replay cannot fail.
		_ = tiling.GeneratePatch(ps, o.Width, o.Height, cb)
	})
	return sw.Err()
}

// WriteRandomPatch renders a freshly generated random patch into w and
// returns the descriptor that WritePatch reproduces it from.
func WriteRandomPatch(w io.Writer, rng *rand.Rand, opts Options) (*tiling.PatchParams, error) {
	o := opts.withDefaults()
	sw := NewWriter(w)

	var ps *tiling.PatchParams
	render(sw, o, func(cb tiling.TileCallback) {
		ps = tiling.RandomisePatch(o.Width, o.Height, rng, cb)
	})
	return ps, sw.Err()
}
