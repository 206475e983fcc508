package svg_test

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectre/svg"
	"github.com/katalvlaran/spectre/tiling"
)

func fixedParams() *tiling.PatchParams {
	return &tiling.PatchParams{Orientation: 0, Coords: []uint8{0, 0}, FinalHex: 'Y'}
}

// TestWritePatch renders a small fixed patch and checks the document
// shape: one well-formed SVG holding one closed path per tile, each
// filled from the palette.
func TestWritePatch(t *testing.T) {
	var buf bytes.Buffer
	opts := svg.Options{Width: 50, Height: 50}
	require.NoError(t, svg.WritePatch(&buf, fixedParams(), opts))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, `<?xml version="1.0"?>`))
	require.Contains(t, out, `viewBox="0.000000 0.000000 50.000000 50.000000"`)
	require.Contains(t, out, "width='400'")
	require.Contains(t, out, "height='400'")
	require.True(t, strings.HasSuffix(out, "</svg>\n"))

	var tiles int
	require.NoError(t, tiling.GeneratePatch(fixedParams(), 50, 50, func(*[tiling.NumEdges]tiling.Vertex, int) {
		tiles++
	}))
	require.Greater(t, tiles, 1)
	require.Equal(t, tiles, strings.Count(out, "<path "))
	require.Equal(t, tiles, strings.Count(out, "Z'/>"))

	var filled int
	for _, fill := range svg.DefaultPalette {
		filled += strings.Count(out, "fill: "+fill)
	}
	require.Equal(t, tiles, filled)
}

// TestWritePatchRejectsBadDescriptor checks nothing is written when
// the descriptor fails validation.
func TestWritePatchRejectsBadDescriptor(t *testing.T) {
	var buf bytes.Buffer
	err := svg.WritePatch(&buf, &tiling.PatchParams{FinalHex: 'G'}, svg.Options{})
	require.ErrorIs(t, err, tiling.ErrEmptyCoords)
	require.Zero(t, buf.Len())
}

// TestWriteRandomPatchRoundTrip renders a random patch, then replays
// its descriptor: the two documents must be byte-identical.
func TestWriteRandomPatchRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	opts := svg.Options{Width: 40, Height: 40}

	var first bytes.Buffer
	ps, err := svg.WriteRandomPatch(&first, rng, opts)
	require.NoError(t, err)
	require.NotNil(t, ps)
	require.NoError(t, ps.Validate())

	var second bytes.Buffer
	require.NoError(t, svg.WritePatch(&second, ps, opts))
	require.Equal(t, first.String(), second.String())
}

type failingWriter struct{ err error }

func (fw failingWriter) Write([]byte) (int, error) { return 0, fw.err }

// TestWriteErrorIsSticky checks the first write failure surfaces from
// WritePatch.
func TestWriteErrorIsSticky(t *testing.T) {
	sinkErr := errors.New("sink failed")
	err := svg.WritePatch(failingWriter{err: sinkErr}, fixedParams(), svg.Options{})
	require.ErrorIs(t, err, sinkErr)
}
