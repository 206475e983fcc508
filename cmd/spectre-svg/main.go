// Command spectre-svg renders a patch of the Spectre aperiodic tiling
// as an SVG document.
//
// By default it generates a random patch and reports the descriptor
// that reproduces it on stderr; pass -coords/-hex/-orient to replay a
// descriptor instead.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/spectre/svg"
	"github.com/katalvlaran/spectre/tiling"
)

var (
	width  = flag.Int("width", 60, "region width in tiling units")
	height = flag.Int("height", 60, "region height in tiling units")
	scale  = flag.Float64("scale", 8, "pixels per tiling unit")
	seed   = flag.Int64("seed", 0, "random seed, 0 draws one from the clock")
	output = flag.String("o", "", "output file, default stdout")
	coords = flag.String("coords", "", "comma-separated coordinate path to replay")
	hexArg = flag.String("hex", "", "outermost hexagon letter for -coords, one of GDJLXPSFY")
	orient = flag.Int("orient", 0, "seed orientation for -coords, 0..11")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "spectre-svg: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	opts := svg.Options{Width: *width, Height: *height, Scale: *scale}

	if *coords != "" {
		ps, err := parseParams()
		if err != nil {
			return err
		}
		return writeOutput(*output, func(w io.Writer) error {
			return svg.WritePatch(w, ps, opts)
		})
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	return writeOutput(*output, func(w io.Writer) error {
		ps, err := svg.WriteRandomPatch(w, rng, opts)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "seed %d; replay with -orient %d -hex %c -coords %s\n",
			s, ps.Orientation, ps.FinalHex, formatCoords(ps.Coords))
		return nil
	})
}

// writeOutput runs emit against the named file, or stdout when path is
// empty. A failed close loses buffered output, so the close error is
// reported like any write error rather than dropped.
func writeOutput(path string, emit func(io.Writer) error) error {
	if path == "" {
		return emit(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := emit(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// parseParams assembles a descriptor from -coords, -hex and -orient.
// Range validation is left to the tiling package.
func parseParams() (*tiling.PatchParams, error) {
	if len(*hexArg) != 1 {
		return nil, fmt.Errorf("-coords needs -hex with a single hexagon letter, got %q", *hexArg)
	}

	parts := strings.Split(*coords, ",")
	cs := make([]uint8, len(parts))
	for i, part := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("bad coordinate %q: %w", part, err)
		}
		cs[i] = uint8(n)
	}

	return &tiling.PatchParams{
		Orientation: *orient,
		Coords:      cs,
		FinalHex:    (*hexArg)[0],
	}, nil
}

func formatCoords(cs []uint8) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = strconv.Itoa(int(c))
	}
	return strings.Join(parts, ",")
}
