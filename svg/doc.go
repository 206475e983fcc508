// Package svg renders Spectre tiling patches as SVG documents.
//
// What: a minimal serializer for the output of package tiling - each
// tile becomes one closed <path> element filled by its hexagon colour,
// inside a viewBox measured in tiling units.
//
// Why: the exact-arithmetic pipeline defers rounding to the last
// possible moment; this package is that moment. Coordinates are
// converted to float64 only while being printed.
//
// Complexity: O(t) writes for a patch of t tiles; memory is O(1)
// beyond the underlying io.Writer.
//
// Errors: write failures are sticky - the first error suppresses all
// later output and is returned from the entry points, alongside any
// descriptor validation error from package tiling.
package svg
