// Package spectre generates patches of the Spectre aperiodic tiling:
// the single 14-sided "einstein" tile (Smith, Myers, Kaplan, Goodman-
// Strauss, 2023) that covers the plane without ever repeating.
//
// 🚀 What does it give you?
//
//	Exact, reproducible tiling patches with zero floating-point drift:
//		• plane  — integer arithmetic in the ring ℤ[exp(iπ/6)]
//		• hexes  — the nine-hexagon substitution system and its
//		  transition tables, derived at init from first principles
//		• tiling — coordinate hierarchies, neighbour-finding, tile
//		  placement, breadth-first patch assembly and a compact
//		  serializable patch descriptor
//		• svg    — an SVG exporter colouring tiles by the built-in
//		  3-colouring
//		• cmd/spectre-svg — a small CLI front end
//
// ✨ Why this shape?
//
//   - Exactness first: every vertex stays exact until the final display
//     scaling, and patches regenerate bit-identically from descriptors
//   - Pure Go library core: the only dependencies sit at the display
//     boundary and in the tests
//   - Caller-bounded generation: your acceptance predicate is the
//     bounding region and the cancellation mechanism in one
//
// Start with package tiling; the other packages serve it.
package spectre
