// Package hexes holds the substitution system behind the Spectre
// tiling: the closed alphabet of nine marked hexagon types and the
// transition tables that describe how each type decomposes and how its
// pieces meet.
//
// What:
//
//   - Hex: the nine-letter alphabet G D J L X P S F Y. Each hexagon
//     expands into 8 sub-hexagons (7 for G) and finally into one
//     Spectre tile (two for G).
//   - Per-type transition data (HexData): the sub-hex type list, the
//     internal/external adjacency maps for hexagon and Spectre edges,
//     the boundary segment tables, and the weighted list of legal
//     parent positions used when the hierarchy is extended upward.
//
// How:
//
//	The handwritten inputs (sub-hex layout, orientations, edge classes
//	and their turn sequences, limiting probabilities) come straight
//	from the substitution system in the discoverers' paper. The
//	adjacency maps are derived from them once, at package init, by
//	laying every expansion out in exact plane coordinates and matching
//	each directed edge with its reverse: a matched edge is internal to
//	the expansion, an unmatched one lies on the boundary and is indexed
//	by (superhex edge, position within that edge's segment).
//
// All of it is immutable, process-wide, read-only data; no
// synchronization is needed because nothing is ever mutated after init.
package hexes
