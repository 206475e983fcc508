// Package plane provides exact integer arithmetic for the plane of the
// Spectre tiling.
//
// What:
//
//   - Point: a point (or vector) stored as integer coefficients of
//     {1, d, d², d³}, where d = exp(iπ/6) is a primitive 12th root of
//     unity. Addition, subtraction, complex-style multiplication and
//     the twelve 30° rotation constants all stay inside this ring.
//   - Coord: a single exact axis value of the form c1 + cr3·√3, with
//     total ordering and arithmetic.
//
// Why:
//
//   - Every edge and vertex of the tiling is an integer combination of
//     these basis elements, so composing thousands of tile placements
//     accumulates zero numerical drift. Floating point appears only at
//     the final display boundary (Coord.Float64).
//
// Complexity: all operations are O(1) with small constants.
//
// There are no error cases: the operations are total, and rotation
// indices are normalized modulo 12.
package plane
