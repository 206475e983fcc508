// Package tiling generates finite patches of the aperiodic Spectre
// tiling, the single 14-sided tile discovered in 2023 that tiles the
// plane without ever repeating.
//
// What:
//
//   - Coords: a growable coordinate hierarchy locating one tile inside
//     the infinite substitution structure: the innermost Spectre index
//     plus one (hexagon type, position) pair per hierarchy level.
//   - Context: the shared state of one generation run. It owns a
//     lazily-extended prototype hierarchy whose resolved levels are the
//     common ancestry of every tile in the run.
//   - Step/Adjacent: neighbour-finding across any edge, climbing (and
//     extending) as many hierarchy levels as the crossing requires.
//   - Generate: breadth-first patch assembly from the seed tile,
//     bounded solely by the caller's acceptance predicate.
//   - PatchParams: a compact serializable descriptor from which an
//     identical patch can be regenerated without any randomness.
//
// Why:
//
//   - Puzzle grids need arbitrarily large non-repeating tilings with
//     exact vertex geometry; callers consume the finished coordinates
//     (and a 3-colouring for variant puzzles) and never touch the
//     substitution machinery.
//
// Complexity:
//
//   - One neighbour step is O(1) amortized; it recurses one hierarchy
//     level per external crossing, bounded by O(log area) in practice.
//   - Generate visits each in-bound tile once per incident edge.
//
// Errors:
//
//   - Descriptor validation returns ErrEmptyCoords, ErrBadHexLetter or
//     ErrCoordRange, wrapped with detail. Everything past validation
//     expects internally consistent state: violations of the hierarchy
//     invariants are programming errors and panic.
//
// A Context must not be shared between goroutines. Coords snapshots
// taken from it stay valid forever because the prototype is
// append-only.
package tiling
