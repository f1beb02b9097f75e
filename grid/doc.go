// Package grid lays a placement solution out on a rectangular board so it can
// be checked and printed.
//
// What:
//
//   - Layout is the bounding box of all placements, cells addressed row-major
//     with (MinX,MinY) at index 0. Empty cells are holes.
//   - Verify checks every seam between two occupied, orthogonally adjacent
//     cells: both pieces must show the same label across it (or none).
//   - Render prints one text line per row, "id:O" per cell, "." for holes.
//
// Why:
//
//   - The placement solver trusts each edge once. Verify re-checks all of them,
//     which catches puzzle data whose labels close a loop inconsistently.
//
// Complexity:
//
//   - FromSolution: O(P log P + W×H), Memory: O(W×H).
//   - Verify:       O(W×H).
//   - Render:       O(W×H).
//
// Errors:
//
//   - ErrEmptySolution: nothing to lay out.
//   - ErrOverlap:       two pieces placed on the same cell.
//   - ErrSeamMismatch:  neighboring pieces disagree about a shared edge.
package grid
