// SPDX-License-Identifier: MIT
// Package: jigsaw/builder
//
// Package builder generates synthetic rectangular puzzles with a known
// answer: every piece's true coordinate and rotation are recorded next to
// the scrambled pieces, so a solver's output can be checked against it.
//
// Model:
//   • rows×cols cells, X = column, Y = row, origin at the top-left cell.
//   • Every interior seam gets a unique label; outer sides carry the border
//     marker (which normalizes to "no label").
//   • Each piece is turned by a random rotation and its labels are written
//     in the turned piece's local order; the piece list is shuffled.
//   • The top-left piece is the seed, placed at (0,0) with its true rotation.
//
// Determinism:
//   • Defaults are seeded (WithSeed(1)); identical options give identical
//     puzzles, ids, labels and order.
//
// Usage:
//
//	pz, err := builder.Grid(3, 4, builder.WithSeed(7))
//	idx := adjacency.Build(pz.Pieces)
//	res, err := placement.Solve(idx, pz.Seed)
//	// res.Solution equals pz.Truth
package builder
