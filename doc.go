// Package jigsaw reassembles a jigsaw-style puzzle from a flat list of
// pieces, given one piece whose position and facing are known.
//
// Every piece has up to four edge labels (top, right, bottom, left). Two
// pieces that share a label meet along that edge. Starting from the seed,
// a breadth-first walk over shared labels fixes each piece's grid
// coordinate and quarter-turn rotation.
//
// Quick ASCII example:
//
//	A ─x─ B          A: right=x        B: left=x
//	                 seed A at (0,0) N → B at (1,0) N
//
// Packages, leaf to root:
//
//	geometry/  — the four grid directions and N/E/S/W rotation arithmetic
//	piece/     — immutable Piece, rotation-aware side listing
//	adjacency/ — label → pieces index, neighbor lookup, components
//	placement/ — breadth-first placement from the seed
//	grid/      — bounded board layout, seam verification, text render
//	puzzle/    — records ↔ solution: seed discovery, Solve, Apply
//	puzzlecsv/ — the comma-separated file format
//	builder/   — synthetic puzzles with a known answer
//
// The jigsaw command (cmd/jigsaw) reads problem.csv and writes solution.csv.
//
//	go install github.com/katalvlaran/jigsaw/cmd/jigsaw@latest
package jigsaw
