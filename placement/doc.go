// Package placement propagates positions and rotations from one seed piece to
// every piece reachable through shared edge labels, breadth first.
//
// What
//
//   - Start from a seed Placement (x, y, rotation, piece) known a priori.
//   - For every labelled side of a placed piece, in its placed orientation,
//     look up the single neighbor across that edge in an adjacency.Index.
//   - The neighbor sits one step away in the side's facing direction and is
//     turned so its matching side faces back the opposite way.
//   - Each piece is placed at most once; the first placement wins.
//   - Returns a Result containing:
//   - Solution: piece id → Placement
//   - Order:    placement sequence
//   - Depth:    piece id → edge hops from the seed
//   - Parent:   piece id → id of the piece it was placed from
//
// Why
//
//   - Rotation of a neighbor is fully determined by the shared edge and the
//     direction it must face, so a single O(P) pass with no backtracking
//     places the whole connected puzzle.
//
// Reachability
//
//	Pieces that share no label path with the seed never enter the Solution.
//	Solve reports them by omission only; callers that need every piece
//	placed compare Solution against their input (see puzzle.Solve, which
//	turns the gap into ErrIncompletePuzzle).
//
// Determinism
//
//	Sides are visited in local order top, right, bottom, left, so the
//	placement Order is fully reproducible for identical input.
//
// Complexity (P = pieces, E = shared edges)
//
//   - Time:   O(P + E)
//   - Memory: O(P)  (queue, seen set, result maps)
//
// Usage
//
//	idx := adjacency.Build(pieces)
//	res, err := placement.Solve(idx, placement.Placement{X: 0, Y: 0, Rotation: geometry.North, Piece: seed},
//	    placement.WithOnPlace(func(p placement.Placement, depth int) error { return nil }),
//	)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hook, no depth limit.
//   - WithContext(ctx):   abort between placements when ctx is done.
//   - WithMaxDepth(d):    place nothing further than d hops from the seed (d>0).
//   - WithOnPlace(fn):    hook after each placement; returning an error aborts.
//
// Errors
//
//   - ErrIndexNil        if the index pointer is nil.
//   - ErrOptionViolation if an Option is invalid (e.g. negative MaxDepth).
//   - ErrInvalidSeed     if the seed rotation is out of range.
//   - adjacency.ErrAdjacencyConsistency and piece.ErrUnknownSide, wrapped,
//     for malformed puzzle data.
//   - Wrapped errors returned by the OnPlace hook.
package placement
