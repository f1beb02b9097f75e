// Package puzzle connects input records to the placement engine.
//
// A Record is one row of the tabular puzzle format:
//
//	id, top, right, bottom, left, orientation, row, col
//
// Side fields are raw (possibly padded) labels. orientation/row/col are set
// on the single seed record only. Solve turns records into pieces, finds the
// seed, indexes the labels and runs placement.Solve. Apply writes the result
// back: same records, same order, sides untouched, orientation/row/col filled
// from each piece's placement.
//
// Pieces unreachable from the seed make Solve fail with ErrIncompletePuzzle
// unless Options.AllowPartial is set, in which case they are left out of the
// solution and Apply leaves their placement fields empty.
package puzzle
