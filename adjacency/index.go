package adjacency

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/jigsaw/geometry"
	"github.com/katalvlaran/jigsaw/piece"
)

// ErrAdjacencyConsistency is returned when a label does not join exactly
// one piece to exactly one other piece.
var ErrAdjacencyConsistency = errors.New("adjacency: inconsistent edge label")

// Index maps an edge label to the pieces declaring it.
type Index struct {
	entries map[string][]piece.Piece
	pieces  []piece.Piece // build order, deduplicated
}

// Build files every piece under each of its present labels.
// Pieces are deduplicated per label and overall; input order is kept.
func Build(pieces []piece.Piece) *Index {
	idx := &Index{
		entries: make(map[string][]piece.Piece, len(pieces)*2),
		pieces:  make([]piece.Piece, 0, len(pieces)),
	}
	known := make(map[piece.Piece]struct{}, len(pieces))
	for _, p := range pieces {
		if _, ok := known[p]; !ok {
			known[p] = struct{}{}
			idx.pieces = append(idx.pieces, p)
		}
		for _, s := range p.Sides(geometry.North) {
			idx.insert(s.Label, p)
		}
	}
	return idx
}

// insert adds p to the set for label, creating the set on first reference.
func (idx *Index) insert(label string, p piece.Piece) {
	set, ok := idx.entries[label]
	if !ok {
		idx.entries[label] = []piece.Piece{p}
		return
	}
	for _, q := range set {
		if q == p {
			return
		}
	}
	idx.entries[label] = append(set, p)
}

// NeighborOf returns the one piece other than excluding that declares label.
// Returns ErrAdjacencyConsistency if the label is unknown, if excluding is its
// only owner, or if it is declared by more than two pieces.
func (idx *Index) NeighborOf(label string, excluding piece.Piece) (piece.Piece, error) {
	set, ok := idx.entries[label]
	if !ok {
		return piece.Piece{}, fmt.Errorf("%w: label %q is not declared by any piece", ErrAdjacencyConsistency, label)
	}
	if len(set) > 2 {
		return piece.Piece{}, fmt.Errorf("%w: label %q is declared by %d pieces", ErrAdjacencyConsistency, label, len(set))
	}
	var (
		found piece.Piece
		n     int
	)
	for _, q := range set {
		if q != excluding {
			found = q
			n++
		}
	}
	if n != 1 {
		return piece.Piece{}, fmt.Errorf("%w: label %q has %d neighbor(s) of piece %q, want 1",
			ErrAdjacencyConsistency, label, n, excluding.ID())
	}
	return found, nil
}

// Members returns a copy of the pieces declaring label, in build order.
func (idx *Index) Members(label string) []piece.Piece {
	set := idx.entries[label]
	out := make([]piece.Piece, len(set))
	copy(out, set)
	return out
}

// Labels returns every indexed label, sorted.
func (idx *Index) Labels() []string {
	out := make([]string, 0, len(idx.entries))
	for l := range idx.entries {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of distinct labels.
func (idx *Index) Len() int { return len(idx.entries) }

// NumPieces returns the number of distinct indexed pieces.
func (idx *Index) NumPieces() int { return len(idx.pieces) }

// Pieces returns the indexed pieces in build order.
func (idx *Index) Pieces() []piece.Piece {
	out := make([]piece.Piece, len(idx.pieces))
	copy(out, idx.pieces)
	return out
}

// Validate checks the 1-or-2 cardinality of every label and reports the
// first violation in sorted label order.
func (idx *Index) Validate() error {
	for _, l := range idx.Labels() {
		if n := len(idx.entries[l]); n > 2 {
			return fmt.Errorf("%w: label %q is declared by %d pieces", ErrAdjacencyConsistency, l, n)
		}
	}
	return nil
}
