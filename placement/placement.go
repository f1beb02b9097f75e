package placement

import (
	"context"
	"fmt"

	"github.com/katalvlaran/jigsaw/adjacency"
	"github.com/katalvlaran/jigsaw/piece"
)

// queueItem pairs a placement with its hop count from the seed.
type queueItem struct {
	at    Placement
	depth int
}

// walker owns the mutable state of one solve.
type walker struct {
	index *adjacency.Index
	opts  Options
	ctx   context.Context
	queue []queueItem
	seen  map[piece.Piece]bool
	res   *Result
}

// Solve places every piece reachable from seed through idx.
// Returns ErrIndexNil, ErrInvalidSeed or ErrOptionViolation for bad input,
// wrapped adjacency or piece errors for inconsistent puzzle data, the
// context error on cancellation, or a wrapped OnPlace error.
// On error the partial Result is returned alongside it.
func Solve(idx *adjacency.Index, seed Placement, opts ...Option) (*Result, error) {
	if idx == nil {
		return nil, ErrIndexNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !seed.Rotation.Valid() {
		return nil, fmt.Errorf("%w: rotation %d", ErrInvalidSeed, seed.Rotation)
	}

	n := idx.NumPieces() + 1
	w := &walker{
		index: idx,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		seen:  make(map[piece.Piece]bool, n),
		res: &Result{
			Solution: make(map[string]Placement, n),
			Order:    make([]string, 0, n),
			Depth:    make(map[string]int, n),
			Parent:   make(map[string]string, n),
		},
	}

	if err := w.place(seed, 0, ""); err != nil {
		return w.res, err
	}
	return w.res, w.loop()
}

// place marks p seen, records it, runs OnPlace and enqueues it.
func (w *walker) place(p Placement, depth int, parent string) error {
	id := p.Piece.ID()
	w.seen[p.Piece] = true
	w.res.Solution[id] = p
	w.res.Order = append(w.res.Order, id)
	w.res.Depth[id] = depth
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{at: p, depth: depth})
	if err := w.opts.OnPlace(p, depth); err != nil {
		return fmt.Errorf("placement: OnPlace error at %q: %w", id, err)
	}
	return nil
}

// loop drains the queue.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.expand(item); err != nil {
			return err
		}
	}
	return nil
}

// expand places the unseen neighbor across every labelled side of item.
func (w *walker) expand(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	cur := item.at
	for _, s := range cur.Piece.Sides(cur.Rotation) {
		nbr, err := w.index.NeighborOf(s.Label, cur.Piece)
		if err != nil {
			return fmt.Errorf("placement: from %q: %w", cur.Piece.ID(), err)
		}
		if w.seen[nbr] {
			continue
		}
		// the neighbor's matching side faces back across the seam
		r, err := nbr.RotationFor(s.Label, -s.DX, -s.DY)
		if err != nil {
			return fmt.Errorf("placement: from %q: %w", cur.Piece.ID(), err)
		}
		at := Placement{X: cur.X + s.DX, Y: cur.Y + s.DY, Rotation: r, Piece: nbr}
		if err := w.place(at, next, cur.Piece.ID()); err != nil {
			return err
		}
	}
	return nil
}
